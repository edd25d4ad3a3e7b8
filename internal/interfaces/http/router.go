package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/auth"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router (composición explícita, sin globals).
type RouterDeps struct {
	CategoryUC     *usecase.CategoryUseCase
	PresentationUC *usecase.PresentationUseCase
	ProductUC      *usecase.ProductUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: register y login públicos; refresh exige un refresh token válido.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", RefreshMiddleware(deps.JWTSecret), authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token de tipo access)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categorías (protegido)
	categories := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Presentaciones (protegido)
	presentations := protected.Group("/presentaciones")
	presentationHandler := NewPresentationHandler(deps.PresentationUC)
	presentations.Get("/", presentationHandler.List)
	presentations.Post("/", presentationHandler.Create)
	presentations.Get("/:id", presentationHandler.GetByID)
	presentations.Put("/:id", presentationHandler.Update)
	presentations.Delete("/:id", presentationHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
