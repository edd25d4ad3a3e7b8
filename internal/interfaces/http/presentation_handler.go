package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// PresentationHandler maneja las peticiones HTTP para Presentation (protegido).
type PresentationHandler struct {
	uc *usecase.PresentationUseCase
}

// NewPresentationHandler construye el handler.
func NewPresentationHandler(uc *usecase.PresentationUseCase) *PresentationHandler {
	return &PresentationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear presentación
// @Tags         presentaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePresentationRequest  true  "Datos de la presentación"
// @Success      201   {object}  dto.PresentationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/presentaciones [post]
func (h *PresentationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePresentationRequest
	if resp := parseAndValidate(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener presentación por ID
// @Tags         presentaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la presentación"
// @Success      200  {object}  dto.PresentationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [get]
func (h *PresentationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presentación no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar presentaciones
// @Tags         presentaciones
// @Security     Bearer
// @Produce      json
// @Param        page  query  int     false  "Página"              default(1)
// @Param        size  query  int     false  "Tamaño de página"    default(10)
// @Param        q     query  string  false  "Búsqueda por nombre"
// @Success      200   {object}  dto.PresentationListResponse
// @Router       /api/presentaciones [get]
func (h *PresentationHandler) List(c *fiber.Ctx) error {
	q := dto.ListQuery{
		Page:   c.QueryInt("page", 1),
		Size:   c.QueryInt("size", 10),
		Search: c.Query("q"),
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar presentación
// @Tags         presentaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la presentación"
// @Param        body  body  dto.UpdatePresentationRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.PresentationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [put]
func (h *PresentationHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePresentationRequest
	if resp := parseAndValidate(c, &in); resp != nil {
		return resp
	}
	out, err := h.uc.Update(paramID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presentación no encontrada"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar presentación
// @Tags         presentaciones
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la presentación"
// @Success      204  "Sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/presentaciones/{id} [delete]
func (h *PresentationHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.Delete(paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "presentación no encontrada"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
