package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"nombre" validate:"required,min=1,max=200"`
	Price          decimal.Decimal `json:"precio" validate:"required"`
	CategoryID     int64           `json:"categoria_id" validate:"required,min=1"`
	PresentationID int64           `json:"presentacion_id" validate:"required,min=1"`
	Active         *bool           `json:"activo"` // nil = true
}

// UpdateProductRequest entrada para actualizar un producto (reemplazo completo).
type UpdateProductRequest struct {
	Name           string          `json:"nombre" validate:"required,min=1,max=200"`
	Price          decimal.Decimal `json:"precio" validate:"required"`
	CategoryID     int64           `json:"categoria_id" validate:"required,min=1"`
	PresentationID int64           `json:"presentacion_id" validate:"required,min=1"`
	Active         *bool           `json:"activo"`
}

// ProductListQuery parámetros de listado de productos: paginación, búsqueda
// y filtros de igualdad por categoría/presentación (0 = sin filtro).
type ProductListQuery struct {
	Page           int    `query:"page"`
	Size           int    `query:"size"`
	Search         string `query:"q"`
	CategoryID     int64  `query:"categoria_id"`
	PresentationID int64  `query:"presentacion_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"nombre"`
	Price          decimal.Decimal `json:"precio"`
	CategoryID     int64           `json:"categoria_id"`
	PresentationID int64           `json:"presentacion_id"`
	Active         bool            `json:"activo"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Size  int               `json:"size"`
}
