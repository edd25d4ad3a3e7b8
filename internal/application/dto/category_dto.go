package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=100"`
	Description string `json:"descripcion" validate:"omitempty,max=500"`
}

// UpdateCategoryRequest entrada para actualizar una categoría (reemplazo completo).
type UpdateCategoryRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=100"`
	Description string `json:"descripcion" validate:"omitempty,max=500"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryListResponse lista paginada de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
}
