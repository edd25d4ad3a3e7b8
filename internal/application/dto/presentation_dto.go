package dto

import "time"

// CreatePresentationRequest entrada para crear una presentación.
type CreatePresentationRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=100"`
	Description string `json:"descripcion" validate:"omitempty,max=500"`
}

// UpdatePresentationRequest entrada para actualizar una presentación (reemplazo completo).
type UpdatePresentationRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=100"`
	Description string `json:"descripcion" validate:"omitempty,max=500"`
}

// PresentationResponse salida de una presentación.
type PresentationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PresentationListResponse lista paginada de presentaciones.
type PresentationListResponse struct {
	Items []PresentationResponse `json:"items"`
	Total int64                  `json:"total"`
	Page  int                    `json:"page"`
	Size  int                    `json:"size"`
}
