package dto

// ListQuery parámetros comunes de listado (query string: page, size, q).
// La normalización de rangos la hace el caso de uso, no el handler.
type ListQuery struct {
	Page   int    `query:"page"`
	Size   int    `query:"size"`
	Search string `query:"q"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
