package repository

// ListParams paginación y búsqueda para listados.
// Search filtra por substring del nombre sin distinguir mayúsculas.
type ListParams struct {
	Page    int
	PerPage int
	Search  string
}

// Offset devuelve el desplazamiento SQL equivalente a la página pedida.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ProductListParams filtros adicionales para listar productos.
// CategoryID y PresentationID en 0 significan "sin filtro"; se combinan con AND.
type ProductListParams struct {
	ListParams
	CategoryID     int64
	PresentationID int64
}
