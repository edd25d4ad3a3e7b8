package usecase

// normalizePage aplica los límites de paginación: página mínima 1,
// tamaño en [1, 100] con 10 por defecto.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
