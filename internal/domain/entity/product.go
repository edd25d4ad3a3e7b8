package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Product representa un producto del catálogo. Referencia una Category y una
// Presentation por ID pero no es dueño de sus ciclos de vida.
type Product struct {
	ID             int64
	Name           string
	Price          decimal.Decimal
	CategoryID     int64
	PresentationID int64
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewProduct construye un producto normalizando el nombre (trim).
func NewProduct(name string, price decimal.Decimal, categoryID, presentationID int64, active bool) Product {
	return Product{
		Name:           strings.TrimSpace(name),
		Price:          price,
		CategoryID:     categoryID,
		PresentationID: presentationID,
		Active:         active,
	}
}

// Validate verifica los invariantes del producto. La existencia real de la
// categoría y la presentación se comprueba en el caso de uso, no aquí.
func (p Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("el nombre del producto es requerido")
	}
	if utf8.RuneCountInString(p.Name) > 200 {
		return domain.NewValidationError("el nombre del producto no puede exceder 200 caracteres")
	}
	if p.Price.LessThanOrEqual(decimal.Zero) {
		return domain.NewValidationError("el precio debe ser mayor a 0")
	}
	if p.CategoryID <= 0 {
		return domain.NewValidationError("debe especificar una categoría válida")
	}
	if p.PresentationID <= 0 {
		return domain.NewValidationError("debe especificar una presentación válida")
	}
	return nil
}
