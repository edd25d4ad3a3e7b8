package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Category representa una categoría del catálogo de productos.
// El nombre es único (sin distinguir mayúsculas) entre todas las categorías.
type Category struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory construye una categoría normalizando el nombre (trim).
func NewCategory(name, description string) Category {
	return Category{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
}

// Validate verifica los invariantes de la categoría. Es pura: no consulta storage.
func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("el nombre de la categoría es requerido")
	}
	// Los límites cuentan caracteres, no bytes: los acentos no restan espacio.
	if utf8.RuneCountInString(c.Name) > 100 {
		return domain.NewValidationError("el nombre de la categoría no puede exceder 100 caracteres")
	}
	if utf8.RuneCountInString(c.Description) > 500 {
		return domain.NewValidationError("la descripción no puede exceder 500 caracteres")
	}
	return nil
}
