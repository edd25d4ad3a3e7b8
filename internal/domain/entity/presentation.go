package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

// Presentation representa una presentación o unidad de empaque (ej. "caja x 12").
// Misma forma que Category pero con espacio de nombres de unicidad independiente.
type Presentation struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPresentation construye una presentación normalizando el nombre (trim).
func NewPresentation(name, description string) Presentation {
	return Presentation{
		Name:        strings.TrimSpace(name),
		Description: description,
	}
}

// Validate verifica los invariantes de la presentación. Es pura: no consulta storage.
func (p Presentation) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("el nombre de la presentación es requerido")
	}
	if utf8.RuneCountInString(p.Name) > 100 {
		return domain.NewValidationError("el nombre de la presentación no puede exceder 100 caracteres")
	}
	if utf8.RuneCountInString(p.Description) > 500 {
		return domain.NewValidationError("la descripción no puede exceder 500 caracteres")
	}
	return nil
}
