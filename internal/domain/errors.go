package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidID          = errors.New("el id debe ser mayor a 0")
	ErrDuplicateName      = errors.New("ya existe un registro con ese nombre")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrReferenceNotFound  = errors.New("referencia inexistente")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInactiveAccount    = errors.New("la cuenta de usuario está desactivada")
)

// ValidationError indica que una entidad o entrada viola un invariante de negocio.
// Lleva un mensaje legible para el usuario final.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError construye un ValidationError con formato.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reporta si err es (o envuelve) un ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
