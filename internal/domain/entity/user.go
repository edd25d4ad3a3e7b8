package entity

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jhoicas/catalogo-api/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// User representa un usuario del sistema. PasswordHash es siempre un hash
// bcrypt, nunca la contraseña en claro.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser construye un usuario normalizando email (trim + minúsculas) y nombre (trim).
func NewUser(email, passwordHash, name string, active bool) User {
	return User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Name:         strings.TrimSpace(name),
		Active:       active,
	}
}

// Validate verifica los invariantes del usuario. Es pura: no consulta storage.
func (u User) Validate() error {
	if strings.TrimSpace(u.Email) == "" {
		return domain.NewValidationError("el email es requerido")
	}
	if !emailPattern.MatchString(u.Email) {
		return domain.NewValidationError("el formato del email no es válido")
	}
	if strings.TrimSpace(u.Name) == "" {
		return domain.NewValidationError("el nombre es requerido")
	}
	if utf8.RuneCountInString(u.Name) > 100 {
		return domain.NewValidationError("el nombre no puede exceder 100 caracteres")
	}
	return nil
}
