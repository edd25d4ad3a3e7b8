package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario nuevo y devuelve el registro con id y timestamps asignados.
func (r *UserRepo) Create(user entity.User) (*entity.User, error) {
	query := `
		INSERT INTO usuarios (email, password_hash, nombre, activo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, password_hash, nombre, activo, created_at, updated_at`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query,
		user.Email, user.PasswordHash, user.Name, user.Active,
	).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("insert usuario: %w", err)
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID. (nil, nil) si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, nombre, activo, created_at, updated_at
		FROM usuarios WHERE id = $1`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email sin distinguir mayúsculas. (nil, nil) si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, nombre, activo, created_at, updated_at
		FROM usuarios WHERE LOWER(email) = LOWER($1)`
	var u entity.User
	err := r.q.QueryRow(context.Background(), query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario por email: %w", err)
	}
	return &u, nil
}

// ExistsByEmail verifica si hay un usuario con ese email (case-insensitive),
// ignorando el registro excludeID si es > 0.
func (r *UserRepo) ExistsByEmail(email string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM usuarios
			WHERE LOWER(email) = LOWER($1) AND ($2 = 0 OR id <> $2)
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists usuario por email: %w", err)
	}
	return exists, nil
}
