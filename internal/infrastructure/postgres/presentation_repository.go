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

var _ repository.PresentationRepository = (*PresentationRepo)(nil)

// PresentationRepo implementación del puerto PresentationRepository sobre PostgreSQL (usable con pool o tx).
type PresentationRepo struct {
	q Querier
}

// NewPresentationRepository construye el adaptador de persistencia para presentaciones. Pasar pool o tx (Querier).
func NewPresentationRepository(q Querier) *PresentationRepo {
	return &PresentationRepo{q: q}
}

// Create persiste una presentación nueva y devuelve el registro con id y timestamps asignados.
func (r *PresentationRepo) Create(presentation entity.Presentation) (*entity.Presentation, error) {
	query := `
		INSERT INTO presentaciones (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, nombre, descripcion, created_at, updated_at`
	var p entity.Presentation
	err := r.q.QueryRow(context.Background(), query, presentation.Name, presentation.Description).Scan(
		&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("insert presentacion: %w", err)
	}
	return &p, nil
}

// GetByID obtiene una presentación por ID. (nil, nil) si no existe.
func (r *PresentationRepo) GetByID(id int64) (*entity.Presentation, error) {
	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM presentaciones WHERE id = $1`
	var p entity.Presentation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presentacion: %w", err)
	}
	return &p, nil
}

// GetByName obtiene una presentación por nombre sin distinguir mayúsculas.
func (r *PresentationRepo) GetByName(name string) (*entity.Presentation, error) {
	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM presentaciones WHERE LOWER(nombre) = LOWER($1)`
	var p entity.Presentation
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get presentacion por nombre: %w", err)
	}
	return &p, nil
}

// ExistsByName verifica si hay una presentación con ese nombre (case-insensitive),
// ignorando el registro excludeID si es > 0.
func (r *PresentationRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM presentaciones
			WHERE LOWER(nombre) = LOWER($1) AND ($2 = 0 OR id <> $2)
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists presentacion por nombre: %w", err)
	}
	return exists, nil
}

// List devuelve una página de presentaciones ordenadas por nombre más el total sin paginar.
func (r *PresentationRepo) List(params repository.ListParams) ([]entity.Presentation, int64, error) {
	countQuery := `
		SELECT COUNT(*) FROM presentaciones
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')`
	var total int64
	if err := r.q.QueryRow(context.Background(), countQuery, params.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count presentaciones: %w", err)
	}

	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM presentaciones
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')
		ORDER BY nombre ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, params.Search, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list presentaciones: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Presentation, 0, params.PerPage)
	for rows.Next() {
		var p entity.Presentation
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan presentacion: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update reemplaza nombre y descripción. (nil, nil) si la presentación no existe.
func (r *PresentationRepo) Update(presentation entity.Presentation) (*entity.Presentation, error) {
	query := `
		UPDATE presentaciones SET nombre = $2, descripcion = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, nombre, descripcion, created_at, updated_at`
	var p entity.Presentation
	err := r.q.QueryRow(context.Background(), query, presentation.ID, presentation.Name, presentation.Description).Scan(
		&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("update presentacion: %w", err)
	}
	return &p, nil
}

// Delete elimina una presentación por ID. La FK de productos con ON DELETE RESTRICT
// respalda el chequeo de dependientes del caso de uso.
func (r *PresentationRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM presentaciones WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la presentación tiene productos asociados", domain.ErrConflict)
		}
		return fmt.Errorf("delete presentacion: %w", err)
	}
	return nil
}
