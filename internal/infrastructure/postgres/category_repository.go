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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva y devuelve el registro con id y timestamps asignados.
func (r *CategoryRepo) Create(category entity.Category) (*entity.Category, error) {
	query := `
		INSERT INTO categorias (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, nombre, descripcion, created_at, updated_at`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, category.Name, category.Description).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("insert categoria: %w", err)
	}
	return &c, nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM categorias WHERE id = $1`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una categoría por nombre sin distinguir mayúsculas.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM categorias WHERE LOWER(nombre) = LOWER($1)`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria por nombre: %w", err)
	}
	return &c, nil
}

// ExistsByName verifica si hay una categoría con ese nombre (case-insensitive),
// ignorando el registro excludeID si es > 0.
func (r *CategoryRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM categorias
			WHERE LOWER(nombre) = LOWER($1) AND ($2 = 0 OR id <> $2)
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists categoria por nombre: %w", err)
	}
	return exists, nil
}

// List devuelve una página de categorías ordenadas por nombre más el total sin paginar.
func (r *CategoryRepo) List(params repository.ListParams) ([]entity.Category, int64, error) {
	countQuery := `
		SELECT COUNT(*) FROM categorias
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')`
	var total int64
	if err := r.q.QueryRow(context.Background(), countQuery, params.Search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categorias: %w", err)
	}

	query := `
		SELECT id, nombre, descripcion, created_at, updated_at
		FROM categorias
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')
		ORDER BY nombre ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, params.Search, params.PerPage, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Category, 0, params.PerPage)
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, total, rows.Err()
}

// Update reemplaza nombre y descripción. (nil, nil) si la categoría no existe.
func (r *CategoryRepo) Update(category entity.Category) (*entity.Category, error) {
	query := `
		UPDATE categorias SET nombre = $2, descripcion = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, nombre, descripcion, created_at, updated_at`
	var c entity.Category
	err := r.q.QueryRow(context.Background(), query, category.ID, category.Name, category.Description).Scan(
		&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		return nil, fmt.Errorf("update categoria: %w", err)
	}
	return &c, nil
}

// Delete elimina una categoría por ID. La FK de productos con ON DELETE RESTRICT
// es el respaldo del chequeo de dependientes del caso de uso.
func (r *CategoryRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: la categoría tiene productos asociados", domain.ErrConflict)
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
