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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo y devuelve el registro con id y timestamps asignados.
// Las FKs del esquema respaldan el chequeo de referencias del caso de uso.
func (r *ProductRepo) Create(product entity.Product) (*entity.Product, error) {
	query := `
		INSERT INTO productos (nombre, precio, categoria_id, presentacion_id, activo)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, nombre, precio, categoria_id, presentacion_id, activo, created_at, updated_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Price, product.CategoryID, product.PresentationID, product.Active,
	).Scan(
		&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.PresentationID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: categoría o presentación inexistente", domain.ErrReferenceNotFound)
		}
		return nil, fmt.Errorf("insert producto: %w", err)
	}
	return &p, nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT id, nombre, precio, categoria_id, presentacion_id, activo, created_at, updated_at
		FROM productos WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.PresentationID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

// GetByName obtiene un producto por nombre sin distinguir mayúsculas.
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `
		SELECT id, nombre, precio, categoria_id, presentacion_id, activo, created_at, updated_at
		FROM productos WHERE LOWER(nombre) = LOWER($1)`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.PresentationID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por nombre: %w", err)
	}
	return &p, nil
}

// ExistsByName verifica si hay un producto con ese nombre (case-insensitive),
// ignorando el registro excludeID si es > 0.
func (r *ProductRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM productos
			WHERE LOWER(nombre) = LOWER($1) AND ($2 = 0 OR id <> $2)
		)`
	var exists bool
	if err := r.q.QueryRow(context.Background(), query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists producto por nombre: %w", err)
	}
	return exists, nil
}

// List devuelve una página de productos ordenados por nombre más el total sin
// paginar. Búsqueda por substring de nombre y filtros de igualdad por
// categoría/presentación (0 = sin filtro), todos combinados con AND.
func (r *ProductRepo) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	countQuery := `
		SELECT COUNT(*) FROM productos
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR categoria_id = $2)
		  AND ($3 = 0 OR presentacion_id = $3)`
	var total int64
	err := r.q.QueryRow(context.Background(), countQuery,
		params.Search, params.CategoryID, params.PresentationID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count productos: %w", err)
	}

	query := `
		SELECT id, nombre, precio, categoria_id, presentacion_id, activo, created_at, updated_at
		FROM productos
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')
		  AND ($2 = 0 OR categoria_id = $2)
		  AND ($3 = 0 OR presentacion_id = $3)
		ORDER BY nombre ASC
		LIMIT $4 OFFSET $5`
	rows, err := r.q.Query(context.Background(), query,
		params.Search, params.CategoryID, params.PresentationID, params.PerPage, params.Offset(),
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	list := make([]entity.Product, 0, params.PerPage)
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.PresentationID, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// Update reemplaza los datos del producto. (nil, nil) si no existe.
func (r *ProductRepo) Update(product entity.Product) (*entity.Product, error) {
	query := `
		UPDATE productos
		SET nombre = $2, precio = $3, categoria_id = $4, presentacion_id = $5, activo = $6, updated_at = now()
		WHERE id = $1
		RETURNING id, nombre, precio, categoria_id, presentacion_id, activo, created_at, updated_at`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query,
		product.ID, product.Name, product.Price, product.CategoryID, product.PresentationID, product.Active,
	).Scan(
		&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.PresentationID, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateName
		}
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: categoría o presentación inexistente", domain.ErrReferenceNotFound)
		}
		return nil, fmt.Errorf("update producto: %w", err)
	}
	return &p, nil
}

// Delete elimina un producto por ID. Los productos no tienen dependientes.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

// CountByCategoryID cuenta los productos que referencian una categoría.
func (r *ProductRepo) CountByCategoryID(categoryID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE categoria_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count productos por categoria: %w", err)
	}
	return count, nil
}

// CountByPresentationID cuenta los productos que referencian una presentación.
func (r *ProductRepo) CountByPresentationID(presentationID int64) (int64, error) {
	var count int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE presentacion_id = $1`, presentationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count productos por presentacion: %w", err)
	}
	return count, nil
}
