package usecase

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
// Necesita el repo de productos para la guarda de borrado: una categoría con
// productos asociados no se puede eliminar.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	products repository.ProductRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, products repository.ProductRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, products: products}
}

// Create crea una categoría. El pre-chequeo de nombre duplicado es best-effort;
// el índice único de la DB es la garantía final y el repo también devuelve
// ErrDuplicateName si el insert choca con él.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := entity.NewCategory(in.Name, in.Description)
	if err := category.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(category.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe una categoría con el nombre %q", domain.ErrDuplicateName, category.Name)
	}
	created, err := uc.repo.Create(category)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(created), nil
}

// GetByID obtiene una categoría por ID. (nil, nil) si no existe.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.CategoryResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista categorías con paginación y búsqueda opcional por nombre,
// ordenadas por nombre ascendente.
func (uc *CategoryUseCase) List(q dto.ListQuery) (*dto.CategoryListResponse, error) {
	page, size := normalizePage(q.Page, q.Size)
	items, total, err := uc.repo.List(repository.ListParams{Page: page, PerPage: size, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(items))
	for i := range items {
		out = append(out, *toCategoryResponse(&items[i]))
	}
	return &dto.CategoryListResponse{Items: out, Total: total, Page: page, Size: size}, nil
}

// Update reemplaza nombre y descripción de una categoría existente.
// (nil, nil) si la categoría no existe.
func (uc *CategoryUseCase) Update(id int64, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	category := entity.NewCategory(in.Name, in.Description)
	category.ID = id
	if err := category.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(category.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe otra categoría con el nombre %q", domain.ErrDuplicateName, category.Name)
	}
	updated, err := uc.repo.Update(category)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return toCategoryResponse(updated), nil
}

// Delete elimina una categoría si no tiene productos asociados.
// Devuelve (false, nil) si la categoría no existe y ErrConflict si está referenciada.
func (uc *CategoryUseCase) Delete(id int64) (bool, error) {
	if id <= 0 {
		return false, domain.ErrInvalidID
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}
	count, err := uc.products.CountByCategoryID(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, fmt.Errorf("%w: la categoría tiene productos asociados", domain.ErrConflict)
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
