package usecase

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Create y Update verifican
// que la categoría y la presentación referenciadas existan antes de persistir.
type ProductUseCase struct {
	repo          repository.ProductRepository
	categories    repository.CategoryRepository
	presentations repository.PresentationRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, presentations repository.PresentationRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categories: categories, presentations: presentations}
}

// Create crea un producto después de confirmar ambas referencias.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.checkReferences(in.CategoryID, in.PresentationID); err != nil {
		return nil, err
	}
	product := entity.NewProduct(in.Name, in.Price, in.CategoryID, in.PresentationID, activeOrDefault(in.Active))
	if err := product.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(product.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe un producto con el nombre %q", domain.ErrDuplicateName, product.Name)
	}
	created, err := uc.repo.Create(product)
	if err != nil {
		return nil, err
	}
	return toProductResponse(created), nil
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación, búsqueda por nombre y filtros
// opcionales por categoría y presentación (combinados con AND).
func (uc *ProductUseCase) List(q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	page, size := normalizePage(q.Page, q.Size)
	items, total, err := uc.repo.List(repository.ProductListParams{
		ListParams:     repository.ListParams{Page: page, PerPage: size, Search: q.Search},
		CategoryID:     q.CategoryID,
		PresentationID: q.PresentationID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(items))
	for i := range items {
		out = append(out, *toProductResponse(&items[i]))
	}
	return &dto.ProductListResponse{Items: out, Total: total, Page: page, Size: size}, nil
}

// Update reemplaza los datos de un producto existente, re-validando ambas
// referencias. (nil, nil) si el producto no existe.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
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
	if err := uc.checkReferences(in.CategoryID, in.PresentationID); err != nil {
		return nil, err
	}
	product := entity.NewProduct(in.Name, in.Price, in.CategoryID, in.PresentationID, activeOrDefault(in.Active))
	product.ID = id
	if err := product.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(product.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe otro producto con el nombre %q", domain.ErrDuplicateName, product.Name)
	}
	updated, err := uc.repo.Update(product)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return toProductResponse(updated), nil
}

// Delete elimina un producto. No hay entidades dependientes que lo bloqueen.
// Devuelve (false, nil) si el producto no existe.
func (uc *ProductUseCase) Delete(id int64) (bool, error) {
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
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

// checkReferences confirma que la categoría y la presentación existen.
func (uc *ProductUseCase) checkReferences(categoryID, presentationID int64) error {
	category, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return fmt.Errorf("%w: no existe una categoría con ID %d", domain.ErrReferenceNotFound, categoryID)
	}
	presentation, err := uc.presentations.GetByID(presentationID)
	if err != nil {
		return err
	}
	if presentation == nil {
		return fmt.Errorf("%w: no existe una presentación con ID %d", domain.ErrReferenceNotFound, presentationID)
	}
	return nil
}

func activeOrDefault(active *bool) bool {
	if active == nil {
		return true
	}
	return *active
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		CategoryID:     p.CategoryID,
		PresentationID: p.PresentationID,
		Active:         p.Active,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
