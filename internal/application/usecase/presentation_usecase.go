package usecase

import (
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// PresentationUseCase casos de uso CRUD para presentaciones.
// Estructuralmente igual a CategoryUseCase, con su propio espacio de unicidad.
type PresentationUseCase struct {
	repo     repository.PresentationRepository
	products repository.ProductRepository
}

// NewPresentationUseCase construye el caso de uso.
func NewPresentationUseCase(repo repository.PresentationRepository, products repository.ProductRepository) *PresentationUseCase {
	return &PresentationUseCase{repo: repo, products: products}
}

// Create crea una presentación. El índice único de la DB respalda el pre-chequeo.
func (uc *PresentationUseCase) Create(in dto.CreatePresentationRequest) (*dto.PresentationResponse, error) {
	presentation := entity.NewPresentation(in.Name, in.Description)
	if err := presentation.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(presentation.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe una presentación con el nombre %q", domain.ErrDuplicateName, presentation.Name)
	}
	created, err := uc.repo.Create(presentation)
	if err != nil {
		return nil, err
	}
	return toPresentationResponse(created), nil
}

// GetByID obtiene una presentación por ID. (nil, nil) si no existe.
func (uc *PresentationUseCase) GetByID(id int64) (*dto.PresentationResponse, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	presentation, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if presentation == nil {
		return nil, nil
	}
	return toPresentationResponse(presentation), nil
}

// List lista presentaciones con paginación y búsqueda opcional por nombre.
func (uc *PresentationUseCase) List(q dto.ListQuery) (*dto.PresentationListResponse, error) {
	page, size := normalizePage(q.Page, q.Size)
	items, total, err := uc.repo.List(repository.ListParams{Page: page, PerPage: size, Search: q.Search})
	if err != nil {
		return nil, err
	}
	out := make([]dto.PresentationResponse, 0, len(items))
	for i := range items {
		out = append(out, *toPresentationResponse(&items[i]))
	}
	return &dto.PresentationListResponse{Items: out, Total: total, Page: page, Size: size}, nil
}

// Update reemplaza nombre y descripción de una presentación existente.
func (uc *PresentationUseCase) Update(id int64, in dto.UpdatePresentationRequest) (*dto.PresentationResponse, error) {
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
	presentation := entity.NewPresentation(in.Name, in.Description)
	presentation.ID = id
	if err := presentation.Validate(); err != nil {
		return nil, err
	}
	exists, err := uc.repo.ExistsByName(presentation.Name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: ya existe otra presentación con el nombre %q", domain.ErrDuplicateName, presentation.Name)
	}
	updated, err := uc.repo.Update(presentation)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	return toPresentationResponse(updated), nil
}

// Delete elimina una presentación si no tiene productos asociados.
func (uc *PresentationUseCase) Delete(id int64) (bool, error) {
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
	count, err := uc.products.CountByPresentationID(id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, fmt.Errorf("%w: la presentación tiene productos asociados", domain.ErrConflict)
	}
	if err := uc.repo.Delete(id); err != nil {
		return false, err
	}
	return true, nil
}

func toPresentationResponse(p *entity.Presentation) *dto.PresentationResponse {
	if p == nil {
		return nil
	}
	return &dto.PresentationResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
