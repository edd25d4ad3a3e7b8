package usecase_test

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia. Replican el contrato de los
// repos Postgres: (nil, nil) cuando el registro no existe, unicidad de nombre
// sin distinguir mayúsculas y listados ordenados por nombre ascendente.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	seq   int64
	items map[int64]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[int64]entity.Category)}
}

func (r *fakeCategoryRepo) Create(category entity.Category) (*entity.Category, error) {
	r.seq++
	category.ID = r.seq
	category.CreatedAt = time.Now()
	category.UpdatedAt = category.CreatedAt
	r.items[category.ID] = category
	return &category, nil
}

func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.items {
		if strings.EqualFold(c.Name, name) {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	for _, c := range r.items {
		if c.ID != excludeID && strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) List(params repository.ListParams) ([]entity.Category, int64, error) {
	var all []entity.Category
	for _, c := range r.items {
		if params.Search == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(params.Search)) {
			all = append(all, c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	return window(all, params.Offset(), params.PerPage), total, nil
}

func (r *fakeCategoryRepo) Update(category entity.Category) (*entity.Category, error) {
	existing, ok := r.items[category.ID]
	if !ok {
		return nil, nil
	}
	category.CreatedAt = existing.CreatedAt
	category.UpdatedAt = time.Now()
	r.items[category.ID] = category
	return &category, nil
}

func (r *fakeCategoryRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakePresentationRepo struct {
	seq   int64
	items map[int64]entity.Presentation
}

func newFakePresentationRepo() *fakePresentationRepo {
	return &fakePresentationRepo{items: make(map[int64]entity.Presentation)}
}

func (r *fakePresentationRepo) Create(presentation entity.Presentation) (*entity.Presentation, error) {
	r.seq++
	presentation.ID = r.seq
	presentation.CreatedAt = time.Now()
	presentation.UpdatedAt = presentation.CreatedAt
	r.items[presentation.ID] = presentation
	return &presentation, nil
}

func (r *fakePresentationRepo) GetByID(id int64) (*entity.Presentation, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePresentationRepo) GetByName(name string) (*entity.Presentation, error) {
	for _, p := range r.items {
		if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakePresentationRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	for _, p := range r.items {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePresentationRepo) List(params repository.ListParams) ([]entity.Presentation, int64, error) {
	var all []entity.Presentation
	for _, p := range r.items {
		if params.Search == "" || strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	return window(all, params.Offset(), params.PerPage), total, nil
}

func (r *fakePresentationRepo) Update(presentation entity.Presentation) (*entity.Presentation, error) {
	existing, ok := r.items[presentation.ID]
	if !ok {
		return nil, nil
	}
	presentation.CreatedAt = existing.CreatedAt
	presentation.UpdatedAt = time.Now()
	r.items[presentation.ID] = presentation
	return &presentation, nil
}

func (r *fakePresentationRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

type fakeProductRepo struct {
	seq   int64
	items map[int64]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: make(map[int64]entity.Product)}
}

func (r *fakeProductRepo) Create(product entity.Product) (*entity.Product, error) {
	r.seq++
	product.ID = r.seq
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	r.items[product.ID] = product
	return &product, nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByName(name string) (*entity.Product, error) {
	for _, p := range r.items {
		if strings.EqualFold(p.Name, name) {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) ExistsByName(name string, excludeID int64) (bool, error) {
	for _, p := range r.items {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) List(params repository.ProductListParams) ([]entity.Product, int64, error) {
	var all []entity.Product
	for _, p := range r.items {
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.CategoryID != 0 && p.CategoryID != params.CategoryID {
			continue
		}
		if params.PresentationID != 0 && p.PresentationID != params.PresentationID {
			continue
		}
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	total := int64(len(all))
	return window(all, params.Offset(), params.PerPage), total, nil
}

func (r *fakeProductRepo) Update(product entity.Product) (*entity.Product, error) {
	existing, ok := r.items[product.ID]
	if !ok {
		return nil, nil
	}
	product.CreatedAt = existing.CreatedAt
	product.UpdatedAt = time.Now()
	r.items[product.ID] = product
	return &product, nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.items, id)
	return nil
}

func (r *fakeProductRepo) CountByCategoryID(categoryID int64) (int64, error) {
	var n int64
	for _, p := range r.items {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *fakeProductRepo) CountByPresentationID(presentationID int64) (int64, error) {
	var n int64
	for _, p := range r.items {
		if p.PresentationID == presentationID {
			n++
		}
	}
	return n, nil
}

// window aplica offset/limit sobre un slice ya ordenado.
func window[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
