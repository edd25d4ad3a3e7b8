package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los contadores por categoría/presentación existen para que los casos de uso
// de borrado verifiquen dependientes de forma explícita, sin traversal perezoso.
type ProductRepository interface {
	Create(product entity.Product) (*entity.Product, error)
	GetByID(id int64) (*entity.Product, error)
	GetByName(name string) (*entity.Product, error)
	ExistsByName(name string, excludeID int64) (bool, error)
	List(params ProductListParams) ([]entity.Product, int64, error)
	Update(product entity.Product) (*entity.Product, error)
	Delete(id int64) error
	CountByCategoryID(categoryID int64) (int64, error)
	CountByPresentationID(presentationID int64) (int64, error)
}
