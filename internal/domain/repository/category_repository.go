package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// GetByID, GetByName y Update devuelven (nil, nil) cuando el registro no existe:
// la ausencia no es un error.
type CategoryRepository interface {
	Create(category entity.Category) (*entity.Category, error)
	GetByID(id int64) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	// ExistsByName compara sin distinguir mayúsculas; excludeID > 0 ignora ese registro.
	ExistsByName(name string, excludeID int64) (bool, error)
	List(params ListParams) ([]entity.Category, int64, error)
	Update(category entity.Category) (*entity.Category, error)
	Delete(id int64) error
}
