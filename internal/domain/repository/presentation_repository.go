package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// PresentationRepository define el puerto de persistencia para Presentation (DIP).
// Misma semántica que CategoryRepository: (nil, nil) cuando no existe.
type PresentationRepository interface {
	Create(presentation entity.Presentation) (*entity.Presentation, error)
	GetByID(id int64) (*entity.Presentation, error)
	GetByName(name string) (*entity.Presentation, error)
	ExistsByName(name string, excludeID int64) (bool, error)
	List(params ListParams) ([]entity.Presentation, int64, error)
	Update(presentation entity.Presentation) (*entity.Presentation, error)
	Delete(id int64) error
}
