package repository

import "github.com/jhoicas/catalogo-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user entity.User) (*entity.User, error)
	GetByID(id int64) (*entity.User, error)
	// GetByEmail busca sin distinguir mayúsculas; (nil, nil) si no existe.
	GetByEmail(email string) (*entity.User, error)
	ExistsByEmail(email string, excludeID int64) (bool, error)
}
