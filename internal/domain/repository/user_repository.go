package repository

import "github.com/tu-usuario/spog-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]entity.User, error)
	UpdateRole(id, role string) error
	UpdateStatus(id, status string) error
}
