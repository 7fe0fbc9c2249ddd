package repository

import "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	GetByName(name string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Count devuelve el total de usuarios (regla del primer usuario admin).
	Count() (int, error)
}
