package repository

import "github.com/Luisasdasdsad/INVENTARIOS-sub000/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	List() ([]*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
}
