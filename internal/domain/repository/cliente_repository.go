package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id string) (*entity.Cliente, error)
	GetByEmail(email string) (*entity.Cliente, error)
	Update(cliente *entity.Cliente) error
	List(limit, offset int) ([]*entity.Cliente, error)
	Delete(id string) error
}
