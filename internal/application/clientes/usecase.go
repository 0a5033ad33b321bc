// Package clientes contiene los casos de uso de administración de clientes.
package clientes

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase casos de uso CRUD para clientes.
type UseCase struct {
	repo repository.ClienteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ClienteRepository) *UseCase {
	return &UseCase{repo: repo}
}

// Create crea un cliente. El email es único.
func (uc *UseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.Nombre == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Email:     in.Email,
		Telefono:  in.Telefono,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetByID obtiene un cliente por ID.
func (uc *UseCase) GetByID(id string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	return toClienteResponse(cliente), nil
}

// Update actualiza un cliente existente.
func (uc *UseCase) Update(id string, in dto.UpdateClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		cliente.Nombre = *in.Nombre
	}
	if in.Email != nil && *in.Email != cliente.Email {
		existing, _ := uc.repo.GetByEmail(*in.Email)
		if existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		cliente.Email = *in.Email
	}
	if in.Telefono != nil {
		cliente.Telefono = *in.Telefono
	}
	if in.Direccion != nil {
		cliente.Direccion = *in.Direccion
	}
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List lista clientes con paginación.
func (uc *UseCase) List(page dto.PageRequest) ([]dto.ClienteResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toClienteResponse(c))
	}
	return items, nil
}

// Delete elimina un cliente por ID.
func (uc *UseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	if c == nil {
		return nil
	}
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
