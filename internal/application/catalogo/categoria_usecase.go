package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoriaUseCase casos de uso CRUD para categorías.
type CategoriaUseCase struct {
	repo         repository.CategoriaRepository
	productoRepo repository.ProductoRepository
}

// NewCategoriaUseCase construye el caso de uso.
func NewCategoriaUseCase(repo repository.CategoriaRepository, productoRepo repository.ProductoRepository) *CategoriaUseCase {
	return &CategoriaUseCase{repo: repo, productoRepo: productoRepo}
}

// Create crea una categoría. Devuelve ErrDuplicate si el nombre ya existe.
func (uc *CategoriaUseCase) Create(in dto.CreateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	categoria := &entity.Categoria{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoriaUseCase) GetByID(id string) (*dto.CategoriaResponse, error) {
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	return toCategoriaResponse(categoria), nil
}

// Update renombra una categoría.
func (uc *CategoriaUseCase) Update(id string, in dto.UpdateCategoriaRequest) (*dto.CategoriaResponse, error) {
	if in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	categoria, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if categoria == nil {
		return nil, nil
	}
	categoria.Nombre = in.Nombre
	categoria.UpdatedAt = time.Now()
	if err := uc.repo.Update(categoria); err != nil {
		return nil, err
	}
	return toCategoriaResponse(categoria), nil
}

// List lista categorías con paginación.
func (uc *CategoriaUseCase) List(page dto.PageRequest) ([]dto.CategoriaResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoriaResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoriaResponse(c))
	}
	return items, nil
}

// Delete elimina una categoría. Si tiene productos asociados devuelve
// ErrCategoryInUse y no borra nada.
func (uc *CategoriaUseCase) Delete(id string) error {
	count, err := uc.productoRepo.CountByCategoria(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}
	return uc.repo.Delete(id)
}

func toCategoriaResponse(c *entity.Categoria) *dto.CategoriaResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoriaResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
