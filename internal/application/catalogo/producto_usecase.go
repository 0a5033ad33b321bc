// Package catalogo contiene los casos de uso del catálogo de la tienda:
// productos y categorías.
package catalogo

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El stock se mueve solo en
// checkout y ediciones de detalle, nunca desde aquí.
type ProductoUseCase struct {
	repo          repository.ProductoRepository
	categoriaRepo repository.CategoriaRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository, categoriaRepo repository.CategoriaRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo, categoriaRepo: categoriaRepo}
}

// Create crea un nuevo producto. La categoría es opcional; si viene debe existir.
func (uc *ProductoUseCase) Create(in dto.CreateProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Precio.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoriaID != "" {
		cat, err := uc.categoriaRepo.GetByID(in.CategoriaID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	producto := &entity.Producto{
		ID:          uuid.New().String(),
		Nombre:      in.Nombre,
		Talla:       in.Talla,
		Color:       in.Color,
		Precio:      in.Precio,
		Stock:       in.Stock,
		CategoriaID: in.CategoriaID,
		ImagenPath:  in.ImagenPath,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductoUseCase) GetByID(id string) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	return toProductoResponse(producto), nil
}

// Update actualiza un producto. No permite modificar el stock.
func (uc *ProductoUseCase) Update(id string, in dto.UpdateProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		if *in.Nombre == "" {
			return nil, domain.ErrInvalidInput
		}
		producto.Nombre = *in.Nombre
	}
	if in.Talla != nil {
		producto.Talla = *in.Talla
	}
	if in.Color != nil {
		producto.Color = *in.Color
	}
	if in.Precio != nil {
		if in.Precio.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		producto.Precio = *in.Precio
	}
	if in.CategoriaID != nil {
		if *in.CategoriaID != "" {
			cat, err := uc.categoriaRepo.GetByID(*in.CategoriaID)
			if err != nil {
				return nil, err
			}
			if cat == nil {
				return nil, domain.ErrNotFound
			}
		}
		producto.CategoriaID = *in.CategoriaID
	}
	if in.ImagenPath != nil {
		producto.ImagenPath = *in.ImagenPath
	}
	producto.UpdatedAt = time.Now()
	if err := uc.repo.Update(producto); err != nil {
		return nil, err
	}
	return toProductoResponse(producto), nil
}

// List lista el catálogo con búsqueda por nombre y filtro por categoría.
func (uc *ProductoUseCase) List(in dto.ListProductosRequest) (*dto.ProductoListResponse, error) {
	in.DefaultPage()
	list, err := uc.repo.List(in.Q, in.CategoriaID, in.Limit, in.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ProductoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductoUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID,
		Nombre:      p.Nombre,
		Talla:       p.Talla,
		Color:       p.Color,
		Precio:      p.Precio,
		Stock:       p.Stock,
		CategoriaID: p.CategoriaID,
		ImagenPath:  p.ImagenPath,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
