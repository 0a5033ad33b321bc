package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductoRequest entrada para crear un producto.
type CreateProductoRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=1,max=200"`
	Talla       string          `json:"talla"`
	Color       string          `json:"color"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock" validate:"min=0"`
	CategoriaID string          `json:"categoria_id,omitempty"`
	ImagenPath  string          `json:"imagen_path,omitempty"`
}

// UpdateProductoRequest entrada para actualizar un producto. El stock no se
// toca aquí: lo mueven el checkout y las ediciones de detalle.
type UpdateProductoRequest struct {
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=200"`
	Talla       *string          `json:"talla"`
	Color       *string          `json:"color"`
	Precio      *decimal.Decimal `json:"precio"`
	CategoriaID *string          `json:"categoria_id"`
	ImagenPath  *string          `json:"imagen_path"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Nombre      string          `json:"nombre"`
	Talla       string          `json:"talla"`
	Color       string          `json:"color"`
	Precio      decimal.Decimal `json:"precio"`
	Stock       int             `json:"stock"`
	CategoriaID string          `json:"categoria_id,omitempty"`
	ImagenPath  string          `json:"imagen_path,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductoListResponse lista paginada de productos.
type ProductoListResponse struct {
	Items []ProductoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ListProductosRequest filtros del catálogo: búsqueda por nombre y categoría.
type ListProductosRequest struct {
	Q           string `query:"q"`
	CategoriaID string `query:"categoria_id"`
	PageRequest
}
