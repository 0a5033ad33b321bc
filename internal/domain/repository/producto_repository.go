package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	Create(producto *entity.Producto) error
	GetByID(id string) (*entity.Producto, error)
	// GetForUpdate lee el producto con bloqueo de fila (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción.
	GetForUpdate(id string) (*entity.Producto, error)
	Update(producto *entity.Producto) error
	// UpdateStock fija el stock absoluto del producto (usado tras validar bajo bloqueo).
	UpdateStock(id string, stock int) error
	// List pagina el catálogo. q filtra por nombre (vacío = sin filtro),
	// categoriaID filtra por categoría (vacío = todas).
	List(q, categoriaID string, limit, offset int) ([]*entity.Producto, error)
	CountByCategoria(categoriaID string) (int, error)
	Delete(id string) error
}
