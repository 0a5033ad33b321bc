package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un artículo del catálogo de la tienda.
// Stock es la existencia única del producto (tienda de una sola bodega);
// se descuenta/repone en lockstep con los detalles de venta, nunca negativo tras commit.
type Producto struct {
	ID          string
	Nombre      string
	Talla       string // vacío si no aplica
	Color       string
	Precio      decimal.Decimal // precio de venta, 2 decimales
	Stock       int
	CategoriaID string // vacío si no tiene categoría
	ImagenPath  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
