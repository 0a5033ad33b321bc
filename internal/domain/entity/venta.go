package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venta representa la cabecera de una venta registrada en el checkout.
// Invariante: Total = Subtotal - Descuento + Impuesto, con Subtotal igual a la
// suma de Cantidad × PrecioUnitario de sus detalles.
type Venta struct {
	ID                  string
	ClienteID           string // vacío si la venta es anónima
	Fecha               time.Time
	Subtotal            decimal.Decimal // suma de líneas sin descuento ni impuesto
	DescuentoPorcentaje decimal.Decimal // porcentaje aplicado [0,100]; se guarda para recalcular
	Descuento           decimal.Decimal // monto de descuento aplicado
	Impuesto            decimal.Decimal // IVA calculado sobre (Subtotal - Descuento)
	Total               decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DetalleVenta representa una línea de una venta. PrecioUnitario es el precio
// capturado al momento de la venta, independiente de cambios posteriores del producto.
type DetalleVenta struct {
	ID             string
	VentaID        string
	ProductoID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Subtotal devuelve Cantidad × PrecioUnitario redondeado a 2 decimales.
func (d *DetalleVenta) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(int64(d.Cantidad)).Mul(d.PrecioUnitario).Round(2)
}
