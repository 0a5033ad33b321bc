package entity

import "github.com/shopspring/decimal"

// CarritoItem es una línea del carrito de sesión. No se persiste en la base de
// datos: vive en el CartStore hasta el checkout (donde se convierte en
// DetalleVenta) o hasta que la sesión expira.
type CarritoItem struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}
