package dto

import "github.com/shopspring/decimal"

// AgregarProductoRequest body para agregar o quitar unidades del carrito.
type AgregarProductoRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
}

// CarritoOpResponse resultado de una mutación del carrito. TotalItems es la
// suma de cantidades tras la operación (para el contador del header).
type CarritoOpResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	TotalItems int    `json:"total_items"`
}

// CarritoItemResponse línea del carrito en respuestas.
type CarritoItemResponse struct {
	ProductoID     string          `json:"producto_id"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// CarritoResponse contenido del carrito con el desglose de totales vigente.
type CarritoResponse struct {
	Items      []CarritoItemResponse `json:"items"`
	TotalItems int                   `json:"total_items"`
	Totales    TotalesResponse       `json:"totales"`
}

// TotalesResponse desglose financiero (carrito o venta).
type TotalesResponse struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	Descuento decimal.Decimal `json:"descuento"`
	Impuesto  decimal.Decimal `json:"impuesto"`
	Total     decimal.Decimal `json:"total"`
}
