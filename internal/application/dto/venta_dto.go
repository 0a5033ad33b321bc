package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CheckoutRequest body para POST /api/checkout. El contenido sale del carrito
// de la sesión; aquí solo viajan el cliente (opcional) y el descuento.
type CheckoutRequest struct {
	ClienteID           string          `json:"cliente_id,omitempty"`
	DescuentoPorcentaje decimal.Decimal `json:"descuento_porcentaje"`
}

// AgregarDetalleRequest body para agregar una línea a una venta existente.
type AgregarDetalleRequest struct {
	ProductoID string `json:"producto_id" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
}

// UpdateDetalleRequest body para cambiar la cantidad de una línea.
type UpdateDetalleRequest struct {
	Cantidad int `json:"cantidad" validate:"required,min=1"`
}

// DetalleVentaResponse línea de venta en respuestas.
type DetalleVentaResponse struct {
	ID             string          `json:"id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse venta con desglose y detalles para GET /api/ventas/:id.
type VentaResponse struct {
	ID                  string                 `json:"id"`
	ClienteID           string                 `json:"cliente_id,omitempty"`
	Fecha               time.Time              `json:"fecha"`
	Subtotal            decimal.Decimal        `json:"subtotal"`
	DescuentoPorcentaje decimal.Decimal        `json:"descuento_porcentaje"`
	Descuento           decimal.Decimal        `json:"descuento"`
	Impuesto            decimal.Decimal        `json:"impuesto"`
	Total               decimal.Decimal        `json:"total"`
	Detalles            []DetalleVentaResponse `json:"detalles,omitempty"`
}

// VentaListResponse lista paginada de ventas.
type VentaListResponse struct {
	Items []VentaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
