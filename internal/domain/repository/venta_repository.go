package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para Venta y sus detalles.
type VentaRepository interface {
	Create(venta *entity.Venta) error
	CreateDetalle(detalle *entity.DetalleVenta) error
	GetByID(id string) (*entity.Venta, error)
	GetDetallesByVentaID(ventaID string) ([]*entity.DetalleVenta, error)
	GetDetalleByID(id string) (*entity.DetalleVenta, error)
	// UpdateTotales reescribe el desglose financiero de la venta tras editar detalles.
	UpdateTotales(ventaID string, subtotal, descuento, impuesto, total decimal.Decimal) error
	UpdateDetalleCantidad(detalleID string, cantidad int) error
	DeleteDetalle(detalleID string) error
	List(limit, offset int) ([]*entity.Venta, error)
}
