// Package ventas contiene los casos de uso de venta: checkout del carrito,
// edición de detalles con reposición de stock y consultas.
package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/carrito"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/domain/venta"
)

// CheckoutUseCase convierte el carrito de la sesión en una venta persistida.
// Todo ocurre en una transacción: bloqueo de fila por producto (SELECT FOR
// UPDATE), verificación de stock, descuento y escritura de venta + detalles.
// Si cualquier línea falla, nada queda escrito y el carrito se conserva.
type CheckoutUseCase struct {
	txRunner    TxRunner
	store       carrito.CartStore
	clienteRepo repository.ClienteRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(txRunner TxRunner, store carrito.CartStore, clienteRepo repository.ClienteRepository) *CheckoutUseCase {
	return &CheckoutUseCase{txRunner: txRunner, store: store, clienteRepo: clienteRepo}
}

// Checkout ejecuta la compra del carrito de la sesión. El cliente es opcional
// (venta anónima); el descuento es un porcentaje sobre el subtotal.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, sessionID string, in dto.CheckoutRequest) (*dto.VentaResponse, error) {
	items := uc.store.Get(sessionID)
	if len(items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ClienteID != "" {
		cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, domain.ErrNotFound
		}
	}

	lineas := make([]venta.Linea, 0, len(items))
	for _, it := range items {
		lineas = append(lineas, venta.Linea{Cantidad: it.Cantidad, PrecioUnitario: it.PrecioUnitario})
	}
	tot, err := venta.CalcularTotales(lineas, in.DescuentoPorcentaje)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	nueva := &entity.Venta{
		ID:                  uuid.New().String(),
		ClienteID:           in.ClienteID,
		Fecha:               now,
		Subtotal:            tot.Subtotal,
		DescuentoPorcentaje: in.DescuentoPorcentaje,
		Descuento:           tot.Descuento,
		Impuesto:            tot.Impuesto,
		Total:               tot.Total,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	detalles := make([]*entity.DetalleVenta, 0, len(items))

	err = uc.txRunner.Run(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		for _, it := range items {
			// Bloquea la fila del producto para serializar checkouts concurrentes
			producto, err := productoRepo.GetForUpdate(it.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}
			if producto.Stock < it.Cantidad {
				return domain.ErrInsufficientStock
			}
			if err := productoRepo.UpdateStock(producto.ID, producto.Stock-it.Cantidad); err != nil {
				return err
			}
		}
		if err := ventaRepo.Create(nueva); err != nil {
			return err
		}
		for _, it := range items {
			detalle := &entity.DetalleVenta{
				ID:             uuid.New().String(),
				VentaID:        nueva.ID,
				ProductoID:     it.ProductoID,
				Cantidad:       it.Cantidad,
				PrecioUnitario: it.PrecioUnitario,
			}
			if err := ventaRepo.CreateDetalle(detalle); err != nil {
				return err
			}
			detalles = append(detalles, detalle)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Solo después del commit: el carrito se conserva si la venta falló
	uc.store.Clear(sessionID)

	return toVentaResponse(nueva, detalles), nil
}

func toVentaResponse(v *entity.Venta, detalles []*entity.DetalleVenta) *dto.VentaResponse {
	if v == nil {
		return nil
	}
	resp := &dto.VentaResponse{
		ID:                  v.ID,
		ClienteID:           v.ClienteID,
		Fecha:               v.Fecha,
		Subtotal:            v.Subtotal,
		DescuentoPorcentaje: v.DescuentoPorcentaje,
		Descuento:           v.Descuento,
		Impuesto:            v.Impuesto,
		Total:               v.Total,
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, toDetalleResponse(d))
	}
	return resp
}

func toDetalleResponse(d *entity.DetalleVenta) dto.DetalleVentaResponse {
	return dto.DetalleVentaResponse{
		ID:             d.ID,
		ProductoID:     d.ProductoID,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		Subtotal:       d.Subtotal(),
	}
}
