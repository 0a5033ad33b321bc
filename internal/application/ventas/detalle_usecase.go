package ventas

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/domain/venta"
)

// DetalleUseCase edita los detalles de una venta ya registrada: agregar línea,
// cambiar cantidad y eliminar. Cada operación corre en una transacción que
// mueve el stock por el delta y recalcula los totales de la venta con el
// porcentaje de descuento guardado.
type DetalleUseCase struct {
	txRunner TxRunner
}

// NewDetalleUseCase construye el caso de uso.
func NewDetalleUseCase(txRunner TxRunner) *DetalleUseCase {
	return &DetalleUseCase{txRunner: txRunner}
}

// Agregar añade una línea a la venta descontando stock. Si la venta ya tiene
// una línea del mismo producto, la cantidad se acumula sobre esa línea
// conservando el precio capturado.
func (uc *DetalleUseCase) Agregar(ctx context.Context, ventaID string, in dto.AgregarDetalleRequest) (*dto.VentaResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.VentaResponse
	err := uc.txRunner.Run(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		v, err := ventaRepo.GetByID(ventaID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		producto, err := productoRepo.GetForUpdate(in.ProductoID)
		if err != nil {
			return err
		}
		if producto == nil {
			return domain.ErrNotFound
		}
		if producto.Stock < in.Cantidad {
			return domain.ErrInsufficientStock
		}
		if err := productoRepo.UpdateStock(producto.ID, producto.Stock-in.Cantidad); err != nil {
			return err
		}

		detalles, err := ventaRepo.GetDetallesByVentaID(ventaID)
		if err != nil {
			return err
		}
		existente := -1
		for i, d := range detalles {
			if d.ProductoID == in.ProductoID {
				existente = i
				break
			}
		}
		if existente >= 0 {
			detalles[existente].Cantidad += in.Cantidad
			if err := ventaRepo.UpdateDetalleCantidad(detalles[existente].ID, detalles[existente].Cantidad); err != nil {
				return err
			}
		} else {
			nuevo := &entity.DetalleVenta{
				ID:             uuid.New().String(),
				VentaID:        ventaID,
				ProductoID:     in.ProductoID,
				Cantidad:       in.Cantidad,
				PrecioUnitario: producto.Precio,
			}
			if err := ventaRepo.CreateDetalle(nuevo); err != nil {
				return err
			}
			detalles = append(detalles, nuevo)
		}

		resp, err = recalcular(ventaRepo, v, detalles)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ActualizarCantidad cambia la cantidad de una línea. El stock se mueve solo
// por el delta: subir de 2 a 5 descuenta 3, bajar de 5 a 2 repone 3.
func (uc *DetalleUseCase) ActualizarCantidad(ctx context.Context, ventaID, detalleID string, in dto.UpdateDetalleRequest) (*dto.VentaResponse, error) {
	if in.Cantidad <= 0 {
		return nil, domain.ErrInvalidInput
	}
	var resp *dto.VentaResponse
	err := uc.txRunner.Run(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		v, err := ventaRepo.GetByID(ventaID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		detalle, err := ventaRepo.GetDetalleByID(detalleID)
		if err != nil {
			return err
		}
		if detalle == nil || detalle.VentaID != ventaID {
			return domain.ErrNotFound
		}

		delta := in.Cantidad - detalle.Cantidad
		if delta != 0 {
			producto, err := productoRepo.GetForUpdate(detalle.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}
			if delta > 0 && producto.Stock < delta {
				return domain.ErrInsufficientStock
			}
			if err := productoRepo.UpdateStock(producto.ID, producto.Stock-delta); err != nil {
				return err
			}
		}
		if err := ventaRepo.UpdateDetalleCantidad(detalleID, in.Cantidad); err != nil {
			return err
		}

		detalles, err := ventaRepo.GetDetallesByVentaID(ventaID)
		if err != nil {
			return err
		}
		resp, err = recalcular(ventaRepo, v, detalles)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Eliminar quita una línea de la venta reponiendo su cantidad completa al stock.
func (uc *DetalleUseCase) Eliminar(ctx context.Context, ventaID, detalleID string) (*dto.VentaResponse, error) {
	var resp *dto.VentaResponse
	err := uc.txRunner.Run(ctx, func(ventaRepo repository.VentaRepository, productoRepo repository.ProductoRepository) error {
		v, err := ventaRepo.GetByID(ventaID)
		if err != nil {
			return err
		}
		if v == nil {
			return domain.ErrNotFound
		}
		detalle, err := ventaRepo.GetDetalleByID(detalleID)
		if err != nil {
			return err
		}
		if detalle == nil || detalle.VentaID != ventaID {
			return domain.ErrNotFound
		}

		producto, err := productoRepo.GetForUpdate(detalle.ProductoID)
		if err != nil {
			return err
		}
		if producto != nil {
			if err := productoRepo.UpdateStock(producto.ID, producto.Stock+detalle.Cantidad); err != nil {
				return err
			}
		}
		if err := ventaRepo.DeleteDetalle(detalleID); err != nil {
			return err
		}

		detalles, err := ventaRepo.GetDetallesByVentaID(ventaID)
		if err != nil {
			return err
		}
		resp, err = recalcular(ventaRepo, v, detalles)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// recalcular recalcula los totales de la venta con el porcentaje guardado y
// los persiste. Devuelve la venta actualizada.
func recalcular(ventaRepo repository.VentaRepository, v *entity.Venta, detalles []*entity.DetalleVenta) (*dto.VentaResponse, error) {
	lineas := make([]venta.Linea, 0, len(detalles))
	for _, d := range detalles {
		lineas = append(lineas, venta.Linea{Cantidad: d.Cantidad, PrecioUnitario: d.PrecioUnitario})
	}
	tot, err := venta.CalcularTotales(lineas, v.DescuentoPorcentaje)
	if err != nil {
		return nil, err
	}
	if err := ventaRepo.UpdateTotales(v.ID, tot.Subtotal, tot.Descuento, tot.Impuesto, tot.Total); err != nil {
		return nil, err
	}
	v.Subtotal = tot.Subtotal
	v.Descuento = tot.Descuento
	v.Impuesto = tot.Impuesto
	v.Total = tot.Total
	v.UpdatedAt = time.Now()
	return toVentaResponse(v, detalles), nil
}
