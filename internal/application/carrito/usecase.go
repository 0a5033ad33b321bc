// Package carrito contiene los casos de uso del carrito de compras de sesión.
package carrito

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/internal/domain/venta"
)

// UseCase casos de uso del carrito. Valida disponibilidad contra el stock
// vigente al agregar, pero la reserva real ocurre solo en el checkout.
type UseCase struct {
	store        CartStore
	productoRepo repository.ProductoRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(store CartStore, productoRepo repository.ProductoRepository) *UseCase {
	return &UseCase{store: store, productoRepo: productoRepo}
}

// Agregar suma cantidad unidades del producto al carrito. Si la cantidad
// acumulada excede el stock vigente la operación se rechaza completa (no se
// agrega una cantidad parcial).
func (uc *UseCase) Agregar(sessionID string, in dto.AgregarProductoRequest) (*dto.CarritoOpResponse, error) {
	if in.Cantidad <= 0 {
		return rechazo(uc.totalItems(sessionID), "La cantidad debe ser mayor que cero"), nil
	}
	producto, err := uc.productoRepo.GetByID(in.ProductoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return rechazo(uc.totalItems(sessionID), "Producto no encontrado"), nil
	}

	items := uc.store.Get(sessionID)
	enCarrito := 0
	idx := -1
	for i, it := range items {
		if it.ProductoID == in.ProductoID {
			enCarrito = it.Cantidad
			idx = i
			break
		}
	}
	if enCarrito+in.Cantidad > producto.Stock {
		msg := fmt.Sprintf("Stock insuficiente para %s: disponibles %d", producto.Nombre, producto.Stock)
		return rechazo(contarItems(items), msg), nil
	}

	if idx >= 0 {
		items[idx].Cantidad += in.Cantidad
		items[idx].PrecioUnitario = producto.Precio // refresca el precio vigente
	} else {
		items = append(items, entity.CarritoItem{
			ProductoID:     producto.ID,
			Nombre:         producto.Nombre,
			Cantidad:       in.Cantidad,
			PrecioUnitario: producto.Precio,
		})
	}
	uc.store.Put(sessionID, items)
	return &dto.CarritoOpResponse{
		Success:    true,
		Message:    fmt.Sprintf("%s agregado al carrito", producto.Nombre),
		TotalItems: contarItems(items),
	}, nil
}

// Quitar resta cantidad unidades del producto; si llega a cero la línea se elimina.
func (uc *UseCase) Quitar(sessionID string, in dto.AgregarProductoRequest) (*dto.CarritoOpResponse, error) {
	items := uc.store.Get(sessionID)
	idx := -1
	for i, it := range items {
		if it.ProductoID == in.ProductoID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return rechazo(contarItems(items), "El producto no está en el carrito"), nil
	}
	items[idx].Cantidad -= in.Cantidad
	if items[idx].Cantidad <= 0 {
		items = append(items[:idx], items[idx+1:]...)
	}
	uc.store.Put(sessionID, items)
	return &dto.CarritoOpResponse{
		Success:    true,
		Message:    "Carrito actualizado",
		TotalItems: contarItems(items),
	}, nil
}

// Eliminar quita la línea completa del producto, sin importar la cantidad.
func (uc *UseCase) Eliminar(sessionID, productoID string) (*dto.CarritoOpResponse, error) {
	items := uc.store.Get(sessionID)
	for i, it := range items {
		if it.ProductoID == productoID {
			items = append(items[:i], items[i+1:]...)
			uc.store.Put(sessionID, items)
			return &dto.CarritoOpResponse{
				Success:    true,
				Message:    "Producto eliminado del carrito",
				TotalItems: contarItems(items),
			}, nil
		}
	}
	return rechazo(contarItems(items), "El producto no está en el carrito"), nil
}

// Ver devuelve el contenido del carrito con el desglose de totales vigente.
// El descuento es un preview: el definitivo se aplica en el checkout.
func (uc *UseCase) Ver(sessionID string, descuentoPorcentaje decimal.Decimal) (*dto.CarritoResponse, error) {
	items := uc.store.Get(sessionID)
	lineas := make([]venta.Linea, 0, len(items))
	for _, it := range items {
		lineas = append(lineas, venta.Linea{Cantidad: it.Cantidad, PrecioUnitario: it.PrecioUnitario})
	}
	tot, err := venta.CalcularTotales(lineas, descuentoPorcentaje)
	if err != nil {
		return nil, err
	}
	resp := &dto.CarritoResponse{
		Items:      make([]dto.CarritoItemResponse, 0, len(items)),
		TotalItems: contarItems(items),
		Totales: dto.TotalesResponse{
			Subtotal:  tot.Subtotal,
			Descuento: tot.Descuento,
			Impuesto:  tot.Impuesto,
			Total:     tot.Total,
		},
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.CarritoItemResponse{
			ProductoID:     it.ProductoID,
			Nombre:         it.Nombre,
			Cantidad:       it.Cantidad,
			PrecioUnitario: it.PrecioUnitario,
			Subtotal:       decimal.NewFromInt(int64(it.Cantidad)).Mul(it.PrecioUnitario).Round(2),
		})
	}
	return resp, nil
}

// Vaciar elimina todas las líneas del carrito.
func (uc *UseCase) Vaciar(sessionID string) *dto.CarritoOpResponse {
	uc.store.Clear(sessionID)
	return &dto.CarritoOpResponse{Success: true, Message: "Carrito vacío", TotalItems: 0}
}

func (uc *UseCase) totalItems(sessionID string) int {
	return contarItems(uc.store.Get(sessionID))
}

func contarItems(items []entity.CarritoItem) int {
	total := 0
	for _, it := range items {
		total += it.Cantidad
	}
	return total
}

func rechazo(totalItems int, msg string) *dto.CarritoOpResponse {
	return &dto.CarritoOpResponse{Success: false, Message: msg, TotalItems: totalItems}
}
