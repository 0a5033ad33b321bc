package ventas_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/ventas"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ---- fakes ----

type fakeState struct {
	productos map[string]*entity.Producto
	ventas    map[string]*entity.Venta
	detalles  map[string]*entity.DetalleVenta
}

func (s *fakeState) clone() *fakeState {
	c := &fakeState{
		productos: make(map[string]*entity.Producto, len(s.productos)),
		ventas:    make(map[string]*entity.Venta, len(s.ventas)),
		detalles:  make(map[string]*entity.DetalleVenta, len(s.detalles)),
	}
	for k, v := range s.productos {
		cp := *v
		c.productos[k] = &cp
	}
	for k, v := range s.ventas {
		cp := *v
		c.ventas[k] = &cp
	}
	for k, v := range s.detalles {
		cp := *v
		c.detalles[k] = &cp
	}
	return c
}

type fakeProductoRepo struct{ st *fakeState }

func (r *fakeProductoRepo) Create(p *entity.Producto) error { r.st.productos[p.ID] = p; return nil }
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.st.productos[id], nil
}
func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.st.productos[id], nil
}
func (r *fakeProductoRepo) Update(p *entity.Producto) error { r.st.productos[p.ID] = p; return nil }
func (r *fakeProductoRepo) UpdateStock(id string, stock int) error {
	r.st.productos[id].Stock = stock
	return nil
}
func (r *fakeProductoRepo) List(string, string, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *fakeProductoRepo) CountByCategoria(string) (int, error) { return 0, nil }
func (r *fakeProductoRepo) Delete(id string) error               { delete(r.st.productos, id); return nil }

type fakeVentaRepo struct{ st *fakeState }

func (r *fakeVentaRepo) Create(v *entity.Venta) error { r.st.ventas[v.ID] = v; return nil }
func (r *fakeVentaRepo) CreateDetalle(d *entity.DetalleVenta) error {
	r.st.detalles[d.ID] = d
	return nil
}
func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) { return r.st.ventas[id], nil }
func (r *fakeVentaRepo) GetDetallesByVentaID(ventaID string) ([]*entity.DetalleVenta, error) {
	var out []*entity.DetalleVenta
	for _, d := range r.st.detalles {
		if d.VentaID == ventaID {
			out = append(out, d)
		}
	}
	return out, nil
}
func (r *fakeVentaRepo) GetDetalleByID(id string) (*entity.DetalleVenta, error) {
	return r.st.detalles[id], nil
}
func (r *fakeVentaRepo) UpdateTotales(ventaID string, subtotal, descuento, impuesto, total decimal.Decimal) error {
	v := r.st.ventas[ventaID]
	v.Subtotal, v.Descuento, v.Impuesto, v.Total = subtotal, descuento, impuesto, total
	return nil
}
func (r *fakeVentaRepo) UpdateDetalleCantidad(detalleID string, cantidad int) error {
	r.st.detalles[detalleID].Cantidad = cantidad
	return nil
}
func (r *fakeVentaRepo) DeleteDetalle(detalleID string) error {
	delete(r.st.detalles, detalleID)
	return nil
}
func (r *fakeVentaRepo) List(int, int) ([]*entity.Venta, error) { return nil, nil }

// fakeTxRunner simula Commit/Rollback: si fn falla, restaura el estado previo.
type fakeTxRunner struct{ st *fakeState }

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.VentaRepository, repository.ProductoRepository) error) error {
	backup := r.st.clone()
	if err := fn(&fakeVentaRepo{st: r.st}, &fakeProductoRepo{st: r.st}); err != nil {
		*r.st = *backup
		return err
	}
	return nil
}

type fakeStore struct{ data map[string][]entity.CarritoItem }

func (s *fakeStore) Get(sessionID string) []entity.CarritoItem { return s.data[sessionID] }
func (s *fakeStore) Put(sessionID string, items []entity.CarritoItem) {
	s.data[sessionID] = items
}
func (s *fakeStore) Clear(sessionID string) { delete(s.data, sessionID) }

type fakeClienteRepo struct{ clientes map[string]*entity.Cliente }

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}
func (r *fakeClienteRepo) GetByEmail(string) (*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(*entity.Cliente) error               { return nil }
func (r *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error)   { return nil, nil }
func (r *fakeClienteRepo) Delete(string) error                        { return nil }

func nuevoEstado() *fakeState {
	return &fakeState{
		productos: map[string]*entity.Producto{
			"p1": {ID: "p1", Nombre: "Camisa", Precio: decimal.NewFromInt(15000), Stock: 10},
			"p2": {ID: "p2", Nombre: "Pantalón", Precio: decimal.NewFromInt(25000), Stock: 3},
		},
		ventas:   make(map[string]*entity.Venta),
		detalles: make(map[string]*entity.DetalleVenta),
	}
}

func carritoDeEjemplo() []entity.CarritoItem {
	return []entity.CarritoItem{
		{ProductoID: "p1", Nombre: "Camisa", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(15000)},
		{ProductoID: "p2", Nombre: "Pantalón", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(25000)},
	}
}

// ---- tests ----

func TestCheckout_DescuentaStockYPersisteVenta(t *testing.T) {
	st := nuevoEstado()
	store := &fakeStore{data: map[string][]entity.CarritoItem{"s1": carritoDeEjemplo()}}
	uc := ventas.NewCheckoutUseCase(&fakeTxRunner{st: st}, store, &fakeClienteRepo{})

	resp, err := uc.Checkout(context.Background(), "s1", dto.CheckoutRequest{
		DescuentoPorcentaje: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, decimal.NewFromInt(55000).Equal(resp.Subtotal), "subtotal: %s", resp.Subtotal)
	assert.True(t, decimal.NewFromInt(5500).Equal(resp.Descuento), "descuento: %s", resp.Descuento)
	assert.True(t, decimal.NewFromInt(6435).Equal(resp.Impuesto), "impuesto: %s", resp.Impuesto)
	assert.True(t, decimal.NewFromInt(55935).Equal(resp.Total), "total: %s", resp.Total)
	assert.Len(t, resp.Detalles, 2)

	assert.Equal(t, 8, st.productos["p1"].Stock)
	assert.Equal(t, 2, st.productos["p2"].Stock)
	assert.Len(t, st.ventas, 1)
	assert.Len(t, st.detalles, 2)

	assert.Empty(t, store.data["s1"], "el carrito se vacía tras el commit")
}

// Si una línea no alcanza stock, nada queda escrito: ni stock movido, ni venta,
// ni detalles, y el carrito se conserva.
func TestCheckout_StockInsuficienteRevierteTodo(t *testing.T) {
	st := nuevoEstado()
	items := carritoDeEjemplo()
	items[1].Cantidad = 5 // p2 solo tiene 3
	store := &fakeStore{data: map[string][]entity.CarritoItem{"s1": items}}
	uc := ventas.NewCheckoutUseCase(&fakeTxRunner{st: st}, store, &fakeClienteRepo{})

	_, err := uc.Checkout(context.Background(), "s1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.Equal(t, 10, st.productos["p1"].Stock, "el descuento de p1 se revierte")
	assert.Equal(t, 3, st.productos["p2"].Stock)
	assert.Empty(t, st.ventas)
	assert.Empty(t, st.detalles)
	assert.Len(t, store.data["s1"], 2, "el carrito se conserva")
}

func TestCheckout_CarritoVacio(t *testing.T) {
	uc := ventas.NewCheckoutUseCase(&fakeTxRunner{st: nuevoEstado()}, &fakeStore{data: map[string][]entity.CarritoItem{}}, &fakeClienteRepo{})

	_, err := uc.Checkout(context.Background(), "s1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_ClienteInexistente(t *testing.T) {
	store := &fakeStore{data: map[string][]entity.CarritoItem{"s1": carritoDeEjemplo()}}
	uc := ventas.NewCheckoutUseCase(&fakeTxRunner{st: nuevoEstado()}, store, &fakeClienteRepo{clientes: map[string]*entity.Cliente{}})

	_, err := uc.Checkout(context.Background(), "s1", dto.CheckoutRequest{ClienteID: "nope"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, store.data["s1"], 2)
}

func TestCheckout_DescuentoFueraDeRango(t *testing.T) {
	store := &fakeStore{data: map[string][]entity.CarritoItem{"s1": carritoDeEjemplo()}}
	uc := ventas.NewCheckoutUseCase(&fakeTxRunner{st: nuevoEstado()}, store, &fakeClienteRepo{})

	_, err := uc.Checkout(context.Background(), "s1", dto.CheckoutRequest{
		DescuentoPorcentaje: decimal.NewFromInt(101),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
