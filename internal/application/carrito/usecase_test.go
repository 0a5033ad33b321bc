package carrito_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/carrito"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// fakeStore implementación en memoria del CartStore para tests.
type fakeStore struct {
	data map[string][]entity.CarritoItem
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string][]entity.CarritoItem)}
}

func (s *fakeStore) Get(sessionID string) []entity.CarritoItem { return s.data[sessionID] }
func (s *fakeStore) Put(sessionID string, items []entity.CarritoItem) {
	s.data[sessionID] = items
}
func (s *fakeStore) Clear(sessionID string) { delete(s.data, sessionID) }

// fakeProductoRepo solo implementa GetByID; el resto no se usa en el carrito.
type fakeProductoRepo struct {
	productos map[string]*entity.Producto
}

func (r *fakeProductoRepo) Create(*entity.Producto) error        { return nil }
func (r *fakeProductoRepo) Update(*entity.Producto) error        { return nil }
func (r *fakeProductoRepo) UpdateStock(string, int) error        { return nil }
func (r *fakeProductoRepo) Delete(string) error                  { return nil }
func (r *fakeProductoRepo) CountByCategoria(string) (int, error) { return 0, nil }
func (r *fakeProductoRepo) List(string, string, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}
func (r *fakeProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.productos[id], nil
}

func buildUseCase() (*carrito.UseCase, *fakeStore, *fakeProductoRepo) {
	store := newFakeStore()
	repo := &fakeProductoRepo{productos: map[string]*entity.Producto{
		"p1": {ID: "p1", Nombre: "Camisa", Precio: decimal.NewFromInt(15000), Stock: 10},
		"p2": {ID: "p2", Nombre: "Pantalón", Precio: decimal.NewFromInt(25000), Stock: 3},
	}}
	return carrito.NewUseCase(store, repo), store, repo
}

func TestAgregar_AcumulaCantidadYTotalItems(t *testing.T) {
	uc, _, _ := buildUseCase()

	resp, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TotalItems)

	resp, err = uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 3})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 5, resp.TotalItems)

	vista, err := uc.Ver("s1", decimal.Zero)
	require.NoError(t, err)
	require.Len(t, vista.Items, 1, "misma línea, no dos")
	assert.Equal(t, 5, vista.Items[0].Cantidad)
}

// Pedir 5 con stock 3 se rechaza completo: nada parcial entra al carrito.
func TestAgregar_RechazaPorStockInsuficiente(t *testing.T) {
	uc, _, _ := buildUseCase()

	resp, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p2", Cantidad: 5})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "Stock insuficiente")
	assert.Equal(t, 0, resp.TotalItems)

	vista, err := uc.Ver("s1", decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, vista.Items)
}

// El límite de stock cuenta lo que ya hay en el carrito.
func TestAgregar_StockCuentaLoAcumulado(t *testing.T) {
	uc, _, _ := buildUseCase()

	resp, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p2", Cantidad: 2})
	require.NoError(t, err)
	require.True(t, resp.Success)

	resp, err = uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p2", Cantidad: 2})
	require.NoError(t, err)
	assert.False(t, resp.Success, "2 + 2 > stock 3")
	assert.Equal(t, 2, resp.TotalItems, "el carrito queda como estaba")
}

func TestAgregar_ProductoInexistente(t *testing.T) {
	uc, _, _ := buildUseCase()

	resp, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "nope", Cantidad: 1})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Producto no encontrado", resp.Message)
}

func TestQuitar_EliminaLineaAlLlegarACero(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)

	resp, err := uc.Quitar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.TotalItems)

	vista, err := uc.Ver("s1", decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, vista.Items)
}

func TestVer_CalculaTotalesConIVA(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)
	_, err = uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p2", Cantidad: 1})
	require.NoError(t, err)

	vista, err := uc.Ver("s1", decimal.Zero)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(55000).Equal(vista.Totales.Subtotal), "subtotal: %s", vista.Totales.Subtotal)
	assert.True(t, vista.Totales.Descuento.IsZero())
	assert.True(t, decimal.NewFromInt(7150).Equal(vista.Totales.Impuesto), "impuesto: %s", vista.Totales.Impuesto)
	assert.True(t, decimal.NewFromInt(62150).Equal(vista.Totales.Total), "total: %s", vista.Totales.Total)
}

// Preview de descuento: 10% sobre 55000 ⇒ 5500 de descuento, IVA sobre 49500.
func TestVer_PreviewDeDescuento(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)
	_, err = uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p2", Cantidad: 1})
	require.NoError(t, err)

	vista, err := uc.Ver("s1", decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5500).Equal(vista.Totales.Descuento), "descuento: %s", vista.Totales.Descuento)
	assert.True(t, decimal.NewFromInt(6435).Equal(vista.Totales.Impuesto), "impuesto: %s", vista.Totales.Impuesto)
	assert.True(t, decimal.NewFromInt(55935).Equal(vista.Totales.Total), "total: %s", vista.Totales.Total)
}

// Las sesiones no comparten carrito.
func TestCarrito_AisladoPorSesion(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)

	vista, err := uc.Ver("s2", decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, vista.Items)
	assert.Equal(t, 0, vista.TotalItems)
}

func TestVaciar(t *testing.T) {
	uc, _, _ := buildUseCase()

	_, err := uc.Agregar("s1", dto.AgregarProductoRequest{ProductoID: "p1", Cantidad: 2})
	require.NoError(t, err)

	resp := uc.Vaciar("s1")
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.TotalItems)

	vista, err := uc.Ver("s1", decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, vista.Items)
}
