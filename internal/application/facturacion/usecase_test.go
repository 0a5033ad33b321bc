package facturacion_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/facturacion"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ---- fakes ----

type fakeFacturaRepo struct {
	porVenta    map[string]*entity.Factura
	porID       map[string]*entity.Factura
	consecutivo int64
}

func newFakeFacturaRepo() *fakeFacturaRepo {
	return &fakeFacturaRepo{
		porVenta: make(map[string]*entity.Factura),
		porID:    make(map[string]*entity.Factura),
	}
}

func (r *fakeFacturaRepo) Create(f *entity.Factura) error {
	if _, ok := r.porVenta[f.VentaID]; ok {
		return domain.ErrDuplicate // índice único sobre venta_id
	}
	r.porVenta[f.VentaID] = f
	r.porID[f.ID] = f
	return nil
}
func (r *fakeFacturaRepo) GetByID(id string) (*entity.Factura, error) { return r.porID[id], nil }
func (r *fakeFacturaRepo) GetByVentaID(ventaID string) (*entity.Factura, error) {
	return r.porVenta[ventaID], nil
}
func (r *fakeFacturaRepo) NextConsecutivo() (int64, error) {
	r.consecutivo++
	return r.consecutivo, nil
}
func (r *fakeFacturaRepo) Update(f *entity.Factura) error {
	r.porID[f.ID] = f
	r.porVenta[f.VentaID] = f
	return nil
}
func (r *fakeFacturaRepo) List(int, int) ([]*entity.Factura, error) {
	var out []*entity.Factura
	for _, f := range r.porID {
		out = append(out, f)
	}
	return out, nil
}

type fakeVentaRepo struct {
	ventas   map[string]*entity.Venta
	detalles []*entity.DetalleVenta
}

func (r *fakeVentaRepo) Create(*entity.Venta) error               { return nil }
func (r *fakeVentaRepo) CreateDetalle(*entity.DetalleVenta) error { return nil }
func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) { return r.ventas[id], nil }
func (r *fakeVentaRepo) GetDetallesByVentaID(string) ([]*entity.DetalleVenta, error) {
	return r.detalles, nil
}
func (r *fakeVentaRepo) GetDetalleByID(string) (*entity.DetalleVenta, error) { return nil, nil }
func (r *fakeVentaRepo) UpdateTotales(string, decimal.Decimal, decimal.Decimal, decimal.Decimal, decimal.Decimal) error {
	return nil
}
func (r *fakeVentaRepo) UpdateDetalleCantidad(string, int) error { return nil }
func (r *fakeVentaRepo) DeleteDetalle(string) error              { return nil }
func (r *fakeVentaRepo) List(int, int) ([]*entity.Venta, error)  { return nil, nil }

type fakeClienteRepo struct{ clientes map[string]*entity.Cliente }

func (r *fakeClienteRepo) Create(*entity.Cliente) error               { return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) { return r.clientes[id], nil }
func (r *fakeClienteRepo) GetByEmail(string) (*entity.Cliente, error) { return nil, nil }
func (r *fakeClienteRepo) Update(*entity.Cliente) error               { return nil }
func (r *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error)   { return nil, nil }
func (r *fakeClienteRepo) Delete(string) error                        { return nil }

type fakeProductoRepo struct{}

func (fakeProductoRepo) Create(*entity.Producto) error                 { return nil }
func (fakeProductoRepo) GetByID(string) (*entity.Producto, error)      { return nil, nil }
func (fakeProductoRepo) GetForUpdate(string) (*entity.Producto, error) { return nil, nil }
func (fakeProductoRepo) Update(*entity.Producto) error                 { return nil }
func (fakeProductoRepo) UpdateStock(string, int) error                 { return nil }
func (fakeProductoRepo) List(string, string, int, int) ([]*entity.Producto, error) {
	return nil, nil
}
func (fakeProductoRepo) CountByCategoria(string) (int, error) { return 0, nil }
func (fakeProductoRepo) Delete(string) error                  { return nil }

type fakeGenerator struct {
	llamadas int
	fallar   bool
}

func (g *fakeGenerator) GenerarPDF(context.Context, *entity.Factura, *entity.Venta, *entity.Cliente, []facturacion.DetalleParaPDF) ([]byte, error) {
	g.llamadas++
	if g.fallar {
		return nil, errors.New("maroto: fallo simulado")
	}
	return []byte("%PDF-1.4 fake"), nil
}

type fakeMailer struct {
	enviados []string
	fallar   bool
}

func (m *fakeMailer) Enviar(_ context.Context, destinatario, _, _ string, adjunto []byte, _ string) error {
	if m.fallar {
		return errors.New("smtp: conexión rechazada")
	}
	if len(adjunto) == 0 {
		return errors.New("adjunto vacío")
	}
	m.enviados = append(m.enviados, destinatario)
	return nil
}

type entorno struct {
	uc       *facturacion.UseCase
	facturas *fakeFacturaRepo
	gen      *fakeGenerator
	mailer   *fakeMailer
}

func armarEntorno(t *testing.T) *entorno {
	t.Helper()
	facturas := newFakeFacturaRepo()
	ventas := &fakeVentaRepo{
		ventas: map[string]*entity.Venta{
			"v1": {
				ID:        "v1",
				ClienteID: "c1",
				Subtotal:  decimal.NewFromInt(55000),
				Impuesto:  decimal.NewFromInt(7150),
				Total:     decimal.NewFromInt(62150),
			},
		},
		detalles: []*entity.DetalleVenta{
			{ID: "d1", VentaID: "v1", ProductoID: "p1", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(15000)},
		},
	}
	clientes := &fakeClienteRepo{clientes: map[string]*entity.Cliente{
		"c1": {ID: "c1", Nombre: "Ana Mora", Email: "ana@example.com"},
	}}
	gen := &fakeGenerator{}
	mailer := &fakeMailer{}
	uc := facturacion.NewUseCase(
		facturas, ventas, clientes, fakeProductoRepo{}, gen, mailer,
		facturacion.Config{Prefijo: "AURA", DirPDF: t.TempDir()},
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
	return &entorno{uc: uc, facturas: facturas, gen: gen, mailer: mailer}
}

// ---- tests ----

func TestGenerar_CreaFacturaConConsecutivoYPDF(t *testing.T) {
	e := armarEntorno(t)

	resp, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)

	assert.Equal(t, "AURA-00000001", resp.NumeroConsecutivo)
	assert.True(t, strings.HasSuffix(resp.Clave, "-00000001"), "clave: %s", resp.Clave)
	assert.Equal(t, entity.FacturaEstadoGenerada, resp.Estado)
	assert.NotEmpty(t, resp.PDFPath)
	assert.Equal(t, 1, e.gen.llamadas)
}

// Generar dos veces la misma venta devuelve la misma factura sin consumir otro consecutivo.
func TestGenerar_Idempotente(t *testing.T) {
	e := armarEntorno(t)

	primera, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)
	segunda, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)

	assert.Equal(t, primera.ID, segunda.ID)
	assert.Equal(t, primera.NumeroConsecutivo, segunda.NumeroConsecutivo)
	assert.EqualValues(t, 1, e.facturas.consecutivo)
}

func TestGenerar_VentaInexistente(t *testing.T) {
	e := armarEntorno(t)

	_, err := e.uc.Generar(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si el PDF falla la factura queda PENDIENTE; la siguiente llamada reintenta
// solo el PDF y la pasa a GENERADA.
func TestGenerar_PDFFallidoQuedaPendienteYReintenta(t *testing.T) {
	e := armarEntorno(t)
	e.gen.fallar = true

	resp, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err, "el fallo del PDF no tumba la generación de la factura")
	assert.Equal(t, entity.FacturaEstadoPendiente, resp.Estado)

	e.gen.fallar = false
	resp, err = e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaEstadoGenerada, resp.Estado)
	assert.NotEmpty(t, resp.PDFPath)
}

func TestDescargarPDF_LeeDeDisco(t *testing.T) {
	e := armarEntorno(t)

	resp, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)

	data, filename, err := e.uc.DescargarPDF(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)
	assert.Equal(t, resp.Clave+".pdf", filename)
	assert.Equal(t, 1, e.gen.llamadas, "no se regenera si el archivo existe")
}

func TestEnviarPorCorreo_UsaEmailDelCliente(t *testing.T) {
	e := armarEntorno(t)

	resp, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)

	err = e.uc.EnviarPorCorreo(context.Background(), resp.ID, dto.EnviarFacturaRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, e.mailer.enviados)
}

func TestEnviarPorCorreo_SMTPCaidoDevuelveErrorExterno(t *testing.T) {
	e := armarEntorno(t)
	resp, err := e.uc.Generar(context.Background(), "v1")
	require.NoError(t, err)

	e.mailer.fallar = true
	err = e.uc.EnviarPorCorreo(context.Background(), resp.ID, dto.EnviarFacturaRequest{})
	assert.ErrorIs(t, err, domain.ErrExternalService)

	// La factura generada no se toca por un fallo de correo
	actual, err := e.uc.GetByID(resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.FacturaEstadoGenerada, actual.Estado)
}
