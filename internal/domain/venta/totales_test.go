package venta_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/venta"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Escenario de referencia: 2×15000 + 1×25000 con 10 % de descuento.
func TestCalcularTotales_EscenarioConDescuento(t *testing.T) {
	lineas := []venta.Linea{
		{Cantidad: 2, PrecioUnitario: d("15000")},
		{Cantidad: 1, PrecioUnitario: d("25000")},
	}

	tot, err := venta.CalcularTotales(lineas, d("10"))
	require.NoError(t, err)

	assert.True(t, d("55000").Equal(tot.Subtotal), "subtotal: %s", tot.Subtotal)
	assert.True(t, d("5500").Equal(tot.Descuento), "descuento: %s", tot.Descuento)
	assert.True(t, d("49500").Equal(tot.BaseGravable), "base gravable: %s", tot.BaseGravable)
	assert.True(t, d("6435").Equal(tot.Impuesto), "impuesto: %s", tot.Impuesto)
	assert.True(t, d("55935").Equal(tot.Total), "total: %s", tot.Total)
}

// Sin descuento el monto de descuento debe ser exactamente cero.
func TestCalcularTotales_SinDescuento(t *testing.T) {
	tot, err := venta.CalcularTotales([]venta.Linea{{Cantidad: 3, PrecioUnitario: d("100")}}, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, tot.Descuento.IsZero())
	assert.True(t, d("300").Equal(tot.Subtotal))
	assert.True(t, d("39").Equal(tot.Impuesto)) // 13 % de 300
	assert.True(t, d("339").Equal(tot.Total))
}

// Invariante: total == subtotal − descuento + impuesto con igualdad decimal exacta.
func TestCalcularTotales_InvarianteTotal(t *testing.T) {
	casos := [][]venta.Linea{
		{},
		{{Cantidad: 1, PrecioUnitario: d("0.01")}},
		{{Cantidad: 7, PrecioUnitario: d("19.99")}, {Cantidad: 3, PrecioUnitario: d("5.55")}},
		{{Cantidad: 100, PrecioUnitario: d("1234.56")}, {Cantidad: 1, PrecioUnitario: d("0.03")}},
	}
	for _, lineas := range casos {
		tot, err := venta.CalcularTotales(lineas, d("7.5"))
		require.NoError(t, err)
		esperado := tot.Subtotal.Sub(tot.Descuento).Add(tot.Impuesto)
		assert.True(t, esperado.Equal(tot.Total), "lineas=%v total=%s esperado=%s", lineas, tot.Total, esperado)
	}
}

// El redondeo es por línea, antes de sumar: 3 × 10000.005 = 30000.015,
// que redondeado por línea da 30000.02 (y no 30000.01 + 30000.01 de dos pasadas,
// ni la suma cruda sin redondear).
func TestCalcularTotales_RedondeoPorLinea(t *testing.T) {
	tot, err := venta.CalcularTotales([]venta.Linea{{Cantidad: 3, PrecioUnitario: d("10000.005")}}, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, d("30000.02").Equal(tot.Subtotal), "subtotal: %s", tot.Subtotal)

	// Dos líneas donde el redondeo por línea difiere del redondeo del total:
	// 1×0.005 + 1×0.005 → por línea 0.01 + 0.01 = 0.02; el total crudo sería 0.01.
	tot, err = venta.CalcularTotales([]venta.Linea{
		{Cantidad: 1, PrecioUnitario: d("0.005")},
		{Cantidad: 1, PrecioUnitario: d("0.005")},
	}, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, d("0.02").Equal(tot.Subtotal), "subtotal: %s", tot.Subtotal)
}

// Carrito vacío: todos los totales en cero, sin error.
func TestCalcularTotales_SinLineas(t *testing.T) {
	tot, err := venta.CalcularTotales(nil, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Descuento.IsZero())
	assert.True(t, tot.Impuesto.IsZero())
	assert.True(t, tot.Total.IsZero())
}

// Entrada malformada: se rechaza, nunca se clampa.
func TestCalcularTotales_EntradaInvalida(t *testing.T) {
	_, err := venta.CalcularTotales([]venta.Linea{{Cantidad: 0, PrecioUnitario: d("10")}}, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe rechazarse")

	_, err = venta.CalcularTotales([]venta.Linea{{Cantidad: -1, PrecioUnitario: d("10")}}, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad negativa debe rechazarse")

	_, err = venta.CalcularTotales([]venta.Linea{{Cantidad: 1, PrecioUnitario: d("-0.01")}}, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio negativo debe rechazarse")

	_, err = venta.CalcularTotales([]venta.Linea{{Cantidad: 1, PrecioUnitario: d("10")}}, d("101"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descuento > 100 debe rechazarse")

	_, err = venta.CalcularTotales([]venta.Linea{{Cantidad: 1, PrecioUnitario: d("10")}}, d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "descuento negativo debe rechazarse")
}
