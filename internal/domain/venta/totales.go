// Package venta contiene las reglas de cálculo financiero de una venta
// (servicio de dominio, sin efectos secundarios).
package venta

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
)

// IVA tasa de impuesto fija de la jurisdicción (13 %).
var IVA = decimal.NewFromFloat(0.13)

var cien = decimal.NewFromInt(100)

// Linea es la entrada mínima del cálculo: cantidad y precio unitario capturado.
type Linea struct {
	Cantidad       int
	PrecioUnitario decimal.Decimal
}

// Totales es el desglose financiero de una venta.
type Totales struct {
	Subtotal     decimal.Decimal // Σ round(cantidad × precioUnitario, 2)
	Descuento    decimal.Decimal // round(subtotal × pct/100, 2); 0 si pct == 0
	BaseGravable decimal.Decimal // subtotal − descuento
	Impuesto     decimal.Decimal // round(baseGravable × IVA, 2)
	Total        decimal.Decimal // baseGravable + impuesto
}

// CalcularTotales calcula el desglose de totales a partir de las líneas y el
// porcentaje de descuento. Redondea cada línea a 2 decimales ANTES de sumar
// (aritmética de moneda). Entrada malformada (cantidad <= 0, precio negativo,
// porcentaje fuera de [0,100]) retorna ErrInvalidInput; nunca se clampa.
// Colección vacía produce todos los totales en cero.
func CalcularTotales(lineas []Linea, descuentoPorcentaje decimal.Decimal) (Totales, error) {
	if descuentoPorcentaje.IsNegative() || descuentoPorcentaje.GreaterThan(cien) {
		return Totales{}, domain.ErrInvalidInput
	}

	subtotal := decimal.Zero
	for _, l := range lineas {
		if l.Cantidad <= 0 || l.PrecioUnitario.IsNegative() {
			return Totales{}, domain.ErrInvalidInput
		}
		linea := decimal.NewFromInt(int64(l.Cantidad)).Mul(l.PrecioUnitario).Round(2)
		subtotal = subtotal.Add(linea)
	}

	descuento := decimal.Zero
	if descuentoPorcentaje.IsPositive() {
		descuento = subtotal.Mul(descuentoPorcentaje).Div(cien).Round(2)
	}
	base := subtotal.Sub(descuento)
	impuesto := base.Mul(IVA).Round(2)

	return Totales{
		Subtotal:     subtotal,
		Descuento:    descuento,
		BaseGravable: base,
		Impuesto:     impuesto,
		Total:        base.Add(impuesto),
	}, nil
}
