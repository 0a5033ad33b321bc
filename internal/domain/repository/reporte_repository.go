package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentasPeriodoFila es una fila agregada del reporte de ventas.
type VentasPeriodoFila struct {
	Periodo        time.Time // inicio del bucket (día, semana o mes)
	CantidadVentas int
	Subtotal       decimal.Decimal
	Descuento      decimal.Decimal
	Impuesto       decimal.Decimal
	Total          decimal.Decimal
}

// ReporteRepository define el puerto de consultas agregadas (solo lectura).
type ReporteRepository interface {
	// VentasPorPeriodo agrega ventas entre desde y hasta, agrupadas por
	// agrupacion ("dia", "semana" o "mes").
	VentasPorPeriodo(desde, hasta time.Time, agrupacion string) ([]*VentasPeriodoFila, error)
}
