package dto

import "github.com/shopspring/decimal"

// ReporteVentasRequest filtros para GET /api/reportes/ventas.
// Agrupacion: dia | semana | mes. Desde/Hasta en formato 2006-01-02.
type ReporteVentasRequest struct {
	Desde      string `query:"desde" validate:"required"`
	Hasta      string `query:"hasta" validate:"required"`
	Agrupacion string `query:"agrupacion" validate:"omitempty,oneof=dia semana mes"`
}

// ReporteVentasFila fila agregada del reporte.
type ReporteVentasFila struct {
	Periodo        string          `json:"periodo"` // inicio del bucket, 2006-01-02
	CantidadVentas int             `json:"cantidad_ventas"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Descuento      decimal.Decimal `json:"descuento"`
	Impuesto       decimal.Decimal `json:"impuesto"`
	Total          decimal.Decimal `json:"total"`
}

// ReporteVentasResponse reporte completo con totales globales del rango.
type ReporteVentasResponse struct {
	Agrupacion  string              `json:"agrupacion"`
	Filas       []ReporteVentasFila `json:"filas"`
	TotalVentas int                 `json:"total_ventas"`
	GranTotal   decimal.Decimal     `json:"gran_total"`
}
