package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ReporteRepository = (*ReporteRepo)(nil)

// ReporteRepo consultas agregadas de ventas (solo lectura).
type ReporteRepo struct {
	q Querier
}

// NewReporteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReporteRepository(q Querier) *ReporteRepo {
	return &ReporteRepo{q: q}
}

// VentasPorPeriodo agrega ventas por bucket usando date_trunc. La agrupación
// viaja como constante SQL validada aquí, nunca interpolada desde el usuario.
func (r *ReporteRepo) VentasPorPeriodo(desde, hasta time.Time, agrupacion string) ([]*repository.VentasPeriodoFila, error) {
	var trunc string
	switch agrupacion {
	case "dia":
		trunc = "day"
	case "semana":
		trunc = "week"
	case "mes":
		trunc = "month"
	default:
		return nil, domain.ErrInvalidInput
	}

	query := fmt.Sprintf(`
		SELECT date_trunc('%s', fecha) AS periodo,
		       COUNT(*) AS cantidad_ventas,
		       COALESCE(SUM(subtotal), 0),
		       COALESCE(SUM(descuento), 0),
		       COALESCE(SUM(impuesto), 0),
		       COALESCE(SUM(total), 0)
		FROM ventas
		WHERE fecha BETWEEN $1 AND $2
		GROUP BY periodo
		ORDER BY periodo`, trunc)

	rows, err := r.q.Query(context.Background(), query, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("reporte ventas por periodo: %w", err)
	}
	defer rows.Close()
	var list []*repository.VentasPeriodoFila
	for rows.Next() {
		var f repository.VentasPeriodoFila
		if err := rows.Scan(&f.Periodo, &f.CantidadVentas, &f.Subtotal, &f.Descuento, &f.Impuesto, &f.Total); err != nil {
			return nil, fmt.Errorf("scan fila reporte: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
