// Package reportes contiene los casos de uso de reportería de ventas.
package reportes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// UseCase reportes agregados de ventas por día, semana o mes.
type UseCase struct {
	repo repository.ReporteRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.ReporteRepository) *UseCase {
	return &UseCase{repo: repo}
}

// VentasPorPeriodo agrega las ventas del rango [desde, hasta] inclusive.
// El rango se valida (desde <= hasta) y hasta se extiende al final del día.
func (uc *UseCase) VentasPorPeriodo(in dto.ReporteVentasRequest) (*dto.ReporteVentasResponse, error) {
	desde, err := time.Parse("2006-01-02", in.Desde)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	hasta, err := time.Parse("2006-01-02", in.Hasta)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if hasta.Before(desde) {
		return nil, domain.ErrInvalidInput
	}
	agrupacion := in.Agrupacion
	switch agrupacion {
	case "":
		agrupacion = "dia"
	case "dia", "semana", "mes":
	default:
		return nil, domain.ErrInvalidInput
	}
	hasta = hasta.Add(24*time.Hour - time.Nanosecond)

	filas, err := uc.repo.VentasPorPeriodo(desde, hasta, agrupacion)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReporteVentasResponse{
		Agrupacion: agrupacion,
		Filas:      make([]dto.ReporteVentasFila, 0, len(filas)),
		GranTotal:  decimal.Zero,
	}
	for _, f := range filas {
		resp.Filas = append(resp.Filas, dto.ReporteVentasFila{
			Periodo:        f.Periodo.Format("2006-01-02"),
			CantidadVentas: f.CantidadVentas,
			Subtotal:       f.Subtotal,
			Descuento:      f.Descuento,
			Impuesto:       f.Impuesto,
			Total:          f.Total,
		})
		resp.TotalVentas += f.CantidadVentas
		resp.GranTotal = resp.GranTotal.Add(f.Total)
	}
	return resp, nil
}
