package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/reportes"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// ReporteHandler maneja los reportes de ventas (solo ADMINISTRADOR).
type ReporteHandler struct {
	uc *reportes.UseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(uc *reportes.UseCase) *ReporteHandler {
	return &ReporteHandler{uc: uc}
}

// Ventas godoc
// @Summary      Reporte de ventas por período
// @Description  Agrega las ventas del rango por día, semana o mes.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde       query  string  true   "Fecha inicial (2006-01-02)"
// @Param        hasta       query  string  true   "Fecha final (2006-01-02)"
// @Param        agrupacion  query  string  false  "dia | semana | mes"  default(dia)
// @Success      200  {object}  dto.ReporteVentasResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reportes/ventas [get]
func (h *ReporteHandler) Ventas(c *fiber.Ctx) error {
	in := dto.ReporteVentasRequest{
		Desde:      c.Query("desde"),
		Hasta:      c.Query("hasta"),
		Agrupacion: c.Query("agrupacion"),
	}
	if in.Desde == "" || in.Hasta == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "desde y hasta son requeridos"})
	}
	out, err := h.uc.VentasPorPeriodo(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
