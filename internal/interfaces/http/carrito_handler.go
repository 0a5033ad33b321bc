package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/application/carrito"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// CarritoHandler maneja el carrito de la sesión (público, ligado a la cookie
// de sesión). Las operaciones rechazadas devuelven 200 con Success=false para
// que el storefront muestre el mensaje sin tratarlo como error de red.
type CarritoHandler struct {
	uc *carrito.UseCase
}

// NewCarritoHandler construye el handler.
func NewCarritoHandler(uc *carrito.UseCase) *CarritoHandler {
	return &CarritoHandler{uc: uc}
}

// Ver godoc
// @Summary      Ver el carrito
// @Description  Contenido del carrito de la sesión con el desglose de totales. El descuento es un preview; el definitivo se fija en el checkout.
// @Tags         carrito
// @Produce      json
// @Param        descuento  query  number  false  "Porcentaje de descuento a previsualizar"  default(0)
// @Success      200  {object}  dto.CarritoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/carrito [get]
func (h *CarritoHandler) Ver(c *fiber.Ctx) error {
	descuento := decimal.Zero
	if raw := c.Query("descuento"); raw != "" {
		var err error
		if descuento, err = decimal.NewFromString(raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "descuento inválido"})
		}
	}
	out, err := h.uc.Ver(GetSessionID(c), descuento)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Agregar godoc
// @Summary      Agregar producto al carrito
// @Description  Suma unidades a la línea del producto. Si la cantidad acumulada excede el stock, la operación se rechaza completa.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgregarProductoRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CarritoOpResponse
// @Router       /api/carrito/items [post]
func (h *CarritoHandler) Agregar(c *fiber.Ctx) error {
	var in dto.AgregarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id es requerido"})
	}
	out, err := h.uc.Agregar(GetSessionID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Quitar godoc
// @Summary      Quitar unidades del carrito
// @Description  Resta unidades de la línea; si la cantidad llega a cero la línea desaparece.
// @Tags         carrito
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AgregarProductoRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.CarritoOpResponse
// @Router       /api/carrito/items/quitar [post]
func (h *CarritoHandler) Quitar(c *fiber.Ctx) error {
	var in dto.AgregarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id es requerido"})
	}
	out, err := h.uc.Quitar(GetSessionID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar la línea de un producto
// @Tags         carrito
// @Produce      json
// @Param        productoId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.CarritoOpResponse
// @Router       /api/carrito/items/{productoId} [delete]
func (h *CarritoHandler) Eliminar(c *fiber.Ctx) error {
	productoID := c.Params("productoId")
	if productoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productoId es requerido"})
	}
	out, err := h.uc.Eliminar(GetSessionID(c), productoID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Vaciar godoc
// @Summary      Vaciar el carrito
// @Tags         carrito
// @Produce      json
// @Success      200  {object}  dto.CarritoOpResponse
// @Router       /api/carrito [delete]
func (h *CarritoHandler) Vaciar(c *fiber.Ctx) error {
	return c.JSON(h.uc.Vaciar(GetSessionID(c)))
}
