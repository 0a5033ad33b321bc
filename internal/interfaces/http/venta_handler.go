package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/ventas"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// VentaHandler maneja el checkout del carrito y la consulta y edición de
// ventas. El checkout es público (sesión del carrito); el resto requiere rol
// ADMINISTRADOR o CAJERO.
type VentaHandler struct {
	checkoutUC *ventas.CheckoutUseCase
	ventaUC    *ventas.VentaUseCase
	detalleUC  *ventas.DetalleUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(checkoutUC *ventas.CheckoutUseCase, ventaUC *ventas.VentaUseCase, detalleUC *ventas.DetalleUseCase) *VentaHandler {
	return &VentaHandler{checkoutUC: checkoutUC, ventaUC: ventaUC, detalleUC: detalleUC}
}

// Checkout godoc
// @Summary      Confirmar la compra del carrito
// @Description  Crea la venta con las líneas del carrito, descuenta stock de forma atómica y vacía el carrito. Si algún producto no tiene stock suficiente, nada se persiste.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Cliente opcional y descuento"
// @Success      201   {object}  dto.VentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *VentaHandler) Checkout(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.checkoutUC.Checkout(c.Context(), GetSessionID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el cliente indicado no existe"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Description  Incluye las líneas de detalle y el desglose de totales.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.ventaUC.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.VentaListResponse
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.ventaUC.List(page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AgregarDetalle godoc
// @Summary      Agregar línea a una venta
// @Description  Descuenta el stock del producto y recalcula los totales de la venta con su descuento original.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la venta"
// @Param        body  body  dto.AgregarDetalleRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.VentaResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/detalles [post]
func (h *VentaHandler) AgregarDetalle(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.AgregarDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "producto_id es requerido"})
	}
	out, err := h.detalleUC.Agregar(c.Context(), id, in)
	return h.responderDetalle(c, out, err)
}

// ActualizarDetalle godoc
// @Summary      Cambiar la cantidad de una línea
// @Description  Ajusta el stock por la diferencia y recalcula los totales de la venta.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id         path  string  true  "ID de la venta"
// @Param        detalleId  path  string  true  "ID de la línea"
// @Param        body       body  dto.UpdateDetalleRequest  true  "Cantidad nueva"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/detalles/{detalleId} [put]
func (h *VentaHandler) ActualizarDetalle(c *fiber.Ctx) error {
	id := c.Params("id")
	detalleID := c.Params("detalleId")
	if id == "" || detalleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y detalleId son requeridos"})
	}
	var in dto.UpdateDetalleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.detalleUC.ActualizarCantidad(c.Context(), id, detalleID, in)
	return h.responderDetalle(c, out, err)
}

// EliminarDetalle godoc
// @Summary      Eliminar una línea de la venta
// @Description  Devuelve al stock las unidades de la línea y recalcula los totales.
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id         path  string  true  "ID de la venta"
// @Param        detalleId  path  string  true  "ID de la línea"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/detalles/{detalleId} [delete]
func (h *VentaHandler) EliminarDetalle(c *fiber.Ctx) error {
	id := c.Params("id")
	detalleID := c.Params("detalleId")
	if id == "" || detalleID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id y detalleId son requeridos"})
	}
	out, err := h.detalleUC.Eliminar(c.Context(), id, detalleID)
	return h.responderDetalle(c, out, err)
}

func (h *VentaHandler) responderDetalle(c *fiber.Ctx, out *dto.VentaResponse, err error) error {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
