package dto

import "time"

// FacturaResponse factura en respuestas.
type FacturaResponse struct {
	ID                string    `json:"id"`
	VentaID           string    `json:"venta_id"`
	NumeroConsecutivo string    `json:"numero_consecutivo"`
	Clave             string    `json:"clave"`
	FechaEmision      time.Time `json:"fecha_emision"`
	Estado            string    `json:"estado"` // PENDIENTE | GENERADA
	PDFPath           string    `json:"pdf_path,omitempty"`
}

// FacturaListResponse historial paginado de facturas.
type FacturaListResponse struct {
	Items []FacturaResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// EnviarFacturaRequest body para enviar la factura por correo. Si Email va
// vacío se usa el correo del cliente de la venta.
type EnviarFacturaRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}
