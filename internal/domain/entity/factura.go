package entity

import "time"

// Estados de una factura.
const (
	FacturaEstadoPendiente = "PENDIENTE" // creada, PDF aún no generado
	FacturaEstadoGenerada  = "GENERADA"  // PDF generado y guardado
)

// Factura representa el comprobante de una venta. Hay a lo sumo una por venta
// (unicidad sobre VentaID); generarla dos veces devuelve la existente.
type Factura struct {
	ID                string
	VentaID           string
	NumeroConsecutivo string // ej. "AURA-00000042"
	Clave             string // yyyymmddhhmmss-consecutivo; nombra también el archivo PDF
	FechaEmision      time.Time
	Estado            string // PENDIENTE | GENERADA
	PDFPath           string // ruta relativa bajo el directorio de facturas
	XMLFirmado        string // payload firmado opcional (si llega de un firmador externo)
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
