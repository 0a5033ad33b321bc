package facturacion

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// DetalleParaPDF es una línea de venta enriquecida con el nombre del producto
// para la representación gráfica.
type DetalleParaPDF struct {
	entity.DetalleVenta
	NombreProducto string
}

// PDFGenerator genera la representación gráfica (PDF) de una factura.
type PDFGenerator interface {
	GenerarPDF(ctx context.Context, factura *entity.Factura, venta *entity.Venta, cliente *entity.Cliente, detalles []DetalleParaPDF) ([]byte, error)
}

// Mailer envía la factura por correo con el PDF adjunto.
type Mailer interface {
	Enviar(ctx context.Context, destinatario, asunto, cuerpo string, adjunto []byte, nombreAdjunto string) error
}
