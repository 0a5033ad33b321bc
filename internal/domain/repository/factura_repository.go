package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// FacturaRepository define el puerto de persistencia para Factura.
type FacturaRepository interface {
	Create(factura *entity.Factura) error
	GetByID(id string) (*entity.Factura, error)
	// GetByVentaID devuelve la factura de una venta, o (nil, nil) si aún no existe.
	GetByVentaID(ventaID string) (*entity.Factura, error)
	// NextConsecutivo obtiene el siguiente número de la secuencia de facturación.
	NextConsecutivo() (int64, error)
	// Update actualiza estado, pdf_path y xml_firmado tras generar el documento.
	Update(factura *entity.Factura) error
	List(limit, offset int) ([]*entity.Factura, error)
}
