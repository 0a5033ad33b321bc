package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.FacturaRepository = (*FacturaRepo)(nil)

// FacturaRepo implementación de FacturaRepository (usable con pool o tx).
type FacturaRepo struct {
	q Querier
}

// NewFacturaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacturaRepository(q Querier) *FacturaRepo {
	return &FacturaRepo{q: q}
}

const facturaColumns = `id, venta_id, numero_consecutivo, clave, fecha_emision, estado, pdf_path, xml_firmado, created_at, updated_at`

// Create persiste una factura. El índice único sobre venta_id garantiza a lo
// sumo una factura por venta; la violación se devuelve como ErrDuplicate.
func (r *FacturaRepo) Create(factura *entity.Factura) error {
	query := `
		INSERT INTO facturas (id, venta_id, numero_consecutivo, clave, fecha_emision, estado, pdf_path, xml_firmado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.VentaID, factura.NumeroConsecutivo, factura.Clave,
		factura.FechaEmision, factura.Estado, nullIfEmpty(factura.PDFPath), nullIfEmpty(factura.XMLFirmado),
		factura.CreatedAt, factura.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // venta inexistente
		}
		return fmt.Errorf("insert factura: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *FacturaRepo) GetByID(id string) (*entity.Factura, error) {
	return r.getBy("id", id)
}

// GetByVentaID devuelve la factura de una venta, o (nil, nil) si no existe.
func (r *FacturaRepo) GetByVentaID(ventaID string) (*entity.Factura, error) {
	return r.getBy("venta_id", ventaID)
}

func (r *FacturaRepo) getBy(column, value string) (*entity.Factura, error) {
	query := fmt.Sprintf(`SELECT %s FROM facturas WHERE %s = $1`, facturaColumns, column)
	var f entity.Factura
	var pdfPath, xmlFirmado *string
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&f.ID, &f.VentaID, &f.NumeroConsecutivo, &f.Clave, &f.FechaEmision,
		&f.Estado, &pdfPath, &xmlFirmado, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get factura: %w", err)
	}
	f.PDFPath = derefOrEmpty(pdfPath)
	f.XMLFirmado = derefOrEmpty(xmlFirmado)
	return &f, nil
}

// NextConsecutivo obtiene el siguiente número de la secuencia de facturación.
func (r *FacturaRepo) NextConsecutivo() (int64, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('facturas_consecutivo')`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next consecutivo: %w", err)
	}
	return n, nil
}

// Update actualiza estado, pdf_path y xml_firmado.
func (r *FacturaRepo) Update(factura *entity.Factura) error {
	query := `
		UPDATE facturas
		SET estado = $2, pdf_path = $3, xml_firmado = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		factura.ID, factura.Estado, nullIfEmpty(factura.PDFPath), nullIfEmpty(factura.XMLFirmado), factura.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update factura: %w", err)
	}
	return nil
}

// List lista facturas, más recientes primero.
func (r *FacturaRepo) List(limit, offset int) ([]*entity.Factura, error) {
	query := fmt.Sprintf(`SELECT %s FROM facturas ORDER BY fecha_emision DESC LIMIT $1 OFFSET $2`, facturaColumns)
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list facturas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Factura
	for rows.Next() {
		var f entity.Factura
		var pdfPath, xmlFirmado *string
		if err := rows.Scan(&f.ID, &f.VentaID, &f.NumeroConsecutivo, &f.Clave, &f.FechaEmision,
			&f.Estado, &pdfPath, &xmlFirmado, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan factura: %w", err)
		}
		f.PDFPath = derefOrEmpty(pdfPath)
		f.XMLFirmado = derefOrEmpty(xmlFirmado)
		list = append(list, &f)
	}
	return list, rows.Err()
}
