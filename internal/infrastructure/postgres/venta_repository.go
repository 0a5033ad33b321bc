package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación de VentaRepository (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *VentaRepo) Create(venta *entity.Venta) error {
	query := `
		INSERT INTO ventas (id, cliente_id, fecha, subtotal, descuento_porcentaje, descuento, impuesto, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		venta.ID, nullIfEmpty(venta.ClienteID), venta.Fecha,
		venta.Subtotal, venta.DescuentoPorcentaje, venta.Descuento, venta.Impuesto, venta.Total,
		venta.CreatedAt, venta.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// CreateDetalle persiste una línea de la venta.
func (r *VentaRepo) CreateDetalle(detalle *entity.DetalleVenta) error {
	query := `
		INSERT INTO venta_detalles (id, venta_id, producto_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		detalle.ID, detalle.VentaID, detalle.ProductoID, detalle.Cantidad, detalle.PrecioUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert detalle venta: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera de una venta.
func (r *VentaRepo) GetByID(id string) (*entity.Venta, error) {
	query := `
		SELECT id, cliente_id, fecha, subtotal, descuento_porcentaje, descuento, impuesto, total, created_at, updated_at
		FROM ventas WHERE id = $1`
	var v entity.Venta
	var clienteID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &clienteID, &v.Fecha, &v.Subtotal, &v.DescuentoPorcentaje,
		&v.Descuento, &v.Impuesto, &v.Total, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	v.ClienteID = derefOrEmpty(clienteID)
	return &v, nil
}

// GetDetallesByVentaID obtiene todas las líneas de una venta.
func (r *VentaRepo) GetDetallesByVentaID(ventaID string) ([]*entity.DetalleVenta, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, venta_id, producto_id, cantidad, precio_unitario
		 FROM venta_detalles WHERE venta_id = $1 ORDER BY id`,
		ventaID,
	)
	if err != nil {
		return nil, fmt.Errorf("list detalles venta: %w", err)
	}
	defer rows.Close()
	var list []*entity.DetalleVenta
	for rows.Next() {
		var d entity.DetalleVenta
		if err := rows.Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario); err != nil {
			return nil, fmt.Errorf("scan detalle: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// GetDetalleByID obtiene una línea por ID.
func (r *VentaRepo) GetDetalleByID(id string) (*entity.DetalleVenta, error) {
	var d entity.DetalleVenta
	err := r.q.QueryRow(context.Background(),
		`SELECT id, venta_id, producto_id, cantidad, precio_unitario FROM venta_detalles WHERE id = $1`, id,
	).Scan(&d.ID, &d.VentaID, &d.ProductoID, &d.Cantidad, &d.PrecioUnitario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get detalle venta: %w", err)
	}
	return &d, nil
}

// UpdateTotales reescribe el desglose financiero de la venta.
func (r *VentaRepo) UpdateTotales(ventaID string, subtotal, descuento, impuesto, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE ventas SET subtotal = $2, descuento = $3, impuesto = $4, total = $5, updated_at = now() WHERE id = $1`,
		ventaID, subtotal, descuento, impuesto, total,
	)
	if err != nil {
		return fmt.Errorf("update totales venta: %w", err)
	}
	return nil
}

// UpdateDetalleCantidad cambia la cantidad de una línea.
func (r *VentaRepo) UpdateDetalleCantidad(detalleID string, cantidad int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE venta_detalles SET cantidad = $2 WHERE id = $1`,
		detalleID, cantidad,
	)
	if err != nil {
		return fmt.Errorf("update cantidad detalle: %w", err)
	}
	return nil
}

// DeleteDetalle elimina una línea de la venta.
func (r *VentaRepo) DeleteDetalle(detalleID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM venta_detalles WHERE id = $1`, detalleID)
	if err != nil {
		return fmt.Errorf("delete detalle venta: %w", err)
	}
	return nil
}

// List lista cabeceras de venta, más recientes primero.
func (r *VentaRepo) List(limit, offset int) ([]*entity.Venta, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, cliente_id, fecha, subtotal, descuento_porcentaje, descuento, impuesto, total, created_at, updated_at
		 FROM ventas ORDER BY fecha DESC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		var clienteID *string
		if err := rows.Scan(&v.ID, &clienteID, &v.Fecha, &v.Subtotal, &v.DescuentoPorcentaje,
			&v.Descuento, &v.Impuesto, &v.Total, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		v.ClienteID = derefOrEmpty(clienteID)
		list = append(list, &v)
	}
	return list, rows.Err()
}
