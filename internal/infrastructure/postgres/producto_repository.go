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

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, nombre, talla, color, precio, stock, categoria_id, imagen_path, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductoRepo) Create(producto *entity.Producto) error {
	query := `
		INSERT INTO productos (id, nombre, talla, color, precio, stock, categoria_id, imagen_path, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Talla, producto.Color,
		producto.Precio, producto.Stock, nullIfEmpty(producto.CategoriaID), nullIfEmpty(producto.ImagenPath),
		producto.CreatedAt, producto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound // categoría inexistente
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(id string) (*entity.Producto, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT ... FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *ProductoRepo) GetForUpdate(id string) (*entity.Producto, error) {
	return r.get(id, true)
}

func (r *ProductoRepo) get(id string, forUpdate bool) (*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var p entity.Producto
	var categoriaID, imagenPath *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Nombre, &p.Talla, &p.Color, &p.Precio, &p.Stock,
		&categoriaID, &imagenPath, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	p.CategoriaID = derefOrEmpty(categoriaID)
	p.ImagenPath = derefOrEmpty(imagenPath)
	return &p, nil
}

// Update actualiza un producto existente. No toca el stock.
func (r *ProductoRepo) Update(producto *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, talla = $3, color = $4, precio = $5, categoria_id = $6, imagen_path = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		producto.ID, producto.Nombre, producto.Talla, producto.Color, producto.Precio,
		nullIfEmpty(producto.CategoriaID), nullIfEmpty(producto.ImagenPath), producto.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// UpdateStock fija el stock absoluto del producto (tras validar bajo bloqueo).
func (r *ProductoRepo) UpdateStock(id string, stock int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productos SET stock = $2, updated_at = now() WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List pagina el catálogo con búsqueda por nombre (ILIKE) y filtro por categoría.
func (r *ProductoRepo) List(q, categoriaID string, limit, offset int) ([]*entity.Producto, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE 1=1`
	args := []any{}
	if q != "" {
		args = append(args, "%"+q+"%")
		query += fmt.Sprintf(" AND nombre ILIKE $%d", len(args))
	}
	if categoriaID != "" {
		args = append(args, categoriaID)
		query += fmt.Sprintf(" AND categoria_id = $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		var catID, imgPath *string
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Talla, &p.Color, &p.Precio, &p.Stock,
			&catID, &imgPath, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		p.CategoriaID = derefOrEmpty(catID)
		p.ImagenPath = derefOrEmpty(imgPath)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByCategoria cuenta los productos asociados a una categoría.
func (r *ProductoRepo) CountByCategoria(categoriaID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM productos WHERE categoria_id = $1`, categoriaID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count productos por categoria: %w", err)
	}
	return count, nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict // referenciado por detalles de venta
		}
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
