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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste un cliente. El email es único.
func (r *ClienteRepo) Create(cliente *entity.Cliente) error {
	query := `
		INSERT INTO clientes (id, nombre, email, telefono, direccion, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Email,
		nullIfEmpty(cliente.Telefono), nullIfEmpty(cliente.Direccion),
		cliente.CreatedAt, cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.getBy("id", id)
}

// GetByEmail obtiene un cliente por email.
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	return r.getBy("email", email)
}

func (r *ClienteRepo) getBy(column, value string) (*entity.Cliente, error) {
	query := fmt.Sprintf(
		`SELECT id, nombre, email, telefono, direccion, created_at, updated_at FROM clientes WHERE %s = $1`,
		column,
	)
	var c entity.Cliente
	var telefono, direccion *string
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&c.ID, &c.Nombre, &c.Email, &telefono, &direccion, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	c.Telefono = derefOrEmpty(telefono)
	c.Direccion = derefOrEmpty(direccion)
	return &c, nil
}

// Update actualiza un cliente existente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE clientes
		SET nombre = $2, email = $3, telefono = $4, direccion = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nombre, cliente.Email,
		nullIfEmpty(cliente.Telefono), nullIfEmpty(cliente.Direccion), cliente.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// List lista clientes con paginación.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, email, telefono, direccion, created_at, updated_at
		 FROM clientes ORDER BY nombre LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		var telefono, direccion *string
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Email, &telefono, &direccion, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		c.Telefono = derefOrEmpty(telefono)
		c.Direccion = derefOrEmpty(direccion)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina un cliente por ID.
func (r *ClienteRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict // tiene ventas asociadas
		}
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}
