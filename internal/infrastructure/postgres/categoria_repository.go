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

var _ repository.CategoriaRepository = (*CategoriaRepo)(nil)

// CategoriaRepo implementación de CategoriaRepository (usable con pool o tx).
type CategoriaRepo struct {
	q Querier
}

// NewCategoriaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoriaRepository(q Querier) *CategoriaRepo {
	return &CategoriaRepo{q: q}
}

// Create persiste una categoría. El nombre es único.
func (r *CategoriaRepo) Create(categoria *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO categorias (id, nombre, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		categoria.ID, categoria.Nombre, categoria.CreatedAt, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert categoria: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoriaRepo) GetByID(id string) (*entity.Categoria, error) {
	var c entity.Categoria
	err := r.q.QueryRow(context.Background(),
		`SELECT id, nombre, created_at, updated_at FROM categorias WHERE id = $1`, id,
	).Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoria: %w", err)
	}
	return &c, nil
}

// Update renombra una categoría.
func (r *CategoriaRepo) Update(categoria *entity.Categoria) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE categorias SET nombre = $2, updated_at = $3 WHERE id = $1`,
		categoria.ID, categoria.Nombre, categoria.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update categoria: %w", err)
	}
	return nil
}

// List lista categorías con paginación.
func (r *CategoriaRepo) List(limit, offset int) ([]*entity.Categoria, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre, created_at, updated_at FROM categorias ORDER BY nombre LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list categorias: %w", err)
	}
	defer rows.Close()
	var list []*entity.Categoria
	for rows.Next() {
		var c entity.Categoria
		if err := rows.Scan(&c.ID, &c.Nombre, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una categoría. Si tiene productos asociados la FK lo impide.
func (r *CategoriaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categorias WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryInUse
		}
		return fmt.Errorf("delete categoria: %w", err)
	}
	return nil
}
