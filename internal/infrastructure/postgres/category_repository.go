package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
// El ID de categoría lo asigna el cliente (el catálogo usa IDs estables 1..N),
// por eso el INSERT no usa la secuencia.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría con su disciplina.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, description, discipline, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, string(category.Discipline),
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	query := `SELECT id, name, description, discipline, created_at, updated_at FROM categories WHERE id = $1`
	return scanCategory(r.q.QueryRow(context.Background(), query, id), "get category")
}

// GetByName obtiene una categoría por nombre.
func (r *CategoryRepo) GetByName(name string) (*entity.Category, error) {
	query := `SELECT id, name, description, discipline, created_at, updated_at FROM categories WHERE name = $1`
	return scanCategory(r.q.QueryRow(context.Background(), query, name), "get category by name")
}

// Update actualiza nombre y descripción. La disciplina es inmutable.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `UPDATE categories SET name = $2, description = $3, updated_at = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// List lista todas las categorías.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	query := `SELECT id, name, description, discipline, created_at, updated_at FROM categories ORDER BY id`
	return r.list(query, "list categories")
}

// ListByDiscipline lista las categorías con una disciplina dada.
func (r *CategoryRepo) ListByDiscipline(d entity.Discipline) ([]*entity.Category, error) {
	query := `SELECT id, name, description, discipline, created_at, updated_at FROM categories WHERE discipline = $1 ORDER BY id`
	return r.list(query, "list categories by discipline", string(d))
}

func (r *CategoryRepo) list(query, op string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		var d string
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &d, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Discipline = entity.Discipline(d)
		list = append(list, &c)
	}
	return list, rows.Err()
}

func scanCategory(row pgx.Row, op string) (*entity.Category, error) {
	var c entity.Category
	var d string
	err := row.Scan(&c.ID, &c.Name, &c.Description, &d, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.Discipline = entity.Discipline(d)
	return &c, nil
}
