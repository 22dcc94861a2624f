package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, product_code, category_id, vendor_id, price, quantity_in_stock, minimum_stock_level, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, product_code, category_id, vendor_id, price, quantity_in_stock, minimum_stock_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.ProductCode, product.CategoryID,
		product.VendorID, product.Price, product.QuantityInStock, product.MinimumStockLevel,
		product.CreatedAt, product.UpdatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByCode obtiene un producto por código.
func (r *ProductRepo) GetByCode(productCode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_code = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productCode), "get product by code")
}

// Update actualiza un producto existente. No toca el stock: eso pasa por UpdateStock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, vendor_id = $4, price = $5, minimum_stock_level = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Description, product.VendorID,
		product.Price, product.MinimumStockLevel, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock fija el stock persistido del producto (usado por el motor de inventario).
func (r *ProductRepo) UpdateStock(id int64, quantityInStock int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity_in_stock = $2, updated_at = now() WHERE id = $1`,
		id, quantityInStock,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista productos con paginación.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	return r.list(query, "list products", limit, offset)
}

// ListByCategory lista los productos de una categoría.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id`
	return r.list(query, "list products by category", categoryID)
}

// ListByCategoryOrderByName lista los productos de una categoría en orden alfabético.
func (r *ProductRepo) ListByCategoryOrderByName(categoryID int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY lower(name)`
	return r.list(query, "list products ordered by name", categoryID)
}

// SearchByNameOrCode busca por subcadena (case-insensitive) en nombre y código dentro de una categoría.
func (r *ProductRepo) SearchByNameOrCode(term string, categoryID int64) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE category_id = $1 AND (name ILIKE '%' || $2 || '%' OR product_code ILIKE '%' || $2 || '%')
		ORDER BY lower(name)`
	return r.list(query, "search products", categoryID, term)
}

// ListByPriceRange lista productos con precio dentro de [min, max].
func (r *ProductRepo) ListByPriceRange(min, max decimal.Decimal) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE price >= $1 AND price <= $2 ORDER BY price`
	return r.list(query, "list products by price range", min, max)
}

// ListLowStock productos con stock en o bajo el nivel mínimo.
func (r *ProductRepo) ListLowStock() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE quantity_in_stock <= minimum_stock_level ORDER BY quantity_in_stock`
	return r.list(query, "list low stock products")
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ProductCode, &p.CategoryID, &p.VendorID,
		&p.Price, &p.QuantityInStock, &p.MinimumStockLevel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

func (r *ProductRepo) list(query, op string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.ProductCode, &p.CategoryID, &p.VendorID,
			&p.Price, &p.QuantityInStock, &p.MinimumStockLevel, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
