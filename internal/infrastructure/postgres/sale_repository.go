package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, product_id, quantity_sold, unit_price, total_amount, customer_name, notes, reference, sale_date`

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL. El libro
// de ventas es append-only: no hay Update ni Delete.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta y asigna el ID generado.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity_sold, unit_price, total_amount, customer_name, notes, reference, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		sale.ProductID, sale.QuantitySold, sale.UnitPrice, sale.TotalAmount,
		sale.CustomerName, sale.Notes, sale.Reference, sale.SaleDate,
	).Scan(&sale.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id int64) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProductID, &s.QuantitySold, &s.UnitPrice, &s.TotalAmount,
		&s.CustomerName, &s.Notes, &s.Reference, &s.SaleDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// List lista ventas recientes con paginación.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY sale_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, "list sales", limit, offset)
}

// ListByProduct lista las ventas de un producto.
func (r *SaleRepo) ListByProduct(productID int64) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE product_id = $1 ORDER BY sale_date DESC`
	return r.list(query, "list sales by product", productID)
}

// ListByDateRange lista ventas entre dos fechas inclusive.
func (r *SaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE sale_date >= $1 AND sale_date <= $2 ORDER BY sale_date`
	return r.list(query, "list sales by date range", from, to)
}

// TotalItemsSold suma las unidades vendidas de todo el libro.
func (r *SaleRepo) TotalItemsSold() (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity_sold), 0) FROM sales`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("total items sold: %w", err)
	}
	return total, nil
}

// TotalRevenue suma el monto total de todo el libro.
func (r *SaleRepo) TotalRevenue() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total revenue: %w", err)
	}
	return total, nil
}

func (r *SaleRepo) list(query, op string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.QuantitySold, &s.UnitPrice, &s.TotalAmount,
			&s.CustomerName, &s.Notes, &s.Reference, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
