package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SaleRepository define el puerto para el libro de ventas (append-only).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id int64) (*entity.Sale, error)
	List(limit, offset int) ([]*entity.Sale, error)
	ListByProduct(productID int64) ([]*entity.Sale, error)
	ListByDateRange(from, to time.Time) ([]*entity.Sale, error)
	// TotalItemsSold y TotalRevenue agregan sobre todo el libro.
	TotalItemsSold() (int64, error)
	TotalRevenue() (decimal.Decimal, error)
}
