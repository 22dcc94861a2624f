package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. QuantityInStock nunca es
// negativo: una salida que lo dejaría bajo cero se rechaza antes de mutar nada.
type Product struct {
	ID                int64
	Name              string
	Description       string
	ProductCode       string // código único de producto
	CategoryID        int64
	VendorID          int64
	Price             decimal.Decimal
	QuantityInStock   int
	MinimumStockLevel int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// LowStock indica si el stock actual está en o por debajo del mínimo.
func (p *Product) LowStock() bool {
	return p.QuantityInStock <= p.MinimumStockLevel
}
