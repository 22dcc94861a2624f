package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una salida de mercancía (venta). TotalAmount es derivado:
// se recalcula siempre desde UnitPrice × QuantitySold y nunca se asigna aparte.
type Sale struct {
	ID           int64
	ProductID    int64
	QuantitySold int
	UnitPrice    decimal.Decimal // precio unitario al momento de la venta
	TotalAmount  decimal.Decimal
	CustomerName string
	Notes        string
	Reference    string // identificador de operación (uuid)
	SaleDate     time.Time
}

// NewSale construye la venta con el precio del producto al momento de la salida
// y el total ya calculado.
func NewSale(product *Product, quantity int, customerName, notes, reference string) *Sale {
	s := &Sale{
		ProductID:    product.ID,
		QuantitySold: quantity,
		UnitPrice:    product.Price,
		CustomerName: customerName,
		Notes:        notes,
		Reference:    reference,
		SaleDate:     time.Now(),
	}
	s.ComputeTotal()
	return s
}

// ComputeTotal recalcula TotalAmount. Debe llamarse tras cambiar cantidad o precio.
func (s *Sale) ComputeTotal() {
	s.TotalAmount = s.UnitPrice.Mul(decimal.NewFromInt(int64(s.QuantitySold)))
}
