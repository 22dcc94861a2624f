package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddGoodsRequest entrada para recibir mercancía. Con ProductID se repone un
// producto existente; sin él se crea uno nuevo con los datos restantes.
type AddGoodsRequest struct {
	ProductID         int64           `json:"product_id" validate:"omitempty,gt=0"`
	Name              string          `json:"name" validate:"required_without=ProductID,max=200"`
	Description       string          `json:"description"`
	ProductCode       string          `json:"product_code" validate:"required_without=ProductID,max=100"`
	CategoryID        int64           `json:"category_id" validate:"required,gt=0"`
	VendorID          int64           `json:"vendor_id" validate:"required,gt=0"`
	Price             decimal.Decimal `json:"price"`
	MinimumStockLevel int             `json:"minimum_stock_level" validate:"min=0"`
	Quantity          int             `json:"quantity" validate:"required,gt=0"`
}

// IssueGoodsRequest entrada para dar salida a mercancía.
type IssueGoodsRequest struct {
	ProductID    int64  `json:"product_id" validate:"required,gt=0"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	CustomerName string `json:"customer_name" validate:"required,min=1,max=200"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID           int64           `json:"id"`
	ProductID    int64           `json:"product_id"`
	QuantitySold int             `json:"quantity_sold"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CustomerName string          `json:"customer_name"`
	Notes        string          `json:"notes"`
	Reference    string          `json:"reference"`
	SaleDate     time.Time       `json:"sale_date"`
}

// SearchRequest filtros de búsqueda de productos dentro de una categoría.
type SearchRequest struct {
	Term       string `query:"term" validate:"required,min=1"`
	CategoryID int64  `query:"category_id" validate:"required,gt=0"`
}

// StatsResponse estado agregado de los contenedores en memoria.
type StatsResponse struct {
	StackItems  int `json:"stack_items"`
	QueueItems  int `json:"queue_items"`
	ListItems   int `json:"list_items"`
	Containers  int `json:"containers"`
	TalliedSKUs int `json:"tallied_skus"`
}
