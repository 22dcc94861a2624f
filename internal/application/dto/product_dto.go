package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto sin pasar por recepción.
// El stock inicia en cero; las unidades entran vía /inventory/add-goods.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Description       string          `json:"description"`
	ProductCode       string          `json:"product_code" validate:"required,min=1,max=100"`
	CategoryID        int64           `json:"category_id" validate:"required,gt=0"`
	VendorID          int64           `json:"vendor_id" validate:"required,gt=0"`
	Price             decimal.Decimal `json:"price"`
	MinimumStockLevel int             `json:"minimum_stock_level" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto. El stock no se
// edita aquí: solo cambia por recepciones y salidas.
type UpdateProductRequest struct {
	Name              *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description       *string          `json:"description"`
	VendorID          *int64           `json:"vendor_id" validate:"omitempty,gt=0"`
	Price             *decimal.Decimal `json:"price"`
	MinimumStockLevel *int             `json:"minimum_stock_level" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	ProductCode       string          `json:"product_code"`
	CategoryID        int64           `json:"category_id"`
	VendorID          int64           `json:"vendor_id"`
	Price             decimal.Decimal `json:"price"`
	QuantityInStock   int             `json:"quantity_in_stock"`
	MinimumStockLevel int             `json:"minimum_stock_level"`
	LowStock          bool            `json:"low_stock"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// PriceRangeRequest filtro de precios para /products/price-range.
type PriceRangeRequest struct {
	Min decimal.Decimal `query:"min"`
	Max decimal.Decimal `query:"max"`
}
