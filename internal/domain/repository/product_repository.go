package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	GetByCode(productCode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock persistido de un producto (se usa dentro de
	// la transacción de salida de mercancía).
	UpdateStock(id int64, quantityInStock int) error
	Delete(id int64) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByCategory(categoryID int64) ([]*entity.Product, error)
	// ListByCategoryOrderByName orden alfabético en BD, para categorías cuyo
	// contenedor en memoria no se reordena (pila/cola).
	ListByCategoryOrderByName(categoryID int64) ([]*entity.Product, error)
	// SearchByNameOrCode busca por subcadena (case-insensitive) en nombre y
	// código dentro de una categoría.
	SearchByNameOrCode(term string, categoryID int64) ([]*entity.Product, error)
	ListByPriceRange(min, max decimal.Decimal) ([]*entity.Product, error)
	// ListLowStock productos con stock <= nivel mínimo.
	ListLowStock() ([]*entity.Product, error)
}
