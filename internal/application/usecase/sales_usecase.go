package usecase

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// SalesUseCase consultas de ventas. Las ventas se crean únicamente desde el
// motor de inventario (salida de mercancía); aquí solo se leen.
type SalesUseCase struct {
	repo repository.SaleRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(repo repository.SaleRepository) *SalesUseCase {
	return &SalesUseCase{repo: repo}
}

// GetByID obtiene una venta por ID.
func (uc *SalesUseCase) GetByID(id int64) (*dto.SaleResponse, error) {
	sale, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return ToSaleResponse(sale), nil
}

// List lista ventas con paginación.
func (uc *SalesUseCase) List(limit, offset int) ([]dto.SaleResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListByProduct lista las ventas de un producto.
func (uc *SalesUseCase) ListByProduct(productID int64) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

// ListByDateRange lista ventas entre dos fechas inclusive.
func (uc *SalesUseCase) ListByDateRange(from, to time.Time) ([]dto.SaleResponse, error) {
	list, err := uc.repo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}
	return toSaleResponses(list), nil
}

func toSaleResponses(list []*entity.Sale) []dto.SaleResponse {
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *ToSaleResponse(s))
	}
	return items
}

// ToSaleResponse convierte la entidad a su DTO de salida.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:           s.ID,
		ProductID:    s.ProductID,
		QuantitySold: s.QuantitySold,
		UnitPrice:    s.UnitPrice,
		TotalAmount:  s.TotalAmount,
		CustomerName: s.CustomerName,
		Notes:        s.Notes,
		Reference:    s.Reference,
		SaleDate:     s.SaleDate,
	}
}
