package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Tallier expone el conteo de unidades vendidas por código de producto
// acumulado en memoria durante la corrida actual.
type Tallier interface {
	Tally() map[string]int
}

// LowStockRenderer produce el reporte PDF de productos bajo mínimo.
type LowStockRenderer interface {
	Render(products []*entity.Product) ([]byte, error)
}

// CatalogEncoder produce el catálogo XML de categorías con sus productos.
type CatalogEncoder interface {
	Encode(categories []*entity.Category, productsByCategory map[int64][]*entity.Product) ([]byte, error)
}

// ReportUseCase reportes: resumen de ventas, análisis de costos por
// disciplina, PDF de stock bajo y catálogo XML.
type ReportUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	catRepo     repository.CategoryRepository
	tallier     Tallier
	pdf         LowStockRenderer
	xml         CatalogEncoder
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	catRepo repository.CategoryRepository,
	tallier Tallier,
	pdf LowStockRenderer,
	xml CatalogEncoder,
) *ReportUseCase {
	return &ReportUseCase{
		saleRepo:    saleRepo,
		productRepo: productRepo,
		catRepo:     catRepo,
		tallier:     tallier,
		pdf:         pdf,
		xml:         xml,
	}
}

// Summary combina los agregados persistidos de ventas con el tally en
// memoria de la corrida actual.
func (uc *ReportUseCase) Summary() (*dto.SummaryResponse, error) {
	items, err := uc.saleRepo.TotalItemsSold()
	if err != nil {
		return nil, err
	}
	revenue, err := uc.saleRepo.TotalRevenue()
	if err != nil {
		return nil, err
	}
	return &dto.SummaryResponse{
		TotalItemsSold: items,
		TotalRevenue:   revenue,
		SoldByProduct:  uc.tallier.Tally(),
	}, nil
}

// Performance describe el costo de cada operación según la disciplina del
// contenedor. Es estático: depende del algoritmo, no de los datos.
func (uc *ReportUseCase) Performance() *dto.PerformanceResponse {
	return &dto.PerformanceResponse{
		Stack: []dto.PerformanceEntry{
			{Operation: "push", Complexity: "O(1)", Notes: "inserta en el tope"},
			{Operation: "pop", Complexity: "O(1)", Notes: "retira el tope; LIFO"},
			{Operation: "peek", Complexity: "O(1)", Notes: "consulta sin retirar"},
		},
		Queue: []dto.PerformanceEntry{
			{Operation: "enqueue", Complexity: "O(1)", Notes: "inserta al final"},
			{Operation: "dequeue", Complexity: "O(1)", Notes: "retira el frente; FIFO"},
			{Operation: "front", Complexity: "O(1)", Notes: "consulta sin retirar"},
		},
		List: []dto.PerformanceEntry{
			{Operation: "add", Complexity: "O(1) amortizado", Notes: "agrega al final"},
			{Operation: "removeAt", Complexity: "O(n)", Notes: "desplaza los elementos siguientes"},
			{Operation: "linearSearch", Complexity: "O(n)", Notes: "recorrido secuencial"},
			{Operation: "sort", Complexity: "O(n log n) promedio, O(n²) peor caso", Notes: "quicksort con pivote en el último elemento"},
		},
	}
}

// LowStockPDF genera el PDF de productos con stock en o bajo el mínimo.
func (uc *ReportUseCase) LowStockPDF() ([]byte, error) {
	products, err := uc.productRepo.ListLowStock()
	if err != nil {
		return nil, err
	}
	return uc.pdf.Render(products)
}

// CatalogXML genera el catálogo XML completo agrupado por categoría.
func (uc *ReportUseCase) CatalogXML() ([]byte, error) {
	categories, err := uc.catRepo.List()
	if err != nil {
		return nil, err
	}
	byCategory := make(map[int64][]*entity.Product, len(categories))
	for _, c := range categories {
		products, err := uc.productRepo.ListByCategoryOrderByName(c.ID)
		if err != nil {
			return nil, err
		}
		byCategory[c.ID] = products
	}
	return uc.xml.Encode(categories, byCategory)
}
