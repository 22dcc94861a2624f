package dto

import "github.com/shopspring/decimal"

// SummaryResponse resumen de ventas para /reports/summary.
type SummaryResponse struct {
	TotalItemsSold int64           `json:"total_items_sold"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	SoldByProduct  map[string]int  `json:"sold_by_product"` // código de producto -> unidades en esta corrida
}

// PerformanceEntry costo esperado de una operación según la disciplina.
type PerformanceEntry struct {
	Operation  string `json:"operation"`
	Complexity string `json:"complexity"`
	Notes      string `json:"notes"`
}

// PerformanceResponse análisis de costos por disciplina.
type PerformanceResponse struct {
	Stack []PerformanceEntry `json:"stack"`
	Queue []PerformanceEntry `json:"queue"`
	List  []PerformanceEntry `json:"list"`
}
