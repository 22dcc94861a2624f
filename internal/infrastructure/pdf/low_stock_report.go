// Package pdf implementa el reporte imprimible de productos bajo stock mínimo.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Stock | Mínimo | Faltante        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de productos por reponer                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

var _ usecase.LowStockRenderer = (*LowStockReport)(nil)

// LowStockReport genera el PDF de reposición usando Maroto v2.
type LowStockReport struct{}

// NewLowStockReport construye el generador.
func NewLowStockReport() *LowStockReport { return &LowStockReport{} }

// Render genera el PDF y devuelve sus bytes.
func (g *LowStockReport) Render(products []*entity.Product) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de stock bajo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título + fecha de generación.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("PRODUCTOS BAJO STOCK MÍNIMO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Producto", 5, align.Left),
		h("Stock", 1, align.Right),
		h("Mínimo", 2, align.Right),
		h("Faltante", 2, align.Right),
	)
}

// productRow: una fila por producto, con el faltante resaltado.
func productRow(p *entity.Product) core.Row {
	missing := p.MinimumStockLevel - p.QuantityInStock
	if missing < 0 {
		missing = 0
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(p.ProductCode, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(strconv.Itoa(p.QuantityInStock), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(strconv.Itoa(p.MinimumStockLevel), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(2).Add(text.New(strconv.Itoa(missing), props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right,
			Top: 1, Right: 1, Color: colorAlert,
		})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Total de productos por reponer: %d", total), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary,
		}),
	))
}
