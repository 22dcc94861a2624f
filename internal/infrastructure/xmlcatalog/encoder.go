// Package xmlcatalog serializa el catálogo de productos a XML para
// intercambio con sistemas externos.
package xmlcatalog

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var _ usecase.CatalogEncoder = (*Encoder)(nil)

// Encoder construye el documento XML del catálogo con etree.
type Encoder struct{}

// NewEncoder construye el encoder.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode arma el catálogo: una sección por categoría con sus productos.
//
//	<Catalog generatedAt="...">
//	  <Category id="8" name="Produce" discipline="LIST">
//	    <Product id="12" code="PRO-001">...</Product>
//	  </Category>
//	</Catalog>
func (e *Encoder) Encode(categories []*entity.Category, productsByCategory map[int64][]*entity.Product) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Catalog")
	root.CreateAttr("generatedAt", time.Now().Format(time.RFC3339))

	for _, c := range categories {
		cat := root.CreateElement("Category")
		cat.CreateAttr("id", strconv.FormatInt(c.ID, 10))
		cat.CreateAttr("name", c.Name)
		cat.CreateAttr("discipline", string(c.Discipline))

		for _, p := range productsByCategory[c.ID] {
			prod := cat.CreateElement("Product")
			prod.CreateAttr("id", strconv.FormatInt(p.ID, 10))
			prod.CreateAttr("code", p.ProductCode)
			prod.CreateElement("Name").SetText(p.Name)
			if p.Description != "" {
				prod.CreateElement("Description").SetText(p.Description)
			}
			prod.CreateElement("Price").SetText(p.Price.StringFixed(2))
			prod.CreateElement("QuantityInStock").SetText(strconv.Itoa(p.QuantityInStock))
			prod.CreateElement("MinimumStockLevel").SetText(strconv.Itoa(p.MinimumStockLevel))
		}
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlcatalog: serializar: %w", err)
	}
	return out, nil
}
