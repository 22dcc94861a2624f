package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ReportHandler reportes: resumen, análisis de costos, PDF y XML (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen de ventas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Performance godoc
// @Summary      Costos esperados por disciplina de contenedor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PerformanceResponse
// @Router       /api/reports/performance [get]
func (h *ReportHandler) Performance(c *fiber.Ctx) error {
	return c.JSON(h.uc.Performance())
}

// LowStockPDF godoc
// @Summary      Reporte PDF de productos bajo stock mínimo
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/low-stock.pdf [get]
func (h *ReportHandler) LowStockPDF(c *fiber.Ctx) error {
	out, err := h.uc.LowStockPDF()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock-bajo.pdf"`)
	return c.Send(out)
}

// CatalogXML godoc
// @Summary      Catálogo de productos en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string
// @Router       /api/reports/catalog.xml [get]
func (h *ReportHandler) CatalogXML(c *fiber.Ctx) error {
	out, err := h.uc.CatalogXML()
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}
