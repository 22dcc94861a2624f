package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// InventoryHandler expone el motor de inventario: recepción, salida,
// búsqueda, orden alfabético, stock bajo y estadísticas.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// AddGoods godoc
// @Summary      Recibir mercancía (crea o repone producto)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddGoodsRequest  true  "Recepción"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/add-goods [post]
func (h *InventoryHandler) AddGoods(c *fiber.Ctx) error {
	var in dto.AddGoodsRequest
	if !parseBody(c, &in) {
		return nil
	}
	product, err := h.uc.AddGoods(c.UserContext(), inventory.AddGoodsInput{
		ProductID:         in.ProductID,
		Name:              in.Name,
		Description:       in.Description,
		ProductCode:       in.ProductCode,
		CategoryID:        in.CategoryID,
		VendorID:          in.VendorID,
		Price:             in.Price,
		MinimumStockLevel: in.MinimumStockLevel,
		Quantity:          in.Quantity,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
}

// IssueGoods godoc
// @Summary      Dar salida a mercancía (registra venta)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IssueGoodsRequest  true  "Salida"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/issue [post]
func (h *InventoryHandler) IssueGoods(c *fiber.Ctx) error {
	var in dto.IssueGoodsRequest
	if !parseBody(c, &in) {
		return nil
	}
	sale, err := h.uc.IssueGoods(c.UserContext(), in.ProductID, in.Quantity, in.CustomerName)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usecase.ToSaleResponse(sale))
}

// Search godoc
// @Summary      Buscar productos por nombre o código dentro de una categoría
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        term         query  string  true  "Término de búsqueda"
// @Param        category_id  query  int     true  "Categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/search [get]
func (h *InventoryHandler) Search(c *fiber.Ctx) error {
	term := c.Query("term")
	categoryID := int64(c.QueryInt("category_id", 0))
	if term == "" || categoryID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "term y category_id son requeridos"})
	}
	products, err := h.uc.Search(term, categoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponses(products))
}

// Sorted godoc
// @Summary      Productos de una categoría en orden alfabético
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path  int  true  "Categoría"
// @Success      200  {array}   dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/sorted/{categoryId} [get]
func (h *InventoryHandler) Sorted(c *fiber.Ctx) error {
	categoryID, ok := paramID(c, "categoryId")
	if !ok {
		return nil
	}
	products, err := h.uc.SortAlphabetically(categoryID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponses(products))
}

// LowStock godoc
// @Summary      Productos con stock en o bajo el mínimo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.uc.LowStock()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductResponses(products))
}

// Stats godoc
// @Summary      Estado de los contenedores en memoria
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatsResponse
// @Router       /api/inventory/stats [get]
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	st := h.uc.Stats()
	return c.JSON(dto.StatsResponse{
		StackItems:  st.StackItems,
		QueueItems:  st.QueueItems,
		ListItems:   st.ListItems,
		Containers:  st.Containers,
		TalliedSKUs: st.TalliedSKUs,
	})
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		ProductCode:       p.ProductCode,
		CategoryID:        p.CategoryID,
		VendorID:          p.VendorID,
		Price:             p.Price,
		QuantityInStock:   p.QuantityInStock,
		MinimumStockLevel: p.MinimumStockLevel,
		LowStock:          p.LowStock(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}
