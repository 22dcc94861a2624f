package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	CategoryUC  *usecase.CategoryUseCase
	VendorUC    *usecase.VendorUseCase
	SalesUC     *usecase.SalesUseCase
	ReportUC    *usecase.ReportUseCase
	InventoryUC *inventory.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/price-range", productHandler.PriceRange)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ProductUC)
	categories.Post("/", RequireRole(entity.RoleAdmin), categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Get("/:id/products", categoryHandler.Products)
	categories.Put("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Update)

	// Vendors (protegido)
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", RequireRole(entity.RoleAdmin), vendorHandler.Delete)

	// Inventory (protegido): recepción y salida pasan por el motor.
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Post("/add-goods", RequireRole(entity.RoleAdmin, entity.RoleBodeguero), inventoryHandler.AddGoods)
	invGroup.Post("/issue", inventoryHandler.IssueGoods)
	invGroup.Get("/search", inventoryHandler.Search)
	invGroup.Get("/sorted/:categoryId", inventoryHandler.Sorted)
	invGroup.Get("/low-stock", inventoryHandler.LowStock)
	invGroup.Get("/stats", inventoryHandler.Stats)

	// Sales (protegido)
	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Get("/", salesHandler.List)
	sales.Get("/:id", salesHandler.GetByID)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/performance", reportHandler.Performance)
	reports.Get("/low-stock.pdf", reportHandler.LowStockPDF)
	reports.Get("/catalog.xml", reportHandler.CatalogXML)
}
