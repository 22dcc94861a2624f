// seed puebla el catálogo base del almacén: las once categorías de abarrotes
// con su disciplina de contenedor y un par de proveedores de ejemplo.
// Es idempotente: las filas que ya existen se dejan como están.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Catálogo de categorías: 1-4 pila, 5-7 cola, 8-11 lista.
var categories = []entity.Category{
	{ID: 1, Name: "Canned Goods", Description: "Enlatados y conservas", Discipline: entity.DisciplineStack},
	{ID: 2, Name: "Dry Goods", Description: "Granos y secos", Discipline: entity.DisciplineStack},
	{ID: 3, Name: "Frozen Foods", Description: "Congelados", Discipline: entity.DisciplineStack},
	{ID: 4, Name: "Dairy", Description: "Lácteos", Discipline: entity.DisciplineStack},
	{ID: 5, Name: "Meat", Description: "Carnes rojas", Discipline: entity.DisciplineQueue},
	{ID: 6, Name: "Poultry", Description: "Aves", Discipline: entity.DisciplineQueue},
	{ID: 7, Name: "Seafood", Description: "Pescados y mariscos", Discipline: entity.DisciplineQueue},
	{ID: 8, Name: "Produce", Description: "Frutas y verduras", Discipline: entity.DisciplineList},
	{ID: 9, Name: "Bakery", Description: "Panadería", Discipline: entity.DisciplineList},
	{ID: 10, Name: "Beverages", Description: "Bebidas", Discipline: entity.DisciplineList},
	{ID: 11, Name: "Snacks", Description: "Pasabocas", Discipline: entity.DisciplineList},
}

var vendors = []entity.Vendor{
	{Name: "Distribuidora La Central", ContactPerson: "Marta Gómez", Phone: "+57 601 555 0101", Email: "ventas@lacentral.example", Address: "Calle 13 # 25-40, Bogotá"},
	{Name: "Alimentos del Valle", ContactPerson: "Jorge Restrepo", Phone: "+57 602 555 0202", Email: "pedidos@alvalle.example", Address: "Cra 8 # 15-22, Cali"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	catRepo := postgres.NewCategoryRepository(pool)
	now := time.Now()
	created := 0
	for _, c := range categories {
		existing, err := catRepo.GetByID(c.ID)
		if err != nil {
			log.Fatal().Err(err).Int64("id", c.ID).Msg("consultar categoría")
		}
		if existing != nil {
			continue
		}
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := catRepo.Create(&c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("crear categoría")
		}
		created++
	}
	log.Info().Int("created", created).Int("total", len(categories)).Msg("categorías sembradas")

	vendorRepo := postgres.NewVendorRepository(pool)
	existing, err := vendorRepo.List()
	if err != nil {
		log.Fatal().Err(err).Msg("listar proveedores")
	}
	if len(existing) == 0 {
		for _, v := range vendors {
			v.CreatedAt = now
			v.UpdatedAt = now
			if err := vendorRepo.Create(&v); err != nil {
				log.Fatal().Err(err).Str("name", v.Name).Msg("crear proveedor")
			}
		}
		log.Info().Int("created", len(vendors)).Msg("proveedores sembrados")
	}
}
