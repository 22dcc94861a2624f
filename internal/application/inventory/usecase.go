package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/container"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// UseCase es el motor de inventario enrutado por categoría: resuelve la
// disciplina de la categoría del producto, opera el contenedor en memoria
// correspondiente y mantiene el stock persistido y el libro de ventas.
//
// El motor es el dueño exclusivo de los contenedores; ningún otro componente
// los lee ni los muta. Los contenedores son cachés derivadas: tras un
// reinicio arrancan vacíos y el stock persistido manda.
type UseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	vendors    repository.VendorRepository
	sales      repository.SaleRepository
	tx         TxRunner
	reg        *registry

	// tally acumula unidades vendidas por código de producto.
	tallyMu sync.Mutex
	tally   map[string]int

	log *logger.Logger
}

// NewUseCase construye el motor.
func NewUseCase(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	vendors repository.VendorRepository,
	sales repository.SaleRepository,
	tx TxRunner,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		products:   products,
		categories: categories,
		vendors:    vendors,
		sales:      sales,
		tx:         tx,
		reg:        newRegistry(),
		tally:      make(map[string]int),
		log:        log,
	}
}

// AddGoodsInput entrada para una recepción de mercancía. Si ProductID > 0 se
// repone un producto existente; si no, se crea uno nuevo con estos datos.
type AddGoodsInput struct {
	ProductID         int64
	Name              string
	Description       string
	ProductCode       string
	CategoryID        int64
	VendorID          int64
	Price             decimal.Decimal
	MinimumStockLevel int
	Quantity          int
}

// AddGoods registra una recepción: persiste/actualiza el producto, incrementa
// su stock y agrega la referencia al contenedor de su categoría con la
// inserción propia de la disciplina (push/enqueue/add). El contenedor se crea
// en la primera recepción de la categoría.
func (uc *UseCase) AddGoods(ctx context.Context, in AddGoodsInput) (*entity.Product, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la recepción requiere cantidad positiva, llegó %d", domain.ErrInvalidQuantity, in.Quantity)
	}

	cat, err := uc.categories.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, in.CategoryID)
	}

	// El proveedor solo se valida como referencia en la recepción.
	vendor, err := uc.vendors.GetByID(in.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, in.VendorID)
	}

	now := time.Now()
	var product *entity.Product
	if in.ProductID > 0 {
		product, err = uc.products.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
		}
		product.QuantityInStock += in.Quantity
		product.UpdatedAt = now
		if err := uc.products.Update(product); err != nil {
			return nil, err
		}
	} else {
		existing, err := uc.products.GetByCode(in.ProductCode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: código de producto %q", domain.ErrDuplicate, in.ProductCode)
		}
		product = &entity.Product{
			Name:              in.Name,
			Description:       in.Description,
			ProductCode:       in.ProductCode,
			CategoryID:        cat.ID,
			VendorID:          vendor.ID,
			Price:             in.Price,
			QuantityInStock:   in.Quantity,
			MinimumStockLevel: in.MinimumStockLevel,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := uc.products.Create(product); err != nil {
			return nil, err
		}
	}

	if err := uc.reg.withContainer(cat, func(c container.Container) error {
		c.Insert(product)
		return nil
	}); err != nil {
		return nil, err
	}

	uc.log.Info().
		Int64("product_id", product.ID).
		Int64("category_id", cat.ID).
		Str("discipline", string(cat.Discipline)).
		Int("quantity", in.Quantity).
		Int("stock", product.QuantityInStock).
		Msg("recepción de mercancía registrada")

	return product, nil
}

// IssueGoods registra una salida (venta): valida cantidad, cliente y stock,
// retira una referencia lógica del contenedor según la disciplina, y dentro
// de una transacción decrementa el stock persistido y agrega la venta al
// libro. Devuelve la venta creada.
//
// El retiro del contenedor sigue la disciplina, no la unidad física vendida:
// la pila saca lo último agregado y la cola lo más antiguo, sin importar qué
// producto se pidió; solo la lista retira la referencia del producto emitido.
// El contenedor rastrea presencia y orden a nivel de categoría.
func (uc *UseCase) IssueGoods(ctx context.Context, productID int64, quantity int, customerName string) (*entity.Sale, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: la salida requiere cantidad positiva, llegó %d", domain.ErrInvalidQuantity, quantity)
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es requerido", domain.ErrInvalidQuantity)
	}

	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, productID)
	}
	if product.QuantityInStock < quantity {
		return nil, fmt.Errorf("%w: disponible %d, solicitado %d",
			domain.ErrInsufficientStock, product.QuantityInStock, quantity)
	}

	cat, err := uc.categories.GetByID(product.CategoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: el producto %d referencia la categoría inexistente %d",
			domain.ErrDataIntegrity, product.ID, product.CategoryID)
	}

	sale := entity.NewSale(product, quantity, customerName, "", uuid.New().String())
	newStock := product.QuantityInStock - quantity

	err = uc.reg.withContainer(cat, func(c container.Container) error {
		removed, remErr := c.RemoveForIssue(product)
		if remErr != nil {
			// Contenedor vacío o sin la referencia (p.ej. tras un reinicio):
			// el stock persistido manda, la salida continúa.
			uc.log.Warn().
				Int64("product_id", product.ID).
				Int64("category_id", cat.ID).
				Str("discipline", string(cat.Discipline)).
				Err(remErr).
				Msg("el contenedor no tenía referencia para la salida; se continúa con el stock persistido")
		}

		txErr := uc.tx.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
			return saleRepo.Create(sale)
		})
		if txErr != nil {
			// La persistencia falló: se repone la referencia retirada para que
			// la caché no quede por detrás del stock, que no cambió.
			if removed != nil {
				c.Insert(removed)
			}
			return txErr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	product.QuantityInStock = newStock
	product.UpdatedAt = time.Now()

	uc.tallyMu.Lock()
	uc.tally[product.ProductCode] += quantity
	uc.tallyMu.Unlock()

	uc.log.Info().
		Int64("product_id", product.ID).
		Str("reference", sale.Reference).
		Int("quantity", quantity).
		Str("customer", customerName).
		Str("total", sale.TotalAmount.String()).
		Msg("salida de mercancía registrada")

	return sale, nil
}

// Search busca por subcadena (case-insensitive) en nombre y código. Para
// categorías con disciplina LIST recorre el contenedor en memoria (búsqueda
// lineal); para pila y cola delega en la consulta del repositorio, porque
// LIFO/FIFO no soportan búsqueda dirigida eficiente. Un resultado vacío no
// es un error.
func (uc *UseCase) Search(term string, categoryID int64) ([]*entity.Product, error) {
	cat, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, categoryID)
	}

	if cat.Discipline != entity.DisciplineList {
		return uc.products.SearchByNameOrCode(term, cat.ID)
	}

	t := strings.ToLower(term)
	out := make([]*entity.Product, 0)
	err = uc.reg.withContainer(cat, func(c container.Container) error {
		for _, p := range c.Items() {
			if strings.Contains(strings.ToLower(p.Name), t) ||
				strings.Contains(strings.ToLower(p.ProductCode), t) {
				out = append(out, p)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SortAlphabetically ordena por nombre sin distinguir mayúsculas. Para
// categorías LIST ordena el contenedor in-place con quicksort y devuelve su
// contenido; para pila y cola delega en la consulta ordenada del repositorio
// (esos contenedores nunca se reordenan: su orden LIFO/FIFO es semántico).
func (uc *UseCase) SortAlphabetically(categoryID int64) ([]*entity.Product, error) {
	cat, err := uc.categories.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, categoryID)
	}

	if cat.Discipline != entity.DisciplineList {
		return uc.products.ListByCategoryOrderByName(cat.ID)
	}

	// Collator nuevo por llamada: no es seguro compartirlo entre categorías
	// que ordenan en paralelo.
	col := collate.New(language.Spanish, collate.IgnoreCase)
	var out []*entity.Product
	err = uc.reg.withContainer(cat, func(c container.Container) error {
		l, ok := c.(*container.List)
		if !ok {
			return fmt.Errorf("%w: la categoría %d declara LIST pero su contenedor es %s",
				domain.ErrDataIntegrity, cat.ID, c.Discipline())
		}
		l.Sort(func(a, b *entity.Product) bool {
			return col.CompareString(a.Name, b.Name) < 0
		})
		out = l.Items()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LowStock devuelve los productos con stock en o por debajo del mínimo.
// Es un predicado del repositorio; no participa ningún contenedor.
func (uc *UseCase) LowStock() ([]*entity.Product, error) {
	return uc.products.ListLowStock()
}

// Stats estadísticas de los contenedores y del conteo de ventas.
type Stats struct {
	StackItems  int `json:"stack_items"`
	QueueItems  int `json:"queue_items"`
	ListItems   int `json:"list_items"`
	Containers  int `json:"containers"`
	TalliedSKUs int `json:"tallied_skus"`
}

// Stats devuelve los conteos actuales por disciplina.
func (uc *UseCase) Stats() Stats {
	sizes := uc.reg.sizesByDiscipline()

	uc.tallyMu.Lock()
	tallied := len(uc.tally)
	uc.tallyMu.Unlock()

	return Stats{
		StackItems:  sizes[entity.DisciplineStack],
		QueueItems:  sizes[entity.DisciplineQueue],
		ListItems:   sizes[entity.DisciplineList],
		Containers:  uc.reg.containerCount(),
		TalliedSKUs: tallied,
	}
}

// Tally devuelve una copia del acumulado de unidades vendidas por código de
// producto.
func (uc *UseCase) Tally() map[string]int {
	uc.tallyMu.Lock()
	defer uc.tallyMu.Unlock()
	out := make(map[string]int, len(uc.tally))
	for k, v := range uc.tally {
		out[k] = v
	}
	return out
}
