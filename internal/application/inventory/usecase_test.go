package inventory

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	seq   int64
	byID  map[int64]*entity.Product
	fail  bool // fuerza error en UpdateStock para probar la reposición en el contenedor
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.seq++
	p.ID = r.seq
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) UpdateStock(id int64, qty int) error {
	if r.fail {
		return errors.New("fallo simulado de persistencia")
	}
	p, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.QuantityInStock = qty
	return nil
}

func (r *fakeProductRepo) Delete(id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategoryOrderByName(categoryID int64) ([]*entity.Product, error) {
	out, _ := r.ListByCategory(categoryID)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && strings.ToLower(out[j].Name) < strings.ToLower(out[j-1].Name); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out, nil
}

func (r *fakeProductRepo) SearchByNameOrCode(term string, categoryID int64) ([]*entity.Product, error) {
	t := strings.ToLower(term)
	var out []*entity.Product
	for _, p := range r.byID {
		if p.CategoryID != categoryID {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), t) || strings.Contains(strings.ToLower(p.ProductCode), t) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByPriceRange(min, max decimal.Decimal) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListLowStock() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.byID {
		if p.LowStock() {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeCategoryRepo struct {
	byID map[int64]*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error { r.byID[c.ID] = c; return nil }
func (r *fakeCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.byID {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (r *fakeCategoryRepo) Update(c *entity.Category) error { r.byID[c.ID] = c; return nil }
func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeCategoryRepo) ListByDiscipline(d entity.Discipline) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.byID {
		if c.Discipline == d {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeVendorRepo struct {
	byID map[int64]*entity.Vendor
}

func (r *fakeVendorRepo) Create(v *entity.Vendor) error { r.byID[v.ID] = v; return nil }
func (r *fakeVendorRepo) GetByID(id int64) (*entity.Vendor, error) {
	v, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return v, nil
}
func (r *fakeVendorRepo) Update(v *entity.Vendor) error { r.byID[v.ID] = v; return nil }
func (r *fakeVendorRepo) Delete(id int64) error         { delete(r.byID, id); return nil }
func (r *fakeVendorRepo) List() ([]*entity.Vendor, error) {
	var out []*entity.Vendor
	for _, v := range r.byID {
		out = append(out, v)
	}
	return out, nil
}

type fakeSaleRepo struct {
	seq   int64
	sales []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.seq++
	s.ID = r.seq
	r.sales = append(r.sales, s)
	return nil
}
func (r *fakeSaleRepo) GetByID(id int64) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSaleRepo) List(limit, offset int) ([]*entity.Sale, error) { return r.sales, nil }
func (r *fakeSaleRepo) ListByProduct(productID int64) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.ProductID == productID {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) ListByDateRange(from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if !s.SaleDate.Before(from) && !s.SaleDate.After(to) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSaleRepo) TotalItemsSold() (int64, error) {
	var n int64
	for _, s := range r.sales {
		n += int64(s.QuantitySold)
	}
	return n, nil
}
func (r *fakeSaleRepo) TotalRevenue() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, s := range r.sales {
		total = total.Add(s.TotalAmount)
	}
	return total, nil
}

// fakeTxRunner ejecuta el callback directamente contra los fakes, sin
// transacción real.
type fakeTxRunner struct {
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	return fn(r.products, r.sales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado del motor de prueba
// ──────────────────────────────────────────────────────────────────────────────

type engineFixture struct {
	uc       *UseCase
	products *fakeProductRepo
	sales    *fakeSaleRepo
}

func newEngine(t *testing.T, categories ...*entity.Category) *engineFixture {
	t.Helper()
	products := newFakeProductRepo()
	sales := &fakeSaleRepo{}
	catRepo := &fakeCategoryRepo{byID: make(map[int64]*entity.Category)}
	for _, c := range categories {
		catRepo.byID[c.ID] = c
	}
	vendors := &fakeVendorRepo{byID: map[int64]*entity.Vendor{
		1: {ID: 1, Name: "Proveedor Uno"},
	}}
	uc := NewUseCase(products, catRepo, vendors, sales, &fakeTxRunner{products: products, sales: sales}, logger.Nop())
	return &engineFixture{uc: uc, products: products, sales: sales}
}

func addInput(name, code string, categoryID int64, qty int) AddGoodsInput {
	return AddGoodsInput{
		Name:        name,
		ProductCode: code,
		CategoryID:  categoryID,
		VendorID:    1,
		Price:       decimal.NewFromInt(10),
		Quantity:    qty,
	}
}

// containerItems inspecciona el contenedor de una categoría (test interno).
func (f *engineFixture) containerItems(t *testing.T, categoryID int64) []*entity.Product {
	t.Helper()
	e, ok := f.uc.reg.entries[categoryID]
	require.True(t, ok, "el contenedor de la categoría %d debe existir", categoryID)
	return e.c.Items()
}

var (
	catDairy   = &entity.Category{ID: 4, Name: "Dairy", Discipline: entity.DisciplineStack}
	catMeat    = &entity.Category{ID: 7, Name: "Meat", Discipline: entity.DisciplineQueue}
	catProduce = &entity.Category{ID: 8, Name: "Produce", Discipline: entity.DisciplineList}
)

// ──────────────────────────────────────────────────────────────────────────────
// AddGoods
// ──────────────────────────────────────────────────────────────────────────────

func TestAddGoods_CantidadInvalida(t *testing.T) {
	f := newEngine(t, catDairy)
	for _, qty := range []int{0, -3} {
		_, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", catDairy.ID, qty))
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	}
}

func TestAddGoods_CategoriaYProveedorDebenExistir(t *testing.T) {
	f := newEngine(t, catDairy)

	_, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", 999, 5))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := addInput("Leche", "DAI-001", catDairy.ID, 5)
	in.VendorID = 999
	_, err = f.uc.AddGoods(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddGoods_DisciplinaSinAsignarEsFatal(t *testing.T) {
	roto := &entity.Category{ID: 50, Name: "Rota"} // sin disciplina
	f := newEngine(t, roto)

	_, err := f.uc.AddGoods(context.Background(), addInput("X", "X-001", roto.ID, 1))
	assert.ErrorIs(t, err, domain.ErrDataIntegrity,
		"una disciplina vacía es error de integridad, nunca se adivina")
}

func TestAddGoods_CreaYRepone(t *testing.T) {
	f := newEngine(t, catDairy)

	p, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", catDairy.ID, 5))
	require.NoError(t, err)
	require.NotZero(t, p.ID)
	assert.Equal(t, 5, p.QuantityInStock)

	// Reposición sobre el mismo producto.
	in := AddGoodsInput{ProductID: p.ID, CategoryID: catDairy.ID, VendorID: 1, Quantity: 3}
	p2, err := f.uc.AddGoods(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 8, p2.QuantityInStock)

	// Cada recepción agrega una referencia al contenedor.
	assert.Len(t, f.containerItems(t, catDairy.ID), 2)

	// Código duplicado en alta nueva.
	_, err = f.uc.AddGoods(context.Background(), addInput("Otra leche", "DAI-001", catDairy.ID, 1))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// IssueGoods
// ──────────────────────────────────────────────────────────────────────────────

func TestIssueGoods_Validaciones(t *testing.T) {
	f := newEngine(t, catDairy)
	p, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", catDairy.ID, 5))
	require.NoError(t, err)

	_, err = f.uc.IssueGoods(context.Background(), p.ID, 0, "Ana")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = f.uc.IssueGoods(context.Background(), p.ID, 1, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "cliente en blanco se rechaza")

	_, err = f.uc.IssueGoods(context.Background(), 999, 1, "Ana")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestIssueGoods_NuncaBajoCero emitir exactamente el stock deja 0; emitir
// stock+1 falla con ErrInsufficientStock y no muta nada.
func TestIssueGoods_NuncaBajoCero(t *testing.T) {
	f := newEngine(t, catDairy)
	p, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", catDairy.ID, 5))
	require.NoError(t, err)

	_, err = f.uc.IssueGoods(context.Background(), p.ID, 6, "Ana")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	got, _ := f.products.GetByID(p.ID)
	assert.Equal(t, 5, got.QuantityInStock, "un rechazo no muta el stock")

	sale, err := f.uc.IssueGoods(context.Background(), p.ID, 5, "Ana")
	require.NoError(t, err)
	assert.Equal(t, 5, sale.QuantitySold)
	got, _ = f.products.GetByID(p.ID)
	assert.Equal(t, 0, got.QuantityInStock)
}

func TestIssueGoods_VentaConTotalDerivado(t *testing.T) {
	f := newEngine(t, catDairy)
	in := addInput("Leche", "DAI-001", catDairy.ID, 5)
	in.Price = decimal.RequireFromString("2.50")
	p, err := f.uc.AddGoods(context.Background(), in)
	require.NoError(t, err)

	sale, err := f.uc.IssueGoods(context.Background(), p.ID, 3, "Ana")
	require.NoError(t, err)
	assert.True(t, sale.TotalAmount.Equal(decimal.RequireFromString("7.50")),
		"total = precio unitario × cantidad, obtuvo %s", sale.TotalAmount)
	assert.NotEmpty(t, sale.Reference)
	require.Len(t, f.sales.sales, 1)

	// El tally por código de producto se acumula.
	assert.Equal(t, map[string]int{"DAI-001": 3}, f.uc.Tally())
}

// TestIssueGoods_RoundTrip addGoods(p, n) seguido de issueGoods(p, n) deja el
// stock en su valor previo y el contenedor con el mismo tamaño que antes del
// par de llamadas.
func TestIssueGoods_RoundTrip(t *testing.T) {
	f := newEngine(t, catProduce)
	p, err := f.uc.AddGoods(context.Background(), addInput("Banana", "PRO-001", catProduce.ID, 4))
	require.NoError(t, err)
	sizeBefore := len(f.containerItems(t, catProduce.ID))
	stockBefore := p.QuantityInStock

	p2, err := f.uc.AddGoods(context.Background(), AddGoodsInput{ProductID: p.ID, CategoryID: catProduce.ID, VendorID: 1, Quantity: 7})
	require.NoError(t, err)
	require.Equal(t, stockBefore+7, p2.QuantityInStock)

	_, err = f.uc.IssueGoods(context.Background(), p.ID, 7, "X")
	require.NoError(t, err)

	got, _ := f.products.GetByID(p.ID)
	assert.Equal(t, stockBefore, got.QuantityInStock)
	assert.Len(t, f.containerItems(t, catProduce.ID), sizeBefore)
}

// TestIssueGoods_EscenarioDairyStack disciplina Stack: la salida retira la
// entrada lógica más reciente, sin importar qué producto se vende.
func TestIssueGoods_EscenarioDairyStack(t *testing.T) {
	f := newEngine(t, catDairy)

	milk, err := f.uc.AddGoods(context.Background(), addInput("Milk", "DAI-001", catDairy.ID, 5))
	require.NoError(t, err)
	cheese, err := f.uc.AddGoods(context.Background(), addInput("Cheese", "DAI-002", catDairy.ID, 5))
	require.NoError(t, err)

	_, err = f.uc.IssueGoods(context.Background(), cheese.ID, 1, "Ann")
	require.NoError(t, err)

	// Se retiró la referencia de cheese (la última en entrar); queda milk.
	items := f.containerItems(t, catDairy.ID)
	require.Len(t, items, 1)
	assert.Equal(t, milk.ID, items[0].ID)
}

// TestIssueGoods_EscenarioMeatQueue disciplina Queue: la primera salida
// retira la referencia más antigua (beef), la segunda la siguiente (pork).
func TestIssueGoods_EscenarioMeatQueue(t *testing.T) {
	f := newEngine(t, catMeat)

	beef, err := f.uc.AddGoods(context.Background(), addInput("Beef", "MEA-001", catMeat.ID, 1))
	require.NoError(t, err)
	pork, err := f.uc.AddGoods(context.Background(), addInput("Pork", "MEA-002", catMeat.ID, 1))
	require.NoError(t, err)

	_, err = f.uc.IssueGoods(context.Background(), pork.ID, 1, "Ann")
	require.NoError(t, err)
	items := f.containerItems(t, catMeat.ID)
	require.Len(t, items, 1)
	assert.Equal(t, pork.ID, items[0].ID, "FIFO: salió beef primero aunque se vendió pork")

	_, err = f.uc.IssueGoods(context.Background(), beef.ID, 1, "Ann")
	require.NoError(t, err)
	assert.Empty(t, f.containerItems(t, catMeat.ID))
}

// TestIssueGoods_FalloDePersistenciaReponeLaReferencia si la transacción
// falla, la referencia retirada vuelve al contenedor y el stock no cambia.
func TestIssueGoods_FalloDePersistenciaReponeLaReferencia(t *testing.T) {
	f := newEngine(t, catDairy)
	p, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", catDairy.ID, 5))
	require.NoError(t, err)

	f.products.fail = true
	_, err = f.uc.IssueGoods(context.Background(), p.ID, 2, "Ana")
	require.Error(t, err)

	assert.Len(t, f.containerItems(t, catDairy.ID), 1, "la referencia retirada se repone")
	f.products.fail = false
	got, _ := f.products.GetByID(p.ID)
	assert.Equal(t, 5, got.QuantityInStock)
	assert.Empty(t, f.sales.sales)
	assert.Empty(t, f.uc.Tally())
}

// TestIssueGoods_ContenedorVacioNoEsFatal tras un "reinicio" (contenedor
// vacío con stock persistido) la salida continúa con advertencia.
func TestIssueGoods_ContenedorVacioNoEsFatal(t *testing.T) {
	f := newEngine(t, catDairy)
	p, err := f.uc.AddGoods(context.Background(), addInput("Leche", "DAI-001", catDairy.ID, 5))
	require.NoError(t, err)

	// Vaciar el contenedor simulando una caché reconstruida desde cero.
	e := f.uc.reg.entries[catDairy.ID]
	_, err = e.c.RemoveForIssue(p)
	require.NoError(t, err)

	sale, err := f.uc.IssueGoods(context.Background(), p.ID, 1, "Ana")
	require.NoError(t, err, "el stock persistido manda; el contenedor es caché derivada")
	assert.NotNil(t, sale)
	got, _ := f.products.GetByID(p.ID)
	assert.Equal(t, 4, got.QuantityInStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Search / SortAlphabetically / LowStock / Stats
// ──────────────────────────────────────────────────────────────────────────────

// TestEscenarioProduceList categoría LIST con Banana, Apple, Cherry en ese
// orden: ordenar devuelve Apple, Banana, Cherry y buscar "an" devuelve Banana.
func TestEscenarioProduceList(t *testing.T) {
	f := newEngine(t, catProduce)
	ctx := context.Background()

	for i, name := range []string{"Banana", "Apple", "Cherry"} {
		_, err := f.uc.AddGoods(ctx, addInput(name, "PRO-00"+string(rune('1'+i)), catProduce.ID, 3))
		require.NoError(t, err)
	}

	sorted, err := f.uc.SortAlphabetically(catProduce.ID)
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Apple", sorted[0].Name)
	assert.Equal(t, "Banana", sorted[1].Name)
	assert.Equal(t, "Cherry", sorted[2].Name)

	found, err := f.uc.Search("an", catProduce.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Banana", found[0].Name)

	// Resultado vacío no es error.
	found, err = f.uc.Search("zzz", catProduce.ID)
	require.NoError(t, err)
	assert.Empty(t, found)
}

// TestSearch_StackDelegaAlRepositorio las categorías LIFO/FIFO no soportan
// búsqueda dirigida en memoria; se delega a la consulta del repositorio.
func TestSearch_StackDelegaAlRepositorio(t *testing.T) {
	f := newEngine(t, catDairy)
	ctx := context.Background()
	_, err := f.uc.AddGoods(ctx, addInput("Milk", "DAI-001", catDairy.ID, 2))
	require.NoError(t, err)
	_, err = f.uc.AddGoods(ctx, addInput("Cheese", "DAI-002", catDairy.ID, 2))
	require.NoError(t, err)

	found, err := f.uc.Search("mil", catDairy.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Milk", found[0].Name)
}

// TestSort_QueueNoSeReordena para pila/cola se delega al orden de BD y el
// contenedor conserva su orden FIFO.
func TestSort_QueueNoSeReordena(t *testing.T) {
	f := newEngine(t, catMeat)
	ctx := context.Background()
	_, err := f.uc.AddGoods(ctx, addInput("Pork", "MEA-002", catMeat.ID, 1))
	require.NoError(t, err)
	_, err = f.uc.AddGoods(ctx, addInput("Beef", "MEA-001", catMeat.ID, 1))
	require.NoError(t, err)

	sorted, err := f.uc.SortAlphabetically(catMeat.ID)
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "Beef", sorted[0].Name)

	items := f.containerItems(t, catMeat.ID)
	assert.Equal(t, "Pork", items[0].Name, "el orden FIFO del contenedor no se toca")
}

func TestSort_CategoriaInexistente(t *testing.T) {
	f := newEngine(t)
	_, err := f.uc.SortAlphabetically(999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Search("x", 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStock(t *testing.T) {
	f := newEngine(t, catDairy)
	in := addInput("Leche", "DAI-001", catDairy.ID, 2)
	in.MinimumStockLevel = 3
	p, err := f.uc.AddGoods(context.Background(), in)
	require.NoError(t, err)

	low, err := f.uc.LowStock()
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, p.ID, low[0].ID)
}

func TestStats(t *testing.T) {
	f := newEngine(t, catDairy, catMeat, catProduce)
	ctx := context.Background()

	_, err := f.uc.AddGoods(ctx, addInput("Milk", "DAI-001", catDairy.ID, 1))
	require.NoError(t, err)
	_, err = f.uc.AddGoods(ctx, addInput("Beef", "MEA-001", catMeat.ID, 1))
	require.NoError(t, err)
	_, err = f.uc.AddGoods(ctx, addInput("Banana", "PRO-001", catProduce.ID, 1))
	require.NoError(t, err)
	_, err = f.uc.AddGoods(ctx, addInput("Apple", "PRO-002", catProduce.ID, 1))
	require.NoError(t, err)

	st := f.uc.Stats()
	assert.Equal(t, 1, st.StackItems)
	assert.Equal(t, 1, st.QueueItems)
	assert.Equal(t, 2, st.ListItems)
	assert.Equal(t, 3, st.Containers)
	assert.Equal(t, 0, st.TalliedSKUs)
}
