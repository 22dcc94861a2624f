package inventory

import (
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/container"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// entry es el contenedor de una categoría junto con su candado. Toda
// mutación del contenedor ocurre con entry.mu tomado; categorías distintas
// avanzan en paralelo.
type entry struct {
	mu sync.Mutex
	c  container.Container
}

// registry es el dueño exclusivo de los contenedores por categoría
// (categoryID -> entry), con creación perezosa al primer uso. Los
// contenedores nunca se destruyen: vaciarlos no los elimina del mapa.
type registry struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

func newRegistry() *registry {
	return &registry{entries: make(map[int64]*entry)}
}

// withContainer resuelve (o crea) el contenedor de la categoría y ejecuta fn
// con exclusión mutua por categoría. Devuelve ErrDataIntegrity si la
// disciplina de la categoría falta o es desconocida.
func (r *registry) withContainer(cat *entity.Category, fn func(container.Container) error) error {
	e, err := r.entry(cat)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.c)
}

func (r *registry) entry(cat *entity.Category) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[cat.ID]; ok {
		return e, nil
	}
	c, err := container.New(cat.Discipline)
	if err != nil {
		return nil, err
	}
	e := &entry{c: c}
	r.entries[cat.ID] = e
	return e, nil
}

// sizesByDiscipline cuenta los elementos presentes en todos los contenedores,
// agrupados por disciplina.
func (r *registry) sizesByDiscipline() map[entity.Discipline]int {
	r.mu.Lock()
	snapshot := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		snapshot = append(snapshot, e)
	}
	r.mu.Unlock()

	sizes := make(map[entity.Discipline]int, 3)
	for _, e := range snapshot {
		e.mu.Lock()
		sizes[e.c.Discipline()] += e.c.Size()
		e.mu.Unlock()
	}
	return sizes
}

// containerCount devuelve cuántos contenedores se han creado.
func (r *registry) containerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
