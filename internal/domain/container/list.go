package container

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// List es el contenedor dinámico: arreglo indexable con búsqueda lineal y
// quicksort in-place. Add O(1) amortizado, RemoveAt/RemoveValue O(n),
// Get O(1), LinearSearch O(n).
//
// La igualdad entre elementos es por identidad de producto (mismo ID).
type List struct {
	items []*entity.Product
}

// NewList construye una lista vacía.
func NewList() *List {
	return &List{}
}

// Discipline devuelve DisciplineList.
func (l *List) Discipline() entity.Discipline { return entity.DisciplineList }

// Add agrega al final. O(1) amortizado.
func (l *List) Add(p *entity.Product) {
	l.items = append(l.items, p)
}

// RemoveAt retira y devuelve el elemento en index, desplazando los
// siguientes. Falla con ErrIndexOutOfRange fuera de [0, size). O(n).
func (l *List) RemoveAt(index int) (*entity.Product, error) {
	if index < 0 || index >= len(l.items) {
		return nil, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	p := l.items[index]
	copy(l.items[index:], l.items[index+1:])
	l.items[len(l.items)-1] = nil
	l.items = l.items[:len(l.items)-1]
	return p, nil
}

// RemoveValue retira la primera aparición del producto (igualdad por ID).
// Devuelve si hubo retiro. O(n).
func (l *List) RemoveValue(p *entity.Product) bool {
	i := l.LinearSearch(p)
	if i < 0 {
		return false
	}
	_, _ = l.RemoveAt(i)
	return true
}

// Get devuelve el elemento en index. Falla con ErrIndexOutOfRange fuera de
// [0, size). O(1).
func (l *List) Get(index int) (*entity.Product, error) {
	if index < 0 || index >= len(l.items) {
		return nil, fmt.Errorf("%w: %d", domain.ErrIndexOutOfRange, index)
	}
	return l.items[index], nil
}

// LinearSearch recorre del frente hacia atrás y devuelve el índice de la
// primera aparición del producto (igualdad por ID), o -1 si no está. O(n).
func (l *List) LinearSearch(p *entity.Product) int {
	if p == nil {
		return -1
	}
	for i, it := range l.items {
		if it.ID == p.ID {
			return i
		}
	}
	return -1
}

// Sort reordena in-place según el orden total que defina less. Es quicksort
// con pivote en el último elemento y partición de Lomuto: O(n log n)
// promedio, O(n²) en el peor caso (entrada ya ordenada o adversa). No es
// estable y la recursión no tiene fallback iterativo; para colecciones de
// tamaño de inventario la profundidad es aceptable.
func (l *List) Sort(less func(a, b *entity.Product) bool) {
	if len(l.items) <= 1 {
		return
	}
	l.quicksort(0, len(l.items)-1, less)
}

func (l *List) quicksort(low, high int, less func(a, b *entity.Product) bool) {
	if low < high {
		p := l.partition(low, high, less)
		l.quicksort(low, p-1, less)
		l.quicksort(p+1, high, less)
	}
}

// partition (Lomuto): pivote en items[high]; deja a su izquierda todo lo que
// no es mayor que él y devuelve su posición final.
func (l *List) partition(low, high int, less func(a, b *entity.Product) bool) int {
	pivot := l.items[high]
	i := low - 1
	for j := low; j < high; j++ {
		if !less(pivot, l.items[j]) { // items[j] <= pivot
			i++
			l.items[i], l.items[j] = l.items[j], l.items[i]
		}
	}
	l.items[i+1], l.items[high] = l.items[high], l.items[i+1]
	return i + 1
}

// Size devuelve la cantidad de elementos. O(1).
func (l *List) Size() int { return len(l.items) }

// IsEmpty indica si la lista está vacía. O(1).
func (l *List) IsEmpty() bool { return len(l.items) == 0 }

// Items devuelve una copia de los elementos en su orden actual.
func (l *List) Items() []*entity.Product {
	out := make([]*entity.Product, len(l.items))
	copy(out, l.items)
	return out
}

// Clear vacía la lista.
func (l *List) Clear() {
	l.items = nil
}

// Insert implementa Container vía Add.
func (l *List) Insert(p *entity.Product) { l.Add(p) }

// RemoveForIssue retira por disciplina: la referencia del producto emitido.
// A diferencia de pila y cola, aquí sí se respeta la identidad solicitada.
func (l *List) RemoveForIssue(p *entity.Product) (*entity.Product, error) {
	if !l.RemoveValue(p) {
		return nil, fmt.Errorf("%w: producto %d no está en la lista", domain.ErrNotFound, p.ID)
	}
	return p, nil
}
