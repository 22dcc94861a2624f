package container

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Queue es el contenedor FIFO. Respaldado por un slice con cursores front y
// rear para que Dequeue no desplace elementos: Enqueue O(1) amortizado,
// Dequeue O(1) amortizado, Front O(1).
type Queue struct {
	items []*entity.Product
	front int
	rear  int
	size  int
}

// NewQueue construye una cola vacía.
func NewQueue() *Queue {
	return &Queue{front: 0, rear: -1}
}

// Discipline devuelve DisciplineQueue.
func (q *Queue) Discipline() entity.Discipline { return entity.DisciplineQueue }

// Enqueue agrega al final. O(1) amortizado.
func (q *Queue) Enqueue(p *entity.Product) {
	q.items = append(q.items, p)
	q.rear++
	q.size++
}

// Dequeue retira y devuelve el elemento más antiguo aún no retirado.
// Falla con ErrEmptyContainer si no queda ninguno. Cuando la cola queda
// vacía, el almacenamiento y los cursores vuelven al estado inicial para
// recuperar espacio; la semántica observable no cambia.
func (q *Queue) Dequeue() (*entity.Product, error) {
	if q.IsEmpty() {
		return nil, domain.ErrEmptyContainer
	}
	p := q.items[q.front]
	q.items[q.front] = nil
	q.front++
	q.size--
	if q.size == 0 {
		q.items = nil
		q.front = 0
		q.rear = -1
	}
	return p, nil
}

// Front devuelve el mismo elemento que devolvería Dequeue, sin retirarlo.
func (q *Queue) Front() (*entity.Product, error) {
	if q.IsEmpty() {
		return nil, domain.ErrEmptyContainer
	}
	return q.items[q.front], nil
}

// Size devuelve la cantidad de elementos. O(1).
func (q *Queue) Size() int { return q.size }

// IsEmpty indica si la cola está vacía. O(1).
func (q *Queue) IsEmpty() bool { return q.size == 0 }

// Items devuelve una copia de los elementos en orden de llegada.
func (q *Queue) Items() []*entity.Product {
	out := make([]*entity.Product, 0, q.size)
	for i := q.front; i <= q.rear && i < len(q.items); i++ {
		out = append(out, q.items[i])
	}
	return out
}

// Clear vacía la cola y restablece cursores.
func (q *Queue) Clear() {
	q.items = nil
	q.front = 0
	q.rear = -1
	q.size = 0
}

// Insert implementa Container vía Enqueue.
func (q *Queue) Insert(p *entity.Product) { q.Enqueue(p) }

// RemoveForIssue retira por disciplina: Dequeue. Ignora el producto
// solicitado, igual que la pila.
func (q *Queue) RemoveForIssue(_ *entity.Product) (*entity.Product, error) {
	return q.Dequeue()
}
