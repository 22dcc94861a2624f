package container

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Stack es el contenedor LIFO. Respaldado por un slice con cursor explícito
// de tope: Push O(1) amortizado, Pop y Peek O(1).
type Stack struct {
	items []*entity.Product
	top   int
}

// NewStack construye una pila vacía.
func NewStack() *Stack {
	return &Stack{top: -1}
}

// Discipline devuelve DisciplineStack.
func (s *Stack) Discipline() entity.Discipline { return entity.DisciplineStack }

// Push agrega al tope. O(1) amortizado; no tiene modo de fallo.
func (s *Stack) Push(p *entity.Product) {
	s.items = append(s.items, p)
	s.top++
}

// Pop retira y devuelve el último elemento agregado aún no retirado.
// Falla con ErrEmptyContainer si no queda ninguno. O(1).
func (s *Stack) Pop() (*entity.Product, error) {
	if s.IsEmpty() {
		return nil, domain.ErrEmptyContainer
	}
	p := s.items[s.top]
	s.items[s.top] = nil
	s.items = s.items[:s.top]
	s.top--
	return p, nil
}

// Peek devuelve el mismo elemento que devolvería Pop, sin retirarlo.
func (s *Stack) Peek() (*entity.Product, error) {
	if s.IsEmpty() {
		return nil, domain.ErrEmptyContainer
	}
	return s.items[s.top], nil
}

// Size devuelve la cantidad de elementos. O(1).
func (s *Stack) Size() int { return s.top + 1 }

// IsEmpty indica si la pila está vacía. O(1).
func (s *Stack) IsEmpty() bool { return s.top == -1 }

// Items devuelve una copia de los elementos, del fondo al tope.
func (s *Stack) Items() []*entity.Product {
	out := make([]*entity.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Clear vacía la pila. El contenedor sigue vivo: vaciarlo no lo destruye.
func (s *Stack) Clear() {
	s.items = nil
	s.top = -1
}

// Insert implementa Container vía Push.
func (s *Stack) Insert(p *entity.Product) { s.Push(p) }

// RemoveForIssue retira por disciplina: Pop. Ignora el producto solicitado,
// la pila rastrea presencia y orden a nivel de categoría, no unidades.
func (s *Stack) RemoveForIssue(_ *entity.Product) (*entity.Product, error) {
	return s.Pop()
}
