package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/container"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func producto(id int64, name string) *entity.Product {
	return &entity.Product{ID: id, Name: name, ProductCode: name}
}

// TestStack_LIFO verifica que los pops devuelven los elementos en orden
// estrictamente inverso al de los pushes.
func TestStack_LIFO(t *testing.T) {
	s := container.NewStack()
	ps := []*entity.Product{producto(1, "leche"), producto(2, "queso"), producto(3, "yogur")}
	for _, p := range ps {
		s.Push(p)
	}
	require.Equal(t, 3, s.Size())

	for i := len(ps) - 1; i >= 0; i-- {
		got, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, ps[i].ID, got.ID, "el pop debe devolver el último push pendiente")
	}
	assert.True(t, s.IsEmpty())
}

func TestStack_PopVacia(t *testing.T) {
	s := container.NewStack()
	_, err := s.Pop()
	assert.ErrorIs(t, err, domain.ErrEmptyContainer)
}

func TestStack_PeekNoRetira(t *testing.T) {
	s := container.NewStack()

	_, err := s.Peek()
	assert.ErrorIs(t, err, domain.ErrEmptyContainer, "peek sobre pila vacía debe fallar igual que pop")

	s.Push(producto(1, "leche"))
	s.Push(producto(2, "queso"))

	top, err := s.Peek()
	require.NoError(t, err)
	assert.EqualValues(t, 2, top.ID)
	assert.Equal(t, 2, s.Size(), "peek no debe retirar")

	popped, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, top.ID, popped.ID, "pop debe devolver lo mismo que peek")
}

// TestStack_RemoveForIssue pin del comportamiento de salida: la pila ignora
// el producto solicitado y retira el agregado más reciente.
func TestStack_RemoveForIssue(t *testing.T) {
	s := container.NewStack()
	milk := producto(1, "leche")
	cheese := producto(2, "queso")
	s.Insert(milk)
	s.Insert(cheese)

	removed, err := s.RemoveForIssue(milk) // se pide leche...
	require.NoError(t, err)
	assert.Equal(t, cheese.ID, removed.ID, "...pero sale el queso, que fue el último en entrar")
}

func TestStack_ClearNoDestruye(t *testing.T) {
	s := container.NewStack()
	s.Push(producto(1, "leche"))
	s.Clear()
	assert.True(t, s.IsEmpty())

	// El contenedor sigue usable tras vaciarlo.
	s.Push(producto(2, "queso"))
	assert.Equal(t, 1, s.Size())
}
