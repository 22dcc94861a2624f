package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Test interno (mismo package) para poder inspeccionar el almacenamiento de
// respaldo y los cursores tras el reset.

func qProduct(id int64) *entity.Product {
	return &entity.Product{ID: id}
}

// TestQueue_FIFO verifica que los dequeues devuelven los elementos en el
// mismo orden en que se encolaron.
func TestQueue_FIFO(t *testing.T) {
	q := NewQueue()
	for id := int64(1); id <= 4; id++ {
		q.Enqueue(qProduct(id))
	}
	require.Equal(t, 4, q.Size())

	for id := int64(1); id <= 4; id++ {
		got, err := q.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, id, got.ID, "el dequeue debe respetar el orden de llegada")
	}
	assert.True(t, q.IsEmpty())
}

func TestQueue_DequeueVacia(t *testing.T) {
	q := NewQueue()
	_, err := q.Dequeue()
	assert.ErrorIs(t, err, domain.ErrEmptyContainer)

	_, err = q.Front()
	assert.ErrorIs(t, err, domain.ErrEmptyContainer)
}

func TestQueue_FrontNoRetira(t *testing.T) {
	q := NewQueue()
	q.Enqueue(qProduct(1))
	q.Enqueue(qProduct(2))

	front, err := q.Front()
	require.NoError(t, err)
	assert.EqualValues(t, 1, front.ID)
	assert.Equal(t, 2, q.Size())

	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, front.ID, got.ID, "dequeue debe devolver lo mismo que front")
}

// TestQueue_ResetAlVaciarse verifica que al quedar vacía por un dequeue el
// almacenamiento y los cursores vuelven al estado inicial (la huella de
// memoria se libera), sin cambiar la semántica observable.
func TestQueue_ResetAlVaciarse(t *testing.T) {
	q := NewQueue()
	for id := int64(1); id <= 50; id++ {
		q.Enqueue(qProduct(id))
	}
	for id := int64(1); id <= 50; id++ {
		_, err := q.Dequeue()
		require.NoError(t, err)
	}

	assert.Nil(t, q.items, "el slice de respaldo debe liberarse al vaciarse")
	assert.Equal(t, 0, q.front)
	assert.Equal(t, -1, q.rear)

	// Y la cola sigue operando con normalidad.
	q.Enqueue(qProduct(99))
	got, err := q.Dequeue()
	require.NoError(t, err)
	assert.EqualValues(t, 99, got.ID)
}

func TestQueue_ItemsEnOrden(t *testing.T) {
	q := NewQueue()
	q.Enqueue(qProduct(1))
	q.Enqueue(qProduct(2))
	q.Enqueue(qProduct(3))
	_, _ = q.Dequeue()

	items := q.Items()
	require.Len(t, items, 2)
	assert.EqualValues(t, 2, items[0].ID)
	assert.EqualValues(t, 3, items[1].ID)
}
