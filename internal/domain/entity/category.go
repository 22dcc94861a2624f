package entity

import "time"

// Discipline es la estructura de datos asignada de forma permanente a una categoría.
// Decide por cuál contenedor en memoria pasan todas las entradas y salidas de
// los productos de esa categoría.
type Discipline string

const (
	// DisciplineStack LIFO: lo último que entra es lo primero que sale.
	DisciplineStack Discipline = "STACK"
	// DisciplineQueue FIFO: lo primero que entra es lo primero que sale.
	DisciplineQueue Discipline = "QUEUE"
	// DisciplineList lista dinámica con búsqueda y ordenamiento.
	DisciplineList Discipline = "LIST"
)

// Valid indica si la disciplina es una de las tres conocidas.
func (d Discipline) Valid() bool {
	switch d {
	case DisciplineStack, DisciplineQueue, DisciplineList:
		return true
	}
	return false
}

// Category representa una categoría de productos. La disciplina se fija al
// crearla y nunca cambia: una categoría sin disciplina es un error de
// configuración fatal para la operación, no algo recuperable.
type Category struct {
	ID          int64
	Name        string
	Description string
	Discipline  Discipline
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
