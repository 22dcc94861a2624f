// Package container implementa las tres estructuras en memoria por las que el
// motor de inventario enruta las entradas y salidas según la disciplina de la
// categoría: pila (LIFO), cola (FIFO) y lista dinámica.
//
// Los contenedores guardan referencias a productos "presentes" en la
// estructura de su categoría; son cachés derivadas y reconstruibles, no la
// fuente de verdad del stock persistido. Ninguno es seguro para uso
// concurrente por sí mismo: la exclusión mutua por categoría vive en el
// registro del motor.
package container

import (
	"fmt"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Container es la capacidad común de las tres estructuras. Insert y
// RemoveForIssue aplican la inserción y el retiro propios de cada disciplina:
//
//   - Stack: Push / Pop (retira la última referencia agregada, sin importar
//     qué unidad física se vende)
//   - Queue: Enqueue / Dequeue (retira la más antigua)
//   - List:  Add / RemoveValue (retira la referencia del producto indicado)
type Container interface {
	Discipline() entity.Discipline
	Insert(p *entity.Product)
	// RemoveForIssue retira una referencia lógica según la disciplina y la
	// devuelve. Falla con ErrEmptyContainer (pila/cola vacía) o ErrNotFound
	// (lista sin el producto); el llamador decide si eso es fatal.
	RemoveForIssue(p *entity.Product) (*entity.Product, error)
	Items() []*entity.Product
	Size() int
	IsEmpty() bool
}

// New resuelve la disciplina a su contenedor. Es el router de categorías:
// el mapeo es autoritativo y una disciplina vacía o desconocida es un
// ErrDataIntegrity, nunca algo que se adivina.
func New(d entity.Discipline) (Container, error) {
	switch d {
	case entity.DisciplineStack:
		return NewStack(), nil
	case entity.DisciplineQueue:
		return NewQueue(), nil
	case entity.DisciplineList:
		return NewList(), nil
	default:
		return nil, fmt.Errorf("%w: disciplina de categoría %q", domain.ErrDataIntegrity, d)
	}
}
