package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")

	// ErrInvalidQuantity cantidad no positiva en una entrada o salida de mercancía.
	ErrInvalidQuantity = errors.New("cantidad inválida")
	// ErrInsufficientStock la salida excede el stock disponible.
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrEmptyContainer pop/dequeue/peek/front sobre una pila o cola vacía.
	ErrEmptyContainer = errors.New("contenedor vacío")
	// ErrIndexOutOfRange acceso a la lista fuera de [0, size).
	ErrIndexOutOfRange = errors.New("índice fuera de rango")
	// ErrDataIntegrity la disciplina de una categoría falta o contradice al router.
	// El motor nunca adivina una disciplina; el dato se repara fuera del camino normal.
	ErrDataIntegrity = errors.New("error de integridad de datos")
)
