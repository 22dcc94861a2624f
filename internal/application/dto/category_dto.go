package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría. La disciplina queda
// fijada al crear y no puede cambiarse después.
type CreateCategoryRequest struct {
	ID          int64  `json:"id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description"`
	Discipline  string `json:"discipline" validate:"required,oneof=STACK QUEUE LIST"`
}

// UpdateCategoryRequest entrada para actualizar nombre y descripción.
// No incluye Discipline a propósito.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Discipline  string    `json:"discipline"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
