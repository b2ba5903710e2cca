package dto

import "time"

// CreateCategoryRequest entrada para crear una categoría.
// IsActive nil deja el valor por defecto (activa).
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

// UpdateCategoryRequest entrada para actualizar una categoría.
// Description nil actualiza solo el nombre.
type UpdateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}
