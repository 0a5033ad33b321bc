package dto

import "time"

// CreateCategoriaRequest entrada para crear una categoría.
type CreateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// UpdateCategoriaRequest entrada para renombrar una categoría.
type UpdateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

// CategoriaResponse categoría en respuestas.
type CategoriaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
