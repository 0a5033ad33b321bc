package dto

import "time"

// CreateClienteRequest body para POST /api/clientes.
type CreateClienteRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// UpdateClienteRequest body para PUT /api/clientes/:id.
type UpdateClienteRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// ClienteResponse cliente en respuestas.
type ClienteResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
