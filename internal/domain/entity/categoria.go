package entity

import "time"

// Categoria agrupa productos del catálogo.
// No puede eliminarse mientras tenga productos asociados (RESTRICT en la FK).
type Categoria struct {
	ID        string
	Nombre    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
