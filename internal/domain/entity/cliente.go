package entity

import "time"

// Cliente representa un comprador registrado (las ventas lo referencian de forma opcional).
type Cliente struct {
	ID        string
	Nombre    string
	Email     string
	Telefono  string
	Direccion string
	CreatedAt time.Time
	UpdatedAt time.Time
}
