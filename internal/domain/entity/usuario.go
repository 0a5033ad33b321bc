package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdministrador = "ADMINISTRADOR"
	RolCajero        = "CAJERO"
	RolUsuario       = "USUARIO"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // ADMINISTRADOR, CAJERO, USUARIO
	Estado       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
