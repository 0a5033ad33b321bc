package carrito

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CartStore es el puerto de almacenamiento del carrito por sesión. La
// implementación vive en infraestructura (memoria con TTL); el caso de uso
// solo ve líneas por sessionID.
type CartStore interface {
	Get(sessionID string) []entity.CarritoItem
	Put(sessionID string, items []entity.CarritoItem)
	Clear(sessionID string)
}
