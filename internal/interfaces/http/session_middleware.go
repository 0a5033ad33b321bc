package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Cookie y local para la sesión del carrito.
const (
	carritoCookie  = "carrito_sid"
	LocalSessionID = "session_id"
)

// SessionMiddleware garantiza un identificador de sesión para el carrito. Si
// el cliente no trae cookie se emite una nueva; el carrito queda ligado a ese
// identificador, no al usuario autenticado.
func SessionMiddleware(ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(carritoCookie)
		if sid == "" {
			sid = uuid.New().String()
		}
		c.Cookie(&fiber.Cookie{
			Name:     carritoCookie,
			Value:    sid,
			Expires:  time.Now().Add(ttl),
			HTTPOnly: true,
			SameSite: "Lax",
		})
		c.Locals(LocalSessionID, sid)
		return c.Next()
	}
}

// GetSessionID devuelve el identificador de sesión del carrito.
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
