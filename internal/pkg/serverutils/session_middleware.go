package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const CartSessionCookie = "cart_session"

// CartSessionMiddleware guarantees every request carries a cart session id.
// New visitors get a fresh cookie on first touch.
func CartSessionMiddleware(ctx *fiber.Ctx) error {
	sessionID := ctx.Cookies(CartSessionCookie)
	if sessionID == "" {
		sessionID = uuid.NewString()
		ctx.Cookie(&fiber.Cookie{
			Name:     CartSessionCookie,
			Value:    sessionID,
			Expires:  time.Now().Add(30 * 24 * time.Hour),
			HTTPOnly: true,
			SameSite: "Lax",
		})
	}
	ctx.Locals("session_id", sessionID)
	return ctx.Next()
}
