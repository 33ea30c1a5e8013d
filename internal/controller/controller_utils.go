package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// sessionId is always present behind CartSessionMiddleware.
func sessionId(ctx *fiber.Ctx) string {
	if v, ok := ctx.Locals("session_id").(string); ok {
		return v
	}
	return ""
}

// optionalUserId returns the authenticated user's id if the optional JWT
// middleware attached one.
func optionalUserId(ctx *fiber.Ctx) *uuid.UUID {
	v, ok := ctx.Locals("user_id").(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}

func requiredUserId(ctx *fiber.Ctx) (uuid.UUID, error) {
	id := optionalUserId(ctx)
	if id == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "authentication required")
	}
	return *id, nil
}
