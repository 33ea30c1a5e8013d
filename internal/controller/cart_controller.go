package controller

import (
	"bookstore-be/internal/dto"
	"bookstore-be/internal/pkg/serverutils"
	"bookstore-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	Summary(ctx *fiber.Ctx) error
	Add(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Remove(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	Restore(ctx *fiber.Ctx) error
}

type cartController struct {
	cartService service.ICartService
}

func NewCartController(cartService service.ICartService) ICartController {
	return &cartController{
		cartService: cartService,
	}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/cart/v1")
	h.Use(serverutils.CartSessionMiddleware)
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Get("", c.Summary)
	h.Post("items", c.Add)
	h.Put("items", c.Update)
	h.Delete("items", c.Remove)
	h.Delete("", c.Clear)
	h.Post("restore", serverutils.JwtMiddleware, c.Restore)
}

func (c *cartController) Summary(ctx *fiber.Ctx) error {
	res, err := c.cartService.Summary(ctx.Context(), sessionId(ctx), optionalUserId(ctx))
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get cart", res))
}

func (c *cartController) Add(ctx *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cartService.Add(ctx.Context(), sessionId(ctx), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success add cart item", res))
}

func (c *cartController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cartService.Update(ctx.Context(), sessionId(ctx), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update cart item", res))
}

func (c *cartController) Remove(ctx *fiber.Ctx) error {
	var req dto.RemoveCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cartService.Remove(ctx.Context(), sessionId(ctx), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success remove cart item", res))
}

func (c *cartController) Clear(ctx *fiber.Ctx) error {
	if err := c.cartService.Clear(ctx.Context(), sessionId(ctx)); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success clear cart", fiber.Map{}))
}

func (c *cartController) Restore(ctx *fiber.Ctx) error {
	userId, err := requiredUserId(ctx)
	if err != nil {
		return err
	}
	if err := c.cartService.Restore(ctx.Context(), sessionId(ctx), userId); err != nil {
		return err
	}

	res, err := c.cartService.Summary(ctx.Context(), sessionId(ctx), &userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success restore cart", res))
}
