package controller

import (
	"bookstore-be/internal/dto"
	"bookstore-be/internal/pkg/serverutils"
	"bookstore-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Notification(ctx *fiber.Ctx) error
	GetShippingAddress(ctx *fiber.Ctx) error
	SaveShippingAddress(ctx *fiber.Ctx) error
}

type checkoutController struct {
	checkoutService service.ICheckoutService
}

func NewCheckoutController(checkoutService service.ICheckoutService) ICheckoutController {
	return &checkoutController{
		checkoutService: checkoutService,
	}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkout/v1")
	// Payment gateway callback carries its own signature, no session.
	h.Post("notification", c.Notification)

	h.Use(serverutils.CartSessionMiddleware)
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("", c.Checkout)
	h.Get("shipping-address", serverutils.JwtMiddleware, c.GetShippingAddress)
	h.Put("shipping-address", serverutils.JwtMiddleware, c.SaveShippingAddress)
}

func (c *checkoutController) Checkout(ctx *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.Checkout(ctx.Context(), sessionId(ctx), optionalUserId(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success create order", res))
}

func (c *checkoutController) Notification(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := c.checkoutService.HandleNotification(ctx.Context(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{}))
}

func (c *checkoutController) GetShippingAddress(ctx *fiber.Ctx) error {
	userId, err := requiredUserId(ctx)
	if err != nil {
		return err
	}

	res, err := c.checkoutService.GetShippingAddress(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get shipping address", res))
}

func (c *checkoutController) SaveShippingAddress(ctx *fiber.Ctx) error {
	userId, err := requiredUserId(ctx)
	if err != nil {
		return err
	}

	var req dto.ShippingAddressRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.checkoutService.SaveShippingAddress(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success save shipping address", res))
}
