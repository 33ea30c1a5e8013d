package controller

import (
	"bookstore-be/internal/dto"
	"bookstore-be/internal/pkg/serverutils"
	"bookstore-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	ByUser(ctx *fiber.Ctx) error
	ByTitle(ctx *fiber.Ctx) error
	ByQuery(ctx *fiber.Ctx) error
}

type recommendationController struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationController(recommendationService service.IRecommendationService) IRecommendationController {
	return &recommendationController{
		recommendationService: recommendationService,
	}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recommendation/v1")
	h.Post("by-user", c.ByUser)
	h.Post("by-title", c.ByTitle)
	h.Post("by-query", c.ByQuery)
}

func (c *recommendationController) ByUser(ctx *fiber.Ctx) error {
	var req dto.RecommendByUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	recommendation := c.recommendationService.ByUser(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", &dto.RecommendationResponse{
		Recommendation: recommendation,
	}))
}

func (c *recommendationController) ByTitle(ctx *fiber.Ctx) error {
	var req dto.RecommendByTitleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	recommendation := c.recommendationService.ByTitle(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", &dto.RecommendationResponse{
		Recommendation: recommendation,
	}))
}

func (c *recommendationController) ByQuery(ctx *fiber.Ctx) error {
	var req dto.RecommendByQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	recommendation := c.recommendationService.ByQuery(ctx.Context(), &req)
	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", &dto.RecommendationResponse{
		Recommendation: recommendation,
	}))
}
