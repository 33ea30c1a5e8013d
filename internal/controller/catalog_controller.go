package controller

import (
	"bookstore-be/internal/dto"
	"bookstore-be/internal/pkg/serverutils"
	"bookstore-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
	ListBooks(ctx *fiber.Ctx) error
	GetBook(ctx *fiber.Ctx) error
	ListCategories(ctx *fiber.Ctx) error
	CreateBook(ctx *fiber.Ctx) error
	UpdateBook(ctx *fiber.Ctx) error
	DeleteBook(ctx *fiber.Ctx) error
}

type catalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) ICatalogController {
	return &catalogController{
		catalogService: catalogService,
	}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog/v1")
	h.Get("books", c.ListBooks)
	h.Get("search", c.ListBooks)
	h.Get("categories", c.ListCategories)
	h.Get("books/:id", c.GetBook)

	// Catalog writes need a logged-in caller.
	h.Post("books", serverutils.JwtMiddleware, c.CreateBook)
	h.Put("books/:id", serverutils.JwtMiddleware, c.UpdateBook)
	h.Delete("books/:id", serverutils.JwtMiddleware, c.DeleteBook)
}

func (c *catalogController) ListBooks(ctx *fiber.Ctx) error {
	var req dto.ListBooksRequest
	if err := ctx.QueryParser(&req); err != nil {
		return err
	}

	res, err := c.catalogService.ListBooks(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list books", res))
}

func (c *catalogController) GetBook(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	res, err := c.catalogService.GetBook(ctx.Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get book", res))
}

func (c *catalogController) ListCategories(ctx *fiber.Ctx) error {
	res, err := c.catalogService.ListCategories(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list categories", res))
}

func (c *catalogController) CreateBook(ctx *fiber.Ctx) error {
	var req dto.CreateBookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.CreateBook(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create book", res))
}

func (c *catalogController) UpdateBook(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	var req dto.UpdateBookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.catalogService.UpdateBook(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update book", res))
}

func (c *catalogController) DeleteBook(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid book id")
	}

	if err := c.catalogService.DeleteBook(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete book", fiber.Map{}))
}
