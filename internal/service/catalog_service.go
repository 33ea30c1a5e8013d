package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICatalogService interface {
	CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error)
	UpdateBook(ctx context.Context, req *dto.UpdateBookRequest) (*dto.BookResponse, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
	GetBook(ctx context.Context, id uuid.UUID) (*dto.BookResponse, error)
	ListBooks(ctx context.Context, req *dto.ListBooksRequest) (*dto.ListBooksResponse, error)
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, publisherService IPublisherService) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *catalogService) CreateBook(ctx context.Context, req *dto.CreateBookRequest) (*dto.BookResponse, error) {
	book := &entity.Book{
		Id:          uuid.New(),
		Reference:   req.Reference,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Subjects:    req.Subjects,
		Infantil:    req.Infantil,
		Category:    req.Category,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		IsSale:      req.IsSale,
		Stock:       req.Stock,
		Iva:         req.Iva,
		ISBN:        req.ISBN,
		Publisher:   req.Publisher,
		Year:        req.Year,
		Dimensions:  req.Dimensions,
		CreatedAt:   time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.BookRepository().Create(ctx, book); err != nil {
		return nil, err
	}

	if err := s.publishEmbed(ctx, book.Id); err != nil {
		return nil, err
	}

	return bookToResponse(book), nil
}

func (s *catalogService) UpdateBook(ctx context.Context, req *dto.UpdateBookRequest) (*dto.BookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "book not found")
	}

	book.Reference = req.Reference
	book.Title = req.Title
	book.Author = req.Author
	book.Description = req.Description
	book.Subjects = req.Subjects
	book.Infantil = req.Infantil
	book.Category = req.Category
	book.Price = req.Price
	book.SalePrice = req.SalePrice
	book.IsSale = req.IsSale
	book.Stock = req.Stock
	book.Iva = req.Iva
	book.ISBN = req.ISBN
	book.Publisher = req.Publisher
	book.Year = req.Year
	book.Dimensions = req.Dimensions
	// The document text changed, drop the vector until the pipeline
	// recomputes it so stale embeddings never serve recommendations.
	book.Embedding = nil

	if err := uow.BookRepository().Update(ctx, book); err != nil {
		return nil, err
	}

	if err := s.publishEmbed(ctx, book.Id); err != nil {
		return nil, err
	}

	return bookToResponse(book), nil
}

func (s *catalogService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.BookRepository().Delete(ctx, id)
}

func (s *catalogService) GetBook(ctx context.Context, id uuid.UUID) (*dto.BookResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	book, err := uow.BookRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "book not found")
	}
	return bookToResponse(book), nil
}

func (s *catalogService) ListBooks(ctx context.Context, req *dto.ListBooksRequest) (*dto.ListBooksResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filters := []specification.Specification{}
	if req.Search != "" {
		filters = append(filters, specification.TitleOrDescriptionLike{Query: req.Search})
	}
	if req.Category != "" {
		filters = append(filters, specification.ByCategory{Name: req.Category})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.BookRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	listSpecs := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: pageSize, Offset: (page - 1) * pageSize},
	)
	books, err := uow.BookRepository().FindAll(ctx, listSpecs...)
	if err != nil {
		return nil, err
	}

	res := &dto.ListBooksResponse{
		Books: make([]dto.BookResponse, len(books)),
		Total: total,
	}
	for i, b := range books {
		res.Books[i] = *bookToResponse(b)
	}
	return res, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}

	res := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = &dto.CategoryResponse{
			Id:          c.Id,
			Name:        c.Name,
			Description: c.Description,
		}
	}
	return res, nil
}

func (s *catalogService) publishEmbed(ctx context.Context, bookId uuid.UUID) error {
	if s.publisherService == nil {
		return errors.New("publisher service not configured")
	}
	msgPayload := dto.PublishEmbedBookMessage{
		BookId: bookId,
	}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, msgJson)
}

func bookToResponse(b *entity.Book) *dto.BookResponse {
	return &dto.BookResponse{
		Id:             b.Id,
		Reference:      b.Reference,
		Title:          b.Title,
		Author:         b.Author,
		Description:    b.Description,
		Subjects:       b.Subjects,
		Infantil:       b.Infantil,
		Category:       b.Category,
		Price:          b.Price,
		SalePrice:      b.SalePrice,
		IsSale:         b.IsSale,
		EffectivePrice: b.EffectivePrice(),
		Stock:          b.Stock,
		ISBN:           b.ISBN,
		Publisher:      b.Publisher,
		Year:           b.Year,
		HasEmbedding:   b.Embedding != nil,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
