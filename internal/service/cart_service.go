package service

import (
	"context"

	"bookstore-be/internal/cart"
	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"
	"bookstore-be/internal/pkg/logger"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type ICartService interface {
	Summary(ctx context.Context, sessionID string, userId *uuid.UUID) (*dto.CartSummaryResponse, error)
	Add(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.AddCartItemRequest) (*dto.AddCartItemResponse, error)
	Update(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.MutateCartResponse, error)
	Remove(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.RemoveCartItemRequest) (*dto.MutateCartResponse, error)
	Clear(ctx context.Context, sessionID string) error
	Restore(ctx context.Context, sessionID string, userId uuid.UUID) error
}

type cartService struct {
	store      cart.Store
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCartService(store cart.Store, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICartService {
	return &cartService{
		store:      store,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *cartService) Summary(ctx context.Context, sessionID string, userId *uuid.UUID) (*dto.CartSummaryResponse, error) {
	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildSummary(ctx, c)
}

func (s *cartService) Add(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.AddCartItemRequest) (*dto.AddCartItemResponse, error) {
	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}

	added, err := c.Add(ctx, req.BookId.String(), req.Quantity)
	if err != nil {
		return nil, err
	}

	s.mirrorToProfile(ctx, c, userId)

	summary, err := s.buildSummary(ctx, c)
	if err != nil {
		return nil, err
	}
	return &dto.AddCartItemResponse{
		Added: added,
		Cart:  *summary,
	}, nil
}

func (s *cartService) Update(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.UpdateCartItemRequest) (*dto.MutateCartResponse, error) {
	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}

	changed, err := c.Update(ctx, req.BookId.String(), req.Quantity)
	if err != nil {
		return nil, err
	}

	summary, err := s.buildSummary(ctx, c)
	if err != nil {
		return nil, err
	}
	return &dto.MutateCartResponse{
		Changed: changed,
		Cart:    *summary,
	}, nil
}

func (s *cartService) Remove(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.RemoveCartItemRequest) (*dto.MutateCartResponse, error) {
	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}

	changed, err := c.Remove(ctx, req.BookId.String())
	if err != nil {
		return nil, err
	}

	summary, err := s.buildSummary(ctx, c)
	if err != nil {
		return nil, err
	}
	return &dto.MutateCartResponse{
		Changed: changed,
		Cart:    *summary,
	}, nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return err
	}
	return c.Clear(ctx)
}

// Restore replays the profile's mirrored cart snapshot into the session,
// the post-login flow.
func (s *cartService) Restore(ctx context.Context, sessionID string, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindByUserId(ctx, userId)
	if err != nil {
		return err
	}
	if profile == nil || profile.OldCart == "" {
		return nil
	}

	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return err
	}
	return c.Replace(ctx, profile.OldCart)
}

// mirrorToProfile stores the serialized cart on the caller's profile. It
// is auxiliary: failures are logged, never surfaced.
func (s *cartService) mirrorToProfile(ctx context.Context, c *cart.Cart, userId *uuid.UUID) {
	if userId == nil {
		return
	}
	snapshot, err := c.Snapshot()
	if err != nil {
		s.logger.Warn("cart", "failed to serialize cart snapshot", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
		return
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ProfileRepository().UpdateOldCart(ctx, *userId, snapshot); err != nil {
		s.logger.Warn("cart", "failed to mirror cart to profile", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *cartService) buildSummary(ctx context.Context, c *cart.Cart) (*dto.CartSummaryResponse, error) {
	quantities := c.Quantities()

	ids := make([]uuid.UUID, 0, len(quantities))
	for key := range quantities {
		id, err := uuid.Parse(key)
		if err != nil {
			// Keys are always uuid strings via the API; anything else is
			// stale session data and shows up as a zero-priced line.
			continue
		}
		ids = append(ids, id)
	}

	books := make(map[string]*entity.Book)
	if len(ids) > 0 {
		uow := s.uowFactory.NewUnitOfWork(ctx)
		found, err := uow.BookRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
		if err != nil {
			return nil, err
		}
		for _, b := range found {
			books[b.Id.String()] = b
		}
	}

	summary := &dto.CartSummaryResponse{
		Items: make([]dto.CartItemResponse, 0, len(quantities)),
		Count: c.Len(),
	}

	for _, key := range c.ProductIDs() {
		quantity := quantities[key]
		item := dto.CartItemResponse{
			Quantity: quantity,
		}
		if id, err := uuid.Parse(key); err == nil {
			item.BookId = id
		}

		// Entries whose book left the catalog keep a zero unit price so the
		// cart still renders and the total stays consistent with iteration.
		if book, ok := books[key]; ok {
			item.Title = book.Title
			item.Author = book.Author
			item.UnitPrice = book.EffectivePrice()
			item.InCatalog = true
		}
		item.LineTotal = item.UnitPrice * float64(quantity)

		summary.Items = append(summary.Items, item)
		summary.Total += item.LineTotal
	}

	return summary, nil
}
