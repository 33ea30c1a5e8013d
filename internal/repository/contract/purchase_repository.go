package contract

import (
	"context"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/specification"

	"github.com/google/uuid"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error)
	// BookIDsByUser returns the ids of every book the user has purchased.
	BookIDsByUser(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error)
}
