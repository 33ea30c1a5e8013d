package contract

import (
	"context"

	"bookstore-be/internal/entity"

	"github.com/google/uuid"
)

type ShippingAddressRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.ShippingAddress, error)
	Save(ctx context.Context, address *entity.ShippingAddress) error
}
