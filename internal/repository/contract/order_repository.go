package contract

import (
	"context"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/specification"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	Update(ctx context.Context, order *entity.Order) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
}

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, items []*entity.OrderItem) error
	FindByOrderId(ctx context.Context, orderId uuid.UUID) ([]*entity.OrderItem, error)
}
