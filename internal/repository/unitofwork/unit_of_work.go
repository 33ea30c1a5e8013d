package unitofwork

import (
	"context"

	"bookstore-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProfileRepository() contract.ProfileRepository
	BookRepository() contract.BookRepository
	CategoryRepository() contract.CategoryRepository
	PurchaseRepository() contract.PurchaseRepository
	OrderRepository() contract.OrderRepository
	OrderItemRepository() contract.OrderItemRepository
	ShippingAddressRepository() contract.ShippingAddressRepository
}
