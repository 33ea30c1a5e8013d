package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending = "PENDING"
	OrderStatusPaid    = "PAID"
	OrderStatusFailed  = "FAILED"
)

type Order struct {
	Id              uuid.UUID
	UserId          *uuid.UUID // nil for guest checkout
	FullName        string
	Email           string
	ShippingAddress string
	AmountPaid      float64
	Status          string
	DateOrdered     time.Time
}

// OrderItem snapshots the unit price at checkout time so later catalog price
// changes do not rewrite order history.
type OrderItem struct {
	Id       uuid.UUID
	OrderId  uuid.UUID
	BookId   uuid.UUID
	Quantity int
	Price    float64
}
