package dto

import (
	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	BookId   uuid.UUID `json:"book_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

type UpdateCartItemRequest struct {
	BookId   uuid.UUID `json:"book_id" validate:"required"`
	Quantity int       `json:"quantity" validate:"required,min=1"`
}

type RemoveCartItemRequest struct {
	BookId uuid.UUID `json:"book_id" validate:"required"`
}

type CartItemResponse struct {
	BookId    uuid.UUID `json:"book_id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	LineTotal float64   `json:"line_total"`
	InCatalog bool      `json:"in_catalog"`
}

type CartSummaryResponse struct {
	Items []CartItemResponse `json:"items"`
	Count int                `json:"count"`
	Total float64            `json:"total"`
}

type AddCartItemResponse struct {
	Added bool                `json:"added"`
	Cart  CartSummaryResponse `json:"cart"`
}

type MutateCartResponse struct {
	Changed bool                `json:"changed"`
	Cart    CartSummaryResponse `json:"cart"`
}
