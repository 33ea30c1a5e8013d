package dto

import (
	"time"

	"github.com/google/uuid"
)

type CheckoutRequest struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country"`
}

type CheckoutResponse struct {
	OrderId         uuid.UUID `json:"order_id"`
	SnapToken       string    `json:"snap_token"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	Total           float64   `json:"total"`
}

type MidtransWebhookRequest struct {
	OrderId           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	TransactionStatus string `json:"transaction_status"`
	PaymentType       string `json:"payment_type"`
}

type OrderResponse struct {
	Id        uuid.UUID           `json:"id"`
	Status    string              `json:"status"`
	Total     float64             `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

type OrderItemResponse struct {
	BookId    uuid.UUID `json:"book_id"`
	Title     string    `json:"title"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

type ShippingAddressRequest struct {
	FullName     string `json:"full_name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country"`
}

type ShippingAddressResponse struct {
	Id           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AddressLine1 string    `json:"address_line1"`
	AddressLine2 string    `json:"address_line2"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
}
