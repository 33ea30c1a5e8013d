package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book is the catalog row. Embedding is nil until the embed pipeline has
// processed the book; it must be produced by the same 384-dim model that
// encodes recommendation queries, otherwise cosine distances are meaningless.
type Book struct {
	Id          uuid.UUID
	Stock       int
	Reference   string
	Title       string
	Author      string
	Price       float64
	SalePrice   float64
	IsSale      bool
	Infantil    string
	Category    string
	Description string
	Iva         float64
	Subjects    string // comma-separated
	ISBN        string
	Publisher   string
	Year        string
	Dimensions  map[string]interface{} // {"height": ..., "width": ..., "thickness": ...}
	Embedding   []float32
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// EffectivePrice is the unit price the cart and checkout charge.
func (b *Book) EffectivePrice() float64 {
	if b.IsSale {
		return b.SalePrice
	}
	return b.Price
}
