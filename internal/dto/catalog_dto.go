package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookRequest struct {
	Reference   string                 `json:"reference"`
	Title       string                 `json:"title" validate:"required"`
	Author      string                 `json:"author"`
	Description string                 `json:"description"`
	Subjects    string                 `json:"subjects"`
	Infantil    string                 `json:"infantil"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price" validate:"min=0"`
	SalePrice   float64                `json:"sale_price" validate:"min=0"`
	IsSale      bool                   `json:"is_sale"`
	Stock       int                    `json:"stock" validate:"min=0"`
	Iva         float64                `json:"iva"`
	ISBN        string                 `json:"isbn"`
	Publisher   string                 `json:"publisher"`
	Year        string                 `json:"year"`
	Dimensions  map[string]interface{} `json:"dimensions"`
}

type UpdateBookRequest struct {
	Id          uuid.UUID
	Reference   string                 `json:"reference"`
	Title       string                 `json:"title" validate:"required"`
	Author      string                 `json:"author"`
	Description string                 `json:"description"`
	Subjects    string                 `json:"subjects"`
	Infantil    string                 `json:"infantil"`
	Category    string                 `json:"category"`
	Price       float64                `json:"price" validate:"min=0"`
	SalePrice   float64                `json:"sale_price" validate:"min=0"`
	IsSale      bool                   `json:"is_sale"`
	Stock       int                    `json:"stock" validate:"min=0"`
	Iva         float64                `json:"iva"`
	ISBN        string                 `json:"isbn"`
	Publisher   string                 `json:"publisher"`
	Year        string                 `json:"year"`
	Dimensions  map[string]interface{} `json:"dimensions"`
}

type BookResponse struct {
	Id             uuid.UUID  `json:"id"`
	Reference      string     `json:"reference"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	Description    string     `json:"description"`
	Subjects       string     `json:"subjects"`
	Infantil       string     `json:"infantil"`
	Category       string     `json:"category"`
	Price          float64    `json:"price"`
	SalePrice      float64    `json:"sale_price"`
	IsSale         bool       `json:"is_sale"`
	EffectivePrice float64    `json:"effective_price"`
	Stock          int        `json:"stock"`
	ISBN           string     `json:"isbn"`
	Publisher      string     `json:"publisher"`
	Year           string     `json:"year"`
	HasEmbedding   bool       `json:"has_embedding"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type ListBooksRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Page     int    `query:"page"`
	PageSize int    `query:"page_size"`
}

type ListBooksResponse struct {
	Books []BookResponse `json:"books"`
	Total int64          `json:"total"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}
