package mapper

import (
	"encoding/json"
	"time"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type BookMapper struct{}

func NewBookMapper() *BookMapper {
	return &BookMapper{}
}

func (m *BookMapper) ToEntity(b *model.Book) *entity.Book {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	var embedding []float32
	if b.Embedding != nil {
		embedding = b.Embedding.Slice()
	}

	var dimensions map[string]interface{}
	if len(b.Dimensions) > 0 {
		// Invalid JSON in the column degrades to nil dimensions rather than failing a read.
		_ = json.Unmarshal(b.Dimensions, &dimensions)
	}

	return &entity.Book{
		Id:          b.Id,
		Stock:       b.Stock,
		Reference:   b.Reference,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		SalePrice:   b.SalePrice,
		IsSale:      b.IsSale,
		Infantil:    b.Infantil,
		Category:    b.Category,
		Description: b.Description,
		Iva:         b.Iva,
		Subjects:    b.Subjects,
		ISBN:        b.ISBN,
		Publisher:   b.Publisher,
		Year:        b.Year,
		Dimensions:  dimensions,
		Embedding:   embedding,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *BookMapper) ToModel(b *entity.Book) *model.Book {
	if b == nil {
		return nil
	}

	var embedding *pgvector.Vector
	if b.Embedding != nil {
		v := pgvector.NewVector(b.Embedding)
		embedding = &v
	}

	var dimensions datatypes.JSON
	if b.Dimensions != nil {
		raw, err := json.Marshal(b.Dimensions)
		if err == nil {
			dimensions = datatypes.JSON(raw)
		}
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.Book{
		Id:          b.Id,
		Stock:       b.Stock,
		Reference:   b.Reference,
		Title:       b.Title,
		Author:      b.Author,
		Price:       b.Price,
		SalePrice:   b.SalePrice,
		IsSale:      b.IsSale,
		Infantil:    b.Infantil,
		Category:    b.Category,
		Description: b.Description,
		Iva:         b.Iva,
		Subjects:    b.Subjects,
		ISBN:        b.ISBN,
		Publisher:   b.Publisher,
		Year:        b.Year,
		Dimensions:  dimensions,
		Embedding:   embedding,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *BookMapper) ToEntities(books []*model.Book) []*entity.Book {
	entities := make([]*entity.Book, len(books))
	for i, b := range books {
		entities[i] = m.ToEntity(b)
	}
	return entities
}
