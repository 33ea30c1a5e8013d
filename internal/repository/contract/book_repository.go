package contract

import (
	"context"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/specification"

	"github.com/google/uuid"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	Update(ctx context.Context, book *entity.Book) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// UpdateEmbedding writes only the vector column, leaving the rest of the
	// row untouched (the embed pipeline runs concurrently with catalog edits).
	UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error
	// SearchSimilar returns up to limit books with a non-null embedding,
	// ordered by ascending cosine distance to the query vector.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeIDs []uuid.UUID) ([]*entity.Book, error)
}
