package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchase is append-only; the recommender reads it to build a user's
// embedding centroid and to exclude already-owned books from candidates.
type Purchase struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	BookId      uuid.UUID
	PurchasedAt time.Time
}
