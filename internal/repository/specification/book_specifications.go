package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TitleIEq matches a title case-insensitively, the way the title-based
// recommender resolves its reference book.
type TitleIEq struct {
	Title string
}

func (s TitleIEq) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(title) = LOWER(?)", s.Title)
}

// TitleOrDescriptionLike is the storefront search filter.
type TitleOrDescriptionLike struct {
	Query string
}

func (s TitleOrDescriptionLike) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + s.Query + "%"
	return db.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
}

// HasEmbedding keeps only rows the embed pipeline has processed.
type HasEmbedding struct{}

func (s HasEmbedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("embedding IS NOT NULL")
}

// MissingEmbedding selects rows the embed pipeline still has to process.
type MissingEmbedding struct{}

func (s MissingEmbedding) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("embedding IS NULL")
}

// ExcludeIDs removes candidates, e.g. books the user already purchased.
type ExcludeIDs struct {
	IDs []uuid.UUID
}

func (s ExcludeIDs) Apply(db *gorm.DB) *gorm.DB {
	if len(s.IDs) == 0 {
		return db
	}
	return db.Where("id NOT IN ?", s.IDs)
}

// ByCategory filters books by category name.
type ByCategory struct {
	Name string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Name)
}
