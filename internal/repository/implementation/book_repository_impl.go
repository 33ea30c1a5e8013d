package implementation

import (
	"context"
	"errors"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/mapper"
	"bookstore-be/internal/model"
	"bookstore-be/internal/repository/contract"
	"bookstore-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type BookRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BookMapper
}

func NewBookRepository(db *gorm.DB) contract.BookRepository {
	return &BookRepositoryImpl{
		db:     db,
		mapper: mapper.NewBookMapper(),
	}
}

func (r *BookRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *BookRepositoryImpl) Create(ctx context.Context, book *entity.Book) error {
	m := r.mapper.ToModel(book)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*book = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookRepositoryImpl) Update(ctx context.Context, book *entity.Book) error {
	m := r.mapper.ToModel(book)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*book = *r.mapper.ToEntity(m)
	return nil
}

func (r *BookRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Book{}, id).Error
}

func (r *BookRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Book, error) {
	var m model.Book
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *BookRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Book, error) {
	var models []*model.Book
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *BookRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.Book{}).Count(&count).Error
	return count, err
}

func (r *BookRepositoryImpl) UpdateEmbedding(ctx context.Context, id uuid.UUID, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	return r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ?", id).
		Update("embedding", vec).Error
}

func (r *BookRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, excludeIDs []uuid.UUID) ([]*entity.Book, error) {
	if limit <= 0 {
		limit = 5
	}
	var models []*model.Book

	// pgvector cosine distance: embedding <=> vector, smallest distance first
	query := r.db.WithContext(ctx).
		Where("embedding IS NOT NULL")
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}
	err := query.
		Order(gorm.Expr("embedding <=> ?", pgvector.NewVector(embedding))).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}
