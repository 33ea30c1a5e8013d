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
	"gorm.io/gorm"
)

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommerceMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommerceMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	m := &model.Category{
		Id:          category.Id,
		Name:        category.Name,
		Description: category.Description,
	}
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*category = *r.mapper.CategoryToEntity(m)
	return nil
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var m model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.CategoryToEntity(&m), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var models []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Category, len(models))
	for i, m := range models {
		entities[i] = r.mapper.CategoryToEntity(m)
	}
	return entities, nil
}
