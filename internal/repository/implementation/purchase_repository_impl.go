package implementation

import (
	"context"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/mapper"
	"bookstore-be/internal/model"
	"bookstore-be/internal/repository/contract"
	"bookstore-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommerceMapper
}

func NewPurchaseRepository(db *gorm.DB) contract.PurchaseRepository {
	return &PurchaseRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommerceMapper(),
	}
}

func (r *PurchaseRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PurchaseRepositoryImpl) Create(ctx context.Context, purchase *entity.Purchase) error {
	m := r.mapper.PurchaseToModel(purchase)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*purchase = *r.mapper.PurchaseToEntity(m)
	return nil
}

func (r *PurchaseRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Purchase, error) {
	var models []*model.Purchase
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Purchase, len(models))
	for i, m := range models {
		entities[i] = r.mapper.PurchaseToEntity(m)
	}
	return entities, nil
}

func (r *PurchaseRepositoryImpl) BookIDsByUser(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.Purchase{}).
		Where("user_id = ?", userId).
		Distinct().
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
