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

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *entity.Order) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	var m model.Order
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var models []*model.Order
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Order, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

type OrderItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderItemRepository(db *gorm.DB) contract.OrderItemRepository {
	return &OrderItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderItemRepositoryImpl) CreateBulk(ctx context.Context, items []*entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]*model.OrderItem, len(items))
	for i, item := range items {
		models[i] = r.mapper.ItemToModel(item)
		if models[i].Id == uuid.Nil {
			models[i].Id = uuid.New()
		}
	}
	if err := r.db.WithContext(ctx).Create(models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*items[i] = *r.mapper.ItemToEntity(m)
	}
	return nil
}

func (r *OrderItemRepositoryImpl) FindByOrderId(ctx context.Context, orderId uuid.UUID) ([]*entity.OrderItem, error) {
	var models []*model.OrderItem
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderId).Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]*entity.OrderItem, len(models))
	for i, m := range models {
		items[i] = r.mapper.ItemToEntity(m)
	}
	return items, nil
}
