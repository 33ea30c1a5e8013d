package implementation

import (
	"context"
	"errors"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/mapper"
	"bookstore-be/internal/model"
	"bookstore-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShippingAddressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CommerceMapper
}

func NewShippingAddressRepository(db *gorm.DB) contract.ShippingAddressRepository {
	return &ShippingAddressRepositoryImpl{
		db:     db,
		mapper: mapper.NewCommerceMapper(),
	}
}

func (r *ShippingAddressRepositoryImpl) FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.ShippingAddress, error) {
	var m model.ShippingAddress
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ShippingToEntity(&m), nil
}

func (r *ShippingAddressRepositoryImpl) Save(ctx context.Context, address *entity.ShippingAddress) error {
	m := r.mapper.ShippingToModel(address)
	if m.Id == uuid.Nil {
		m.Id = uuid.New()
	}
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*address = *r.mapper.ShippingToEntity(m)
	return nil
}
