package mapper

import (
	"bookstore-be/internal/entity"
	"bookstore-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:              o.Id,
		UserId:          o.UserId,
		FullName:        o.FullName,
		Email:           o.Email,
		ShippingAddress: o.ShippingAddress,
		AmountPaid:      o.AmountPaid,
		Status:          o.Status,
		DateOrdered:     o.DateOrdered,
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	return &model.Order{
		Id:              o.Id,
		UserId:          o.UserId,
		FullName:        o.FullName,
		Email:           o.Email,
		ShippingAddress: o.ShippingAddress,
		AmountPaid:      o.AmountPaid,
		Status:          o.Status,
		DateOrdered:     o.DateOrdered,
	}
}

func (m *OrderMapper) ItemToEntity(i *model.OrderItem) *entity.OrderItem {
	if i == nil {
		return nil
	}
	return &entity.OrderItem{
		Id:       i.Id,
		OrderId:  i.OrderId,
		BookId:   i.BookId,
		Quantity: i.Quantity,
		Price:    i.Price,
	}
}

func (m *OrderMapper) ItemToModel(i *entity.OrderItem) *model.OrderItem {
	if i == nil {
		return nil
	}
	return &model.OrderItem{
		Id:       i.Id,
		OrderId:  i.OrderId,
		BookId:   i.BookId,
		Quantity: i.Quantity,
		Price:    i.Price,
	}
}
