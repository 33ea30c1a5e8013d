package mapper

import (
	"bookstore-be/internal/entity"
	"bookstore-be/internal/model"
)

// CommerceMapper covers the small storefront aggregates that do not warrant
// their own mapper type.
type CommerceMapper struct{}

func NewCommerceMapper() *CommerceMapper {
	return &CommerceMapper{}
}

func (m *CommerceMapper) CategoryToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	e := &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		e.UpdatedAt = &t
	}
	return e
}

func (m *CommerceMapper) PurchaseToEntity(p *model.Purchase) *entity.Purchase {
	if p == nil {
		return nil
	}
	return &entity.Purchase{
		Id:          p.Id,
		UserId:      p.UserId,
		BookId:      p.BookId,
		PurchasedAt: p.PurchasedAt,
	}
}

func (m *CommerceMapper) PurchaseToModel(p *entity.Purchase) *model.Purchase {
	if p == nil {
		return nil
	}
	return &model.Purchase{
		Id:          p.Id,
		UserId:      p.UserId,
		BookId:      p.BookId,
		PurchasedAt: p.PurchasedAt,
	}
}

func (m *CommerceMapper) ShippingToEntity(s *model.ShippingAddress) *entity.ShippingAddress {
	if s == nil {
		return nil
	}
	return &entity.ShippingAddress{
		Id:       s.Id,
		UserId:   s.UserId,
		FullName: s.FullName,
		Email:    s.Email,
		Address1: s.Address1,
		Address2: s.Address2,
		City:     s.City,
		State:    s.State,
		Country:  s.Country,
		Pincode:  s.Pincode,
		Phone:    s.Phone,
	}
}

func (m *CommerceMapper) ShippingToModel(s *entity.ShippingAddress) *model.ShippingAddress {
	if s == nil {
		return nil
	}
	return &model.ShippingAddress{
		Id:       s.Id,
		UserId:   s.UserId,
		FullName: s.FullName,
		Email:    s.Email,
		Address1: s.Address1,
		Address2: s.Address2,
		City:     s.City,
		State:    s.State,
		Country:  s.Country,
		Pincode:  s.Pincode,
		Phone:    s.Phone,
	}
}
