package mapper

import (
	"bookstore-be/internal/entity"
	"bookstore-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:        u.Id,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:        u.Id,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func (m *UserMapper) ProfileToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:           p.Id,
		UserId:       p.UserId,
		Phone:        p.Phone,
		Address1:     p.Address1,
		Address2:     p.Address2,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Country:      p.Country,
		OldCart:      p.OldCart,
		DateModified: p.DateModified,
	}
}

func (m *UserMapper) ProfileToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:           p.Id,
		UserId:       p.UserId,
		Phone:        p.Phone,
		Address1:     p.Address1,
		Address2:     p.Address2,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Country:      p.Country,
		OldCart:      p.OldCart,
		DateModified: p.DateModified,
	}
}
