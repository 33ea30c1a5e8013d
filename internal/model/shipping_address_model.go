package model

import "github.com/google/uuid"

type ShippingAddress struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId   uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FullName string    `gorm:"not null"`
	Email    string    `gorm:"not null"`
	Address1 string
	Address2 string
	City     string
	State    string
	Country  string
	Pincode  string
	Phone    string
}

func (ShippingAddress) TableName() string {
	return "shipping_addresses"
}
