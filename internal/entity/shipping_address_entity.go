package entity

import "github.com/google/uuid"

type ShippingAddress struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	FullName string
	Email    string
	Address1 string
	Address2 string
	City     string
	State    string
	Country  string
	Pincode  string
	Phone    string
}
