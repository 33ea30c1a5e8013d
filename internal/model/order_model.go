package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserId          *uuid.UUID `gorm:"type:uuid;index"`
	FullName        string     `gorm:"not null"`
	Email           string     `gorm:"not null"`
	ShippingAddress string     `gorm:"type:text"`
	AmountPaid      float64
	Status          string    `gorm:"index;default:'PENDING'"`
	DateOrdered     time.Time `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderId  uuid.UUID `gorm:"type:uuid;index;not null"`
	BookId   uuid.UUID `gorm:"type:uuid;index;not null"`
	Quantity int       `gorm:"default:1"`
	Price    float64
}

func (OrderItem) TableName() string {
	return "order_items"
}
