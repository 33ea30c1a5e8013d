package model

import (
	"time"

	"github.com/google/uuid"
)

type Purchase struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID `gorm:"type:uuid;index;not null"`
	BookId      uuid.UUID `gorm:"type:uuid;index;not null"`
	PurchasedAt time.Time `gorm:"autoCreateTime"`
}

func (Purchase) TableName() string {
	return "purchases"
}
