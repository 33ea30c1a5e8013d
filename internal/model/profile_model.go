package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Phone        string
	Address1     string
	Address2     string
	City         string
	State        string
	ZipCode      string
	Country      string
	OldCart      string    `gorm:"type:text"`
	DateModified time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
