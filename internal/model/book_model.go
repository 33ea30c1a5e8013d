package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Book struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Stock       int       `gorm:"default:0"`
	Reference   string    `gorm:"index"`
	Title       string    `gorm:"index;not null"`
	Author      string    `gorm:"index"`
	Price       float64   `gorm:"default:0"`
	SalePrice   float64   `gorm:"default:0"`
	IsSale      bool      `gorm:"default:false;index"`
	Infantil    string
	Category    string `gorm:"index"`
	Description string `gorm:"type:text"`
	Iva         float64
	Subjects    string
	ISBN        string           `gorm:"column:isbn;index"`
	Publisher   string
	Year        string
	Dimensions  datatypes.JSON   `gorm:"type:jsonb"`
	Embedding   *pgvector.Vector `gorm:"type:vector(384)"` // all-MiniLM-L6-v2 embeds to 384 dims, NULL until embedded
	CreatedAt   time.Time        `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime"`
}

func (Book) TableName() string {
	return "books"
}
