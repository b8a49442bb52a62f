package models

import "time"

type Course struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Photo       *string `gorm:"size:255" json:"photo"`
	Price       float64 `gorm:"type:numeric(10,2);not null" json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
