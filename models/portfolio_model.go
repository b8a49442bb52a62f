package models

import "time"

type PortfolioItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Category    string  `gorm:"size:100" json:"category"`
	Image       *string `gorm:"size:255" json:"image"`
	DriveURL    string  `gorm:"size:255" json:"drive_url"`
	GithubURL   string  `gorm:"size:255" json:"github_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
