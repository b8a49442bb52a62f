package models

import "time"

const (
	PaymentPending  = "pending"
	PaymentVerified = "verified"
)

type Payment struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"index;not null" json:"user_id"`
	CourseID      uint   `gorm:"index;not null" json:"course_id"`
	PaymentMethod string `gorm:"size:50" json:"payment_method"`
	Screenshot    string `gorm:"size:255" json:"screenshot"`
	Status        string `gorm:"size:20;not null;default:'pending'" json:"status"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
