package models

import "time"

// Order is a request for one of the agency's services, reviewed manually by
// the operator.
type Order struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	UserID        uint   `gorm:"index;not null" json:"user_id"`
	ServiceType   string `gorm:"size:100;not null" json:"service_type"`
	ServiceDetail string `gorm:"type:text;not null" json:"service_detail"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
