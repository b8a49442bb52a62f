package models

import "time"

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// CourseApplication is a student's request to join a course, backed by an
// uploaded payment screenshot and resolved by an admin decision. Rows are
// never deleted; approved and rejected are terminal.
type CourseApplication struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	UserID     uint   `gorm:"index;not null" json:"user_id"`
	CourseID   uint   `gorm:"index;not null" json:"course_id"`
	Screenshot string `gorm:"size:255;not null" json:"screenshot"`
	Status     string `gorm:"size:20;not null;default:'pending'" json:"status"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
