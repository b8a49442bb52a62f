package models

import "time"

// Enrollment links a user to a course once their payment is verified.
// Append-only.
type Enrollment struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID uint `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`

	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
