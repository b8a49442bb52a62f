package models

import "time"

type CourseMaterial struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	CourseID    uint   `gorm:"index;not null" json:"course_id"`
	FilePath    string `gorm:"size:255;not null" json:"file_path"`

	Course Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
