package models

import "gorm.io/gorm"

// Course lifecycle statuses
const (
	CourseDraft     = "draft"
	CoursePublished = "published"
	CourseArchived  = "archived"
)

// Course represents a learning course owned by one instructor
type Course struct {
	gorm.Model
	InstructorID uint   `json:"instructor_id" gorm:"index;not null"`
	Title        string `json:"title"`
	Description  string `json:"description" gorm:"type:text"`
	BannerURL    string `json:"banner_url"`
	Status       string `json:"status" gorm:"default:'draft'"` // draft, published, archived
}
