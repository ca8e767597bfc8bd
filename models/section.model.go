package models

import "gorm.io/gorm"

// Section content types
const (
	ContentVideo   = "video"
	ContentReading = "reading"
	ContentQuiz    = "quiz"
)

// Section represents one unit of course content, ordered by creation time.
// ContentData depends on ContentType: a video URL, reading text, or a
// serialized quiz document.
type Section struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	ContentType string `json:"content_type" gorm:"default:'reading'"` // video, reading, quiz
	ContentData string `json:"content_data" gorm:"type:text"`
}
