package models

import "time"

// Enrollment links a student to a course. The composite index makes the
// store enforce one enrollment per (student, course) pair; unenrolling
// deletes the row outright so the student can re-enroll later.
type Enrollment struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	StudentID uint   `json:"student_id" gorm:"not null;uniqueIndex:idx_enrollments_student_course"`
	CourseID  uint   `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollments_student_course"`
	Course    Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
