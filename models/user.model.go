package models

import "gorm.io/gorm"

// User is an account on the platform, either a student or an instructor
type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"`
	Role     string `json:"role" gorm:"default:'student'"` // student, instructor
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}
