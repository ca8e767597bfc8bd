package models

import "gorm.io/gorm"

// Notification is a message for one user, created as a side effect of
// course and enrollment activity
type Notification struct {
	gorm.Model
	UserID  uint   `json:"user_id" gorm:"index;not null"`
	Message string `json:"message"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
