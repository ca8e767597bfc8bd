package utils

import (
	"ilearn/database"
	"ilearn/models"
	"log"
)

// Notify records a notification for a user. Notification writes are best
// effort side effects and never fail the request that triggered them.
func Notify(userID uint, message string) {
	notification := models.Notification{
		UserID:  userID,
		Message: message,
	}

	if err := database.Database.Db.Create(&notification).Error; err != nil {
		log.Printf("[NOTIFY] Failed to create notification for user %d: %v", userID, err)
	}
}
