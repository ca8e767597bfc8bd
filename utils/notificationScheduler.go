package utils

import (
	"ilearn/database"
	"ilearn/models"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// InitializeNotificationPruner sets up the nightly notification cleanup job
func InitializeNotificationPruner() {
	log.Println("[NOTIFICATION-PRUNER] Initializing notification pruner...")

	c := cron.New()

	// Run daily at 3 AM to drop stale read notifications
	c.AddFunc("0 3 * * *", func() {
		log.Println("[NOTIFICATION-PRUNER] Running daily notification cleanup...")
		PruneReadNotifications(30 * 24 * time.Hour)
	})

	c.Start()
	log.Println("[NOTIFICATION-PRUNER] Notification pruner started - runs daily at 3 AM")
}

// PruneReadNotifications deletes read notifications older than the given age
func PruneReadNotifications(maxAge time.Duration) {
	cutoff := time.Now().Add(-maxAge)

	result := database.Database.Db.
		Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	if result.Error != nil {
		log.Printf("[NOTIFICATION-PRUNER] Error pruning notifications: %v", result.Error)
		return
	}

	log.Printf("[NOTIFICATION-PRUNER] Pruned %d read notifications", result.RowsAffected)
}
