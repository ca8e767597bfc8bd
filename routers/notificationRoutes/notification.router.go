package notificationRoutes

import (
	notificationController "ilearn/controllers/notification"
	"ilearn/middleware"
	notificationValidator "ilearn/validators/notification"

	"github.com/gofiber/fiber/v2"
)

// SetupNotificationRoutes sets up per-user notification routes
func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/api/notifications")

	notificationGroup.Get("/", middleware.JWTMiddleware, notificationController.GetNotifications)
	notificationGroup.Patch("/:id/read", middleware.JWTMiddleware, notificationValidator.NotificationID(), notificationController.MarkNotificationRead)
	notificationGroup.Delete("/:id", middleware.JWTMiddleware, notificationValidator.NotificationID(), notificationController.DeleteNotification)
}
