package notificationValidator

import (
	"ilearn/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// NotificationID validates the :id route parameter
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Notification ID!", nil)
		}

		c.Locals("notificationID", id)
		return c.Next()
	}
}
