package studentController

import (
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetCourseSections returns the ordered section list the player consumes.
// Quiz sections carry their serialized document in content_data; the player
// parses it client side.
func GetCourseSections(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		// instructors may open their own course's content
		var owned models.Course
		if err := db.Where("id = ? AND instructor_id = ?", courseID, userID).First(&owned).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not enrolled in this course!", nil)
		}
	}

	// id breaks created_at ties so sections keep their authoring order
	var sections []models.Section
	if err := db.Where("course_id = ?", courseID).
		Order("created_at asc, id asc").
		Find(&sections).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load course content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", fiber.Map{
		"sections": sections,
	})
}
