package courseController

import (
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSection appends a new section to a course. The validator has
// already checked the payload against its content type, including full
// quiz document validation.
func CreateSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	reqData, ok := c.Locals("validatedSection").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		ContentData string `json:"content_data"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", courseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or unauthorized!", nil)
	}

	section := models.Section{
		CourseID:    course.ID,
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		ContentData: reqData.ContentData,
	}

	if err := database.Database.Db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section added successfully!", section)
}

// DeleteSection removes a single section from a course the instructor owns
func DeleteSection(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sectionID := c.Locals("sectionID").(int)

	var section models.Section
	if err := database.Database.Db.
		Joins("JOIN courses ON courses.id = sections.course_id").
		Where("sections.id = ? AND courses.instructor_id = ?", sectionID, userID).
		First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if err := database.Database.Db.Delete(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully!", nil)
}
