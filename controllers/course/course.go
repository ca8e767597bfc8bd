package courseController

import (
	"fmt"
	"ilearn/config"
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"
	"ilearn/utils"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedBannerExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// CreateCourse creates a new draft course with an uploaded banner image
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	title, _ := c.Locals("validatedTitle").(string)
	description, _ := c.Locals("validatedDescription").(string)

	file, err := c.FormFile("banner")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Banner image is required!", nil)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedBannerExt[ext] {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Only images are allowed (jpeg, jpg, png, webp)!", nil)
	}

	filename := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(config.AppConfig.UploadDir, filename)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store banner image!", nil)
	}

	course := models.Course{
		InstructorID: userID,
		Title:        title,
		Description:  description,
		BannerURL:    "/uploads/" + filename,
		Status:       models.CourseDraft,
	}

	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	utils.Notify(course.InstructorID, fmt.Sprintf("Course %q has been created successfully.", course.Title))

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetMyCourses lists the logged-in instructor's courses, newest first
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []models.Course
	if err := database.Database.Db.
		Where("instructor_id = ?", userID).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// UpdateCourseStatus toggles a course between draft and published
func UpdateCourseStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)
	status := c.Locals("validatedStatus").(string)

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", courseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or unauthorized!", nil)
	}

	course.Status = status
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update status!", nil)
	}

	message := "Your course has been saved as draft."
	if status == models.CoursePublished {
		message = "Your course has been published."
	}
	utils.Notify(course.InstructorID, message)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Status updated successfully!", course)
}

// DeleteCourse removes a course, or archives it instead once any student
// has enrolled
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.
		Where("id = ? AND instructor_id = ?", courseID, userID).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or unauthorized!", nil)
	}

	var enrollmentCount int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("course_id = ?", course.ID).
		Count(&enrollmentCount)

	if enrollmentCount > 0 {
		course.Status = models.CourseArchived
		if err := database.Database.Db.Save(&course).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to archive course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Course archived successfully!", fiber.Map{
			"archived": true,
		})
	}

	if err := database.Database.Db.Delete(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", fiber.Map{
		"deleted": true,
	})
}
