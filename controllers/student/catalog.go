package studentController

import (
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

type catalogCourse struct {
	CourseID       uint      `json:"course_id"`
	Title          string    `json:"title"`
	BannerURL      string    `json:"banner_url"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	InstructorName string    `json:"instructor_name"`
}

// GetPublishedCourses lists published courses the student has not yet
// enrolled in
func GetPublishedCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	enrolled := db.Model(&models.Enrollment{}).
		Select("course_id").
		Where("student_id = ?", userID)

	var courses []catalogCourse
	if err := db.Table("courses").
		Select("courses.id as course_id, courses.title, courses.banner_url, courses.description, courses.created_at, users.name as instructor_name").
		Joins("JOIN users ON users.id = courses.instructor_id").
		Where("courses.status = ? AND courses.deleted_at IS NULL", models.CoursePublished).
		Where("courses.id NOT IN (?)", enrolled).
		Scan(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetMyCourses lists the courses the student is enrolled in
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var courses []catalogCourse
	if err := database.Database.Db.Table("enrollments").
		Select("courses.id as course_id, courses.title, courses.banner_url, courses.description, courses.created_at, users.name as instructor_name").
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Joins("JOIN users ON users.id = courses.instructor_id").
		Where("enrollments.student_id = ?", userID).
		Scan(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrolled courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
