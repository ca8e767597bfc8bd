package courseController

import (
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"

	"github.com/gofiber/fiber/v2"
)

// Dashboard returns the instructor's course counts and course list
func Dashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var totalCourses int64
	db.Model(&models.Course{}).Where("instructor_id = ?", userID).Count(&totalCourses)

	topCourse := "No courses yet"
	var latest models.Course
	if err := db.Where("instructor_id = ?", userID).
		Order("created_at desc").
		First(&latest).Error; err == nil {
		topCourse = latest.Title
	}

	var courses []models.Course
	if err := db.Where("instructor_id = ?", userID).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to load dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard loaded successfully!", fiber.Map{
		"totalCourses": totalCourses,
		"topCourse":    topCourse,
		"courses":      courses,
	})
}

// StudentEngagement returns per-course enrollment counts for the instructor
func StudentEngagement(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courses []models.Course
	if err := db.Where("instructor_id = ?", userID).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch engagement data!", nil)
	}

	type courseEngagement struct {
		CourseID      uint   `json:"course_id"`
		Title         string `json:"title"`
		TotalEnrolled int64  `json:"total_enrolled"`
	}

	engagement := make([]courseEngagement, len(courses))
	for i, course := range courses {
		var enrolled int64
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrolled)
		engagement[i] = courseEngagement{
			CourseID:      course.ID,
			Title:         course.Title,
			TotalEnrolled: enrolled,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Engagement data fetched successfully!", fiber.Map{
		"engagement": engagement,
	})
}

// CourseStudents lists the students enrolled in one of the instructor's courses
func CourseStudents(c *fiber.Ctx) error {
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

	type studentRow struct {
		UserID uint   `json:"user_id"`
		Name   string `json:"name"`
		Email  string `json:"email"`
	}

	var students []studentRow
	if err := database.Database.Db.
		Table("users").
		Select("users.id as user_id, users.name, users.email").
		Joins("JOIN enrollments ON enrollments.student_id = users.id").
		Where("enrollments.course_id = ?", course.ID).
		Scan(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", fiber.Map{
		"students": students,
	})
}
