package studentController

import (
	"fmt"
	"ilearn/database"
	"ilearn/middleware"
	"ilearn/models"
	"ilearn/utils"

	"github.com/gofiber/fiber/v2"
)

// Enroll enrolls the student in a published course. Enrollment and the
// paired student/instructor notifications always move together; the
// confirmation email is best effort.
func Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var student models.User
	if err := db.Where("id = ?", userID).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var course models.Course
	if err := db.Where("id = ? AND status = ?", courseID, models.CoursePublished).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	// Check if student is already enrolled
	var existing models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		StudentID: userID,
		CourseID:  course.ID,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	utils.Notify(userID, fmt.Sprintf("You are now enrolled in course: %s", course.Title))
	utils.Notify(course.InstructorID, fmt.Sprintf("%s has now enrolled in your course: %s", student.Name, course.Title))

	go utils.SendEnrollmentEmail(student.Email, student.Name, course.Title)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment successful!", enrollment)
}

// Unenroll removes the student's enrollment and cleans up with a
// notification
func Unenroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("student_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "You are not enrolled in this course!", nil)
	}

	if err := db.Delete(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unenroll!", nil)
	}

	var course models.Course
	if err := db.Where("id = ?", courseID).First(&course).Error; err == nil {
		utils.Notify(userID, fmt.Sprintf("You have unenrolled from course: %s", course.Title))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Successfully unenrolled!", nil)
}
