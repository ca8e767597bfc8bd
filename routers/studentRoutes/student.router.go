package studentRoutes

import (
	studentController "ilearn/controllers/student"
	"ilearn/middleware"
	courseValidator "ilearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up enrollment and student course routes
func SetupStudentRoutes(app *fiber.App) {
	enrollGroup := app.Group("/api/enroll")
	enrollGroup.Post("/:courseId", middleware.JWTMiddleware, courseValidator.CourseIDParam("courseId"), studentController.Enroll)
	enrollGroup.Delete("/:courseId", middleware.JWTMiddleware, courseValidator.CourseIDParam("courseId"), studentController.Unenroll)

	studentGroup := app.Group("/api/student")
	studentGroup.Get("/courses", middleware.JWTMiddleware, studentController.GetMyCourses)
}
