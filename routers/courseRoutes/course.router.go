package courseRoutes

import (
	courseController "ilearn/controllers/course"
	studentController "ilearn/controllers/student"
	"ilearn/middleware"
	courseValidator "ilearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course and section routes for both roles
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Instructor course management
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireInstructor, courseValidator.CreateCourse(), courseController.CreateCourse)
	courseGroup.Get("/mine", middleware.JWTMiddleware, middleware.RequireInstructor, courseController.GetMyCourses)
	courseGroup.Put("/:id/status", middleware.JWTMiddleware, middleware.RequireInstructor, courseValidator.UpdateCourseStatus(), courseController.UpdateCourseStatus)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireInstructor, courseValidator.CourseID(), courseController.DeleteCourse)

	// Student catalog
	courseGroup.Get("/published", middleware.JWTMiddleware, studentController.GetPublishedCourses)

	// Sections: instructors author them, enrolled students (and the owning
	// instructor) read them
	courseGroup.Post("/:id/sections", middleware.JWTMiddleware, middleware.RequireInstructor, courseValidator.CreateSection(), courseController.CreateSection)
	courseGroup.Get("/:id/sections", middleware.JWTMiddleware, courseValidator.CourseID(), studentController.GetCourseSections)

	sectionGroup := app.Group("/api/sections")
	sectionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireInstructor, courseValidator.SectionID(), courseController.DeleteSection)

	// Instructor dashboard and engagement views
	instructorGroup := app.Group("/api/instructor")
	instructorGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireInstructor, courseController.Dashboard)
	instructorGroup.Get("/student-engagement", middleware.JWTMiddleware, middleware.RequireInstructor, courseController.StudentEngagement)
	instructorGroup.Get("/course/:id/students", middleware.JWTMiddleware, middleware.RequireInstructor, courseValidator.CourseID(), courseController.CourseStudents)
}
