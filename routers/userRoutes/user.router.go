package userRoutes

import (
	userController "ilearn/controllers/user"
	"ilearn/middleware"
	userValidator "ilearn/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the account profile routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/user")

	userGroup.Get("/", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
}
