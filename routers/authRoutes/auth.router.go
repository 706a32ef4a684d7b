package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "pkl/controllers/auth"
	authValidator "pkl/validators/auth"
)

// SetupAuthRoutes sets up signup and login
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
