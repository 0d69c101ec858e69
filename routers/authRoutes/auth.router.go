package authRoutes

import (
	authController "triethoc/controllers/auth"
	validators "triethoc/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.SignupValidator(), authController.Signup)
	authGroup.Post("/login", validators.LoginValidator(), authController.Login)
}
