package userRoutes

import (
	checkinController "triethoc/controllers/checkin"
	leaderboardController "triethoc/controllers/leaderboard"
	userController "triethoc/controllers/user"
	"triethoc/middleware"
	validators "triethoc/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile, study-time, check-in and leaderboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/me", middleware.JWTMiddleware, userController.GetMe)
	userGroup.Post("/study-time", middleware.JWTMiddleware, validators.StudyTime(), userController.AddStudyTime)

	app.Post("/checkin", middleware.JWTMiddleware, checkinController.CheckIn)
	app.Get("/leaderboard", middleware.JWTMiddleware, leaderboardController.GetLeaderboard)
}
