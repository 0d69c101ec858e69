package quizRoutes

import (
	controllers "triethoc/controllers/quiz"
	"triethoc/middleware"
	validators "triethoc/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up all quiz routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	quizGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllQuizzes)
	quizGroup.Get("/:id", middleware.JWTMiddleware, validators.QuizDetail(), controllers.GetQuizDetails)
	quizGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.QuizSubmit(), controllers.SubmitQuiz)

	adminGroup := app.Group("/admin/quiz", middleware.JWTMiddleware, middleware.AdminOnly())
	adminGroup.Post("/", validators.CreateQuizAdmin(), controllers.AdminCreateQuiz)
}
