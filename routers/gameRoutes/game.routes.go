package gameRoutes

import (
	crosswordController "triethoc/controllers/crossword"
	tutorController "triethoc/controllers/tutor"
	"triethoc/middleware"
	crosswordValidators "triethoc/validators/crossword"
	tutorValidators "triethoc/validators/tutor"

	"github.com/gofiber/fiber/v2"
)

// SetupGameRoutes sets up the crossword game and AI tutor routes
func SetupGameRoutes(app *fiber.App) {
	crosswordGroup := app.Group("/crossword")
	crosswordGroup.Get("/today", middleware.JWTMiddleware, crosswordController.GetTodayCrossword)
	crosswordGroup.Post("/:id/submit", middleware.JWTMiddleware, crosswordValidators.SubmitCrossword(), crosswordController.SubmitCrossword)

	adminGroup := app.Group("/admin/crossword", middleware.JWTMiddleware, middleware.AdminOnly())
	adminGroup.Post("/", crosswordValidators.CreateCrosswordAdmin(), crosswordController.AdminCreateCrossword)

	tutorGroup := app.Group("/tutor")
	tutorGroup.Post("/ask", middleware.JWTMiddleware, tutorValidators.AskQuestion(), tutorController.AskTutor)
}
