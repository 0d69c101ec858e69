package badgeRoutes

import (
	controllers "triethoc/controllers/badge"
	"triethoc/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupBadgeRoutes sets up badge catalog and seeding routes
func SetupBadgeRoutes(app *fiber.App) {
	badgeGroup := app.Group("/badge")

	badgeGroup.Get("/list", controllers.ListBadges)
	badgeGroup.Get("/me", middleware.JWTMiddleware, controllers.MyBadges)

	// Seeding is guarded by the shared secret inside the handler
	badgeGroup.Post("/seed", controllers.SeedBadges)
}
