package blogRoutes

import (
	controllers "triethoc/controllers/blog"
	"triethoc/middleware"
	validators "triethoc/validators/blog"

	"github.com/gofiber/fiber/v2"
)

// SetupBlogRoutes sets up all blog routes
func SetupBlogRoutes(app *fiber.App) {
	blogGroup := app.Group("/blog")

	blogGroup.Get("/list", validators.BlogList(), controllers.GetPublishedBlogs)
	blogGroup.Get("/mine", middleware.JWTMiddleware, controllers.GetMyBlogs)
	blogGroup.Post("/", middleware.JWTMiddleware, validators.CreateBlog(), controllers.CreateBlog)
	blogGroup.Get("/:id/comments", validators.GetComments(), controllers.GetComments)
	blogGroup.Post("/:id/comments", middleware.JWTMiddleware, validators.CreateComment(), controllers.CreateComment)

	adminGroup := app.Group("/admin/blog", middleware.JWTMiddleware, middleware.AdminOnly())
	adminGroup.Post("/:id/review", validators.ReviewBlog(), controllers.AdminReviewBlog)
}
