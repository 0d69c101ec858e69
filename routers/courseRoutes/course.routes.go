package courseRoutes

import (
	controllers "triethoc/controllers/course"
	"triethoc/middleware"
	validators "triethoc/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Course listing and details (published courses)
	userGroup.Get("/list", middleware.JWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.JWTMiddleware, validators.GetCourseDetail(), controllers.GetCourseDetails)

	// Enrollment
	userGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)

	// Chapter completion
	userGroup.Post("/:course_id/chapter/:chapter_id/complete", middleware.JWTMiddleware, validators.ChapterComplete(), controllers.MarkChapterComplete)

	// Progress tracking
	userGroup.Get("/:course_id/progress", middleware.JWTMiddleware, validators.GetCourseProgress(), controllers.GetUserProgress)

	// Admin course management
	adminGroup := app.Group("/admin/course", middleware.JWTMiddleware, middleware.AdminOnly())
	adminGroup.Post("/", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	adminGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/:id", validators.DeleteCourseAdmin(), controllers.AdminDeleteCourse)
	adminGroup.Post("/:id/chapter", validators.CreateChapterAdmin(), controllers.AdminCreateChapter)
	adminGroup.Post("/:course_id/chapter/:chapter_id/publish", validators.PublishChapterAdmin(), controllers.AdminPublishChapter)
}
