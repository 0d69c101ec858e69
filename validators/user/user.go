package userValidator

import (
	"triethoc/middleware"

	"github.com/gofiber/fiber/v2"
)

// StudyTime validates a study-time increment. Minutes are bounded so one
// request cannot inflate the counter past a realistic session.
func StudyTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Minutes int `json:"minutes"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Minutes < 1 || reqData.Minutes > 240 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Minutes must be between 1 and 240!", nil)
		}

		c.Locals("validatedStudyTime", reqData)
		return c.Next()
	}
}
