package tutorValidator

import (
	"strings"

	"triethoc/middleware"

	"github.com/gofiber/fiber/v2"
)

// AskQuestion validates a tutor question
func AskQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question string `json:"question"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Question = strings.TrimSpace(reqData.Question)

		if reqData.Question == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question is required!", nil)
		}
		if len(reqData.Question) > 2000 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question is too long!", nil)
		}

		c.Locals("validatedTutorQuestion", reqData)
		return c.Next()
	}
}
