package crosswordValidator

import (
	"strconv"
	"strings"
	"time"

	"triethoc/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitCrossword validates a crossword result submission
func SubmitCrossword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid crossword ID!", nil)
		}
		c.Locals("crosswordID", id)

		reqData := new(struct {
			Score       int `json:"score"`
			TimeSeconds int `json:"time_seconds"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Score < 0 || reqData.Score > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Score must be between 0 and 100!", nil)
		}
		if reqData.TimeSeconds < 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Time must not be negative!", nil)
		}

		c.Locals("validatedCrosswordSubmit", reqData)
		return c.Next()
	}
}

// CreateCrosswordAdmin validates admin crossword creation
func CreateCrosswordAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Day         string `json:"day"`
			GridData    string `json:"grid_data"`
			Clues       string `json:"clues"`
			IsPublished bool   `json:"is_published"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Day = strings.TrimSpace(reqData.Day)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Day == "" {
			errors["day"] = "Day is required!"
		} else if _, err := time.Parse("2006-01-02", reqData.Day); err != nil {
			errors["day"] = "Day must be in YYYY-MM-DD format!"
		}
		if strings.TrimSpace(reqData.GridData) == "" {
			errors["grid_data"] = "Grid data is required!"
		}
		if strings.TrimSpace(reqData.Clues) == "" {
			errors["clues"] = "Clues are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCrossword", reqData)
		return c.Next()
	}
}
