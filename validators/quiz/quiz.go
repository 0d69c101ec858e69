package quizValidator

import (
	"strconv"
	"strings"

	"triethoc/middleware"

	"github.com/gofiber/fiber/v2"
)

func parseQuizID(c *fiber.Ctx) error {
	raw := strings.TrimSpace(c.Params("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz ID!", nil)
	}
	c.Locals("quizID", id)
	return nil
}

// QuizDetail validates the quiz ID parameter
func QuizDetail() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseQuizID(c); err != nil {
			return err
		}
		return c.Next()
	}
}

// QuizSubmit validates a quiz submission
func QuizSubmit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := parseQuizID(c); err != nil {
			return err
		}

		reqData := new(struct {
			Answers []struct {
				QuestionID uint `json:"question_id"`
				OptionID   uint `json:"option_id"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please answer at least one question!", nil)
		}

		c.Locals("validatedQuizSubmit", reqData)
		return c.Next()
	}
}

// CreateQuizAdmin validates admin quiz creation with nested questions
func CreateQuizAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Topic       string `json:"topic"`
			IsPublished bool   `json:"is_published"`
			Questions   []struct {
				Question string `json:"question"`
				Options  []struct {
					OptionText string `json:"option_text"`
					IsCorrect  bool   `json:"is_correct"`
				} `json:"options"`
			} `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Title = strings.TrimSpace(reqData.Title)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		}
		if len(reqData.Questions) == 0 {
			errors["questions"] = "At least one question is required!"
		}
		for _, q := range reqData.Questions {
			if strings.TrimSpace(q.Question) == "" {
				errors["questions"] = "Question text is required!"
				break
			}
			if len(q.Options) < 2 {
				errors["questions"] = "Each question needs at least two options!"
				break
			}
			correct := 0
			for _, opt := range q.Options {
				if opt.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				errors["questions"] = "Each question needs exactly one correct option!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}
