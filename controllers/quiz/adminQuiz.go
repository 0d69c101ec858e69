package quizController

import (
	"triethoc/database"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
)

// AdminCreateQuiz creates a quiz with its questions and options in one
// transaction
func AdminCreateQuiz(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuiz").(*struct {
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
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quiz := models.Quiz{
		Title:       reqData.Title,
		Description: reqData.Description,
		Topic:       reqData.Topic,
		IsPublished: reqData.IsPublished,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
	}

	for qi, q := range reqData.Questions {
		question := models.QuizQuestion{
			QuizID:     quiz.ID,
			Question:   q.Question,
			OrderIndex: qi,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
		}

		for oi, opt := range q.Options {
			option := models.QuizOption{
				QuestionID: question.ID,
				OptionText: opt.OptionText,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: oi,
			}
			if err := tx.Create(&option).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz!", nil)
			}
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz created successfully!", quiz)
}
