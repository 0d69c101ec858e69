package quizController

import (
	"fmt"
	"log"

	"triethoc/database"
	"triethoc/gamification"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
)

// QuestionWithOptions pairs a question with its options, answers stripped
type QuestionWithOptions struct {
	models.QuizQuestion
	Options []models.QuizOption `json:"options"`
}

// GetAllQuizzes lists published quizzes
func GetAllQuizzes(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var quizzes []models.Quiz
	if err := database.Database.Db.Where("is_deleted = ? AND is_published = ?", false, true).Order("created_at desc").Find(&quizzes).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quizzes!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quizzes fetched successfully!", quizzes)
}

// GetQuizDetails returns a quiz with its questions and options. Correct
// answers are stripped before the response goes out.
func GetQuizDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", quizID, false, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Order("order_index asc").Find(&questions)

	result := make([]QuestionWithOptions, len(questions))
	for i, question := range questions {
		result[i] = QuestionWithOptions{QuizQuestion: question}

		var options []models.QuizOption
		database.Database.Db.Where("question_id = ? AND is_deleted = ?", question.ID, false).Order("order_index asc").Find(&options)
		// Remove IsCorrect from options for users (don't show answers)
		for j := range options {
			options[j].IsCorrect = false
		}
		result[i].Options = options
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"quiz":      quiz,
		"questions": result,
	})
}

// SubmitQuiz scores a quiz submission and records the attempt. The first
// attempt on a quiz earns XP; a perfect first attempt earns the bigger
// perfect-score amount instead.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	quizID := c.Locals("quizID").(int)

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", quizID, false, true).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	reqData, ok := c.Locals("validatedQuizSubmit").(*struct {
		Answers []struct {
			QuestionID uint `json:"question_id"`
			OptionID   uint `json:"option_id"`
		} `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var questions []models.QuizQuestion
	database.Database.Db.Where("quiz_id = ? AND is_deleted = ?", quizID, false).Find(&questions)
	if len(questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz has no questions!", nil)
	}

	// Map each question to its correct option
	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}
	var correctOptions []models.QuizOption
	database.Database.Db.Where("question_id IN ? AND is_correct = ? AND is_deleted = ?", questionIDs, true, false).Find(&correctOptions)

	correctByQuestion := make(map[uint]uint)
	for _, opt := range correctOptions {
		correctByQuestion[opt.QuestionID] = opt.ID
	}

	score := 0
	for _, answer := range reqData.Answers {
		if correctID, found := correctByQuestion[answer.QuestionID]; found && correctID == answer.OptionID {
			score++
		}
	}
	maxScore := len(questions)

	// Get attempt number
	var attemptCount int64
	database.Database.Db.Model(&models.QuizAttempt{}).Where("user_id = ? AND quiz_id = ? AND is_deleted = ?", userID, quizID, false).Count(&attemptCount)

	attempt := models.QuizAttempt{
		UserID:        userID,
		QuizID:        uint(quizID),
		Score:         score,
		MaxScore:      maxScore,
		AttemptNumber: int(attemptCount) + 1,
	}

	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// XP only on the first attempt; best-effort
	if attemptCount == 0 {
		activityType := models.ActivityQuizCompleted
		if score == maxScore {
			activityType = models.ActivityQuizPerfectScore
		}
		xp := gamification.XPRewards[activityType]
		desc := fmt.Sprintf("Completed quiz: %s (%d/%d)", quiz.Title, score, maxScore)
		delta := &gamification.CounterDelta{QuizzesCompleted: 1}
		if err := gamification.AwardXP(database.Database.Db, userID, activityType, xp, desc, delta); err != nil {
			log.Printf("Failed to award quiz XP for user %d: %v", userID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz submitted successfully!", attempt)
}
