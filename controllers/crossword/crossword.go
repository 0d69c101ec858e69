package crosswordController

import (
	"errors"
	"log"
	"time"

	"triethoc/database"
	"triethoc/gamification"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetTodayCrossword returns the published puzzle for today's date
func GetTodayCrossword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	today := time.Now().Format("2006-01-02")

	var crossword models.Crossword
	if err := database.Database.Db.Where("day = ? AND is_deleted = ? AND is_published = ?", today, false, true).First(&crossword).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No crossword available today!", nil)
	}

	var result models.CrosswordResult
	solved := database.Database.Db.Where("user_id = ? AND crossword_id = ?", userID, crossword.ID).First(&result).Error == nil

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Crossword fetched successfully!", fiber.Map{
		"crossword": crossword,
		"solved":    solved,
		"result":    result,
	})
}

// SubmitCrossword stores the user's best result for a puzzle. The first
// completed submission per puzzle earns XP.
func SubmitCrossword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	crosswordID := c.Locals("crosswordID").(int)

	var crossword models.Crossword
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", crosswordID, false, true).First(&crossword).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Crossword not found!", nil)
	}

	reqData, ok := c.Locals("validatedCrosswordSubmit").(*struct {
		Score       int `json:"score"`
		TimeSeconds int `json:"time_seconds"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	firstSolve := false

	var result models.CrosswordResult
	err := database.Database.Db.Where("user_id = ? AND crossword_id = ?", userID, crosswordID).First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		firstSolve = true
		result = models.CrosswordResult{
			UserID:      userID,
			CrosswordID: uint(crosswordID),
			Score:       reqData.Score,
			TimeSeconds: reqData.TimeSeconds,
		}
		if err := database.Database.Db.Create(&result).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit result!", nil)
		}
	} else if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit result!", nil)
	} else {
		// Keep the best score; faster time wins ties
		if reqData.Score > result.Score || (reqData.Score == result.Score && reqData.TimeSeconds < result.TimeSeconds) {
			result.Score = reqData.Score
			result.TimeSeconds = reqData.TimeSeconds
			if err := database.Database.Db.Save(&result).Error; err != nil {
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit result!", nil)
			}
		}
	}

	if firstSolve {
		xp := gamification.XPRewards[models.ActivityCrosswordSolved]
		if err := gamification.AwardXP(database.Database.Db, userID, models.ActivityCrosswordSolved, xp, "Solved crossword: "+crossword.Title, nil); err != nil {
			log.Printf("Failed to award crossword XP for user %d: %v", userID, err)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result submitted successfully!", result)
}

// AdminCreateCrossword creates a puzzle for a given day
func AdminCreateCrossword(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCrossword").(*struct {
		Title       string `json:"title"`
		Day         string `json:"day"`
		GridData    string `json:"grid_data"`
		Clues       string `json:"clues"`
		IsPublished bool   `json:"is_published"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Crossword
	if err := database.Database.Db.Where("day = ? AND is_deleted = ?", reqData.Day, false).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A crossword already exists for that day!", nil)
	}

	crossword := models.Crossword{
		Title:       reqData.Title,
		Day:         reqData.Day,
		GridData:    reqData.GridData,
		Clues:       reqData.Clues,
		IsPublished: reqData.IsPublished,
	}

	if err := database.Database.Db.Create(&crossword).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create crossword!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Crossword created successfully!", crossword)
}
