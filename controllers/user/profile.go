package userController

import (
	"triethoc/database"
	"triethoc/gamification"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
)

// GetMe returns the caller's profile with level progress and recent activity
func GetMe(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}
	user.Password = ""

	profile, err := gamification.GetOrCreateProfile(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	var activities []models.UserActivity
	database.Database.Db.Where("user_id = ?", userID).Order("created_at desc").Limit(20).Find(&activities)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"user":              user,
		"profile":           profile,
		"xp_for_next_level": gamification.XpForNextLevel(profile.Level),
		"xp_progress":       gamification.XpProgress(profile.Experience, profile.Level),
		"activities":        activities,
	})
}

// AddStudyTime adds a bounded number of study minutes to the profile counter.
// No XP is attached; the counter feeds learning badges and the time
// leaderboard.
func AddStudyTime(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedStudyTime").(*struct {
		Minutes int `json:"minutes"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	delta := &gamification.CounterDelta{StudyMinutes: reqData.Minutes}
	if err := gamification.AwardXP(database.Database.Db, userID, models.ActivityStudyTime, 0, "Logged study time", delta); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record study time!", nil)
	}

	profile, err := gamification.GetOrCreateProfile(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Study time recorded successfully!", fiber.Map{
		"total_study_time": profile.TotalStudyTime,
	})
}
