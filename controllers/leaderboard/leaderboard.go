package leaderboardController

import (
	"triethoc/database"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const defaultLeaderboardLimit = 100

// leaderboard type selector to profile column
var leaderboardColumns = map[string]string{
	"xp":      "experience",
	"courses": "courses_completed",
	"quizzes": "quizzes_completed",
	"blogs":   "blogs_created",
	"time":    "total_study_time",
}

// LeaderboardEntry is one row of the leaderboard response
type LeaderboardEntry struct {
	Position int                `json:"position"`
	Profile  models.UserProfile `json:"profile"`
	Badges   []models.UserBadge `json:"badges"`
}

// GetLeaderboard returns profiles ordered by the selected metric, joined
// with user identity and earned badges.
func GetLeaderboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	boardType := c.Query("type", "xp")
	column, ok := leaderboardColumns[boardType]
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid leaderboard type!", nil)
	}

	entries, err := fetchLeaderboard(database.Database.Db, column, c.QueryInt("limit", defaultLeaderboardLimit))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch leaderboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Leaderboard fetched successfully!", fiber.Map{
		"type":    boardType,
		"entries": entries,
	})
}

// fetchLeaderboard returns up to limit profiles ordered descending on the
// given column, each with user identity and earned badges attached. Limits
// outside (0, defaultLeaderboardLimit] are clamped to the default.
func fetchLeaderboard(db *gorm.DB, column string, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > defaultLeaderboardLimit {
		limit = defaultLeaderboardLimit
	}

	var profiles []models.UserProfile
	if err := db.Preload("User").Order(column + " desc").Limit(limit).Find(&profiles).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(profiles))
	for i, profile := range profiles {
		profile.User.Password = ""

		var badges []models.UserBadge
		db.Where("user_id = ?", profile.UserID).Preload("Badge").Find(&badges)

		entries[i] = LeaderboardEntry{
			Position: i + 1,
			Profile:  profile,
			Badges:   badges,
		}
	}

	return entries, nil
}
