package checkinController

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

var errAlreadyCheckedIn = errors.New("already checked in")

// checkinResult is what performCheckin reports back to the handler.
type checkinResult struct {
	Streak      int
	StreakBonus bool // every 7th consecutive day
}

// CheckIn records today's check-in, maintains the streak and awards the
// daily check-in XP. Every 7th consecutive day earns the streak bonus too.
func CheckIn(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	result, err := performCheckin(database.Database.Db, userID, time.Now())
	if err != nil {
		if errors.Is(err, errAlreadyCheckedIn) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already checked in today!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check in!", nil)
	}

	// XP side effects are best-effort: earning XP never fails the check-in.
	awardCheckinXP(database.Database.Db, userID, result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Checked in successfully!", fiber.Map{
		"streak": result.Streak,
	})
}

// performCheckin records the day's check-in row and advances the streak. The
// streak continues only when the last check-in fell on the previous calendar
// day; any gap resets it to 1. The check-in row and the profile update commit
// together.
func performCheckin(db *gorm.DB, userID uint, now time.Time) (*checkinResult, error) {
	today := now.Format("2006-01-02")

	var existing models.DailyCheckin
	if err := db.Where("user_id = ? AND day = ?", userID, today).First(&existing).Error; err == nil {
		return nil, errAlreadyCheckedIn
	}

	profile, err := gamification.GetOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if profile.LastCheckinAt != nil && profile.LastCheckinAt.Format("2006-01-02") == yesterday {
		profile.Streak++
	} else {
		profile.Streak = 1
	}
	checkinTime := now
	profile.LastCheckinAt = &checkinTime

	checkin := models.DailyCheckin{UserID: userID, Day: today}
	err = db.Transaction(func(tx *gorm.DB) error {
		// The unique (user, day) index catches a concurrent double check-in.
		if err := tx.Create(&checkin).Error; err != nil {
			return errAlreadyCheckedIn
		}
		return tx.Save(profile).Error
	})
	if err != nil {
		return nil, err
	}

	return &checkinResult{
		Streak:      profile.Streak,
		StreakBonus: profile.Streak%7 == 0,
	}, nil
}

// awardCheckinXP fires the daily check-in XP and, on every 7th consecutive
// day, the streak bonus. Failures are logged and swallowed.
func awardCheckinXP(db *gorm.DB, userID uint, result *checkinResult) {
	xp := gamification.XPRewards[models.ActivityDailyCheckin]
	if err := gamification.AwardXP(db, userID, models.ActivityDailyCheckin, xp, "Daily check-in", nil); err != nil {
		log.Printf("Failed to award check-in XP for user %d: %v", userID, err)
	}

	if result.StreakBonus {
		bonus := gamification.XPRewards[models.ActivityStudyStreak]
		if err := gamification.AwardXP(db, userID, models.ActivityStudyStreak, bonus, "Check-in streak bonus", nil); err != nil {
			log.Printf("Failed to award streak bonus XP for user %d: %v", userID, err)
		}
	}
}
