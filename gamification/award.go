package gamification

import (
	"errors"
	"fmt"
	"time"

	"triethoc/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CounterDelta names the profile counter increments an XP award carries along
// with it, e.g. coursesCompleted for a course completion.
type CounterDelta struct {
	CoursesCompleted int
	QuizzesCompleted int
	BlogsCreated     int
	StudyMinutes     int
}

// AwardXP adds xpAmount to the user's profile, recomputes level and rank,
// applies any counter increments, appends an activity-log entry and grants
// any badge whose requirement the updated profile now satisfies. Everything
// runs in one transaction; the profile row is locked for the duration so two
// concurrent awards cannot read the same stale experience value.
//
// Callers treat earning XP as a non-critical enhancement: log the returned
// error and carry on, never fail the triggering action because of it.
func AwardXP(db *gorm.DB, userID uint, activityType string, xpAmount int, description string, delta *CounterDelta) error {
	if xpAmount < 0 {
		return fmt.Errorf("negative xp amount: %d", xpAmount)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		profile, err := lockOrCreateProfile(tx, userID)
		if err != nil {
			return err
		}

		profile.Experience += xpAmount
		if delta != nil {
			profile.CoursesCompleted += delta.CoursesCompleted
			profile.QuizzesCompleted += delta.QuizzesCompleted
			profile.BlogsCreated += delta.BlogsCreated
			profile.TotalStudyTime += delta.StudyMinutes
		}
		profile.Level = CalculateLevel(profile.Experience)
		profile.Rank = CalculateRank(profile.Experience)

		if err := tx.Save(profile).Error; err != nil {
			return err
		}

		activity := models.UserActivity{
			UserID:      userID,
			Type:        activityType,
			Description: description,
			XPEarned:    xpAmount,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}

		return grantEarnedBadges(tx, profile)
	})
}

// GetOrCreateProfile fetches the user's profile, creating a zeroed one if the
// user has never earned XP before.
func GetOrCreateProfile(db *gorm.DB, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return createProfile(db, db, userID)
}

// lockOrCreateProfile is GetOrCreateProfile under a row lock. SQLite (used in
// tests) has no FOR UPDATE; its transactions serialize writes anyway.
func lockOrCreateProfile(tx *gorm.DB, userID uint) (*models.UserProfile, error) {
	q := tx
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var profile models.UserProfile
	err := q.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return createProfile(tx, q, userID)
}

// createProfile inserts the first-ever profile row for a user. A concurrent
// award can insert the row between the caller's missed read and this insert;
// DO NOTHING turns that into a zero-row insert and the re-read (through q, so
// any row lock is taken) picks up the winner instead of failing the unique
// index on user_id.
func createProfile(db, q *gorm.DB, userID uint) (*models.UserProfile, error) {
	profile := models.UserProfile{UserID: userID, Level: 1, Rank: RankBronze}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&profile)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if err := q.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return nil, err
		}
	}
	return &profile, nil
}

// grantEarnedBadges creates UserBadge rows for every seeded badge the profile
// now qualifies for. Badge XP rewards are added in the same pass; the pass is
// not re-run for badges unlocked by that extra XP, they are picked up on the
// next award.
func grantEarnedBadges(tx *gorm.DB, profile *models.UserProfile) error {
	var badges []models.Badge
	if err := tx.Find(&badges).Error; err != nil {
		return err
	}
	if len(badges) == 0 {
		return nil
	}

	earned := make(map[uint]bool)
	var existing []models.UserBadge
	if err := tx.Where("user_id = ?", profile.UserID).Find(&existing).Error; err != nil {
		return err
	}
	for _, ub := range existing {
		earned[ub.BadgeID] = true
	}

	bonusXP := 0
	for i := range badges {
		badge := &badges[i]
		if earned[badge.ID] {
			continue
		}
		target := badge.Target
		if target < 1 {
			target = 1
		}
		if MetricValue(profile, badge.Metric) < target {
			continue
		}

		userBadge := models.UserBadge{
			UserID:   profile.UserID,
			BadgeID:  badge.ID,
			EarnedAt: time.Now(),
		}
		if err := tx.Create(&userBadge).Error; err != nil {
			return err
		}

		activity := models.UserActivity{
			UserID:      profile.UserID,
			Type:        models.ActivityBadgeEarned,
			Description: fmt.Sprintf("Earned badge: %s", badge.Name),
			XPEarned:    badge.XPReward,
		}
		if err := tx.Create(&activity).Error; err != nil {
			return err
		}
		bonusXP += badge.XPReward
	}

	if bonusXP == 0 {
		return nil
	}

	profile.Experience += bonusXP
	profile.Level = CalculateLevel(profile.Experience)
	profile.Rank = CalculateRank(profile.Experience)
	return tx.Save(profile).Error
}
