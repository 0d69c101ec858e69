package checkinController

import (
	"fmt"
	"testing"
	"time"

	"triethoc/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.UserProfile{},
		&models.UserActivity{},
		&models.Badge{},
		&models.UserBadge{},
		&models.DailyCheckin{},
	))
	return db
}

func TestCheckinStartsStreakAtOne(t *testing.T) {
	db := testDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	result, err := performCheckin(db, 1, now)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)
	assert.False(t, result.StreakBonus)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 1, profile.Streak)
	require.NotNil(t, profile.LastCheckinAt)
	assert.Equal(t, "2026-03-10", profile.LastCheckinAt.Format("2006-01-02"))
}

func TestCheckinConsecutiveDaysAdvanceStreak(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	for day := 0; day < 3; day++ {
		result, err := performCheckin(db, 1, start.AddDate(0, 0, day))
		require.NoError(t, err)
		assert.Equal(t, day+1, result.Streak)
	}
}

func TestCheckinGapResetsStreak(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	_, err := performCheckin(db, 1, start)
	require.NoError(t, err)
	_, err = performCheckin(db, 1, start.AddDate(0, 0, 1))
	require.NoError(t, err)

	// Skipping a day throws the streak back to 1.
	result, err := performCheckin(db, 1, start.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Streak)
}

func TestCheckinOncePerDay(t *testing.T) {
	db := testDB(t)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	_, err := performCheckin(db, 1, now)
	require.NoError(t, err)

	// A second check-in later the same day is rejected and the streak holds.
	_, err = performCheckin(db, 1, now.Add(5*time.Hour))
	assert.ErrorIs(t, err, errAlreadyCheckedIn)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 1, profile.Streak)

	var rows int64
	require.NoError(t, db.Model(&models.DailyCheckin{}).Where("user_id = ?", 1).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestCheckinSeventhDayEarnsStreakBonus(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	for day := 0; day < 7; day++ {
		result, err := performCheckin(db, 1, start.AddDate(0, 0, day))
		require.NoError(t, err)
		assert.Equal(t, day == 6, result.StreakBonus, "day %d", day+1)
		awardCheckinXP(db, 1, result)
	}

	// 7 x 50 check-in XP + 50 streak bonus; no badges are seeded here.
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 400, profile.Experience)

	var bonuses int64
	require.NoError(t, db.Model(&models.UserActivity{}).
		Where("user_id = ? AND type = ?", 1, models.ActivityStudyStreak).
		Count(&bonuses).Error)
	assert.EqualValues(t, 1, bonuses)
}

func TestCheckinStreakBonusRepeatsEverySeventhDay(t *testing.T) {
	db := testDB(t)
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	bonusDays := 0
	for day := 0; day < 14; day++ {
		result, err := performCheckin(db, 1, start.AddDate(0, 0, day))
		require.NoError(t, err)
		if result.StreakBonus {
			bonusDays++
			assert.Zero(t, result.Streak%7)
		}
	}
	assert.Equal(t, 2, bonusDays)

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 14, profile.Streak)
}
