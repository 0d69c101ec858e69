package authController

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
	))
	return db
}

func countDailyLogins(t *testing.T, db *gorm.DB, userID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.UserActivity{}).
		Where("user_id = ? AND type = ?", userID, models.ActivityDailyLogin).
		Count(&count).Error)
	return count
}

func TestDailyLoginAwardedOncePerDay(t *testing.T) {
	db := testDB(t)
	now := time.Now()

	awardDailyLoginXP(db, 1, now)
	awardDailyLoginXP(db, 1, now)

	assert.EqualValues(t, 1, countDailyLogins(t, db, 1))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 10, profile.Experience)
}

func TestDailyLoginDayBoundaryIsLocalMidnight(t *testing.T) {
	db := testDB(t)
	zone := time.FixedZone("ICT", 7*3600)

	// An award recorded shortly before UTC midnight (06:50 local in UTC+7)
	// must still block a second login after it (07:10 local, past UTC
	// midnight): the window rolls at local midnight, not at UTC's.
	first := models.UserActivity{
		UserID:      1,
		Type:        models.ActivityDailyLogin,
		Description: "Daily login",
		XPEarned:    10,
	}
	first.CreatedAt = time.Date(2026, 3, 10, 6, 50, 0, 0, zone)
	require.NoError(t, db.Create(&first).Error)

	awardDailyLoginXP(db, 1, time.Date(2026, 3, 10, 7, 10, 0, 0, zone))

	assert.EqualValues(t, 1, countDailyLogins(t, db, 1))
}

func TestDailyLoginAwardedAgainNextDay(t *testing.T) {
	db := testDB(t)
	zone := time.FixedZone("ICT", 7*3600)

	first := models.UserActivity{
		UserID:      1,
		Type:        models.ActivityDailyLogin,
		Description: "Daily login",
		XPEarned:    10,
	}
	first.CreatedAt = time.Date(2026, 3, 10, 22, 0, 0, 0, zone)
	require.NoError(t, db.Create(&first).Error)

	awardDailyLoginXP(db, 1, time.Date(2026, 3, 11, 0, 30, 0, 0, zone))

	assert.EqualValues(t, 2, countDailyLogins(t, db, 1))
}
