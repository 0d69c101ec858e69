package gamification

import (
	"fmt"
	"sync"
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

func TestAwardXPCreatesProfileLazily(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AwardXP(db, 1, "DAILY_LOGIN", 10, "Logged in", nil))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 10, profile.Experience)
	assert.Equal(t, 1, profile.Level)
	assert.Equal(t, RankBronze, profile.Rank)
}

func TestAwardXPAccumulatesAndRecomputes(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AwardXP(db, 1, "QUIZ_COMPLETED", 100, "Quiz", nil))
	require.NoError(t, AwardXP(db, 1, "COURSE_COMPLETED", 500, "Course", nil))
	require.NoError(t, AwardXP(db, 1, "CROSSWORD_SOLVED", 80, "Crossword", nil))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 680, profile.Experience)
	assert.Equal(t, CalculateLevel(680), profile.Level)
	assert.Equal(t, 4, profile.Level)
	assert.Equal(t, RankBronze, profile.Rank)

	var activities int64
	require.NoError(t, db.Model(&models.UserActivity{}).Where("user_id = ?", 1).Count(&activities).Error)
	assert.EqualValues(t, 3, activities)
}

func TestAwardXPCrossesRankBoundary(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AwardXP(db, 1, "COURSE_COMPLETED", 999, "Almost", nil))
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, RankBronze, profile.Rank)

	require.NoError(t, AwardXP(db, 1, "DAILY_LOGIN", 1, "Tip over", nil))
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, RankSilver, profile.Rank)
	assert.Equal(t, 5, profile.Level)
}

func TestAwardXPRejectsNegativeAmount(t *testing.T) {
	db := testDB(t)

	err := AwardXP(db, 1, "DAILY_LOGIN", -5, "Bad", nil)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.UserProfile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAwardXPAppliesCounterDeltas(t *testing.T) {
	db := testDB(t)

	require.NoError(t, AwardXP(db, 1, "COURSE_COMPLETED", 500, "Course", &CounterDelta{CoursesCompleted: 1}))
	require.NoError(t, AwardXP(db, 1, "QUIZ_COMPLETED", 100, "Quiz", &CounterDelta{QuizzesCompleted: 1}))
	require.NoError(t, AwardXP(db, 1, models.ActivityStudyTime, 0, "Studied", &CounterDelta{StudyMinutes: 45}))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 1, profile.CoursesCompleted)
	assert.Equal(t, 1, profile.QuizzesCompleted)
	assert.Equal(t, 45, profile.TotalStudyTime)
	assert.Equal(t, 600, profile.Experience)
}

func TestAwardXPGrantsBadgesWithBonus(t *testing.T) {
	db := testDB(t)
	_, err := SeedBadges(db)
	require.NoError(t, err)

	// First course completion satisfies first_step (target 1, +100 XP bonus)
	require.NoError(t, AwardXP(db, 1, "COURSE_COMPLETED", 500, "Course", &CounterDelta{CoursesCompleted: 1}))

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 600, profile.Experience, "500 award + 100 badge bonus")
	assert.Equal(t, CalculateLevel(600), profile.Level)

	var userBadges []models.UserBadge
	require.NoError(t, db.Where("user_id = ?", 1).Find(&userBadges).Error)
	require.Len(t, userBadges, 1)

	var badge models.Badge
	require.NoError(t, db.First(&badge, userBadges[0].BadgeID).Error)
	assert.Equal(t, "first_step", badge.Code)

	var badgeActivities int64
	require.NoError(t, db.Model(&models.UserActivity{}).
		Where("user_id = ? AND type = ?", 1, models.ActivityBadgeEarned).
		Count(&badgeActivities).Error)
	assert.EqualValues(t, 1, badgeActivities)
}

func TestAwardXPNeverGrantsBadgeTwice(t *testing.T) {
	db := testDB(t)
	_, err := SeedBadges(db)
	require.NoError(t, err)

	require.NoError(t, AwardXP(db, 1, "QUIZ_COMPLETED", 100, "Quiz 1", &CounterDelta{QuizzesCompleted: 1}))
	require.NoError(t, AwardXP(db, 1, "QUIZ_COMPLETED", 100, "Quiz 2", &CounterDelta{QuizzesCompleted: 1}))

	var count int64
	require.NoError(t, db.Model(&models.UserBadge{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 1, count, "quiz_starter granted exactly once")
}

func TestAwardXPFirstAwardLosesInsertRace(t *testing.T) {
	db := testDB(t)

	// Simulate a rival request inserting the first-ever profile row between
	// this award's missed read and its own insert.
	rivalDone := false
	err := db.Callback().Create().Before("gorm:create").Register("rival_profile_insert", func(tx *gorm.DB) {
		if rivalDone {
			return
		}
		if _, ok := tx.Statement.Dest.(*models.UserProfile); !ok {
			return
		}
		rivalDone = true
		tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO user_profiles (user_id, experience, level, rank, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
			uint(1), 30, 1, RankBronze, time.Now(), time.Now(),
		)
	})
	require.NoError(t, err)

	require.NoError(t, AwardXP(db, 1, "DAILY_LOGIN", 10, "Logged in", nil))

	// The losing insert falls back to the rival's row instead of erroring,
	// so both awards land on a single profile.
	var profiles []models.UserProfile
	require.NoError(t, db.Find(&profiles).Error)
	require.Len(t, profiles, 1)
	assert.Equal(t, 40, profiles[0].Experience)
}

func TestAwardXPConcurrentAwardsAllLand(t *testing.T) {
	db := testDB(t)

	const workers = 8
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// SQLite serializes writers; retry on a busy transaction so every
			// award lands, matching what row locking guarantees on Postgres.
			for {
				if err := AwardXP(db, 1, "DAILY_CHECKIN", 50, "Check-in", nil); err == nil {
					return
				}
			}
		}()
	}
	wg.Wait()

	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, workers*50, profile.Experience)
}

func TestSeedBadgesIsIdempotent(t *testing.T) {
	db := testDB(t)

	created, err := SeedBadges(db)
	require.NoError(t, err)
	assert.Len(t, created, len(BadgeCatalog))

	again, err := SeedBadges(db)
	require.NoError(t, err)
	assert.Empty(t, again)

	var total int64
	require.NoError(t, db.Model(&models.Badge{}).Count(&total).Error)
	assert.EqualValues(t, len(BadgeCatalog), total)
}

func TestSeedBadgesFillsPartialCatalog(t *testing.T) {
	db := testDB(t)

	first := BadgeCatalog[0]
	require.NoError(t, db.Create(&models.Badge{
		Code:   first.Code,
		Name:   first.Name,
		Metric: first.Metric,
		Target: first.Target,
	}).Error)

	created, err := SeedBadges(db)
	require.NoError(t, err)
	assert.Len(t, created, len(BadgeCatalog)-1)

	var total int64
	require.NoError(t, db.Model(&models.Badge{}).Count(&total).Error)
	assert.EqualValues(t, len(BadgeCatalog), total)
}
