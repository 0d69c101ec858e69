package leaderboardController

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
		&models.User{},
		&models.UserProfile{},
		&models.Badge{},
		&models.UserBadge{},
	))
	return db
}

func seedProfiles(t *testing.T, db *gorm.DB) {
	t.Helper()

	users := []struct {
		name    string
		xp      int
		courses int
		quizzes int
	}{
		{name: "An", xp: 1200, courses: 1, quizzes: 9},
		{name: "Bình", xp: 300, courses: 4, quizzes: 2},
		{name: "Chi", xp: 5600, courses: 2, quizzes: 5},
	}

	for _, u := range users {
		user := models.User{Name: u.name, Email: u.name + "@example.com", Password: "secret-hash"}
		require.NoError(t, db.Create(&user).Error)
		require.NoError(t, db.Create(&models.UserProfile{
			UserID:           user.ID,
			Experience:       u.xp,
			CoursesCompleted: u.courses,
			QuizzesCompleted: u.quizzes,
		}).Error)
	}
}

func TestLeaderboardOrdersByExperience(t *testing.T) {
	db := testDB(t)
	seedProfiles(t, db)

	entries, err := fetchLeaderboard(db, leaderboardColumns["xp"], 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Chi", entries[0].Profile.User.Name)
	assert.Equal(t, "An", entries[1].Profile.User.Name)
	assert.Equal(t, "Bình", entries[2].Profile.User.Name)

	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Position)
		assert.Empty(t, entry.Profile.User.Password)
	}
}

func TestLeaderboardOrdersPerType(t *testing.T) {
	db := testDB(t)
	seedProfiles(t, db)

	tests := []struct {
		boardType string
		want      []string
	}{
		{boardType: "xp", want: []string{"Chi", "An", "Bình"}},
		{boardType: "courses", want: []string{"Bình", "Chi", "An"}},
		{boardType: "quizzes", want: []string{"An", "Chi", "Bình"}},
	}

	for _, tt := range tests {
		t.Run(tt.boardType, func(t *testing.T) {
			column, ok := leaderboardColumns[tt.boardType]
			require.True(t, ok)

			entries, err := fetchLeaderboard(db, column, 10)
			require.NoError(t, err)
			require.Len(t, entries, len(tt.want))
			for i, name := range tt.want {
				assert.Equal(t, name, entries[i].Profile.User.Name)
			}
		})
	}
}

func TestLeaderboardEveryTypeHasAColumn(t *testing.T) {
	db := testDB(t)
	seedProfiles(t, db)

	for boardType, column := range leaderboardColumns {
		_, err := fetchLeaderboard(db, column, 10)
		assert.NoError(t, err, boardType)
	}
}

func TestLeaderboardLimitClamped(t *testing.T) {
	db := testDB(t)
	seedProfiles(t, db)

	entries, err := fetchLeaderboard(db, leaderboardColumns["xp"], 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Chi", entries[0].Profile.User.Name)

	// Zero, negative and oversized limits all fall back to the default cap.
	for _, limit := range []int{0, -5, defaultLeaderboardLimit + 1} {
		entries, err := fetchLeaderboard(db, leaderboardColumns["xp"], limit)
		require.NoError(t, err)
		assert.Len(t, entries, 3, "limit %d", limit)
	}
}

func TestLeaderboardAttachesEarnedBadges(t *testing.T) {
	db := testDB(t)
	seedProfiles(t, db)

	badge := models.Badge{Code: "first_step", Name: "Bước chân đầu tiên", Metric: models.MetricCoursesCompleted, Target: 1}
	require.NoError(t, db.Create(&badge).Error)

	var top models.UserProfile
	require.NoError(t, db.Order("experience desc").First(&top).Error)
	require.NoError(t, db.Create(&models.UserBadge{UserID: top.UserID, BadgeID: badge.ID, EarnedAt: time.Now()}).Error)

	entries, err := fetchLeaderboard(db, leaderboardColumns["xp"], 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	require.Len(t, entries[0].Badges, 1)
	assert.Equal(t, "first_step", entries[0].Badges[0].Badge.Code)
	assert.Empty(t, entries[1].Badges)
}
