package controllers

import (
	"fmt"
	"testing"

	"triethoc/gamification"
	"triethoc/models"
	courseModels "triethoc/models/course"

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
		&courseModels.Course{},
		&courseModels.Chapter{},
		&courseModels.CourseProgress{},
		&courseModels.ChapterProgress{},
	))
	return db
}

// seedCourse creates a published course with n published chapters and an
// enrollment row for the user, mirroring what EnrollInCourse writes.
func seedCourse(t *testing.T, db *gorm.DB, userID uint, chapters int) (courseModels.Course, []courseModels.Chapter) {
	t.Helper()

	course := courseModels.Course{
		Title:       "Nhập môn Triết học Mác - Lênin",
		Author:      "Admin",
		IsPublished: true,
	}
	require.NoError(t, db.Create(&course).Error)

	out := make([]courseModels.Chapter, 0, chapters)
	for i := 1; i <= chapters; i++ {
		ch := courseModels.Chapter{
			CourseID:    course.ID,
			Title:       fmt.Sprintf("Chương %d", i),
			OrderIndex:  i,
			IsPublished: true,
		}
		require.NoError(t, db.Create(&ch).Error)
		out = append(out, ch)
	}

	require.NoError(t, db.Create(&courseModels.CourseProgress{
		UserID:   userID,
		CourseID: course.ID,
	}).Error)

	return course, out
}

func TestCompleteChapterStepsThroughCourse(t *testing.T) {
	db := testDB(t)
	course, chapters := seedCourse(t, db, 1, 4)

	wantPercents := []int{25, 50, 75, 100}
	for i, ch := range chapters {
		result, err := completeChapter(db, 1, course.ID, ch.ID, true, true)
		require.NoError(t, err)

		assert.Equal(t, wantPercents[i], result.CompletedPercent)
		assert.True(t, result.ChapterCompleted)
		assert.Equal(t, i == len(chapters)-1, result.CourseCompleted, "bonus only on the last chapter")
	}

	var progress courseModels.CourseProgress
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", 1, course.ID).First(&progress).Error)
	assert.Equal(t, 100, progress.CompletedPercent)
}

func TestCompleteChapterIsIdempotent(t *testing.T) {
	db := testDB(t)
	course, chapters := seedCourse(t, db, 1, 2)

	first, err := completeChapter(db, 1, course.ID, chapters[0].ID, true, true)
	require.NoError(t, err)
	assert.True(t, first.ChapterCompleted)
	assert.Equal(t, 50, first.CompletedPercent)

	// Re-sending the same completion changes nothing and awards nothing.
	again, err := completeChapter(db, 1, course.ID, chapters[0].ID, true, true)
	require.NoError(t, err)
	assert.False(t, again.ChapterCompleted)
	assert.False(t, again.CourseCompleted)
	assert.Equal(t, 50, again.CompletedPercent)

	var rows int64
	require.NoError(t, db.Model(&courseModels.ChapterProgress{}).
		Where("user_id = ? AND chapter_id = ?", 1, chapters[0].ID).Count(&rows).Error)
	assert.EqualValues(t, 1, rows)
}

func TestCompleteChapterVideoOnlyDoesNotCount(t *testing.T) {
	db := testDB(t)
	course, chapters := seedCourse(t, db, 1, 2)

	result, err := completeChapter(db, 1, course.ID, chapters[0].ID, true, false)
	require.NoError(t, err)
	assert.False(t, result.ChapterCompleted)
	assert.Equal(t, 0, result.CompletedPercent, "watching the video alone completes nothing")

	// The quiz later flips the same row to completed.
	result, err = completeChapter(db, 1, course.ID, chapters[0].ID, false, true)
	require.NoError(t, err)
	assert.True(t, result.ChapterCompleted)
	assert.Equal(t, 50, result.CompletedPercent)
}

func TestCompleteChapterGuards(t *testing.T) {
	db := testDB(t)
	course, chapters := seedCourse(t, db, 1, 1)

	_, err := completeChapter(db, 1, 999, chapters[0].ID, true, true)
	assert.ErrorIs(t, err, errCourseNotFound)

	_, err = completeChapter(db, 1, course.ID, 999, true, true)
	assert.ErrorIs(t, err, errChapterNotFound)

	// User 2 never enrolled.
	_, err = completeChapter(db, 2, course.ID, chapters[0].ID, true, true)
	assert.ErrorIs(t, err, errNotEnrolled)
}

func TestCompleteChapterIgnoresUnpublishedChapters(t *testing.T) {
	db := testDB(t)
	course, chapters := seedCourse(t, db, 1, 2)

	draft := courseModels.Chapter{CourseID: course.ID, Title: "Bản nháp", OrderIndex: 3}
	require.NoError(t, db.Create(&draft).Error)

	// Draft chapters neither count toward the denominator nor accept progress.
	_, err := completeChapter(db, 1, course.ID, draft.ID, true, true)
	assert.ErrorIs(t, err, errChapterNotFound)

	result, err := completeChapter(db, 1, course.ID, chapters[0].ID, true, true)
	require.NoError(t, err)
	assert.Equal(t, 50, result.CompletedPercent)
}

func TestCourseCompletionAwardsFullXP(t *testing.T) {
	db := testDB(t)
	course, chapters := seedCourse(t, db, 1, 4)

	for _, ch := range chapters {
		result, err := completeChapter(db, 1, course.ID, ch.ID, true, true)
		require.NoError(t, err)
		awardCompletionXP(db, 1, result)
	}

	// 4 chapters x 50 XP + 500 course bonus.
	var profile models.UserProfile
	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 700, profile.Experience)
	assert.Equal(t, 4, profile.Level)
	assert.Equal(t, gamification.RankBronze, profile.Rank)
	assert.Equal(t, 1, profile.CoursesCompleted)

	var chapterAwards, courseAwards int64
	require.NoError(t, db.Model(&models.UserActivity{}).
		Where("user_id = ? AND type = ?", 1, models.ActivityChapterCompleted).
		Count(&chapterAwards).Error)
	require.NoError(t, db.Model(&models.UserActivity{}).
		Where("user_id = ? AND type = ?", 1, models.ActivityCourseCompleted).
		Count(&courseAwards).Error)
	assert.EqualValues(t, 4, chapterAwards)
	assert.EqualValues(t, 1, courseAwards)

	// Replaying the last chapter never re-fires the course bonus.
	result, err := completeChapter(db, 1, course.ID, chapters[3].ID, true, true)
	require.NoError(t, err)
	awardCompletionXP(db, 1, result)

	require.NoError(t, db.Where("user_id = ?", 1).First(&profile).Error)
	assert.Equal(t, 700, profile.Experience)
	assert.Equal(t, 1, profile.CoursesCompleted)
}
