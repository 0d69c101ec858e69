package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"triethoc/database"
	"triethoc/gamification"
	"triethoc/middleware"
	"triethoc/models"
	courseModels "triethoc/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// chapterCompletionResult is what completeChapter reports back to the handler.
type chapterCompletionResult struct {
	CompletedPercent int
	ChapterCompleted bool // quiz newly completed on this call
	CourseCompleted  bool // percent crossed into 100 on this call
	ChapterTitle     string
	CourseTitle      string
}

// MarkChapterComplete upserts the caller's chapter progress, recomputes the
// course completion percentage and fires XP awards. The completion itself
// succeeds even when awarding XP fails.
func MarkChapterComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	chapterID := c.Locals("chapterID").(int)

	reqData, ok := c.Locals("validatedChapterComplete").(*struct {
		VideoWatched  bool `json:"video_watched"`
		QuizCompleted bool `json:"quiz_completed"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := completeChapter(database.Database.Db, userID, uint(courseID), uint(chapterID), reqData.VideoWatched, reqData.QuizCompleted)
	if err != nil {
		if errors.Is(err, errCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
		}
		if errors.Is(err, errChapterNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		if errors.Is(err, errNotEnrolled) {
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark chapter as completed!", nil)
	}

	// XP side effects are best-effort: earning XP never fails the completion.
	awardCompletionXP(database.Database.Db, userID, result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter progress updated successfully!", fiber.Map{
		"completed_percent": result.CompletedPercent,
		"course_completed":  result.CourseCompleted,
	})
}

// awardCompletionXP fires the chapter XP and, on the 100% transition, the
// one-time course bonus. Failures are logged and swallowed.
func awardCompletionXP(db *gorm.DB, userID uint, result *chapterCompletionResult) {
	if result.ChapterCompleted {
		xp := gamification.XPRewards[models.ActivityChapterCompleted]
		desc := fmt.Sprintf("Completed chapter: %s", result.ChapterTitle)
		if err := gamification.AwardXP(db, userID, models.ActivityChapterCompleted, xp, desc, nil); err != nil {
			log.Printf("Failed to award chapter completion XP for user %d: %v", userID, err)
		}
	}
	if result.CourseCompleted {
		xp := gamification.XPRewards[models.ActivityCourseCompleted]
		desc := fmt.Sprintf("Completed course: %s", result.CourseTitle)
		delta := &gamification.CounterDelta{CoursesCompleted: 1}
		if err := gamification.AwardXP(db, userID, models.ActivityCourseCompleted, xp, desc, delta); err != nil {
			log.Printf("Failed to award course completion XP for user %d: %v", userID, err)
		}
	}
}

var (
	errCourseNotFound  = errors.New("course not found")
	errChapterNotFound = errors.New("chapter not found")
	errNotEnrolled     = errors.New("not enrolled")
)

// completeChapter upserts the chapter progress row and recomputes the stored
// course percentage from chapter counts. The course-completion transition is
// detected by comparing the previously stored percent (<100) against the
// fresh one (==100), so the bonus can fire at most once per user and course.
func completeChapter(db *gorm.DB, userID, courseID, chapterID uint, videoWatched, quizCompleted bool) (*chapterCompletionResult, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return nil, errCourseNotFound
	}

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND course_id = ? AND is_deleted = ? AND is_published = ?", chapterID, courseID, false, true).First(&chapter).Error; err != nil {
		return nil, errChapterNotFound
	}

	var progress courseModels.CourseProgress
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		return nil, errNotEnrolled
	}

	result := &chapterCompletionResult{
		ChapterTitle: chapter.Title,
		CourseTitle:  course.Title,
	}

	// Upsert the chapter row. Flags only ever go from false to true, so a
	// duplicate retry of the same completion is a no-op.
	var chapterProgress courseModels.ChapterProgress
	err := db.Where("user_id = ? AND chapter_id = ? AND is_deleted = ?", userID, chapterID, false).First(&chapterProgress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		chapterProgress = courseModels.ChapterProgress{
			UserID:    userID,
			CourseID:  courseID,
			ChapterID: chapterID,
		}
	} else if err != nil {
		return nil, err
	}

	if videoWatched {
		chapterProgress.VideoWatched = true
	}
	if quizCompleted && !chapterProgress.QuizCompleted {
		chapterProgress.QuizCompleted = true
		now := time.Now()
		chapterProgress.CompletedAt = &now
		result.ChapterCompleted = true
	}
	if err := db.Save(&chapterProgress).Error; err != nil {
		return nil, err
	}

	// Recompute the percentage from scratch; it is never patched
	// incrementally.
	previousPercent := progress.CompletedPercent
	percent := computeCoursePercent(db, userID, courseID)

	progress.CompletedPercent = percent
	progress.LastAccessedAt = time.Now()
	if err := db.Save(&progress).Error; err != nil {
		return nil, err
	}

	result.CompletedPercent = percent
	result.CourseCompleted = previousPercent < 100 && percent == 100

	return result, nil
}

// computeCoursePercent counts quiz-completed chapters against the published
// chapter count for the course.
func computeCoursePercent(db *gorm.DB, userID, courseID uint) int {
	var total, completed int64

	db.Model(&courseModels.Chapter{}).Where("course_id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).Count(&total)
	db.Model(&courseModels.ChapterProgress{}).Where("user_id = ? AND course_id = ? AND quiz_completed = ? AND is_deleted = ?", userID, courseID, true, false).Count(&completed)

	return gamification.CourseProgressPercent(int(completed), int(total))
}

// GetUserProgress returns the stored percentage plus per-chapter rows
func GetUserProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var progress courseModels.CourseProgress
	if err := database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "User not enrolled in this course!", nil)
	}

	var chapterRows []courseModels.ChapterProgress
	database.Database.Db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&chapterRows)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress": progress,
		"chapters": chapterRows,
	})
}
