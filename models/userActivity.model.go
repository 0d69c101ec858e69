package models

import "gorm.io/gorm"

// Activity type tags recorded in the activity log.
const (
	ActivityCourseStarted    = "COURSE_STARTED"
	ActivityChapterCompleted = "CHAPTER_COMPLETED"
	ActivityCourseCompleted  = "COURSE_COMPLETED"
	ActivityQuizCompleted    = "QUIZ_COMPLETED"
	ActivityQuizPerfectScore = "QUIZ_PERFECT_SCORE"
	ActivityBlogCreated      = "BLOG_CREATED"
	ActivityBlogPublished    = "BLOG_PUBLISHED"
	ActivityCommentPosted    = "COMMENT_POSTED"
	ActivityDailyCheckin     = "DAILY_CHECKIN"
	ActivityStudyStreak      = "STUDY_STREAK"
	ActivityDailyLogin       = "DAILY_LOGIN"
	ActivityCrosswordSolved  = "CROSSWORD_SOLVED"
	ActivityStudyTime        = "STUDY_TIME"
	ActivityBadgeEarned      = "BADGE_EARNED"
)

// UserActivity is an append-only log entry; rows are never updated or deleted.
type UserActivity struct {
	gorm.Model
	UserID      uint   `json:"user_id" gorm:"index;not null"`
	Type        string `json:"type" gorm:"not null"`
	Description string `json:"description"`
	XPEarned    int    `json:"xp_earned" gorm:"default:0"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
