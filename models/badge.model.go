package models

import (
	"time"

	"gorm.io/gorm"
)

// Badge categories.
const (
	BadgeCategoryCourse   = "COURSE"
	BadgeCategoryQuiz     = "QUIZ"
	BadgeCategoryBlog     = "BLOG"
	BadgeCategoryLearning = "LEARNING"
	BadgeCategorySocial   = "SOCIAL"
	BadgeCategorySpecial  = "SPECIAL"
)

// Badge metric selectors. Each badge declares which profile metric its
// progress is measured against, so adding a badge never needs new dispatch
// code.
const (
	MetricCoursesCompleted = "courses_completed"
	MetricQuizzesCompleted = "quizzes_completed"
	MetricBlogsCreated     = "blogs_created"
	MetricStudyTime        = "study_time"
	MetricStreak           = "streak"
	MetricLevel            = "level"
)

// Badge is a catalog entity seeded from the static in-code catalog.
type Badge struct {
	gorm.Model
	Code        string `json:"code" gorm:"unique;not null"`
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category" gorm:"index;not null"`
	Requirement string `json:"requirement"`
	XPReward    int    `json:"xp_reward" gorm:"default:0"`
	Metric      string `json:"metric"`
	Target      int    `json:"target" gorm:"default:1"`
}

// UserBadge links a user to an earned badge.
type UserBadge struct {
	gorm.Model
	UserID   uint      `json:"user_id" gorm:"uniqueIndex:idx_user_badge;not null"`
	BadgeID  uint      `json:"badge_id" gorm:"uniqueIndex:idx_user_badge;not null"`
	EarnedAt time.Time `json:"earned_at"`

	Badge Badge `json:"badge" gorm:"foreignKey:BadgeID;constraint:OnDelete:CASCADE"`
	User  User  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
