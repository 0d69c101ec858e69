package models

import (
	"time"

	"gorm.io/gorm"
)

// UserProfile holds a user's gamification state. Created lazily on the first
// XP-earning event; experience only ever goes up.
type UserProfile struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Experience       int        `json:"experience" gorm:"default:0"`
	Level            int        `json:"level" gorm:"default:1"`
	Rank             string     `json:"rank" gorm:"default:'BRONZE'"`
	CoursesCompleted int        `json:"courses_completed" gorm:"default:0"`
	QuizzesCompleted int        `json:"quizzes_completed" gorm:"default:0"`
	BlogsCreated     int        `json:"blogs_created" gorm:"default:0"`
	TotalStudyTime   int        `json:"total_study_time" gorm:"default:0"` // minutes
	Streak           int        `json:"streak" gorm:"default:0"`           // consecutive check-in days
	LastCheckinAt    *time.Time `json:"last_checkin_at"`

	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
