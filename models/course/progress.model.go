package course

import (
	"time"

	"gorm.io/gorm"
)

// CourseProgress tracks a user's progress through a course. CompletedPercent
// is always recomputed from chapter rows, never patched incrementally.
type CourseProgress struct {
	gorm.Model
	UserID           uint      `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID         uint      `json:"course_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CompletedPercent int       `json:"completed_percent" gorm:"default:0"` // 0-100
	LastAccessedAt   time.Time `json:"last_accessed_at"`
	IsDeleted        bool      `gorm:"default:false"`

	Course Course `json:"course" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

// ChapterProgress tracks per-chapter completion state for a user. A chapter
// counts toward CompletedPercent once QuizCompleted is set.
type ChapterProgress struct {
	gorm.Model
	UserID        uint       `json:"user_id" gorm:"uniqueIndex:idx_user_chapter;not null"`
	CourseID      uint       `json:"course_id" gorm:"index;not null"`
	ChapterID     uint       `json:"chapter_id" gorm:"uniqueIndex:idx_user_chapter;not null"`
	VideoWatched  bool       `json:"video_watched" gorm:"default:false"`
	QuizCompleted bool       `json:"quiz_completed" gorm:"default:false"`
	CompletedAt   *time.Time `json:"completed_at"`
	IsDeleted     bool       `gorm:"default:false"`

	Chapter Chapter `json:"-" gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE"`
}
