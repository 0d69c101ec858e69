package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog moderation states.
const (
	BlogStatusDraft     = "DRAFT"
	BlogStatusPending   = "PENDING"
	BlogStatusPublished = "PUBLISHED"
	BlogStatusRejected  = "REJECTED"
)

type Blog struct {
	gorm.Model
	UserID          uint       `json:"user_id" gorm:"index;not null"`
	Title           string     `json:"title" gorm:"not null"`
	Content         string     `json:"content" gorm:"type:text"`
	CoverURL        string     `json:"cover_url"`
	Status          string     `json:"status" gorm:"default:'PENDING'"` // DRAFT, PENDING, PUBLISHED, REJECTED
	RejectionReason string     `json:"rejection_reason"`
	PublishedAt     *time.Time `json:"published_at"`
	IsDeleted       bool       `gorm:"default:false"`

	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type BlogComment struct {
	gorm.Model
	BlogID    uint   `json:"blog_id" gorm:"index;not null"`
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Content   string `json:"content" gorm:"type:text;not null"`
	IsDeleted bool   `gorm:"default:false"`

	Blog Blog `json:"-" gorm:"foreignKey:BlogID;constraint:OnDelete:CASCADE"`
	User User `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
