package models

import "gorm.io/gorm"

// DailyCheckin records one check-in per user per calendar day.
type DailyCheckin struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex:idx_user_day;not null"`
	Day    string `json:"day" gorm:"uniqueIndex:idx_user_day;not null"` // YYYY-MM-DD

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
