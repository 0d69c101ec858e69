package models

import "gorm.io/gorm"

// Crossword is a daily philosophy crossword puzzle. Grid and clues are kept
// as JSON blobs; the server only scores submissions, it never renders them.
type Crossword struct {
	gorm.Model
	Title       string `json:"title"`
	Day         string `json:"day" gorm:"uniqueIndex"` // YYYY-MM-DD
	GridData    string `json:"grid_data" gorm:"type:text"`
	Clues       string `json:"clues" gorm:"type:text"`
	IsPublished bool   `json:"is_published" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}

// CrosswordResult keeps a user's best result for a puzzle.
type CrosswordResult struct {
	gorm.Model
	UserID      uint `json:"user_id" gorm:"uniqueIndex:idx_user_crossword;not null"`
	CrosswordID uint `json:"crossword_id" gorm:"uniqueIndex:idx_user_crossword;not null"`
	Score       int  `json:"score"`
	TimeSeconds int  `json:"time_seconds"`

	User      User      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Crossword Crossword `json:"-" gorm:"foreignKey:CrosswordID;constraint:OnDelete:CASCADE"`
}
