package gamification

import (
	"errors"

	"triethoc/models"

	"gorm.io/gorm"
)

// SeedBadges inserts every catalog entry that is not already present, keyed
// by code. Safe to run repeatedly; reseeding a fully seeded catalog creates
// nothing. Returns the badges created by this invocation.
func SeedBadges(db *gorm.DB) ([]models.Badge, error) {
	var created []models.Badge

	for _, def := range BadgeCatalog {
		var existing models.Badge
		err := db.Where("code = ?", def.Code).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}

		badge := models.Badge{
			Code:        def.Code,
			Name:        def.Name,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
			Requirement: def.Requirement,
			XPReward:    def.XPReward,
			Metric:      def.Metric,
			Target:      def.Target,
		}
		if err := db.Create(&badge).Error; err != nil {
			return created, err
		}
		created = append(created, badge)
	}

	return created, nil
}
