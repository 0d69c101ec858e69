package badgeController

import (
	"log"

	"triethoc/config"
	"triethoc/database"
	"triethoc/gamification"
	"triethoc/middleware"
	"triethoc/models"

	"github.com/gofiber/fiber/v2"
)

// ListBadges returns the full badge catalog as persisted, ordered by category
func ListBadges(c *fiber.Ctx) error {
	var badges []models.Badge
	if err := database.Database.Db.Order("category asc, target asc").Find(&badges).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch badges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully!", badges)
}

// SeedBadges seeds the badge catalog into the database. Guarded by the shared
// SEED_SECRET when configured; idempotent, so re-running creates nothing new.
func SeedBadges(c *fiber.Ctx) error {
	reqData := new(struct {
		Secret string `json:"secret"`
	})
	// Body is optional when no secret is configured
	_ = c.BodyParser(reqData)

	if config.AppConfig.SeedSecret != "" && reqData.Secret != config.AppConfig.SeedSecret {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid seed secret!", nil)
	}

	created, err := gamification.SeedBadges(database.Database.Db)
	if err != nil {
		log.Printf("Badge seeding failed: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to seed badges!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges seeded successfully!", fiber.Map{
		"created_count": len(created),
		"created":       created,
	})
}

// BadgeWithProgress decorates a badge with the caller's earned state and
// progress toward the requirement.
type BadgeWithProgress struct {
	models.Badge
	Earned   bool `json:"earned"`
	Progress int  `json:"progress"`
	Target   int  `json:"progress_target"`
}

// MyBadges returns every badge with the caller's earned/progress state, so
// locked badges can render a progress bar.
func MyBadges(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	profile, err := gamification.GetOrCreateProfile(database.Database.Db, userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch profile!", nil)
	}

	var badges []models.Badge
	if err := database.Database.Db.Order("category asc, target asc").Find(&badges).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch badges!", nil)
	}

	earned := make(map[uint]bool)
	var userBadges []models.UserBadge
	database.Database.Db.Where("user_id = ?", userID).Find(&userBadges)
	for _, ub := range userBadges {
		earned[ub.BadgeID] = true
	}

	result := make([]BadgeWithProgress, len(badges))
	for i, badge := range badges {
		current, target := gamification.BadgeProgress(profile, &badge)
		result[i] = BadgeWithProgress{
			Badge:    badge,
			Earned:   earned[badge.ID],
			Progress: current,
			Target:   target,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Badges fetched successfully!", result)
}
