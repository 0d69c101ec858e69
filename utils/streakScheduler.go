package utils

import (
	"log"
	"time"

	"triethoc/database"
	"triethoc/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STREAK-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// resetExpiredStreaks zeroes the streak of every profile whose last check-in
// is more than two days old. Run nightly so a missed day shows up the next
// morning instead of on the user's next request.
func resetExpiredStreaks() {
	db := database.Database.Db
	cutoff := time.Now().Add(-48 * time.Hour)

	result := db.Model(&models.UserProfile{}).
		Where("streak > 0 AND (last_checkin_at IS NULL OR last_checkin_at < ?)", cutoff).
		Update("streak", 0)
	if result.Error != nil {
		logScheduler("Error resetting streaks: " + result.Error.Error())
		return
	}

	if result.RowsAffected > 0 {
		logScheduler("Reset streaks for " + time.Now().Format("2006-01-02"))
	}
}

// StartStreakScheduler starts the nightly streak reset job
func StartStreakScheduler() {
	c := cron.New()

	// Every day at 03:00
	if _, err := c.AddFunc("0 3 * * *", resetExpiredStreaks); err != nil {
		log.Fatalf("Failed to schedule streak reset: %v", err)
	}

	c.Start()
	logScheduler("Streak scheduler started")
}
