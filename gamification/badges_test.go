package gamification

import (
	"testing"

	"triethoc/models"

	"github.com/stretchr/testify/assert"
)

func TestBadgeCatalogIntegrity(t *testing.T) {
	assert.GreaterOrEqual(t, len(BadgeCatalog), 12)

	seenCodes := make(map[string]bool)
	seenCategories := make(map[string]bool)
	knownMetrics := map[string]bool{
		models.MetricCoursesCompleted: true,
		models.MetricQuizzesCompleted: true,
		models.MetricBlogsCreated:     true,
		models.MetricStudyTime:        true,
		models.MetricStreak:           true,
		models.MetricLevel:            true,
	}

	for _, def := range BadgeCatalog {
		assert.NotEmpty(t, def.Code)
		assert.False(t, seenCodes[def.Code], "duplicate code %s", def.Code)
		seenCodes[def.Code] = true
		seenCategories[def.Category] = true

		assert.NotEmpty(t, def.Name, def.Code)
		assert.NotEmpty(t, def.Requirement, def.Code)
		assert.Positive(t, def.XPReward, def.Code)
		assert.Positive(t, def.Target, def.Code)
		assert.True(t, knownMetrics[def.Metric], "unknown metric %q on %s", def.Metric, def.Code)
	}

	// All six categories are represented
	for _, category := range []string{
		models.BadgeCategoryCourse, models.BadgeCategoryQuiz,
		models.BadgeCategoryBlog, models.BadgeCategoryLearning,
		models.BadgeCategorySocial, models.BadgeCategorySpecial,
	} {
		assert.True(t, seenCategories[category], category)
	}
}

func TestMetricValue(t *testing.T) {
	profile := &models.UserProfile{
		CoursesCompleted: 3,
		QuizzesCompleted: 7,
		BlogsCreated:     2,
		TotalStudyTime:   120,
		Streak:           5,
		Level:            4,
	}

	assert.Equal(t, 3, MetricValue(profile, models.MetricCoursesCompleted))
	assert.Equal(t, 7, MetricValue(profile, models.MetricQuizzesCompleted))
	assert.Equal(t, 2, MetricValue(profile, models.MetricBlogsCreated))
	assert.Equal(t, 120, MetricValue(profile, models.MetricStudyTime))
	assert.Equal(t, 5, MetricValue(profile, models.MetricStreak))
	assert.Equal(t, 4, MetricValue(profile, models.MetricLevel))

	// Unknown metrics read as zero progress
	assert.Equal(t, 0, MetricValue(profile, "no_such_metric"))
}

func TestBadgeProgress(t *testing.T) {
	profile := &models.UserProfile{QuizzesCompleted: 25}

	current, target := BadgeProgress(profile, &models.Badge{Metric: models.MetricQuizzesCompleted, Target: 10})
	assert.Equal(t, 10, current) // clamped at target
	assert.Equal(t, 10, target)

	current, target = BadgeProgress(profile, &models.Badge{Metric: models.MetricCoursesCompleted, Target: 5})
	assert.Equal(t, 0, current)
	assert.Equal(t, 5, target)

	// Zero target never divides the progress bar by zero
	current, target = BadgeProgress(profile, &models.Badge{Metric: "no_such_metric", Target: 0})
	assert.Equal(t, 0, current)
	assert.Equal(t, 1, target)
}
