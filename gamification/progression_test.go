package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevel(t *testing.T) {
	tests := []struct {
		name string
		xp   int
		want int
	}{
		{name: "zero xp is level 1", xp: 0, want: 1},
		{name: "just below first threshold", xp: 99, want: 1},
		{name: "threshold is inclusive", xp: 100, want: 2},
		{name: "mid band", xp: 700, want: 4},
		{name: "exactly level 5", xp: 1000, want: 5},
		{name: "top threshold", xp: 100000, want: 20},
		{name: "plateaus past top threshold", xp: 999999, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateLevel(tt.xp))
		})
	}
}

func TestCalculateRank(t *testing.T) {
	tests := []struct {
		xp   int
		want string
	}{
		{xp: 0, want: RankBronze},
		{xp: 999, want: RankBronze},
		{xp: 1000, want: RankSilver},
		{xp: 4999, want: RankSilver},
		{xp: 5000, want: RankGold},
		{xp: 15000, want: RankDiamond},
		{xp: 49999, want: RankDiamond},
		{xp: 50000, want: RankMaster},
		{xp: 1000000, want: RankMaster},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRank(tt.xp), "xp=%d", tt.xp)
	}
}

func TestXpForNextLevel(t *testing.T) {
	assert.Equal(t, 100, XpForNextLevel(1))
	assert.Equal(t, 250, XpForNextLevel(2))
	assert.Equal(t, 100000, XpForNextLevel(19))
	// Plateaus at the final threshold
	assert.Equal(t, 100000, XpForNextLevel(20))
	assert.Equal(t, 100000, XpForNextLevel(99))
}

func TestXpProgress(t *testing.T) {
	// At the lower bound of a level there is no progress yet
	assert.Equal(t, 0, XpProgress(0, 1))
	assert.Equal(t, 0, XpProgress(100, 2))

	// Halfway through level 1 (0..100)
	assert.Equal(t, 50, XpProgress(50, 1))

	// Monotonically non-decreasing within a level band
	prev := 0
	for xp := 100; xp < 250; xp++ {
		p := XpProgress(xp, 2)
		assert.GreaterOrEqual(t, p, prev, "xp=%d", xp)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}

	// Resets toward 0 after crossing into the next level
	assert.Less(t, XpProgress(251, 3), XpProgress(249, 2))

	// Always 100 at max level, whatever the xp
	assert.Equal(t, 100, XpProgress(100000, 20))
	assert.Equal(t, 100, XpProgress(5000000, 20))
}

func TestCourseProgressPercent(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{name: "no chapters", completed: 0, total: 0, want: 0},
		{name: "nothing done", completed: 0, total: 8, want: 0},
		{name: "all done", completed: 8, total: 8, want: 100},
		{name: "one of three rounds", completed: 1, total: 3, want: 33},
		{name: "two of three rounds", completed: 2, total: 3, want: 67},
		{name: "half", completed: 2, total: 4, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CourseProgressPercent(tt.completed, tt.total))
		})
	}

	// Bounds hold for any completed <= total
	for total := 1; total <= 20; total++ {
		for completed := 0; completed <= total; completed++ {
			p := CourseProgressPercent(completed, total)
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	}
}

func TestXPRewardsWired(t *testing.T) {
	// Every activity type the platform awards must have an amount
	for _, activityType := range []string{
		"COURSE_STARTED", "CHAPTER_COMPLETED", "COURSE_COMPLETED",
		"QUIZ_COMPLETED", "QUIZ_PERFECT_SCORE", "BLOG_CREATED",
		"BLOG_PUBLISHED", "COMMENT_POSTED", "DAILY_CHECKIN",
		"STUDY_STREAK", "DAILY_LOGIN", "CROSSWORD_SOLVED",
	} {
		assert.Positive(t, XPRewards[activityType], activityType)
	}

	assert.Equal(t, 50, XPRewards["CHAPTER_COMPLETED"])
	assert.Equal(t, 500, XPRewards["COURSE_COMPLETED"])
	assert.Equal(t, 300, XPRewards["BLOG_PUBLISHED"])
	assert.Equal(t, 20, XPRewards["COMMENT_POSTED"])
	assert.Equal(t, 50, XPRewards["DAILY_CHECKIN"])
}
