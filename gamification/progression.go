package gamification

import "math"

// Ranks, coarsest to finest tier.
const (
	RankBronze  = "BRONZE"
	RankSilver  = "SILVER"
	RankGold    = "GOLD"
	RankDiamond = "DIAMOND"
	RankMaster  = "MASTER"
)

// LevelThresholds maps level (index+1) to the XP needed to reach it.
// Level 1 starts at 0; XP past the last entry stays at the max level.
var LevelThresholds = []int{
	0, 100, 250, 500, 1000, 2000, 3500, 5500, 8000, 11000,
	15000, 20000, 26000, 33000, 41000, 50000, 60000, 72000, 85000, 100000,
}

// XPRewards is the single source of XP amounts per activity type.
var XPRewards = map[string]int{
	"COURSE_STARTED":     10,
	"CHAPTER_COMPLETED":  50,
	"COURSE_COMPLETED":   500,
	"QUIZ_COMPLETED":     100,
	"QUIZ_PERFECT_SCORE": 200,
	"BLOG_CREATED":       150,
	"BLOG_PUBLISHED":     300,
	"COMMENT_POSTED":     20,
	"DAILY_CHECKIN":      50,
	"STUDY_STREAK":       50,
	"DAILY_LOGIN":        10,
	"CROSSWORD_SOLVED":   80,
}

// CalculateLevel returns the highest level whose threshold is <= xp.
// Thresholds are inclusive: xp exactly at a threshold counts as that level.
func CalculateLevel(xp int) int {
	level := 1
	for i, threshold := range LevelThresholds {
		if xp >= threshold {
			level = i + 1
		} else {
			break
		}
	}
	return level
}

// CalculateRank returns the five-tier rank for the given XP. Rank is derived
// independently from level and is intentionally coarser.
func CalculateRank(xp int) string {
	switch {
	case xp >= 50000:
		return RankMaster
	case xp >= 15000:
		return RankDiamond
	case xp >= 5000:
		return RankGold
	case xp >= 1000:
		return RankSilver
	default:
		return RankBronze
	}
}

// XpForNextLevel returns the XP threshold for level+1, or the final threshold
// when already at the max level.
func XpForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	if level >= len(LevelThresholds) {
		return LevelThresholds[len(LevelThresholds)-1]
	}
	return LevelThresholds[level]
}

// XpProgress returns how far (0-100) xp is between the current level's
// threshold and the next one. Saturates at 100 at the max level.
func XpProgress(xp, level int) int {
	if level < 1 {
		level = 1
	}
	if level >= len(LevelThresholds) {
		return 100
	}
	current := LevelThresholds[level-1]
	next := LevelThresholds[level]
	if xp <= current {
		return 0
	}
	percent := int(math.Round(float64(xp-current) / float64(next-current) * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}

// CourseProgressPercent returns the completion percentage for a course given
// completed and total chapter counts, rounded to the nearest integer. A
// course with no chapters is 0% complete.
func CourseProgressPercent(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}
