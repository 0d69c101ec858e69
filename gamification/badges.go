package gamification

import "triethoc/models"

// BadgeDef is one entry of the static badge catalog. Metric and Target
// declare which profile counter the badge's progress is measured against;
// nothing outside this table needs to change when a badge is added.
type BadgeDef struct {
	Code        string
	Name        string
	Description string
	Icon        string
	Category    string
	Requirement string
	XPReward    int
	Metric      string
	Target      int
}

// BadgeCatalog is the full, ordered badge catalog seeded into the database.
var BadgeCatalog = []BadgeDef{
	{
		Code:        "first_step",
		Name:        "Bước chân đầu tiên",
		Description: "Hoàn thành khóa học đầu tiên của bạn",
		Icon:        "🎓",
		Category:    models.BadgeCategoryCourse,
		Requirement: "Hoàn thành 1 khóa học",
		XPReward:    100,
		Metric:      models.MetricCoursesCompleted,
		Target:      1,
	},
	{
		Code:        "course_collector",
		Name:        "Nhà sưu tầm tri thức",
		Description: "Hoàn thành 5 khóa học",
		Icon:        "📚",
		Category:    models.BadgeCategoryCourse,
		Requirement: "Hoàn thành 5 khóa học",
		XPReward:    300,
		Metric:      models.MetricCoursesCompleted,
		Target:      5,
	},
	{
		Code:        "course_master",
		Name:        "Bậc thầy học thuật",
		Description: "Hoàn thành 10 khóa học",
		Icon:        "🏛️",
		Category:    models.BadgeCategoryCourse,
		Requirement: "Hoàn thành 10 khóa học",
		XPReward:    500,
		Metric:      models.MetricCoursesCompleted,
		Target:      10,
	},
	{
		Code:        "quiz_starter",
		Name:        "Thử sức",
		Description: "Hoàn thành bài trắc nghiệm đầu tiên",
		Icon:        "✏️",
		Category:    models.BadgeCategoryQuiz,
		Requirement: "Hoàn thành 1 bài trắc nghiệm",
		XPReward:    50,
		Metric:      models.MetricQuizzesCompleted,
		Target:      1,
	},
	{
		Code:        "quiz_master",
		Name:        "Cao thủ trắc nghiệm",
		Description: "Hoàn thành 10 bài trắc nghiệm",
		Icon:        "🧠",
		Category:    models.BadgeCategoryQuiz,
		Requirement: "Hoàn thành 10 bài trắc nghiệm",
		XPReward:    300,
		Metric:      models.MetricQuizzesCompleted,
		Target:      10,
	},
	{
		Code:        "quiz_legend",
		Name:        "Huyền thoại trắc nghiệm",
		Description: "Hoàn thành 25 bài trắc nghiệm",
		Icon:        "🏆",
		Category:    models.BadgeCategoryQuiz,
		Requirement: "Hoàn thành 25 bài trắc nghiệm",
		XPReward:    500,
		Metric:      models.MetricQuizzesCompleted,
		Target:      25,
	},
	{
		Code:        "first_blog",
		Name:        "Cây bút mới",
		Description: "Viết bài blog đầu tiên",
		Icon:        "✍️",
		Category:    models.BadgeCategoryBlog,
		Requirement: "Đăng 1 bài blog",
		XPReward:    100,
		Metric:      models.MetricBlogsCreated,
		Target:      1,
	},
	{
		Code:        "blog_author",
		Name:        "Tác giả",
		Description: "Đăng 5 bài blog được duyệt",
		Icon:        "📝",
		Category:    models.BadgeCategoryBlog,
		Requirement: "Đăng 5 bài blog",
		XPReward:    300,
		Metric:      models.MetricBlogsCreated,
		Target:      5,
	},
	{
		Code:        "bookworm",
		Name:        "Mọt sách",
		Description: "Tích lũy 10 giờ học tập",
		Icon:        "📖",
		Category:    models.BadgeCategoryLearning,
		Requirement: "Học 600 phút",
		XPReward:    200,
		Metric:      models.MetricStudyTime,
		Target:      600,
	},
	{
		Code:        "marathon_learner",
		Name:        "Người học bền bỉ",
		Description: "Tích lũy 50 giờ học tập",
		Icon:        "⏳",
		Category:    models.BadgeCategoryLearning,
		Requirement: "Học 3000 phút",
		XPReward:    500,
		Metric:      models.MetricStudyTime,
		Target:      3000,
	},
	{
		Code:        "socrates_friend",
		Name:        "Bạn của Socrates",
		Description: "Điểm danh 7 ngày liên tiếp",
		Icon:        "🔥",
		Category:    models.BadgeCategorySocial,
		Requirement: "Chuỗi điểm danh 7 ngày",
		XPReward:    200,
		Metric:      models.MetricStreak,
		Target:      7,
	},
	{
		Code:        "community_pillar",
		Name:        "Trụ cột cộng đồng",
		Description: "Điểm danh 30 ngày liên tiếp",
		Icon:        "🌟",
		Category:    models.BadgeCategorySocial,
		Requirement: "Chuỗi điểm danh 30 ngày",
		XPReward:    500,
		Metric:      models.MetricStreak,
		Target:      30,
	},
	{
		Code:        "future_philosopher",
		Name:        "Triết gia tương lai",
		Description: "Đạt cấp độ 10",
		Icon:        "🦉",
		Category:    models.BadgeCategorySpecial,
		Requirement: "Đạt cấp độ 10",
		XPReward:    500,
		Metric:      models.MetricLevel,
		Target:      10,
	},
	{
		Code:        "enlightened",
		Name:        "Giác ngộ",
		Description: "Đạt cấp độ tối đa",
		Icon:        "✨",
		Category:    models.BadgeCategorySpecial,
		Requirement: "Đạt cấp độ 20",
		XPReward:    1000,
		Metric:      models.MetricLevel,
		Target:      20,
	},
}

// MetricValue reads the profile counter a badge metric points at. Unknown
// metrics read as 0, so an unmapped badge simply shows no progress.
func MetricValue(profile *models.UserProfile, metric string) int {
	switch metric {
	case models.MetricCoursesCompleted:
		return profile.CoursesCompleted
	case models.MetricQuizzesCompleted:
		return profile.QuizzesCompleted
	case models.MetricBlogsCreated:
		return profile.BlogsCreated
	case models.MetricStudyTime:
		return profile.TotalStudyTime
	case models.MetricStreak:
		return profile.Streak
	case models.MetricLevel:
		return profile.Level
	default:
		return 0
	}
}

// BadgeProgress returns (current, target) for a badge against a profile,
// clamping current at target once reached.
func BadgeProgress(profile *models.UserProfile, badge *models.Badge) (int, int) {
	target := badge.Target
	if target < 1 {
		target = 1
	}
	current := MetricValue(profile, badge.Metric)
	if current > target {
		current = target
	}
	return current, target
}
