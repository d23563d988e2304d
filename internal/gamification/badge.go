package gamification

import "time"

// BadgeType identifies the category of achievement.
type BadgeType string

const (
	BadgeFirstPass     BadgeType = "first_pass"
	BadgePerfectScore  BadgeType = "perfect_score"
	BadgeStreak        BadgeType = "streak"
	BadgeComeback      BadgeType = "comeback"
	BadgeCategorySweep BadgeType = "category_sweep"
)

// AllBadgeTypes returns all badge types in display order.
func AllBadgeTypes() []BadgeType {
	return []BadgeType{BadgeFirstPass, BadgePerfectScore, BadgeStreak, BadgeComeback, BadgeCategorySweep}
}

// DisplayName returns a human-readable label for the badge type.
func (t BadgeType) DisplayName() string {
	switch t {
	case BadgeFirstPass:
		return "First Pass"
	case BadgePerfectScore:
		return "Perfect Score"
	case BadgeStreak:
		return "Streak"
	case BadgeComeback:
		return "Comeback"
	case BadgeCategorySweep:
		return "Category Sweep"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge type.
func (t BadgeType) Icon() string {
	switch t {
	case BadgeFirstPass:
		return "✅"
	case BadgePerfectScore:
		return "💯"
	case BadgeStreak:
		return "⚡"
	case BadgeComeback:
		return "🔥"
	case BadgeCategorySweep:
		return "🏆"
	default:
		return "✦"
	}
}

// Points returns the points granted with the badge type.
func (t BadgeType) Points() int {
	switch t {
	case BadgeFirstPass:
		return 50
	case BadgePerfectScore:
		return 100
	case BadgeStreak:
		return 75
	case BadgeComeback:
		return 40
	case BadgeCategorySweep:
		return 200
	default:
		return 0
	}
}

// BadgeAward is one badge granted for a completed attempt.
type BadgeAward struct {
	Type      BadgeType
	SkillID   string
	SkillName string
	SessionID string
	Points    int
	Reason    string
	AwardedAt time.Time
}
