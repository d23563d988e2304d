package gamification

// BaseStreakThreshold is the shortest pass streak that awards a badge.
const BaseStreakThreshold = 3

// streakMilestone reports whether a pass streak of the given length lands
// exactly on an award milestone: 3, 5, 10, then every 5 beyond.
func streakMilestone(length int) bool {
	switch {
	case length < BaseStreakThreshold:
		return false
	case length == 3 || length == 5 || length == 10:
		return true
	case length > 10:
		return length%5 == 0
	default:
		return false
	}
}
