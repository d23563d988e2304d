package gamification

import (
	"context"
	"fmt"
	"time"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/skills"
	"github.com/Ajinkya236/skillsprint/internal/store"
)

// Service evaluates completed attempts against history and awards badges.
type Service struct {
	eventRepo store.EventRepo

	// SessionBadges accumulates badges awarded during the current run.
	SessionBadges []BadgeAward
}

// NewService creates a badge service over the event store.
func NewService(eventRepo store.EventRepo) *Service {
	return &Service{eventRepo: eventRepo}
}

// EvaluateAttempt inspects one completed attempt and awards every badge it
// earns. The attempt is expected to already be recorded in history; it is
// excluded from prior-history checks by session ID.
func (s *Service) EvaluateAttempt(ctx context.Context, att assessment.Attempt) ([]BadgeAward, error) {
	var awards []BadgeAward

	skillHistory, err := s.priorAttempts(ctx, att)
	if err != nil {
		return nil, err
	}

	if att.Passed && !anyPassed(skillHistory) {
		awards = append(awards, s.award(ctx, BadgeFirstPass, att,
			fmt.Sprintf("First pass on %s", att.SkillName)))
	}

	if att.Score == 100 {
		awards = append(awards, s.award(ctx, BadgePerfectScore, att,
			fmt.Sprintf("Perfect score on %s", att.SkillName)))
	}

	if att.Passed && lastFailed(skillHistory) {
		awards = append(awards, s.award(ctx, BadgeComeback, att,
			fmt.Sprintf("Bounced back on %s", att.SkillName)))
	}

	if att.Passed {
		length, err := s.passStreak(ctx, att)
		if err != nil {
			return awards, err
		}
		if streakMilestone(length) {
			awards = append(awards, s.award(ctx, BadgeStreak, att,
				fmt.Sprintf("%d passes in a row!", length)))
		}

		swept, err := s.categorySwept(ctx, att)
		if err != nil {
			return awards, err
		}
		if swept {
			var cat skills.Category
			if sk, err := skills.GetSkill(att.SkillID); err == nil {
				cat = sk.Category
			}
			awards = append(awards, s.award(ctx, BadgeCategorySweep, att,
				fmt.Sprintf("Passed every %s skill", skills.CategoryDisplayName(cat))))
		}
	}

	return awards, nil
}

// ResetSession clears the badge accumulator. Called at startup.
func (s *Service) ResetSession() {
	s.SessionBadges = nil
}

// SnapshotData builds badge counts and points for snapshot persistence.
func (s *Service) SnapshotData(ctx context.Context) (map[string]int, int) {
	counts, _, _ := s.eventRepo.BadgeCounts(ctx)
	points, _ := s.eventRepo.TotalPoints(ctx)
	return counts, points
}

func (s *Service) award(ctx context.Context, t BadgeType, att assessment.Attempt, reason string) BadgeAward {
	award := BadgeAward{
		Type:      t,
		SkillID:   att.SkillID,
		SkillName: att.SkillName,
		SessionID: att.SessionID,
		Points:    t.Points(),
		Reason:    reason,
		AwardedAt: time.Now(),
	}
	s.persist(ctx, award)
	s.SessionBadges = append(s.SessionBadges, award)
	return award
}

func (s *Service) persist(ctx context.Context, award BadgeAward) {
	if s.eventRepo == nil {
		return
	}
	_ = s.eventRepo.AppendBadge(ctx, store.BadgeEventData{
		BadgeType: string(award.Type),
		SessionID: award.SessionID,
		SkillID:   award.SkillID,
		SkillName: award.SkillName,
		Points:    award.Points,
		Reason:    award.Reason,
	})
}

// priorAttempts returns the skill's attempts excluding the one being
// evaluated, newest first.
func (s *Service) priorAttempts(ctx context.Context, att assessment.Attempt) ([]store.AttemptRecord, error) {
	records, err := s.eventRepo.AttemptsBySkill(ctx, att.SkillID)
	if err != nil {
		return nil, fmt.Errorf("skill history for %s: %w", att.SkillID, err)
	}
	prior := records[:0:0]
	for _, r := range records {
		if r.SessionID != att.SessionID {
			prior = append(prior, r)
		}
	}
	return prior, nil
}

// passStreak counts consecutive passed attempts ending at the given one,
// across all skills.
func (s *Service) passStreak(ctx context.Context, att assessment.Attempt) (int, error) {
	records, err := s.eventRepo.QueryAttempts(ctx, store.QueryOpts{})
	if err != nil {
		return 0, fmt.Errorf("attempt history: %w", err)
	}

	length := 1 // the attempt being evaluated
	for _, r := range records {
		if r.SessionID == att.SessionID {
			continue
		}
		if !r.Passed {
			break
		}
		length++
	}
	return length, nil
}

// categorySwept reports whether every skill in the attempt's category now
// has at least one passed attempt.
func (s *Service) categorySwept(ctx context.Context, att assessment.Attempt) (bool, error) {
	sk, err := skills.GetSkill(att.SkillID)
	if err != nil {
		return false, nil
	}

	for _, other := range skills.ByCategory(sk.Category) {
		if other.ID == att.SkillID {
			continue
		}
		stats, err := s.eventRepo.SkillStats(ctx, other.ID)
		if err != nil {
			return false, fmt.Errorf("stats for %s: %w", other.ID, err)
		}
		if stats.Passes == 0 {
			return false, nil
		}
	}
	return true, nil
}

func anyPassed(records []store.AttemptRecord) bool {
	for _, r := range records {
		if r.Passed {
			return true
		}
	}
	return false
}

// lastFailed reports whether the most recent prior attempt failed.
func lastFailed(records []store.AttemptRecord) bool {
	return len(records) > 0 && !records[0].Passed
}
