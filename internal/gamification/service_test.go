package gamification

import (
	"context"
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/store"
)

// mockEventRepo implements store.EventRepo for badge tests.
type mockEventRepo struct {
	attempts []store.AttemptRecord
	stats    map[string]store.SkillStats
	badges   []store.BadgeEventData
}

func (m *mockEventRepo) AppendAttempt(_ context.Context, _ store.AttemptEventData) error {
	return nil
}

func (m *mockEventRepo) QueryAttempts(_ context.Context, _ store.QueryOpts) ([]store.AttemptRecord, error) {
	return m.attempts, nil
}

func (m *mockEventRepo) AttemptsBySkill(_ context.Context, skillID string) ([]store.AttemptRecord, error) {
	var out []store.AttemptRecord
	for _, r := range m.attempts {
		if r.SkillID == skillID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockEventRepo) SkillStats(_ context.Context, skillID string) (store.SkillStats, error) {
	return m.stats[skillID], nil
}

func (m *mockEventRepo) AppendAnswer(_ context.Context, _ store.AnswerEventData) error {
	return nil
}

func (m *mockEventRepo) SkillAccuracy(_ context.Context, _ string) (float64, error) {
	return 0, nil
}

func (m *mockEventRepo) AppendBadge(_ context.Context, data store.BadgeEventData) error {
	m.badges = append(m.badges, data)
	return nil
}

func (m *mockEventRepo) QueryBadges(_ context.Context, _ store.QueryOpts) ([]store.BadgeRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) BadgeCounts(_ context.Context) (map[string]int, int, error) {
	counts := make(map[string]int)
	for _, b := range m.badges {
		counts[b.BadgeType]++
	}
	return counts, len(m.badges), nil
}

func (m *mockEventRepo) TotalPoints(_ context.Context) (int, error) {
	total := 0
	for _, b := range m.badges {
		total += b.Points
	}
	return total, nil
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func attemptRecord(sessionID, skillID string, score int, passed bool) store.AttemptRecord {
	return store.AttemptRecord{
		AttemptEventData: store.AttemptEventData{
			SessionID: sessionID,
			SkillID:   skillID,
			Score:     score,
			Passed:    passed,
		},
	}
}

func testAttempt(sessionID, skillID string, score int, passed bool) assessment.Attempt {
	return assessment.Attempt{
		SessionID: sessionID,
		SkillID:   skillID,
		SkillName: skillID,
		Score:     score,
		Passed:    passed,
	}
}

func hasBadge(awards []BadgeAward, t BadgeType) bool {
	for _, a := range awards {
		if a.Type == t {
			return true
		}
	}
	return false
}

func TestFirstPassAwarded(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s1", "go-fundamentals", 80, true),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s1", "go-fundamentals", 80, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !hasBadge(awards, BadgeFirstPass) {
		t.Errorf("awards = %v, want first_pass", awards)
	}
	if len(repo.badges) != len(awards) {
		t.Errorf("persisted %d badges, awarded %d", len(repo.badges), len(awards))
	}
}

func TestFirstPassNotRepeated(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s2", "go-fundamentals", 85, true),
		attemptRecord("s1", "go-fundamentals", 80, true),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s2", "go-fundamentals", 85, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if hasBadge(awards, BadgeFirstPass) {
		t.Error("first_pass awarded on a repeat pass")
	}
}

func TestPerfectScoreAwarded(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s1", "sql-querying", 100, true),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s1", "sql-querying", 100, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !hasBadge(awards, BadgePerfectScore) {
		t.Errorf("awards = %v, want perfect_score", awards)
	}
}

func TestComebackAwarded(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s3", "sql-querying", 80, true),
		attemptRecord("s2", "sql-querying", 55, false),
		attemptRecord("s1", "sql-querying", 85, true),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s3", "sql-querying", 80, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !hasBadge(awards, BadgeComeback) {
		t.Errorf("awards = %v, want comeback", awards)
	}
	// Passed before the failure, so this is not a first pass.
	if hasBadge(awards, BadgeFirstPass) {
		t.Error("first_pass awarded despite an earlier pass")
	}
}

func TestStreakAwardedAtMilestone(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s3", "rest-api-design", 80, true),
		attemptRecord("s2", "sql-querying", 85, true),
		attemptRecord("s1", "go-fundamentals", 90, true),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s3", "rest-api-design", 80, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !hasBadge(awards, BadgeStreak) {
		t.Errorf("awards = %v, want streak at 3 passes", awards)
	}
}

func TestStreakBrokenByFailure(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s3", "rest-api-design", 80, true),
		attemptRecord("s2", "sql-querying", 40, false),
		attemptRecord("s1", "go-fundamentals", 90, true),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s3", "rest-api-design", 80, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if hasBadge(awards, BadgeStreak) {
		t.Error("streak awarded across a failed attempt")
	}
}

func TestCategorySweep(t *testing.T) {
	// Communication holds two skills; passing the second completes the set.
	repo := &mockEventRepo{
		attempts: []store.AttemptRecord{
			attemptRecord("s2", "written-communication", 80, true),
		},
		stats: map[string]store.SkillStats{
			"presentation-skills": {Attempts: 1, Passes: 1, BestScore: 80},
		},
	}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s2", "written-communication", 80, true))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !hasBadge(awards, BadgeCategorySweep) {
		t.Errorf("awards = %v, want category_sweep", awards)
	}
}

func TestNoBadgesOnFailure(t *testing.T) {
	repo := &mockEventRepo{attempts: []store.AttemptRecord{
		attemptRecord("s1", "go-fundamentals", 40, false),
	}}
	svc := NewService(repo)

	awards, err := svc.EvaluateAttempt(context.Background(), testAttempt("s1", "go-fundamentals", 40, false))
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(awards) != 0 {
		t.Errorf("awards = %v, want none for a failed, imperfect attempt", awards)
	}
}

func TestStreakMilestones(t *testing.T) {
	cases := []struct {
		length int
		want   bool
	}{
		{1, false},
		{2, false},
		{3, true},
		{4, false},
		{5, true},
		{7, false},
		{10, true},
		{15, true},
		{22, false},
	}
	for _, c := range cases {
		if got := streakMilestone(c.length); got != c.want {
			t.Errorf("streakMilestone(%d) = %v, want %v", c.length, got, c.want)
		}
	}
}
