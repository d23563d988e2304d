package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Fatalf("sequence %d not greater than %d", seq, prev)
		}
		prev = seq
	}
}

func TestAttemptAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", SkillID: "sql-querying", SkillName: "SQL Querying", Proficiency: "beginner", Mode: "standard", Score: 60, Passed: false, PassThreshold: 75, QuestionCount: 10, CorrectCount: 6},
		{SessionID: "s2", SkillID: "sql-querying", SkillName: "SQL Querying", Proficiency: "beginner", Mode: "adaptive", Score: 80, Passed: true, PassThreshold: 75, QuestionCount: 10, CorrectCount: 8},
		{SessionID: "s3", SkillID: "go-fundamentals", SkillName: "Go Fundamentals", Proficiency: "advanced", Mode: "standard", Score: 90, Passed: true, PassThreshold: 75, QuestionCount: 12, CorrectCount: 11},
	}
	for _, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %s: %v", a.SessionID, err)
		}
	}

	records, err := repo.QueryAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d attempts, want 3", len(records))
	}
	// Newest first.
	if records[0].SessionID != "s3" {
		t.Errorf("first record = %s, want s3", records[0].SessionID)
	}

	bySkill, err := repo.AttemptsBySkill(ctx, "sql-querying")
	if err != nil {
		t.Fatalf("attempts by skill: %v", err)
	}
	if len(bySkill) != 2 {
		t.Errorf("got %d sql-querying attempts, want 2", len(bySkill))
	}
}

func TestSkillStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// No attempts yet.
	stats, err := repo.SkillStats(ctx, "go-fundamentals")
	if err != nil {
		t.Fatalf("skill stats (empty): %v", err)
	}
	if stats.Attempts != 0 {
		t.Errorf("attempts = %d, want 0", stats.Attempts)
	}

	scores := []struct {
		score  int
		passed bool
	}{
		{50, false},
		{85, true},
		{70, false},
	}
	for i, sc := range scores {
		err := repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: "s" + string(rune('1'+i)), SkillID: "go-fundamentals",
			SkillName: "Go Fundamentals", Proficiency: "beginner", Mode: "standard",
			Score: sc.score, Passed: sc.passed, PassThreshold: 75,
			QuestionCount: 10, CorrectCount: sc.score / 10,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err = repo.SkillStats(ctx, "go-fundamentals")
	if err != nil {
		t.Fatalf("skill stats: %v", err)
	}
	if stats.Attempts != 3 || stats.Passes != 1 {
		t.Errorf("attempts/passes = %d/%d, want 3/1", stats.Attempts, stats.Passes)
	}
	if stats.BestScore != 85 {
		t.Errorf("best score = %d, want 85", stats.BestScore)
	}
	if stats.LastScore != 70 {
		t.Errorf("last score = %d, want 70", stats.LastScore)
	}
}

func TestAnswerAppendAndAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []bool{true, true, false, true}
	for i, correct := range answers {
		err := repo.AppendAnswer(ctx, AnswerEventData{
			SessionID: "s1", SkillID: "rest-api-design",
			QuestionID: "q" + string(rune('1'+i)), Prompt: "What status code means created?",
			QuestionType: "multiple_choice", Difficulty: "medium",
			CorrectAnswer: "201", LearnerAnswer: "201", Correct: correct,
		})
		if err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	acc, err := repo.SkillAccuracy(ctx, "rest-api-design")
	if err != nil {
		t.Fatalf("skill accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}

	// Unknown skill reads as zero, not an error.
	acc, err = repo.SkillAccuracy(ctx, "unknown")
	if err != nil {
		t.Fatalf("skill accuracy (unknown): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0", acc)
	}
}

func TestBadgeAppendAndCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	badges := []BadgeEventData{
		{BadgeType: "first_pass", SessionID: "s1", SkillID: "go-fundamentals", SkillName: "Go Fundamentals", Points: 50, Reason: "First pass on Go Fundamentals"},
		{BadgeType: "perfect_score", SessionID: "s2", SkillID: "go-fundamentals", SkillName: "Go Fundamentals", Points: 100, Reason: "Perfect score"},
		{BadgeType: "first_pass", SessionID: "s3", SkillID: "sql-querying", SkillName: "SQL Querying", Points: 50, Reason: "First pass on SQL Querying"},
	}
	for _, b := range badges {
		if err := repo.AppendBadge(ctx, b); err != nil {
			t.Fatalf("append badge %s: %v", b.BadgeType, err)
		}
	}

	counts, total, err := repo.BadgeCounts(ctx)
	if err != nil {
		t.Fatalf("badge counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if counts["first_pass"] != 2 || counts["perfect_score"] != 1 {
		t.Errorf("counts = %v", counts)
	}

	points, err := repo.TotalPoints(ctx)
	if err != nil {
		t.Fatalf("total points: %v", err)
	}
	if points != 200 {
		t.Errorf("points = %d, want 200", points)
	}

	records, err := repo.QueryBadges(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query badges: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d badges, want 2", len(records))
	}
	if records[0].SessionID != "s3" {
		t.Errorf("first badge session = %s, want s3", records[0].SessionID)
	}
}

func TestLLMEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 900, OutputTokens: 2100, LatencyMs: 3200, Success: true},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen", InputTokens: 850, OutputTokens: 0, LatencyMs: 1500, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append LLM event %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query LLM events: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d events, want 2", len(records))
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("got %d purposes, want 1", len(stats))
	}
	st := stats[0]
	if st.Key != "question-gen" || st.Requests != 2 || st.Failures != 1 {
		t.Errorf("stat = %+v", st)
	}
	if st.InputTokens != 1750 || st.OutputTokens != 2100 {
		t.Errorf("tokens = %d/%d, want 1750/2100", st.InputTokens, st.OutputTokens)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version:     1,
			TotalPoints: 150,
			BestScores:  map[string]int{"go-fundamentals": 85},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.TotalPoints != 150 {
		t.Errorf("total points = %d, want 150", snap.Data.TotalPoints)
	}
	if snap.Data.BestScores["go-fundamentals"] != 85 {
		t.Errorf("best scores = %v", snap.Data.BestScores)
	}
}

func TestSnapshotLatestIgnoresNewerLayout(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{
		Sequence:  1,
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Data:      SnapshotData{Version: SnapshotVersion + 1, TotalPoints: 999},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Errorf("expected newer-layout snapshot to be ignored, got %+v", snap)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}
