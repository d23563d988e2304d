package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures aggregated learner progress at a point in time.
type SnapshotData struct {
	Version     int            `json:"version"`
	TotalPoints int            `json:"total_points"`
	BadgeCounts map[string]int `json:"badge_counts,omitempty"`
	// skill ID -> best score across attempts
	BestScores map[string]int `json:"best_scores,omitempty"`
	// skill ID -> whether any attempt passed
	PassedSkills map[string]bool `json:"passed_skills,omitempty"`
}

// Snapshot represents a point-in-time capture of learner progress.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner progress snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures a completed assessment attempt for appending.
type AttemptEventData struct {
	SessionID     string
	SkillID       string
	SkillName     string
	Proficiency   string
	Mode          string
	Score         int
	Passed        bool
	PassThreshold int
	QuestionCount int
	CorrectCount  int
}

// AttemptRecord is a stored attempt with its event metadata.
type AttemptRecord struct {
	AttemptEventData
	Sequence  int64
	Timestamp time.Time
}

// SkillStats aggregates attempt history for one skill.
type SkillStats struct {
	Attempts    int
	Passes      int
	BestScore   int
	LastScore   int
	LastAttempt time.Time
}

// AnswerEventData captures one scored answer for appending.
type AnswerEventData struct {
	SessionID     string
	SkillID       string
	QuestionID    string
	Prompt        string
	QuestionType  string
	Difficulty    string
	CorrectAnswer string
	LearnerAnswer string
	Correct       bool
}

// BadgeEventData captures a badge award for appending.
type BadgeEventData struct {
	BadgeType string
	SessionID string
	SkillID   string
	SkillName string
	Points    int
	Reason    string
}

// BadgeRecord is a stored badge award with its event metadata.
type BadgeRecord struct {
	BadgeEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a stored LLM request with its event metadata.
type LLMEventRecord struct {
	ID int
	LLMRequestEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStat aggregates LLM request events by one dimension.
type LLMUsageStat struct {
	Key          string // purpose or model, depending on the query
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records a completed assessment attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// QueryAttempts returns attempts ordered newest first.
	QueryAttempts(ctx context.Context, opts QueryOpts) ([]AttemptRecord, error)

	// AttemptsBySkill returns all attempts for one skill, newest first.
	AttemptsBySkill(ctx context.Context, skillID string) ([]AttemptRecord, error)

	// SkillStats aggregates attempt history for one skill. A skill with
	// no attempts yields the zero value, not an error.
	SkillStats(ctx context.Context, skillID string) (SkillStats, error)

	// AppendAnswer records a single scored answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// SkillAccuracy returns the fraction of correct answers for a skill
	// across all sessions, or 0 when none have been recorded.
	SkillAccuracy(ctx context.Context, skillID string) (float64, error)

	// AppendBadge records a badge award.
	AppendBadge(ctx context.Context, data BadgeEventData) error

	// QueryBadges returns badge awards ordered newest first.
	QueryBadges(ctx context.Context, opts QueryOpts) ([]BadgeRecord, error)

	// BadgeCounts returns per-type award counts and the total.
	BadgeCounts(ctx context.Context) (map[string]int, int, error)

	// TotalPoints sums the points across all badge awards.
	TotalPoints(ctx context.Context) (int, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events ordered newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// LLMUsageByPurpose aggregates request counts and token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates request counts and token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)
}
