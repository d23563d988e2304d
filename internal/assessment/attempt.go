package assessment

import (
	"context"
	"time"

	"github.com/Ajinkya236/skillsprint/internal/skills"
)

// Attempt is an immutable snapshot of a completed session, owned by the
// history store once recorded.
type Attempt struct {
	SessionID     string
	SkillID       string
	SkillName     string
	Proficiency   skills.Proficiency
	Mode          Mode
	Score         int
	Passed        bool
	PassThreshold int
	QuestionCount int
	CorrectCount  int
	CompletedAt   time.Time
}

// Recorder persists completed attempts. Failures are reported to the
// learner but never roll back the in-memory result.
type Recorder interface {
	RecordAttempt(ctx context.Context, attempt Attempt) error
}
