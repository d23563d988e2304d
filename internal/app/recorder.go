package app

import (
	"context"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/store"
)

// attemptRecorder adapts the event store to the assessment.Recorder
// interface so sessions can persist completed attempts.
type attemptRecorder struct {
	repo store.EventRepo
}

// NewRecorder wraps an event repo as an attempt recorder.
func NewRecorder(repo store.EventRepo) assessment.Recorder {
	return &attemptRecorder{repo: repo}
}

func (r *attemptRecorder) RecordAttempt(ctx context.Context, attempt assessment.Attempt) error {
	return r.repo.AppendAttempt(ctx, store.AttemptEventData{
		SessionID:     attempt.SessionID,
		SkillID:       attempt.SkillID,
		SkillName:     attempt.SkillName,
		Proficiency:   string(attempt.Proficiency),
		Mode:          string(attempt.Mode),
		Score:         attempt.Score,
		Passed:        attempt.Passed,
		PassThreshold: attempt.PassThreshold,
		QuestionCount: attempt.QuestionCount,
		CorrectCount:  attempt.CorrectCount,
	})
}
