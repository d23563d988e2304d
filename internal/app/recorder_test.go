package app

import (
	"context"
	"testing"
	"time"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/store"
)

type appendStub struct {
	store.EventRepo
	got store.AttemptEventData
}

func (s *appendStub) AppendAttempt(ctx context.Context, data store.AttemptEventData) error {
	s.got = data
	return nil
}

func TestRecorderMapsAttemptFields(t *testing.T) {
	stub := &appendStub{}
	rec := NewRecorder(stub)

	err := rec.RecordAttempt(context.Background(), assessment.Attempt{
		SessionID:     "sess-1",
		SkillID:       "active-listening",
		SkillName:     "Active Listening",
		Proficiency:   "intermediate",
		Mode:          assessment.ModeAdaptive,
		Score:         83,
		Passed:        true,
		PassThreshold: 75,
		QuestionCount: 12,
		CorrectCount:  10,
		CompletedAt:   time.Now(),
	})
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}

	if stub.got.SessionID != "sess-1" {
		t.Errorf("SessionID = %q", stub.got.SessionID)
	}
	if stub.got.Mode != "adaptive" {
		t.Errorf("Mode = %q", stub.got.Mode)
	}
	if stub.got.Score != 83 || !stub.got.Passed {
		t.Errorf("Score/Passed = %d/%v", stub.got.Score, stub.got.Passed)
	}
	if stub.got.CorrectCount != 10 || stub.got.QuestionCount != 12 {
		t.Errorf("counts = %d/%d", stub.got.CorrectCount, stub.got.QuestionCount)
	}
}
