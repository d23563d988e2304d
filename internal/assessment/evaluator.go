package assessment

import (
	"context"
	"math"
	"time"
)

// SetRecorder installs the history collaborator invoked on completion.
// A nil recorder skips persistence.
func (s *Session) SetRecorder(r Recorder) {
	s.recorder = r
}

// SubmitAnswer records and immediately scores the current question.
// Adaptive mode only; this is the single path that mutates difficulty.
// Returns the feedback, or nil when the submission was rejected
// (wrong mode, non-current question, or already scored).
func (s *Session) SubmitAnswer(questionID, value string) *Feedback {
	if s.Mode != ModeAdaptive || s.phase != PhaseInProgress {
		return nil
	}
	if !s.Answer(questionID, value) {
		return nil
	}

	q := s.CurrentQuestion()
	correct := checkAnswer(q, value, s.matcher)
	fb := &Feedback{IsCorrect: correct, Explanation: q.Explanation}
	s.feedback[s.served[s.pos]] = fb
	s.difficulty.Record(correct)
	return fb
}

// complete scores any unscored questions, computes the final result, and
// appends the attempt to history. Reached only from Advance on the last
// question; the session is immutable afterwards.
func (s *Session) complete() {
	// Standard mode defers all scoring to this point.
	for i := range s.questions {
		if s.feedback[i] == nil {
			q := &s.questions[i]
			s.feedback[i] = &Feedback{
				IsCorrect:   checkAnswer(q, s.answers[i], s.matcher),
				Explanation: q.Explanation,
			}
		}
	}

	correct := 0
	for _, fb := range s.feedback {
		if fb.IsCorrect {
			correct++
		}
	}

	score := Score(correct, len(s.questions))
	s.result = &Result{
		Score:        score,
		Passed:       score >= s.Skill.PassThreshold,
		CorrectCount: correct,
		Total:        len(s.questions),
	}
	s.phase = PhaseCompleted

	if s.recorder != nil {
		s.persistErr = s.recorder.RecordAttempt(context.Background(), Attempt{
			SessionID:     s.ID,
			SkillID:       s.Skill.ID,
			SkillName:     s.Skill.Name,
			Proficiency:   s.Proficiency,
			Mode:          s.Mode,
			Score:         score,
			Passed:        s.result.Passed,
			PassThreshold: s.Skill.PassThreshold,
			QuestionCount: len(s.questions),
			CorrectCount:  correct,
			CompletedAt:   time.Now(),
		})
	}
}

// Score computes the rounded percentage score. Deterministic for a given
// answer set, so recomputation always agrees with the stored result.
func Score(correctCount, totalQuestions int) int {
	if totalQuestions == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correctCount) / float64(totalQuestions)))
}
