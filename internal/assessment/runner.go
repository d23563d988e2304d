package assessment

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

// ErrGenerateInFlight is returned when a generation call is requested
// while another one is still pending for the same runner. Two question
// sets must never race into one session.
var ErrGenerateInFlight = errors.New("question generation already in flight")

// ErrAbandoned is returned when a generation call finishes after the
// learner has abandoned the session; the late result is discarded.
var ErrAbandoned = errors.New("session abandoned")

// Runner owns the session lifecycle around the question bank: loading,
// failure + retry, and discarding stale generation results after the
// learner navigates away.
type Runner struct {
	bank     questionbank.Bank
	recorder Recorder
	matcher  Matcher

	mu         sync.Mutex
	generation int
	inFlight   bool
	session    *Session
	lastErr    error

	skill       skills.Skill
	proficiency skills.Proficiency
	mode        Mode
}

// NewRunner creates a runner over the given bank. The recorder and
// matcher are handed to every session it creates; both may be nil.
func NewRunner(bank questionbank.Bank, recorder Recorder, matcher Matcher) *Runner {
	return &Runner{bank: bank, recorder: recorder, matcher: matcher}
}

// Start generates a question set and creates a session. It blocks on the
// bank call; callers run it on their own goroutine (the TUI wraps it in
// a command). A second Start or Retry while one is pending is rejected
// with ErrGenerateInFlight.
func (r *Runner) Start(ctx context.Context, skill skills.Skill, proficiency skills.Proficiency, mode Mode) (*Session, error) {
	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return nil, ErrGenerateInFlight
	}
	r.inFlight = true
	gen := r.generation
	r.skill = skill
	r.proficiency = proficiency
	r.mode = mode
	r.mu.Unlock()

	count := skill.QuestionCount
	if count <= 0 {
		count = skills.DefaultQuestionCount
	}

	questions, err := r.bank.Generate(ctx, questionbank.GenerateInput{
		Skill:       skill,
		Proficiency: proficiency,
		Count:       count,
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight = false

	// The learner navigated away while this call was pending; drop the
	// result instead of populating a dead session.
	if gen != r.generation {
		return nil, ErrAbandoned
	}

	if err != nil {
		r.lastErr = err
		r.session = nil
		return nil, err
	}

	s := NewSession(uuid.New().String(), skill, proficiency, mode, questions, r.matcher)
	s.SetRecorder(r.recorder)
	r.session = s
	r.lastErr = nil
	return s, nil
}

// Retry discards the failed session state and issues exactly one new
// generation call with the same skill, proficiency, and mode. Prior
// questions and difficulty state are not carried over.
func (r *Runner) Retry(ctx context.Context) (*Session, error) {
	r.mu.Lock()
	skill, proficiency, mode := r.skill, r.proficiency, r.mode
	r.session = nil
	r.mu.Unlock()

	return r.Start(ctx, skill, proficiency, mode)
}

// Abandon discards the current session and marks any pending generation
// result as stale.
func (r *Runner) Abandon() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	r.session = nil
	r.lastErr = nil
}

// Session returns the live session, or nil while loading or failed.
func (r *Runner) Session() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

// Err returns the most recent generation error, or nil.
func (r *Runner) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
