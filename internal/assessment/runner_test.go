package assessment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

type bankStub struct {
	mu      sync.Mutex
	calls   int
	results []bankResult
	entered chan struct{} // when set, Generate signals entry
	block   chan struct{} // when set, Generate waits on it
}

type bankResult struct {
	questions []questionbank.Question
	err       error
}

func (b *bankStub) Generate(_ context.Context, input questionbank.GenerateInput) ([]questionbank.Question, error) {
	b.mu.Lock()
	b.calls++
	var r bankResult
	if len(b.results) > 0 {
		r = b.results[0]
		b.results = b.results[1:]
	}
	entered := b.entered
	block := b.block
	b.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if block != nil {
		<-block
	}
	return r.questions, r.err
}

func (b *bankStub) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestRunnerStartCreatesSession(t *testing.T) {
	bank := &bankStub{results: []bankResult{{questions: uniformQuestions(3)}}}
	r := NewRunner(bank, nil, nil)

	s, err := r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeStandard)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("phase = %v, want in progress", s.Phase())
	}
	if r.Session() != s {
		t.Error("runner does not hold the session")
	}
}

func TestRunnerGenerationFailure(t *testing.T) {
	genErr := &questionbank.GenerationError{Skill: "go-fundamentals", Err: errors.New("provider unavailable")}
	bank := &bankStub{results: []bankResult{{err: genErr}}}
	r := NewRunner(bank, nil, nil)

	_, err := r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeStandard)
	if err == nil {
		t.Fatal("Start succeeded on a failed generation")
	}
	if r.Session() != nil {
		t.Error("failed generation must not produce a session")
	}
	if r.Err() == nil {
		t.Error("generation error not retained for display")
	}
}

func TestRunnerRetryIssuesOneCall(t *testing.T) {
	bank := &bankStub{results: []bankResult{
		{err: errors.New("timeout")},
		{questions: uniformQuestions(3)},
	}}
	r := NewRunner(bank, nil, nil)

	if _, err := r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeAdaptive); err == nil {
		t.Fatal("first Start should fail")
	}
	s, err := r.Retry(context.Background())
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if got := bank.callCount(); got != 2 {
		t.Errorf("bank called %d times, want 2 (one per attempt)", got)
	}
	if s.Mode != ModeAdaptive {
		t.Errorf("retried session mode = %q, want the original mode", s.Mode)
	}
	if r.Err() != nil {
		t.Error("stale error retained after a successful retry")
	}
}

func TestRunnerRejectsConcurrentStart(t *testing.T) {
	block := make(chan struct{})
	bank := &bankStub{
		results: []bankResult{{questions: uniformQuestions(3)}},
		entered: make(chan struct{}, 1),
		block:   block,
	}
	r := NewRunner(bank, nil, nil)

	done := make(chan struct{})
	go func() {
		r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeStandard)
		close(done)
	}()

	<-bank.entered

	if _, err := r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeStandard); !errors.Is(err, ErrGenerateInFlight) {
		t.Errorf("second Start error = %v, want ErrGenerateInFlight", err)
	}

	close(block)
	<-done
	if got := bank.callCount(); got != 1 {
		t.Errorf("bank called %d times, want 1", got)
	}
}

func TestRunnerDiscardsStaleResult(t *testing.T) {
	block := make(chan struct{})
	bank := &bankStub{
		results: []bankResult{{questions: uniformQuestions(3)}},
		entered: make(chan struct{}, 1),
		block:   block,
	}
	r := NewRunner(bank, nil, nil)

	errc := make(chan error, 1)
	go func() {
		_, err := r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeStandard)
		errc <- err
	}()

	<-bank.entered
	r.Abandon()
	close(block)

	if err := <-errc; !errors.Is(err, ErrAbandoned) {
		t.Errorf("late Start error = %v, want ErrAbandoned", err)
	}
	if r.Session() != nil {
		t.Error("stale result populated a session after abandonment")
	}
}

func TestRunnerSetsRecorderOnSession(t *testing.T) {
	rec := &recorderStub{}
	bank := &bankStub{results: []bankResult{{questions: uniformQuestions(1)}}}
	r := NewRunner(bank, rec, nil)

	s, err := r.Start(context.Background(), testSkill(70), skills.ProficiencyBeginner, ModeStandard)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.Answer(s.CurrentQuestion().ID, "Right")
	s.Advance()

	if len(rec.attempts) != 1 {
		t.Errorf("recorded %d attempts, want 1", len(rec.attempts))
	}
}
