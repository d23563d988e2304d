package assessment

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

func testSkill(threshold int) skills.Skill {
	return skills.Skill{
		ID:            "go-fundamentals",
		Name:          "Go Fundamentals",
		Category:      skills.CategoryTechnical,
		PassThreshold: threshold,
		QuestionCount: 12,
	}
}

// makeQuestions builds one multiple-choice question per difficulty tag,
// with CorrectAnswer always "Right".
func makeQuestions(difficulties ...questionbank.Difficulty) []questionbank.Question {
	qs := make([]questionbank.Question, len(difficulties))
	for i, d := range difficulties {
		qs[i] = questionbank.Question{
			ID:            fmt.Sprintf("q%d", i),
			Prompt:        fmt.Sprintf("Question %d", i),
			Type:          questionbank.TypeMultipleChoice,
			Options:       []string{"Right", "Wrong A", "Wrong B", "Wrong C"},
			CorrectAnswer: "Right",
			Difficulty:    d,
			Explanation:   "Because.",
		}
	}
	return qs
}

func uniformQuestions(n int) []questionbank.Question {
	ds := make([]questionbank.Difficulty, n)
	for i := range ds {
		ds[i] = questionbank.DifficultyMedium
	}
	return makeQuestions(ds...)
}

type recorderStub struct {
	attempts []Attempt
	err      error
}

func (r *recorderStub) RecordAttempt(_ context.Context, a Attempt) error {
	r.attempts = append(r.attempts, a)
	return r.err
}

func TestStandardAdvanceRequiresAnswer(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(3), nil)

	if s.Advance() {
		t.Fatal("advanced past an unanswered question")
	}
	if !s.Answer(s.CurrentQuestion().ID, "Right") {
		t.Fatal("answer rejected")
	}
	if !s.Advance() {
		t.Fatal("advance rejected after answering")
	}
	if s.CurrentIndex() != 1 {
		t.Errorf("position = %d, want 1", s.CurrentIndex())
	}
}

func TestStandardRetreatAndRevise(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(3), nil)

	s.Answer(s.CurrentQuestion().ID, "Wrong A")
	s.Advance()
	if !s.Retreat() {
		t.Fatal("retreat rejected")
	}
	if got := s.CurrentAnswer(); got != "Wrong A" {
		t.Errorf("answer after retreat = %q, want the original", got)
	}
	if !s.Answer(s.CurrentQuestion().ID, "Right") {
		t.Fatal("revision rejected in standard mode")
	}
	if got := s.CurrentAnswer(); got != "Right" {
		t.Errorf("revised answer = %q, want Right", got)
	}
}

func TestAnswerIgnoresNonCurrentQuestion(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(3), nil)

	if s.Answer("q2", "Right") {
		t.Fatal("answer for a non-current question accepted")
	}
	if got := s.AnswerAt(2); got != "" {
		t.Errorf("stray answer recorded: %q", got)
	}
}

func TestStandardCompletionScore(t *testing.T) {
	s := NewSession("s1", testSkill(75), skills.ProficiencyIntermediate, ModeStandard, uniformQuestions(12), nil)

	// 9 of 12 correct rounds to exactly the 75 threshold.
	for i := 0; i < 12; i++ {
		answer := "Right"
		if i >= 9 {
			answer = "Wrong A"
		}
		s.Answer(s.CurrentQuestion().ID, answer)
		if !s.Advance() {
			t.Fatalf("advance failed at question %d", i)
		}
	}

	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", s.Phase())
	}
	r := s.Result()
	if r == nil {
		t.Fatal("no result after completion")
	}
	if r.Score != 75 {
		t.Errorf("score = %d, want 75", r.Score)
	}
	if r.CorrectCount != 9 {
		t.Errorf("correct count = %d, want 9", r.CorrectCount)
	}
	if !r.Passed {
		t.Error("score equal to the threshold should pass")
	}
}

func TestStandardFeedbackAvailableOnlyAfterCompletion(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(2), nil)

	s.Answer(s.CurrentQuestion().ID, "Right")
	if s.CurrentFeedback() != nil {
		t.Error("feedback exposed before completion in standard mode")
	}
	s.Advance()
	s.Answer(s.CurrentQuestion().ID, "Wrong A")
	s.Advance()

	if fb := s.FeedbackAt(0); fb == nil || !fb.IsCorrect {
		t.Error("first question should be scored correct after completion")
	}
	if fb := s.FeedbackAt(1); fb == nil || fb.IsCorrect {
		t.Error("second question should be scored incorrect after completion")
	}
}

func TestAllCorrectPasses(t *testing.T) {
	rec := &recorderStub{}
	s := NewSession("s1", testSkill(80), skills.ProficiencyAdvanced, ModeStandard, uniformQuestions(5), nil)
	s.SetRecorder(rec)

	for i := 0; i < 5; i++ {
		s.Answer(s.CurrentQuestion().ID, "Right")
		s.Advance()
	}

	r := s.Result()
	if r.Score != 100 || !r.Passed {
		t.Errorf("result = %+v, want score 100 passed", r)
	}
	if len(rec.attempts) != 1 {
		t.Fatalf("recorded %d attempts, want 1", len(rec.attempts))
	}
	a := rec.attempts[0]
	if a.Score != 100 || !a.Passed || a.QuestionCount != 5 || a.CorrectCount != 5 {
		t.Errorf("recorded attempt = %+v", a)
	}
}

func TestPersistFailureKeepsResult(t *testing.T) {
	rec := &recorderStub{err: errors.New("disk full")}
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(2), nil)
	s.SetRecorder(rec)

	for i := 0; i < 2; i++ {
		s.Answer(s.CurrentQuestion().ID, "Right")
		s.Advance()
	}

	if s.Phase() != PhaseCompleted {
		t.Error("persistence failure must not roll back completion")
	}
	if s.Result() == nil {
		t.Error("result missing after persistence failure")
	}
	if s.PersistErr() == nil {
		t.Error("persistence failure not surfaced")
	}
}

func TestAdaptiveSubmitScoresImmediately(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeAdaptive, uniformQuestions(3), nil)

	q := s.CurrentQuestion()
	fb := s.SubmitAnswer(q.ID, "Right")
	if fb == nil || !fb.IsCorrect {
		t.Fatalf("feedback = %+v, want correct", fb)
	}
	if s.CurrentFeedback() == nil {
		t.Error("feedback not retained on the session")
	}
}

func TestAdaptiveAnswersFinalOnceScored(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeAdaptive, uniformQuestions(3), nil)

	q := s.CurrentQuestion()
	if s.SubmitAnswer(q.ID, "Wrong A") == nil {
		t.Fatal("first submission rejected")
	}
	if s.SubmitAnswer(q.ID, "Right") != nil {
		t.Error("resubmission accepted after scoring")
	}
	if s.Answer(q.ID, "Right") {
		t.Error("answer overwritten after scoring")
	}
	if got := s.CurrentAnswer(); got != "Wrong A" {
		t.Errorf("answer = %q, want the original submission", got)
	}
}

func TestAdaptiveAdvanceRequiresScoredAnswer(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeAdaptive, uniformQuestions(3), nil)

	q := s.CurrentQuestion()
	s.Answer(q.ID, "Right")
	if s.Advance() {
		t.Fatal("advanced past an unscored answer")
	}
	s.SubmitAnswer(q.ID, "Right")
	if !s.Advance() {
		t.Fatal("advance rejected after scoring")
	}
}

func TestAdaptiveRetreatRejected(t *testing.T) {
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeAdaptive, uniformQuestions(3), nil)

	s.SubmitAnswer(s.CurrentQuestion().ID, "Right")
	s.Advance()
	if s.Retreat() {
		t.Error("retreat allowed in adaptive mode")
	}
}

func TestAdaptiveDifficultySelection(t *testing.T) {
	qs := makeQuestions(
		questionbank.DifficultyMedium,
		questionbank.DifficultyHard,
		questionbank.DifficultyMedium,
	)
	s := NewSession("s1", testSkill(70), skills.ProficiencyIntermediate, ModeAdaptive, qs, nil)

	// Starts at medium.
	if got := s.CurrentQuestion().Difficulty; got != questionbank.DifficultyMedium {
		t.Fatalf("first question difficulty = %q, want medium", got)
	}

	// Correct answer raises to hard; the next pick follows.
	s.SubmitAnswer(s.CurrentQuestion().ID, "Right")
	s.Advance()
	if got := s.CurrentQuestion().Difficulty; got != questionbank.DifficultyHard {
		t.Fatalf("after correct, difficulty = %q, want hard", got)
	}

	// Incorrect drops back to medium.
	s.SubmitAnswer(s.CurrentQuestion().ID, "Wrong A")
	s.Advance()
	if got := s.CurrentQuestion().Difficulty; got != questionbank.DifficultyMedium {
		t.Fatalf("after incorrect, difficulty = %q, want medium", got)
	}
}

func TestAdaptivePickFallsBackToNearestTier(t *testing.T) {
	// No medium questions at all; the opening pick must still serve one.
	qs := makeQuestions(
		questionbank.DifficultyHard,
		questionbank.DifficultyEasy,
	)
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeAdaptive, qs, nil)

	if got := s.CurrentQuestion().Difficulty; got != questionbank.DifficultyEasy {
		t.Errorf("fallback pick = %q, want the easy question first", got)
	}
}

func TestAdaptiveServesEveryQuestionExactlyOnce(t *testing.T) {
	qs := makeQuestions(
		questionbank.DifficultyEasy,
		questionbank.DifficultyEasy,
		questionbank.DifficultyMedium,
		questionbank.DifficultyHard,
		questionbank.DifficultyHard,
	)
	s := NewSession("s1", testSkill(70), skills.ProficiencyBeginner, ModeAdaptive, qs, nil)

	seen := make(map[string]bool)
	for s.Phase() == PhaseInProgress {
		q := s.CurrentQuestion()
		if seen[q.ID] {
			t.Fatalf("question %s served twice", q.ID)
		}
		seen[q.ID] = true
		s.SubmitAnswer(q.ID, "Right")
		if !s.Advance() {
			t.Fatal("advance failed mid-session")
		}
	}

	if len(seen) != len(qs) {
		t.Errorf("served %d questions, want %d", len(seen), len(qs))
	}
	if s.Result() == nil {
		t.Error("no result after serving every question")
	}
}

func TestScoreRounding(t *testing.T) {
	cases := []struct {
		correct, total, want int
	}{
		{0, 12, 0},
		{9, 12, 75},
		{12, 12, 100},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds half away from zero
		{0, 0, 0},
	}
	for _, c := range cases {
		if got := Score(c.correct, c.total); got != c.want {
			t.Errorf("Score(%d, %d) = %d, want %d", c.correct, c.total, got, c.want)
		}
	}
}

func TestThresholdBoundary(t *testing.T) {
	// One below the threshold fails, exactly at it passes.
	below := NewSession("s1", testSkill(75), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(4), nil)
	for i := 0; i < 4; i++ {
		answer := "Right"
		if i >= 2 {
			answer = "Wrong A"
		}
		below.Answer(below.CurrentQuestion().ID, answer)
		below.Advance()
	}
	if r := below.Result(); r.Score != 50 || r.Passed {
		t.Errorf("below threshold: %+v, want score 50 failed", r)
	}

	at := NewSession("s2", testSkill(75), skills.ProficiencyBeginner, ModeStandard, uniformQuestions(4), nil)
	for i := 0; i < 4; i++ {
		answer := "Right"
		if i >= 3 {
			answer = "Wrong A"
		}
		at.Answer(at.CurrentQuestion().ID, answer)
		at.Advance()
	}
	if r := at.Result(); r.Score != 75 || !r.Passed {
		t.Errorf("at threshold: %+v, want score 75 passed", r)
	}
}
