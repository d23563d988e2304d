package assessment

import (
	"time"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

// Mode selects the assessment variant.
type Mode string

const (
	// ModeStandard defers all feedback to session end; the learner can
	// navigate back and revise answers before finishing.
	ModeStandard Mode = "standard"

	// ModeAdaptive scores each answer immediately, adjusts difficulty,
	// and makes answers final once scored.
	ModeAdaptive Mode = "adaptive"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseLoading Phase = iota // Questions being generated
	PhaseInProgress
	PhaseCompleted
	PhaseFailed // Generation failed; retry available
)

// Feedback is the per-question outcome, populated immediately after
// scoring in adaptive mode and at session end in standard mode.
type Feedback struct {
	IsCorrect   bool
	Explanation string
}

// Session is one live assessment attempt. It is not safe for concurrent
// use; the UI drives it from a single event loop.
type Session struct {
	ID          string
	Skill       skills.Skill
	Proficiency skills.Proficiency
	Mode        Mode
	StartedAt   time.Time

	phase     Phase
	questions []questionbank.Question

	// served maps serving order to question index. Standard mode fixes
	// it up front; adaptive mode extends it one pick at a time.
	served []int
	pos    int

	answers  []string
	feedback []*Feedback

	difficulty *DifficultyController
	matcher    Matcher
	recorder   Recorder

	result     *Result
	persistErr error
}

// Result is the terminal outcome of a session.
type Result struct {
	Score        int
	Passed       bool
	CorrectCount int
	Total        int
}

// NewSession builds an in-progress session over a generated question set.
// The question count is fixed for the session's lifetime.
func NewSession(id string, skill skills.Skill, proficiency skills.Proficiency, mode Mode, questions []questionbank.Question, matcher Matcher) *Session {
	s := &Session{
		ID:          id,
		Skill:       skill,
		Proficiency: proficiency,
		Mode:        mode,
		StartedAt:   time.Now(),
		phase:       PhaseInProgress,
		questions:   questions,
		answers:     make([]string, len(questions)),
		feedback:    make([]*Feedback, len(questions)),
		difficulty:  NewDifficultyController(),
		matcher:     matcher,
	}

	if mode == ModeStandard {
		s.served = make([]int, len(questions))
		for i := range questions {
			s.served[i] = i
		}
	} else {
		s.served = []int{s.pickNext()}
	}

	return s
}

// Phase returns the current lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// CurrentIndex returns the zero-based position of the active question.
func (s *Session) CurrentIndex() int {
	return s.pos
}

// TotalQuestions returns the fixed session length.
func (s *Session) TotalQuestions() int {
	return len(s.questions)
}

// CurrentQuestion returns the active question, or nil once completed.
func (s *Session) CurrentQuestion() *questionbank.Question {
	if s.phase != PhaseInProgress || s.pos >= len(s.served) {
		return nil
	}
	return &s.questions[s.served[s.pos]]
}

// CurrentAnswer returns the recorded answer for the active question.
func (s *Session) CurrentAnswer() string {
	if s.pos >= len(s.served) {
		return ""
	}
	return s.answers[s.served[s.pos]]
}

// CurrentFeedback returns the scored feedback for the active question,
// or nil if it has not been scored.
func (s *Session) CurrentFeedback() *Feedback {
	if s.pos >= len(s.served) {
		return nil
	}
	return s.feedback[s.served[s.pos]]
}

// FeedbackAt returns the feedback for the question at serving position i.
func (s *Session) FeedbackAt(i int) *Feedback {
	if i < 0 || i >= len(s.served) {
		return nil
	}
	return s.feedback[s.served[i]]
}

// QuestionAt returns the question at serving position i.
func (s *Session) QuestionAt(i int) *questionbank.Question {
	if i < 0 || i >= len(s.served) {
		return nil
	}
	return &s.questions[s.served[i]]
}

// AnswerAt returns the recorded answer for serving position i.
func (s *Session) AnswerAt(i int) string {
	if i < 0 || i >= len(s.served) {
		return ""
	}
	return s.answers[s.served[i]]
}

// DifficultyLevel returns the adaptive difficulty for display. In
// standard mode it stays at the initial level and is not meaningful.
func (s *Session) DifficultyLevel() questionbank.Difficulty {
	return s.difficulty.Current()
}

// Result returns the terminal outcome, or nil while in progress.
func (s *Session) Result() *Result {
	return s.result
}

// PersistErr reports a history-persistence failure from finalization.
// The completed result stands regardless.
func (s *Session) PersistErr() error {
	return s.persistErr
}

// Answer records value as the current question's answer. Answers for
// non-current questions are ignored (out-of-order submission indicates a
// UI bug, not a learner-facing condition). Re-answering overwrites the
// prior value, except in adaptive mode once the question is scored.
func (s *Session) Answer(questionID, value string) bool {
	q := s.CurrentQuestion()
	if q == nil || q.ID != questionID {
		return false
	}
	if s.Mode == ModeAdaptive && s.CurrentFeedback() != nil {
		return false
	}
	s.answers[s.served[s.pos]] = value
	return true
}

// Advance moves to the next question, or completes the session on the
// last one. Standard mode requires a recorded answer; adaptive mode
// requires the current answer to have been scored. Returns false when
// the precondition fails.
func (s *Session) Advance() bool {
	if s.phase != PhaseInProgress {
		return false
	}

	idx := s.served[s.pos]
	switch s.Mode {
	case ModeStandard:
		if s.answers[idx] == "" {
			return false
		}
	case ModeAdaptive:
		if s.feedback[idx] == nil {
			return false
		}
	}

	if s.pos == len(s.questions)-1 {
		s.complete()
		return true
	}

	if s.Mode == ModeAdaptive && s.pos == len(s.served)-1 {
		s.served = append(s.served, s.pickNext())
	}
	s.pos++
	return true
}

// Retreat steps back to the previous question, keeping recorded answers
// visible and editable. Standard mode only; adaptive answers are final.
func (s *Session) Retreat() bool {
	if s.phase != PhaseInProgress || s.Mode != ModeStandard || s.pos == 0 {
		return false
	}
	s.pos--
	return true
}

// pickNext selects the next unserved question matching the controller's
// difficulty, falling back to the nearest available tier. Standard mode
// never calls this; it serves the bank's order as-is.
func (s *Session) pickNext() int {
	servedSet := make(map[int]bool, len(s.served))
	for _, i := range s.served {
		servedSet[i] = true
	}

	want := s.difficulty.Current()
	candidates := []questionbank.Difficulty{want, nearestBelow(want), nearestAbove(want)}

	for _, d := range candidates {
		for i := range s.questions {
			if !servedSet[i] && s.questions[i].Difficulty == d {
				return i
			}
		}
	}

	// Any remaining question, regardless of tag.
	for i := range s.questions {
		if !servedSet[i] {
			return i
		}
	}
	return 0
}

func nearestBelow(d questionbank.Difficulty) questionbank.Difficulty {
	return d.StepDown()
}

func nearestAbove(d questionbank.Difficulty) questionbank.Difficulty {
	return d.StepUp()
}
