package assess

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/router"
	"github.com/Ajinkya236/skillsprint/internal/screen"
	"github.com/Ajinkya236/skillsprint/internal/screens/summary"
	"github.com/Ajinkya236/skillsprint/internal/skills"
	"github.com/Ajinkya236/skillsprint/internal/store"
	"github.com/Ajinkya236/skillsprint/internal/ui/components"
	"github.com/Ajinkya236/skillsprint/internal/ui/layout"
)

// Deps carries the collaborators an assessment screen needs.
type Deps struct {
	Bank         questionbank.Bank
	Recorder     assessment.Recorder
	BadgeService *gamification.Service
	EventRepo    store.EventRepo
	SnapRepo     store.SnapshotRepo
}

// AssessScreen drives one assessment from generation through completion.
type AssessScreen struct {
	skill       skills.Skill
	proficiency skills.Proficiency
	mode        assessment.Mode
	deps        Deps
	runner      *assessment.Runner

	session *assessment.Session
	input   components.TextInput

	mcActive   bool
	mcSelected int
	// true once the learner has moved, toggled, or restored a choice;
	// the default highlight alone is not an answer
	mcTouched bool
	// multi-select state; non-nil only for questions with an answer set
	mcPicked map[int]bool

	showingFeedback    bool
	showingQuitConfirm bool
	finishing          bool
	errMsg             string
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates an assessment screen for one skill, proficiency, and mode.
func New(sk skills.Skill, proficiency skills.Proficiency, mode assessment.Mode, deps Deps) *AssessScreen {
	return &AssessScreen{
		skill:       sk,
		proficiency: proficiency,
		mode:        mode,
		deps:        deps,
		runner:      assessment.NewRunner(deps.Bank, deps.Recorder, nil),
		input:       components.NewTextInput("Type your answer...", 40),
	}
}

func (s *AssessScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startCmd(),
		s.input.Init(),
	)
}

func (s *AssessScreen) Title() string {
	return s.skill.Name
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if s.session == nil || s.finishing {
		return nil
	}
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	if s.mode == assessment.ModeStandard && s.session.CurrentIndex() > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Previous"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone()

	case finishedMsg:
		return s.handleFinished(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.textInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessScreen) textInputActive() bool {
	return s.session != nil && !s.mcActive &&
		!s.showingFeedback && !s.showingQuitConfirm && !s.finishing &&
		s.session.Phase() == assessment.PhaseInProgress
}

// startCmd runs the blocking question generation off the event loop.
func (s *AssessScreen) startCmd() tea.Cmd {
	return func() tea.Msg {
		sess, err := s.runner.Start(context.Background(), s.skill, s.proficiency, s.mode)
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

func (s *AssessScreen) retryCmd() tea.Cmd {
	return func() tea.Msg {
		sess, err := s.runner.Retry(context.Background())
		return sessionReadyMsg{Session: sess, Err: err}
	}
}

func (s *AssessScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		if msg.Err == assessment.ErrAbandoned {
			return s, nil
		}
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.errMsg = ""
	s.session = msg.Session
	s.syncInput()
	return s, s.input.Init()
}

func (s *AssessScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.session == nil {
		return s, nil
	}
	s.showingFeedback = false

	if !s.session.Advance() {
		return s, nil
	}
	if s.session.Phase() == assessment.PhaseCompleted {
		return s.beginFinish()
	}
	s.syncInput()
	return s, s.input.Init()
}

// handleFinished swaps this screen for the summary; dismissing the
// summary then pops straight back to wherever the assessment started.
func (s *AssessScreen) handleFinished(msg finishedMsg) (screen.Screen, tea.Cmd) {
	s.finishing = false
	sess := s.session
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: summary.New(sess, msg.Badges),
		}
	}
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		switch key {
		case "r", "R":
			s.errMsg = ""
			return s, s.retryCmd()
		case "esc":
			s.runner.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.session == nil {
		// Still generating. Esc abandons; the late result is discarded.
		if key == "esc" {
			s.runner.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if s.finishing {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			s.showingQuitConfirm = false
			s.runner.Abandon()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		return s, func() tea.Msg { return feedbackDoneMsg{} }
	}

	if s.session.Phase() != assessment.PhaseInProgress {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "left", "p":
		if s.mode == assessment.ModeStandard {
			s.recordCurrentAnswer()
			if s.session.Retreat() {
				s.syncInput()
				return s, s.input.Init()
			}
		}
		return s, nil
	}

	if s.mcActive {
		return s.handleChoiceKey(key)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *AssessScreen) handleChoiceKey(key string) (screen.Screen, tea.Cmd) {
	q := s.session.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
			s.mcTouched = true
		}
	case "down", "j":
		if s.mcSelected < len(q.Options)-1 {
			s.mcSelected++
			s.mcTouched = true
		}
	case " ":
		if s.mcPicked != nil {
			s.mcPicked[s.mcSelected] = !s.mcPicked[s.mcSelected]
			s.mcTouched = true
		}
	case "1", "2", "3", "4", "5", "6":
		i := int(key[0] - '1')
		if i < len(q.Options) {
			s.mcSelected = i
			s.mcTouched = true
			if s.mcPicked != nil {
				s.mcPicked[i] = !s.mcPicked[i]
				return s, nil
			}
			return s.submitAnswer()
		}
	}
	return s, nil
}

// currentAnswerValue reads the learner's answer from the active input.
func (s *AssessScreen) currentAnswerValue() string {
	q := s.session.CurrentQuestion()
	if q == nil {
		return ""
	}
	if !s.mcActive {
		return strings.TrimSpace(s.input.Value())
	}
	if s.mcPicked != nil {
		var picked []string
		for i, opt := range q.Options {
			if s.mcPicked[i] {
				picked = append(picked, opt)
			}
		}
		return strings.Join(picked, ", ")
	}
	if s.mcSelected >= 0 && s.mcSelected < len(q.Options) {
		return q.Options[s.mcSelected]
	}
	return ""
}

// recordCurrentAnswer saves whatever is typed or selected without
// advancing, so backwards navigation does not lose work.
func (s *AssessScreen) recordCurrentAnswer() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}
	if s.mcActive && !s.mcTouched {
		// The default highlight was never confirmed; recording it would
		// invent an answer the learner didn't give.
		return
	}
	if v := s.currentAnswerValue(); v != "" {
		s.session.Answer(q.ID, v)
	}
}

func (s *AssessScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.session.CurrentQuestion()
	if q == nil {
		return s, nil
	}

	value := s.currentAnswerValue()
	if value == "" {
		return s, nil
	}

	if s.mode == assessment.ModeAdaptive {
		fb := s.session.SubmitAnswer(q.ID, value)
		if fb == nil {
			return s, nil
		}
		s.showingFeedback = true
		return s, nil
	}

	if !s.session.Answer(q.ID, value) {
		return s, nil
	}
	if !s.session.Advance() {
		return s, nil
	}
	if s.session.Phase() == assessment.PhaseCompleted {
		return s.beginFinish()
	}
	s.syncInput()
	return s, s.input.Init()
}

// syncInput rebuilds the input widgets for the current question,
// restoring any previously recorded answer in standard mode.
func (s *AssessScreen) syncInput() {
	q := s.session.CurrentQuestion()
	if q == nil {
		return
	}

	switch q.Type {
	case questionbank.TypeMultipleChoice, questionbank.TypeTrueFalse:
		s.mcActive = true
		s.mcSelected = 0
		s.mcTouched = false
		s.mcPicked = nil
		if len(q.CorrectAnswers) > 0 {
			s.mcPicked = make(map[int]bool)
		}
		s.restoreChoice(q)
	default:
		s.mcActive = false
		s.input = components.NewTextInput("Type your answer...", 40)
		s.input.Model.SetValue(s.session.CurrentAnswer())
	}
}

// restoreChoice re-selects a recorded answer when revisiting a question.
func (s *AssessScreen) restoreChoice(q *questionbank.Question) {
	prev := s.session.CurrentAnswer()
	if prev == "" {
		return
	}
	s.mcTouched = true
	if s.mcPicked != nil {
		for _, part := range strings.Split(prev, ",") {
			part = strings.TrimSpace(part)
			for i, opt := range q.Options {
				if strings.EqualFold(opt, part) {
					s.mcPicked[i] = true
				}
			}
		}
		return
	}
	for i, opt := range q.Options {
		if strings.EqualFold(opt, prev) {
			s.mcSelected = i
			return
		}
	}
}

// beginFinish kicks off post-completion persistence.
func (s *AssessScreen) beginFinish() (screen.Screen, tea.Cmd) {
	s.finishing = true
	return s, s.finishCmd()
}

// finishCmd persists per-question answer events, evaluates badges, and
// refreshes the progress snapshot. Persistence failures are swallowed
// here; the attempt itself was already recorded (or its error captured)
// by the session's recorder.
func (s *AssessScreen) finishCmd() tea.Cmd {
	sess := s.session
	return func() tea.Msg {
		ctx := context.Background()

		if s.deps.EventRepo != nil {
			for i := 0; i < sess.TotalQuestions(); i++ {
				q := sess.QuestionAt(i)
				fb := sess.FeedbackAt(i)
				if q == nil || fb == nil {
					continue
				}
				_ = s.deps.EventRepo.AppendAnswer(ctx, store.AnswerEventData{
					SessionID:     sess.ID,
					SkillID:       sess.Skill.ID,
					QuestionID:    q.ID,
					Prompt:        q.Prompt,
					QuestionType:  string(q.Type),
					Difficulty:    string(q.Difficulty),
					CorrectAnswer: q.CorrectAnswer,
					LearnerAnswer: sess.AnswerAt(i),
					Correct:       fb.IsCorrect,
				})
			}
		}

		var badges []gamification.BadgeAward
		if s.deps.BadgeService != nil {
			result := sess.Result()
			badges, _ = s.deps.BadgeService.EvaluateAttempt(ctx, assessment.Attempt{
				SessionID:     sess.ID,
				SkillID:       sess.Skill.ID,
				SkillName:     sess.Skill.Name,
				Proficiency:   sess.Proficiency,
				Mode:          sess.Mode,
				Score:         result.Score,
				Passed:        result.Passed,
				PassThreshold: sess.Skill.PassThreshold,
				QuestionCount: result.Total,
				CorrectCount:  result.CorrectCount,
				CompletedAt:   time.Now(),
			})
		}

		s.saveSnapshot(ctx)

		return finishedMsg{Badges: badges}
	}
}

// saveSnapshot folds this attempt into the latest progress snapshot.
func (s *AssessScreen) saveSnapshot(ctx context.Context) {
	if s.deps.SnapRepo == nil {
		return
	}

	data := store.SnapshotData{
		Version:      store.SnapshotVersion,
		BestScores:   map[string]int{},
		PassedSkills: map[string]bool{},
	}
	if prev, err := s.deps.SnapRepo.Latest(ctx); err == nil && prev != nil {
		data = prev.Data
		if data.BestScores == nil {
			data.BestScores = map[string]int{}
		}
		if data.PassedSkills == nil {
			data.PassedSkills = map[string]bool{}
		}
	}

	result := s.session.Result()
	if result.Score > data.BestScores[s.skill.ID] {
		data.BestScores[s.skill.ID] = result.Score
	}
	if result.Passed {
		data.PassedSkills[s.skill.ID] = true
	}

	if s.deps.BadgeService != nil {
		counts, points := s.deps.BadgeService.SnapshotData(ctx)
		data.BadgeCounts = counts
		data.TotalPoints = points
	}

	_ = s.deps.SnapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      data,
	})
	_ = s.deps.SnapRepo.Prune(ctx, 10)
}
