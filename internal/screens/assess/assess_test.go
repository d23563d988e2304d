package assess

import (
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

func newTestScreen(questions []questionbank.Question) *AssessScreen {
	sk := skills.Skill{
		ID:            "biology-basics",
		Name:          "Biology Basics",
		PassThreshold: 70,
		QuestionCount: len(questions),
	}
	s := New(sk, skills.ProficiencyBeginner, assessment.ModeStandard, Deps{})
	s.session = assessment.NewSession("sess-test", sk, skills.ProficiencyBeginner,
		assessment.ModeStandard, questions, assessment.ExactMatcher{})
	s.syncInput()
	return s
}

func shortAnswerQuestion(id, prompt string) questionbank.Question {
	return questionbank.Question{
		ID:            id,
		Prompt:        prompt,
		Type:          questionbank.TypeShortAnswer,
		CorrectAnswer: "photosynthesis",
		Difficulty:    questionbank.DifficultyMedium,
	}
}

func choiceQuestion(id string) questionbank.Question {
	return questionbank.Question{
		ID:            id,
		Prompt:        "Pick one",
		Type:          questionbank.TypeMultipleChoice,
		Options:       []string{"Alpha", "Beta", "Gamma", "Delta"},
		CorrectAnswer: "Beta",
		Difficulty:    questionbank.DifficultyMedium,
	}
}

func TestRetreatRestoresTypedAnswer(t *testing.T) {
	s := newTestScreen([]questionbank.Question{
		shortAnswerQuestion("q1", "What process converts light to energy?"),
		shortAnswerQuestion("q2", "Name the cell's powerhouse."),
	})

	s.input.Model.SetValue("photosynthesis")
	s.submitAnswer()

	if got := s.session.CurrentIndex(); got != 1 {
		t.Fatalf("expected to be on question 2, got index %d", got)
	}

	s.recordCurrentAnswer()
	if !s.session.Retreat() {
		t.Fatal("expected Retreat to succeed")
	}
	s.syncInput()

	if got := s.session.CurrentAnswer(); got != "photosynthesis" {
		t.Fatalf("expected recorded answer 'photosynthesis', got %q", got)
	}
	if got := s.input.Value(); got != "photosynthesis" {
		t.Errorf("expected input to show recorded answer, got %q", got)
	}
}

func TestRetreatDoesNotRecordUntouchedChoice(t *testing.T) {
	s := newTestScreen([]questionbank.Question{
		choiceQuestion("q1"),
		choiceQuestion("q2"),
	})

	// Answer the first question with an explicit pick.
	s.handleChoiceKey("2")
	if got := s.session.CurrentIndex(); got != 1 {
		t.Fatalf("expected to be on question 2, got index %d", got)
	}

	// Go back without ever touching the second question's choices.
	s.recordCurrentAnswer()
	s.session.Retreat()
	s.syncInput()

	if got := s.session.AnswerAt(1); got != "" {
		t.Errorf("expected no recorded answer for untouched question, got %q", got)
	}
}

func TestRetreatRecordsHighlightedChoiceAfterNavigation(t *testing.T) {
	s := newTestScreen([]questionbank.Question{
		choiceQuestion("q1"),
		choiceQuestion("q2"),
	})

	s.handleChoiceKey("1")

	// Move the highlight on the second question, then go back.
	s.handleChoiceKey("down")
	s.recordCurrentAnswer()
	s.session.Retreat()
	s.syncInput()

	if got := s.session.AnswerAt(1); got != "Beta" {
		t.Errorf("expected highlighted option recorded, got %q", got)
	}
}

func TestRetreatRestoresChoiceSelection(t *testing.T) {
	s := newTestScreen([]questionbank.Question{
		choiceQuestion("q1"),
		choiceQuestion("q2"),
	})

	s.handleChoiceKey("3")
	s.recordCurrentAnswer()
	s.session.Retreat()
	s.syncInput()

	if s.mcSelected != 2 {
		t.Errorf("expected highlight restored to option 3, got index %d", s.mcSelected)
	}
	if !s.mcTouched {
		t.Error("expected restored choice to count as touched")
	}
}
