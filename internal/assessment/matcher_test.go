package assessment

import (
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
)

func TestCheckAnswerMultipleChoice(t *testing.T) {
	q := &questionbank.Question{
		Type:          questionbank.TypeMultipleChoice,
		Options:       []string{"Mutex", "Channel", "WaitGroup", "Atomic"},
		CorrectAnswer: "Channel",
	}

	if !checkAnswer(q, "Channel", nil) {
		t.Error("exact option not accepted")
	}
	if !checkAnswer(q, "  channel ", nil) {
		t.Error("case and whitespace should be ignored")
	}
	if checkAnswer(q, "Mutex", nil) {
		t.Error("wrong option accepted")
	}
	if checkAnswer(q, "", nil) {
		t.Error("empty answer accepted")
	}
}

func TestCheckAnswerMultiSelect(t *testing.T) {
	q := &questionbank.Question{
		Type:           questionbank.TypeMultipleChoice,
		Options:        []string{"A", "B", "C", "D"},
		CorrectAnswer:  "A",
		CorrectAnswers: []string{"A", "C"},
	}

	if !checkAnswer(q, "A,C", nil) {
		t.Error("correct set rejected")
	}
	if !checkAnswer(q, "c, a", nil) {
		t.Error("order and case should be ignored")
	}
	if checkAnswer(q, "A", nil) {
		t.Error("partial selection accepted")
	}
	if checkAnswer(q, "A,C,D", nil) {
		t.Error("superset accepted")
	}
}

func TestCheckAnswerTrueFalse(t *testing.T) {
	q := &questionbank.Question{
		Type:          questionbank.TypeTrueFalse,
		Options:       []string{"True", "False"},
		CorrectAnswer: "True",
	}

	if !checkAnswer(q, "true", nil) {
		t.Error("true not accepted")
	}
	if checkAnswer(q, "False", nil) {
		t.Error("false accepted for a true statement")
	}
}

func TestCheckAnswerShortAnswer(t *testing.T) {
	q := &questionbank.Question{
		Type:          questionbank.TypeShortAnswer,
		CorrectAnswer: "goroutine",
	}

	if !checkAnswer(q, "Goroutine", nil) {
		t.Error("default matcher should ignore case")
	}
	if checkAnswer(q, "go routine", nil) {
		t.Error("non-matching answer accepted")
	}
}

type prefixMatcher struct{}

func (prefixMatcher) Match(learnerAnswer, correctAnswer string) bool {
	return len(learnerAnswer) >= 3 && normalize(correctAnswer)[:3] == normalize(learnerAnswer)[:3]
}

func TestCheckAnswerCustomMatcher(t *testing.T) {
	q := &questionbank.Question{
		Type:          questionbank.TypeShortAnswer,
		CorrectAnswer: "goroutine",
	}

	if !checkAnswer(q, "gorXXX", prefixMatcher{}) {
		t.Error("custom matcher not consulted")
	}
}
