package assessment

import (
	"sort"
	"strings"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
)

// Matcher decides whether a short-answer response is correct. The default
// is exact matching after normalization; a fuzzier matcher can be plugged
// in per assessment.
type Matcher interface {
	Match(learnerAnswer, correctAnswer string) bool
}

// ExactMatcher accepts a short answer only if it equals the correct
// answer after trimming and case folding.
type ExactMatcher struct{}

func (ExactMatcher) Match(learnerAnswer, correctAnswer string) bool {
	return normalize(learnerAnswer) == normalize(correctAnswer)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CheckAnswer scores a single answer against the question using the
// default matcher. Sessions carry their own matcher; this is for callers
// outside a session, like the preview tool.
func CheckAnswer(q *questionbank.Question, learnerAnswer string) bool {
	return checkAnswer(q, learnerAnswer, nil)
}

// checkAnswer scores a single answer against the question.
//
// Multiple choice and true/false use exact string match against the
// canonical answer (set match for multi-select). Short answers go through
// the matcher.
func checkAnswer(q *questionbank.Question, learnerAnswer string, matcher Matcher) bool {
	if strings.TrimSpace(learnerAnswer) == "" {
		return false
	}

	switch q.Type {
	case questionbank.TypeShortAnswer:
		if matcher == nil {
			matcher = ExactMatcher{}
		}
		return matcher.Match(learnerAnswer, q.CorrectAnswer)

	case questionbank.TypeMultipleChoice:
		if len(q.CorrectAnswers) > 0 {
			return matchAnswerSet(learnerAnswer, q.CorrectAnswers)
		}
		return normalize(learnerAnswer) == normalize(q.CorrectAnswer)

	case questionbank.TypeTrueFalse:
		return normalize(learnerAnswer) == normalize(q.CorrectAnswer)
	}

	return false
}

// matchAnswerSet compares a comma-separated multi-select answer against
// the correct set, ignoring order.
func matchAnswerSet(learnerAnswer string, correct []string) bool {
	chosen := splitAnswerSet(learnerAnswer)
	want := make([]string, len(correct))
	for i, c := range correct {
		want[i] = normalize(c)
	}
	sort.Strings(want)

	if len(chosen) != len(want) {
		return false
	}
	for i := range chosen {
		if chosen[i] != want[i] {
			return false
		}
	}
	return true
}

func splitAnswerSet(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if n := normalize(p); n != "" {
			out = append(out, n)
		}
	}
	sort.Strings(out)
	return out
}
