package questionbank

import "strings"

// StructuralValidator checks required fields, enum values, and length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, index int) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return v.fail(index, "prompt is empty")
	}
	if len(q.Prompt) > 600 {
		return v.fail(index, "prompt exceeds 600 characters")
	}
	switch q.Type {
	case TypeMultipleChoice, TypeTrueFalse, TypeShortAnswer:
	default:
		return v.fail(index, "type must be multiple_choice, true_false, or short_answer")
	}
	if !q.Difficulty.Valid() {
		return v.fail(index, "difficulty must be easy, medium, or hard")
	}
	if strings.TrimSpace(q.CorrectAnswer) == "" {
		return v.fail(index, "correct_answer is empty")
	}
	return nil
}

func (v *StructuralValidator) fail(index int, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Index: index, Message: msg}
}

// AnswerConsistencyValidator checks that the answer agrees with the
// options for the question's type.
type AnswerConsistencyValidator struct{}

func (v *AnswerConsistencyValidator) Name() string { return "answer-consistency" }

func (v *AnswerConsistencyValidator) Validate(q *Question, index int) *ValidationError {
	switch q.Type {
	case TypeMultipleChoice:
		if len(q.Options) != 4 {
			return v.fail(index, "multiple_choice needs exactly 4 options")
		}
		if len(q.CorrectAnswers) > 0 {
			return v.validateAnswerSet(q, index)
		}
		matches := 0
		for _, opt := range q.Options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(q.CorrectAnswer)) {
				matches++
			}
		}
		if matches != 1 {
			return v.fail(index, "correct_answer must match exactly one option")
		}

	case TypeTrueFalse:
		if len(q.CorrectAnswers) > 0 {
			return v.fail(index, "true_false cannot have an answer set")
		}
		if len(q.Options) != 2 ||
			!strings.EqualFold(q.Options[0], "true") ||
			!strings.EqualFold(q.Options[1], "false") {
			return v.fail(index, `true_false options must be ["True", "False"]`)
		}
		ans := strings.TrimSpace(q.CorrectAnswer)
		if !strings.EqualFold(ans, "true") && !strings.EqualFold(ans, "false") {
			return v.fail(index, "true_false answer must be True or False")
		}

	case TypeShortAnswer:
		if len(q.Options) != 0 {
			return v.fail(index, "short_answer must not have options")
		}
		if len(q.CorrectAnswers) > 0 {
			return v.fail(index, "short_answer cannot have an answer set")
		}
	}
	return nil
}

// validateAnswerSet checks a select-all-that-apply multiple_choice
// question: every element of the set must be a distinct option, and
// the set must be a proper subset of at least two options.
func (v *AnswerConsistencyValidator) validateAnswerSet(q *Question, index int) *ValidationError {
	if len(q.CorrectAnswers) < 2 {
		return v.fail(index, "answer set needs at least 2 entries")
	}
	if len(q.CorrectAnswers) >= len(q.Options) {
		return v.fail(index, "answer set cannot include every option")
	}
	seen := make(map[int]bool)
	for _, ans := range q.CorrectAnswers {
		found := -1
		for i, opt := range q.Options {
			if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(ans)) {
				found = i
				break
			}
		}
		if found < 0 {
			return v.fail(index, "answer set entry does not match any option")
		}
		if seen[found] {
			return v.fail(index, "answer set entry repeats an option")
		}
		seen[found] = true
	}
	return nil
}

func (v *AnswerConsistencyValidator) fail(index int, msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Index: index, Message: msg}
}
