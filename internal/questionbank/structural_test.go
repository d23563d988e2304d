package questionbank

import "testing"

func validMC() Question {
	return Question{
		ID:            "q1",
		Prompt:        "Which HTTP method is idempotent?",
		Type:          TypeMultipleChoice,
		Options:       []string{"POST", "PUT", "PATCH", "CONNECT"},
		CorrectAnswer: "PUT",
		Difficulty:    DifficultyMedium,
		Explanation:   "PUT replaces the resource; repeating it has the same effect.",
	}
}

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{}
	q := validMC()
	if err := v.Validate(&q, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructural_EmptyPrompt(t *testing.T) {
	v := &StructuralValidator{}
	q := validMC()
	q.Prompt = "   "
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for empty prompt")
	}
}

func TestStructural_BadDifficulty(t *testing.T) {
	v := &StructuralValidator{}
	q := validMC()
	q.Difficulty = "brutal"
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestConsistency_MultipleChoice(t *testing.T) {
	v := &AnswerConsistencyValidator{}

	q := validMC()
	if err := v.Validate(&q, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q.Options = []string{"POST", "PUT"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for wrong option count")
	}

	q = validMC()
	q.CorrectAnswer = "DELETE"
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error when answer not among options")
	}
}

func TestConsistency_TrueFalse(t *testing.T) {
	v := &AnswerConsistencyValidator{}
	q := Question{
		Prompt:        "HTTP 404 means the server crashed.",
		Type:          TypeTrueFalse,
		Options:       []string{"True", "False"},
		CorrectAnswer: "False",
		Difficulty:    DifficultyEasy,
	}
	if err := v.Validate(&q, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q.CorrectAnswer = "Maybe"
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for non-boolean answer")
	}
}

func TestConsistency_ShortAnswer(t *testing.T) {
	v := &AnswerConsistencyValidator{}
	q := Question{
		Prompt:        "Name the HTTP header used for content negotiation by media type.",
		Type:          TypeShortAnswer,
		CorrectAnswer: "Accept",
		Difficulty:    DifficultyHard,
	}
	if err := v.Validate(&q, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q.Options = []string{"Accept"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error when short_answer has options")
	}
}

func TestDifficulty_Stepping(t *testing.T) {
	if DifficultyEasy.StepUp() != DifficultyMedium {
		t.Error("easy should step up to medium")
	}
	if DifficultyHard.StepUp() != DifficultyHard {
		t.Error("hard should saturate on step up")
	}
	if DifficultyMedium.StepDown() != DifficultyEasy {
		t.Error("medium should step down to easy")
	}
	if DifficultyEasy.StepDown() != DifficultyEasy {
		t.Error("easy should saturate on step down")
	}
}

func validMultiSelect() Question {
	q := validMC()
	q.Prompt = "Select all idempotent HTTP methods."
	q.CorrectAnswer = "PUT, DELETE"
	q.CorrectAnswers = []string{"PUT", "DELETE"}
	q.Options = []string{"POST", "PUT", "DELETE", "PATCH"}
	return q
}

func TestConsistency_AnswerSet(t *testing.T) {
	v := &AnswerConsistencyValidator{}

	q := validMultiSelect()
	if err := v.Validate(&q, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q = validMultiSelect()
	q.CorrectAnswers = []string{"PUT"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for single-entry answer set")
	}

	q = validMultiSelect()
	q.CorrectAnswers = []string{"POST", "PUT", "DELETE", "PATCH"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error when answer set covers every option")
	}

	q = validMultiSelect()
	q.CorrectAnswers = []string{"PUT", "TRACE"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error when answer set entry is not an option")
	}

	q = validMultiSelect()
	q.CorrectAnswers = []string{"PUT", "put"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error when answer set repeats an option")
	}
}

func TestConsistency_AnswerSetWrongType(t *testing.T) {
	v := &AnswerConsistencyValidator{}

	q := validMC()
	q.Type = TypeTrueFalse
	q.Options = []string{"True", "False"}
	q.CorrectAnswer = "True"
	q.CorrectAnswers = []string{"True", "False"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for true_false with answer set")
	}

	q = validMC()
	q.Type = TypeShortAnswer
	q.Options = nil
	q.CorrectAnswers = []string{"PUT", "DELETE"}
	if err := v.Validate(&q, 0); err == nil {
		t.Error("expected error for short_answer with answer set")
	}
}
