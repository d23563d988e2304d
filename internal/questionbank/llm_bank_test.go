package questionbank

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/llm"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

func testSkill() skills.Skill {
	return skills.Skill{
		ID:            "rest-api-design",
		Name:          "REST API Design",
		Description:   "Resource modeling, status codes, versioning, and pagination",
		Category:      skills.CategoryTechnical,
		PassThreshold: 70,
		QuestionCount: 12,
		Keywords:      []string{"http methods", "status codes"},
	}
}

func questionJSON(i int, difficulty string) string {
	return fmt.Sprintf(`{
		"prompt": "Question %d: which status code means created?",
		"type": "multiple_choice",
		"options": ["200", "201", "204", "301"],
		"correct_answer": "201",
		"difficulty": %q,
		"explanation": "201 Created signals a new resource."
	}`, i, difficulty)
}

func questionSetJSON(count int) json.RawMessage {
	difficulties := []string{"easy", "medium", "hard"}
	items := make([]string, count)
	for i := range count {
		items[i] = questionJSON(i, difficulties[i%3])
	}
	return json.RawMessage(`{"questions": [` + strings.Join(items, ",") + `]}`)
}

func TestGenerate_FullSet(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionSetJSON(12)})
	bank := New(mock, DefaultConfig())

	qs, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyIntermediate,
		Count:       12,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 12 {
		t.Fatalf("got %d questions, want 12", len(qs))
	}
	for i, q := range qs {
		if q.ID == "" {
			t.Errorf("question %d: missing ID", i)
		}
		if q.Type != TypeMultipleChoice {
			t.Errorf("question %d: Type = %q", i, q.Type)
		}
		if !q.Difficulty.Valid() {
			t.Errorf("question %d: invalid difficulty %q", i, q.Difficulty)
		}
	}
}

func TestGenerate_ShortSetRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionSetJSON(7)})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyBeginner,
		Count:       12,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerate_EmptySetRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyBeginner,
		Count:       12,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerate_ProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyAdvanced,
		Count:       12,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestGenerate_MalformedQuestionRejected(t *testing.T) {
	// Correct answer not among the options.
	bad := json.RawMessage(`{"questions": [{
		"prompt": "Which status code means created?",
		"type": "multiple_choice",
		"options": ["200", "202", "204", "301"],
		"correct_answer": "201",
		"difficulty": "easy",
		"explanation": "201 Created."
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: bad})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyBeginner,
		Count:       1,
	})
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected wrapped ValidationError, got %v", err)
	}
}

func TestGenerate_PromptIncludesSkillContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: questionSetJSON(1)})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyAdvanced,
		Count:       1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, "REST API Design") {
		t.Errorf("prompt missing skill name: %q", userMsg)
	}
	if !strings.Contains(userMsg, "Advanced") {
		t.Errorf("prompt missing proficiency: %q", userMsg)
	}
}

func TestGenerate_MultiSelect(t *testing.T) {
	set := json.RawMessage(`{"questions": [{
		"prompt": "Select all idempotent HTTP methods.",
		"type": "multiple_choice",
		"options": ["POST", "PUT", "DELETE", "PATCH"],
		"correct_answer": "",
		"correct_answers": ["PUT", "DELETE"],
		"difficulty": "hard",
		"explanation": "PUT and DELETE produce the same state when repeated."
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: set})
	bank := New(mock, DefaultConfig())

	qs, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyAdvanced,
		Count:       1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := qs[0]
	if len(q.CorrectAnswers) != 2 || q.CorrectAnswers[0] != "PUT" || q.CorrectAnswers[1] != "DELETE" {
		t.Errorf("CorrectAnswers = %v, want [PUT DELETE]", q.CorrectAnswers)
	}
	if q.CorrectAnswer != "PUT, DELETE" {
		t.Errorf("CorrectAnswer = %q, want joined set", q.CorrectAnswer)
	}
}

func TestGenerate_SingleAnswerInSetField(t *testing.T) {
	set := json.RawMessage(`{"questions": [{
		"prompt": "Which status code means created?",
		"type": "multiple_choice",
		"options": ["200", "201", "204", "301"],
		"correct_answer": "",
		"correct_answers": ["201"],
		"difficulty": "easy",
		"explanation": "201 Created."
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: set})
	bank := New(mock, DefaultConfig())

	qs, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyBeginner,
		Count:       1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qs[0].CorrectAnswer != "201" {
		t.Errorf("CorrectAnswer = %q, want %q", qs[0].CorrectAnswer, "201")
	}
	if qs[0].CorrectAnswers != nil {
		t.Errorf("CorrectAnswers = %v, want nil for single answer", qs[0].CorrectAnswers)
	}
}

func TestGenerate_MultiSelectBadOptionRejected(t *testing.T) {
	set := json.RawMessage(`{"questions": [{
		"prompt": "Select all idempotent HTTP methods.",
		"type": "multiple_choice",
		"options": ["POST", "PUT", "DELETE", "PATCH"],
		"correct_answer": "",
		"correct_answers": ["PUT", "TRACE"],
		"difficulty": "hard",
		"explanation": "TRACE is not an option here."
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: set})
	bank := New(mock, DefaultConfig())

	_, err := bank.Generate(context.Background(), GenerateInput{
		Skill:       testSkill(),
		Proficiency: skills.ProficiencyAdvanced,
		Count:       1,
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
