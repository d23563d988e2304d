package questionbank

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Ajinkya236/skillsprint/internal/llm"
)

// LLMBank implements Bank using a text-generation provider.
type LLMBank struct {
	provider llm.Provider
	config   Config
}

// New creates an LLMBank with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMBank {
	return &LLMBank{provider: provider, config: cfg}
}

// questionOutput is one raw question before validation.
type questionOutput struct {
	Prompt         string   `json:"prompt"`
	Type           string   `json:"type"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correct_answer"`
	CorrectAnswers []string `json:"correct_answers"`
	Difficulty     string   `json:"difficulty"`
	Explanation    string   `json:"explanation"`
}

// questionSetOutput is the raw response envelope.
type questionSetOutput struct {
	Questions []questionOutput `json:"questions"`
}

// Generate produces exactly input.Count validated questions or a
// *GenerationError. A short or malformed set is rejected as a whole;
// no placeholder questions are substituted.
func (b *LLMBank) Generate(ctx context.Context, input GenerateInput) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      QuestionSetSchema,
		MaxTokens:   b.config.MaxTokens,
		Temperature: b.config.Temperature,
	}

	resp, err := b.provider.Generate(ctx, req)
	if err != nil {
		return nil, b.genErr(input, fmt.Errorf("model request failed: %w", err))
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, b.genErr(input, fmt.Errorf("parse model response: %w", err))
	}

	if len(raw.Questions) != input.Count {
		return nil, b.genErr(input, fmt.Errorf("got %d questions, want %d", len(raw.Questions), input.Count))
	}

	questions := make([]Question, len(raw.Questions))
	for i, rq := range raw.Questions {
		q := Question{
			ID:            uuid.New().String(),
			Prompt:        rq.Prompt,
			Type:          QuestionType(rq.Type),
			Options:       rq.Options,
			CorrectAnswer: rq.CorrectAnswer,
			Difficulty:    Difficulty(rq.Difficulty),
			Explanation:   rq.Explanation,
		}
		// A set of two or more answers marks the question as
		// select-all-that-apply; a single-element set is just a
		// single answer written in the wrong field.
		switch {
		case len(rq.CorrectAnswers) > 1:
			q.CorrectAnswers = rq.CorrectAnswers
			q.CorrectAnswer = strings.Join(rq.CorrectAnswers, ", ")
		case len(rq.CorrectAnswers) == 1 && q.CorrectAnswer == "":
			q.CorrectAnswer = rq.CorrectAnswers[0]
		}
		for _, v := range b.config.Validators {
			if verr := v.Validate(&q, i); verr != nil {
				return nil, b.genErr(input, verr)
			}
		}
		questions[i] = q
	}

	return questions, nil
}

func (b *LLMBank) genErr(input GenerateInput, err error) *GenerationError {
	return &GenerationError{
		Skill:       input.Skill.Name,
		Proficiency: string(input.Proficiency),
		Err:         err,
	}
}
