package questionbank

import "github.com/Ajinkya236/skillsprint/internal/llm"

// QuestionSetSchema defines the JSON schema for generated question sets.
var QuestionSetSchema = &llm.Schema{
	Name:        "assessment-questions",
	Description: "A set of skill-assessment questions with answers and explanations",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in serving order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question text shown to the learner",
						},
						"type": map[string]any{
							"type":        "string",
							"enum":        []any{"multiple_choice", "true_false", "short_answer"},
							"description": "How the learner answers",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "4 options for multiple_choice, [\"True\",\"False\"] for true_false, empty for short_answer",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The correct answer. For choice questions: the exact text of the correct option. Empty when correct_answers is used instead.",
						},
						"correct_answers": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "For select-all-that-apply multiple_choice only: the exact text of every correct option. Empty for single-answer questions.",
						},
						"difficulty": map[string]any{
							"type":        "string",
							"enum":        []any{"easy", "medium", "hard"},
							"description": "Difficulty tag for adaptive selection",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Short explanation of the correct answer",
						},
					},
					"required":             []any{"prompt", "type", "options", "correct_answer", "correct_answers", "difficulty", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
