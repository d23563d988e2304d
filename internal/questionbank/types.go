package questionbank

import "github.com/Ajinkya236/skillsprint/internal/skills"

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple_choice"
	TypeTrueFalse      QuestionType = "true_false"
	TypeShortAnswer    QuestionType = "short_answer"
)

// Difficulty is the per-question difficulty tag used by adaptive
// assessments to pick the next question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// StepUp returns the next harder difficulty, saturating at hard.
func (d Difficulty) StepUp() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyHard
	}
}

// StepDown returns the next easier difficulty, saturating at easy.
func (d Difficulty) StepDown() Difficulty {
	switch d {
	case DifficultyHard:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyEasy
	default:
		return DifficultyEasy
	}
}

// Question is a single assessment item.
type Question struct {
	// ID is unique within a session.
	ID string

	// Prompt is the question text shown to the learner.
	Prompt string

	// Type determines the answer input: pick one option, true/false,
	// or free text.
	Type QuestionType

	// Options is the ordered choice list. Empty for short-answer;
	// exactly ["True", "False"] for true/false.
	Options []string

	// CorrectAnswer is the canonical correct answer. For multiple
	// choice it is the text of the correct option.
	CorrectAnswer string

	// CorrectAnswers holds the full answer set for multi-select
	// questions. Nil for single-select.
	CorrectAnswers []string

	// Difficulty tags the question for adaptive selection.
	Difficulty Difficulty

	// Explanation is shown after the question is answered.
	Explanation string
}

// GenerateInput carries everything the bank needs to produce a question set.
type GenerateInput struct {
	// Skill is the target skill.
	Skill skills.Skill

	// Proficiency parameterizes question depth.
	Proficiency skills.Proficiency

	// Count is the exact number of questions required.
	Count int
}
