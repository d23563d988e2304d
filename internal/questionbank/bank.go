package questionbank

import (
	"context"
	"fmt"
)

// Bank produces the ordered question sequence for an assessment session.
type Bank interface {
	// Generate returns exactly input.Count well-formed questions for the
	// given skill and proficiency, or a *GenerationError. It never
	// synthesizes placeholder questions to mask a failed generation;
	// callers surface the error and offer a retry.
	Generate(ctx context.Context, input GenerateInput) ([]Question, error)
}

// GenerationError reports that question generation failed or returned
// malformed data. The session moves to its failed state and the learner
// retries explicitly.
type GenerationError struct {
	Skill       string
	Proficiency string
	Err         error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate questions for %s (%s): %v", e.Skill, e.Proficiency, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }
