package questionbank

import "fmt"

// Validator checks a generated question for well-formedness.
// Implementations must be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the question passes, a ValidationError
	// otherwise. The index locates the question within its set.
	Validate(q *Question, index int) *ValidationError
}

// ValidationError describes why a generated question was rejected.
type ValidationError struct {
	Validator string
	Index     int
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: question %d: %s", e.Validator, e.Index+1, e.Message)
}
