package assessment

import "github.com/Ajinkya236/skillsprint/internal/questionbank"

// DifficultyController tracks the adaptive difficulty level. It starts at
// medium and moves one step per scored answer: up on correct, down on
// incorrect, saturating at the ends. Scoring is the only mutation path.
type DifficultyController struct {
	current questionbank.Difficulty
}

// NewDifficultyController returns a controller starting at medium.
func NewDifficultyController() *DifficultyController {
	return &DifficultyController{current: questionbank.DifficultyMedium}
}

// Current returns the difficulty the next question should target.
func (c *DifficultyController) Current() questionbank.Difficulty {
	return c.current
}

// Record applies the transition rule for one scored answer.
func (c *DifficultyController) Record(correct bool) {
	if correct {
		c.current = c.current.StepUp()
	} else {
		c.current = c.current.StepDown()
	}
}
