package assessment

import (
	"testing"

	"github.com/Ajinkya236/skillsprint/internal/questionbank"
)

func TestDifficultyStartsAtMedium(t *testing.T) {
	c := NewDifficultyController()
	if got := c.Current(); got != questionbank.DifficultyMedium {
		t.Errorf("initial difficulty = %q, want medium", got)
	}
}

func TestDifficultySaturatesAtHard(t *testing.T) {
	c := NewDifficultyController()
	c.Record(false)
	c.Record(false) // easy, saturated

	for i := 0; i < 3; i++ {
		c.Record(true)
	}
	if got := c.Current(); got != questionbank.DifficultyHard {
		t.Errorf("after easy + 3 correct = %q, want hard", got)
	}
	c.Record(true)
	if got := c.Current(); got != questionbank.DifficultyHard {
		t.Errorf("correct at hard moved to %q, want hard", got)
	}
}

func TestDifficultySaturatesAtEasy(t *testing.T) {
	c := NewDifficultyController()
	for i := 0; i < 4; i++ {
		c.Record(false)
	}
	if got := c.Current(); got != questionbank.DifficultyEasy {
		t.Errorf("after 4 incorrect = %q, want easy", got)
	}
}

func TestDifficultyStepsOnePerAnswer(t *testing.T) {
	c := NewDifficultyController()
	c.Record(true)
	if got := c.Current(); got != questionbank.DifficultyHard {
		t.Errorf("after 1 correct = %q, want hard", got)
	}
	c.Record(false)
	if got := c.Current(); got != questionbank.DifficultyMedium {
		t.Errorf("after correct then incorrect = %q, want medium", got)
	}
}
