package questionbank

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an assessment author for a professional learning platform.

Rules:
- Generate the requested number of assessment questions for the given skill and proficiency level.
- Each question must be self-contained, unambiguous, and answerable without external material.
- Use a mix of question types: mostly multiple_choice, some true_false, and at most two short_answer questions.
- For multiple_choice, provide exactly 4 options. Usually exactly one is correct: put its exact text in correct_answer and leave correct_answers empty.
- At most one multiple_choice question per set may be select-all-that-apply: list the exact text of every correct option (at least 2, never all 4) in correct_answers, leave correct_answer empty, and say "Select all that apply" in the prompt.
- Distractors should reflect plausible misunderstandings, not random text.
- For true_false, the options must be exactly ["True", "False"] and the answer one of them.
- For short_answer, options must be empty and the answer a single short phrase a learner could realistically type.
- Tag each question with a difficulty of easy, medium, or hard. Spread the set roughly evenly across the three difficulties.
- Every question needs a brief explanation of the correct answer.
- Do not repeat or trivially rephrase another question in the set.`

// buildUserMessage renders the generation request for one question set.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", input.Skill.Name)
	fmt.Fprintf(&b, "Description: %s\n", input.Skill.Description)
	if len(input.Skill.Keywords) > 0 {
		fmt.Fprintf(&b, "Topics to cover: %s\n", strings.Join(input.Skill.Keywords, ", "))
	}
	fmt.Fprintf(&b, "Proficiency level: %s\n", input.Proficiency.Label())
	fmt.Fprintf(&b, "Number of questions: %d\n", input.Count)

	return b.String()
}
