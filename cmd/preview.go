package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/llm"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated questions for a skill (no database)",
	Long: `Generate and interactively answer questions for a specific skill.

This is a stateless developer tool — no database, no scoring history, no events.
Useful for evaluating question quality and tuning skill keyword lists.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("skill", "", "Skill ID (required)")
	previewCmd.Flags().String("proficiency", "intermediate", "Proficiency level: beginner, intermediate, or advanced")
	previewCmd.Flags().Int("count", 5, "Number of questions to generate")
	_ = previewCmd.MarkFlagRequired("skill")
}

func runPreview(cmd *cobra.Command, args []string) error {
	skillID, _ := cmd.Flags().GetString("skill")
	profVal, _ := cmd.Flags().GetString("proficiency")
	count, _ := cmd.Flags().GetInt("count")

	sk, err := skills.GetSkill(skillID)
	if err != nil {
		return err
	}

	prof := skills.Proficiency(profVal)
	if !prof.Valid() {
		return fmt.Errorf("invalid proficiency %q: must be beginner, intermediate, or advanced", profVal)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	bank := questionbank.New(provider, questionbank.DefaultConfig())

	fmt.Printf("Skill: %s — %s (%s)\n", sk.ID, sk.Name, prof.Label())
	fmt.Printf("Generating %d questions...\n\n", count)

	questions, err := bank.Generate(ctx, questionbank.GenerateInput{
		Skill:       sk,
		Proficiency: prof,
		Count:       count,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i, q := range questions {
		fmt.Printf("── Question %d/%d (%s) ──\n", i+1, len(questions), q.Difficulty)
		fmt.Println(q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}

		fmt.Print("\nYour answer: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		// Accept an option number for choice questions.
		if len(q.Options) > 0 && len(answer) == 1 && answer[0] >= '1' && answer[0] <= '9' {
			if idx := int(answer[0] - '1'); idx < len(q.Options) {
				answer = q.Options[idx]
			}
		}

		if assessment.CheckAnswer(&q, answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.CorrectAnswer)
		}

		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, len(questions))
	return nil
}
