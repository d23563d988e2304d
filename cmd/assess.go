package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/app"
	"github.com/Ajinkya236/skillsprint/internal/assessment"
	"github.com/Ajinkya236/skillsprint/internal/skills"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Start an assessment for a skill",
	Long: `Launch the TUI directly into an assessment, skipping the menus.

Use "skillsprint skills" to see available skill IDs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skillID, _ := cmd.Flags().GetString("skill")
		profVal, _ := cmd.Flags().GetString("proficiency")
		adaptive, _ := cmd.Flags().GetBool("adaptive")

		sk, err := skills.GetSkill(skillID)
		if err != nil {
			return err
		}

		prof := skills.Proficiency(profVal)
		if !prof.Valid() {
			return fmt.Errorf("invalid proficiency %q: must be beginner, intermediate, or advanced", profVal)
		}

		mode := assessment.ModeStandard
		if adaptive {
			mode = assessment.ModeAdaptive
		}

		opts, cleanup, err := buildAppOptions(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if opts.Bank == nil {
			return fmt.Errorf("no LLM provider configured; set ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY")
		}

		opts.Start = &app.StartAssessment{
			Skill:       sk,
			Proficiency: prof,
			Mode:        mode,
		}
		return app.Run(opts)
	},
}

func init() {
	assessCmd.Flags().String("skill", "", "Skill ID (required)")
	assessCmd.Flags().String("proficiency", "intermediate", "Proficiency level: beginner, intermediate, or advanced")
	assessCmd.Flags().Bool("adaptive", false, "Use adaptive mode (immediate feedback, difficulty adjusts)")
	_ = assessCmd.MarkFlagRequired("skill")
}
