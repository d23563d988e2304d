package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent assessment attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		skillID, _ := cmd.Flags().GetString("skill")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		var attempts []store.AttemptRecord
		if skillID != "" {
			attempts, err = s.EventRepo().AttemptsBySkill(ctx, skillID)
		} else {
			attempts, err = s.EventRepo().QueryAttempts(ctx, store.QueryOpts{Limit: limit})
		}
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}

		if len(attempts) == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-19s  %-26s  %-12s  %5s  %-8s  %s\n",
			"Timestamp", "Skill", "Level", "Score", "Mode", "Result")
		fmt.Println(strings.Repeat("─", 88))

		for i, a := range attempts {
			if limit > 0 && i >= limit {
				break
			}
			result := "failed"
			if a.Passed {
				result = "passed"
			}
			fmt.Printf("%-19s  %-26s  %-12s  %4d%%  %-8s  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				a.SkillName,
				a.Proficiency,
				a.Score,
				a.Mode,
				result,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
	historyCmd.Flags().String("skill", "", "Filter by skill ID")
}
