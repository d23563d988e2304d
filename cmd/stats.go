package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/skills"
	"github.com/Ajinkya236/skillsprint/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-skill progress and gamification totals",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		repo := s.EventRepo()

		fmt.Printf("%-28s  %8s  %6s  %5s  %5s  %9s\n",
			"Skill", "Attempts", "Passes", "Best", "Last", "Accuracy")
		fmt.Println(strings.Repeat("─", 72))

		attempted := 0
		for _, cat := range skills.AllCategories() {
			for _, sk := range skills.ByCategory(cat) {
				st, err := repo.SkillStats(ctx, sk.ID)
				if err != nil {
					return fmt.Errorf("stats for %s: %w", sk.ID, err)
				}
				if st.Attempts == 0 {
					continue
				}
				attempted++

				accuracy, err := repo.SkillAccuracy(ctx, sk.ID)
				if err != nil {
					return fmt.Errorf("accuracy for %s: %w", sk.ID, err)
				}

				fmt.Printf("%-28s  %8d  %6d  %4d%%  %4d%%  %8.0f%%\n",
					sk.Name, st.Attempts, st.Passes, st.BestScore, st.LastScore, accuracy*100)
			}
		}

		if attempted == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		points, err := repo.TotalPoints(ctx)
		if err != nil {
			return fmt.Errorf("total points: %w", err)
		}
		counts, total, err := repo.BadgeCounts(ctx)
		if err != nil {
			return fmt.Errorf("badge counts: %w", err)
		}

		fmt.Println()
		fmt.Printf("Badges: %d    Points: %d\n", total, points)
		if len(counts) > 0 {
			var parts []string
			for badgeType, n := range counts {
				parts = append(parts, fmt.Sprintf("%s ×%d", badgeType, n))
			}
			fmt.Println("  " + strings.Join(parts, "  "))
		}
		return nil
	},
}
