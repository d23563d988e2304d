package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/skills"
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the skill catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		cats := skills.AllCategories()
		if category != "" {
			c := skills.Category(category)
			found := false
			for _, known := range cats {
				if known == c {
					found = true
					break
				}
			}
			if !found {
				var names []string
				for _, known := range cats {
					names = append(names, string(known))
				}
				return fmt.Errorf("unknown category %q: choose from %s", category, strings.Join(names, ", "))
			}
			cats = []skills.Category{c}
		}

		for _, cat := range cats {
			list := skills.ByCategory(cat)
			if len(list) == 0 {
				continue
			}
			fmt.Printf("%s\n", skills.CategoryDisplayName(cat))
			fmt.Println(strings.Repeat("─", 68))
			for _, sk := range list {
				fmt.Printf("  %-26s %2d questions, %d%% to pass\n", sk.ID, sk.QuestionCount, sk.PassThreshold)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	skillsCmd.Flags().String("category", "", "Filter by category ID")
}
