package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/selfupdate"
)

var (
	updateCheckOnly bool
	updateTarget    string
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update skillsprint to the latest version",
	Long: `Update replaces the running binary with the latest GitHub release.

Use --check to see whether a newer release exists without installing
it, or --version to install a specific release (including downgrades).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		if updateCheckOnly {
			return runUpdateCheck(ctx, checker)
		}

		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  updateTarget,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		if err == nil {
			return nil
		}

		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		}
		if errors.Is(err, selfupdate.ErrAlreadyLatest) {
			fmt.Println("Already running the latest version.")
			return nil
		}
		if os.IsPermission(err) {
			return fmt.Errorf("%w\n\nTry running: sudo skillsprint update", err)
		}

		return err
	},
}

func runUpdateCheck(ctx context.Context, checker *selfupdate.Checker) error {
	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil {
		return fmt.Errorf("check for updates: %w", err)
	}
	if !result.UpdateAvailable {
		fmt.Printf("Already up to date (%s).\n", result.CurrentVersion)
		return nil
	}
	fmt.Printf("Update available: %s -> %s\n", result.CurrentVersion, result.LatestVersion)
	if result.ReleaseURL != "" {
		fmt.Println(result.ReleaseURL)
	}
	fmt.Println("Run 'skillsprint update' to install it.")
	return nil
}

func init() {
	updateCmd.Flags().BoolVar(&updateCheckOnly, "check", false, "only check whether an update is available")
	updateCmd.Flags().StringVar(&updateTarget, "version", "", "install a specific release tag instead of the latest")
}
