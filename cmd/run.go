package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Ajinkya236/skillsprint/internal/app"
	"github.com/Ajinkya236/skillsprint/internal/gamification"
	"github.com/Ajinkya236/skillsprint/internal/llm"
	"github.com/Ajinkya236/skillsprint/internal/questionbank"
	"github.com/Ajinkya236/skillsprint/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	opts, cleanup, err := buildAppOptions(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	return app.Run(opts)
}

// buildAppOptions wires the store, gamification, and question bank. The
// returned cleanup closes the store.
func buildAppOptions(cmd *cobra.Command) (app.Options, func(), error) {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return app.Options{}, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return app.Options{}, nil, fmt.Errorf("open store: %w", err)
	}

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo:    eventRepo,
		SnapRepo:     st.SnapshotRepo(),
		BadgeService: gamification.NewService(eventRepo),
		Recorder:     app.NewRecorder(eventRepo),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Assessments will be unavailable.")
	} else {
		opts.Bank = questionbank.New(provider, questionbank.DefaultConfig())
	}

	return opts, func() { _ = st.Close() }, nil
}
