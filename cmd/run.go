package cmd

import (
	"context"
	"fmt"

	"github.com/ewei/lexikid/internal/app"
	"github.com/ewei/lexikid/internal/game"
	"github.com/ewei/lexikid/internal/profile"
	"github.com/ewei/lexikid/internal/progress"
	"github.com/ewei/lexikid/internal/rewards"
	"github.com/ewei/lexikid/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, seeds it, wires the services, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(buildOptions(st))
}

// openStore resolves the DB path, opens the store, and seeds the
// catalog on first run.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.Seed(context.Background()); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed store: %w", err)
	}
	return st, nil
}

// buildOptions wires the engine, evaluator, and services over one
// store.
func buildOptions(st *store.Store) app.Options {
	items := st.Items()
	progressRepo := st.Progress()
	sessions := st.Sessions()
	achievements := st.Achievements()

	evaluator := rewards.NewService(achievements, progressRepo, sessions, items)

	return app.Options{
		Items:        items,
		Sessions:     sessions,
		Achievements: achievements,
		Engine:       game.NewEngine(items, sessions, evaluator),
		Progress:     progress.NewService(progressRepo, evaluator),
		Profile:      profile.NewService(progressRepo, sessions, achievements),
	}
}
