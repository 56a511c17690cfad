package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moodify/internal/shared"
	"github.com/desertthunder/moodify/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal browser for the catalog.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/moodify-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	engine, db, err := r.openEngine(ctx, cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	model := ui.NewModel(ctx, engine)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
