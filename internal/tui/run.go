// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the selector and blocks until the user quits.
func Run(ctx context.Context, run Runner, startDir string) error {
	if run == nil {
		return fmt.Errorf("runner is nil")
	}

	p := tea.NewProgram(NewModel(run, startDir), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
