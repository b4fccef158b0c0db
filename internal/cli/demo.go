package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/mosaic/internal/cli/model"
	"github.com/bnema/mosaic/internal/config"
	"github.com/bnema/mosaic/internal/logging"
)

// runDemo loads configuration, wires logging, and runs the layout TUI.
func runDemo() error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}
	cfg := config.Get()

	logger := logging.NewFromValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "demo")

	workspace := model.NewWorkspace(cfg, *logging.FromContext(ctx))
	program := tea.NewProgram(workspace, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("demo exited with error: %w", err)
	}
	return nil
}
