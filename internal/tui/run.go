package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bcanseco/rank-generator/internal/common"
	"github.com/bcanseco/rank-generator/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts an interactive session and returns the ranks generated in it.
// Canceling ctx ends the session; the ranks generated so far are still
// returned.
func Run(ctx context.Context, gen Generator, opts ...Option) (model.Ranks, error) {
	if gen == nil {
		return nil, fmt.Errorf("%w: generator is required", common.ErrInvalidArgument)
	}

	program := tea.NewProgram(
		New(gen, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
	)

	final, err := program.Run()

	var ranks model.Ranks
	if m, ok := final.(Model); ok {
		ranks = m.Ranks()
	}

	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Debug("interactive session canceled", "generated", len(ranks))
			return ranks, nil
		}
		return ranks, fmt.Errorf("interactive session failed: %w", err)
	}

	slog.Debug("interactive session finished", "generated", len(ranks))
	return ranks, nil
}
