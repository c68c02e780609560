package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/minihab/internal/logger"
	"github.com/julianstephens/minihab/internal/session"
	"github.com/julianstephens/minihab/internal/tui/focus"
)

type FocusCmd struct {
	Ref string `arg:"" help:"Habit id (or prefix) or title."`
}

// Run opens an attempt, drives the full-screen countdown, and persists
// the outcome when the program exits.
func (c *FocusCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	attempt, err := repo.StartAttempt(h.ID)
	if err != nil {
		return err
	}

	model, err := focus.New(h)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		// The attempt stays in progress; a later cancel can clean it up.
		logger.Error("Focus session UI failed", "err", err, "attempt", attempt.ID)
		return fmt.Errorf("focus session: %w", err)
	}

	outcome := final.(focus.Model).Outcome()
	switch outcome.State {
	case session.StateCompleted:
		if err := repo.CompleteAttempt(attempt.ID, outcome.ElapsedSeconds); err != nil {
			return fmt.Errorf("session finished but could not be saved, retry with 'minihab mark %s': %w", c.Ref, err)
		}
		fmt.Printf("✅ %s complete! %d seconds focused.\n", h.Title, outcome.ElapsedSeconds)
	case session.StateCancelled:
		if err := repo.CancelAttempt(attempt.ID, ""); err != nil {
			return err
		}
		fmt.Println("Session cancelled. Tomorrow is another day.")
	default:
		// Quit before starting: drop the attempt as cancelled.
		if err := repo.CancelAttempt(attempt.ID, "never started"); err != nil {
			return err
		}
	}
	return nil
}
