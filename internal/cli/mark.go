package cli

import (
	"fmt"
)

type MarkCmd struct {
	Ref string `arg:"" help:"Habit id (or prefix) or title."`
}

// Run records a completed attempt for today without a focus session.
func (c *MarkCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	attempt, err := repo.MarkCompletedToday(h.ID)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s marked complete for today (%s focused).\n", h.Emoji, h.Title, attempt.FormattedDuration())
	return nil
}
