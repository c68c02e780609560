package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/minihab/internal/stats"
)

type TodayCmd struct{}

// Run prints the daily overview: greeting, per-habit completion state,
// and current streaks.
func (c *TodayCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	now := time.Now()
	profile, err := repo.CurrentProfile()
	if err != nil {
		return err
	}

	header := lipgloss.NewStyle().Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fmt.Println(header.Render(profile.Greeting(now) + "!"))
	fmt.Println(dim.Render(now.Format("Monday, January 2")))
	fmt.Println()

	habits := repo.ListActiveHabits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Try 'minihab habit add'.")
		return nil
	}

	completed := 0
	for _, h := range habits {
		attempts, err := repo.QueryAttempts(h.ID, nil, nil)
		if err != nil {
			return err
		}

		box := "[ ]"
		if stats.IsCompletedOn(attempts, now) {
			box = "[x]"
			completed++
		}
		streak := stats.CurrentStreakDays(attempts, now)
		line := fmt.Sprintf("%s %s %s", box, h.Emoji, h.Title)
		if streak > 0 {
			line += dim.Render(fmt.Sprintf("  🔥 %d day streak", streak))
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Printf("%d of %d done today.\n", completed, len(habits))
	return nil
}
