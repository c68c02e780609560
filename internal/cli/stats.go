package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/stats"
)

type StatsCmd struct {
	Ref string `arg:"" optional:"" help:"Habit id (or prefix) or title. Omit for the overall summary."`
}

func (c *StatsCmd) Run(ctx *Context) error {
	if c.Ref != "" {
		return c.runHabit(ctx)
	}
	return c.runOverall(ctx)
}

func (c *StatsCmd) runHabit(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	attempts, err := repo.QueryAttempts(h.ID, nil, nil)
	if err != nil {
		return err
	}

	now := time.Now()
	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render(fmt.Sprintf("%s %s", h.Emoji, h.Title)))
	fmt.Printf("Current streak:   %d days\n", stats.CurrentStreakDays(attempts, now))
	fmt.Printf("Total completed:  %d days\n", stats.TotalCompletedDays(attempts))
	fmt.Printf("This month:       %d days\n", stats.MonthlyCompletedCount(attempts, now.Year(), now.Month(), now.Location()))

	counts := stats.WeeklyCompletionCounts([][]models.Attempt{attempts}, now)
	fmt.Print("This week:        ")
	labels := []string{"M", "T", "W", "T", "F", "S", "S"}
	for i, n := range counts {
		mark := "·"
		if n > 0 {
			mark = labels[i]
		}
		fmt.Printf("%s ", mark)
	}
	fmt.Println()
	return nil
}

func (c *StatsCmd) runOverall(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	habits := repo.ListActiveHabits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Try 'minihab habit add'.")
		return nil
	}

	histories := make([][]models.Attempt, 0, len(habits))
	for _, h := range habits {
		attempts, err := repo.QueryAttempts(h.ID, nil, nil)
		if err != nil {
			return err
		}
		histories = append(histories, attempts)
	}

	now := time.Now()
	overall := stats.OverallStats(histories, now)

	profile, err := repo.CurrentProfile()
	if err != nil {
		return err
	}

	header := lipgloss.NewStyle().Bold(true)
	fmt.Println(header.Render("Overall"))
	fmt.Printf("Active habits:    %d\n", overall.TotalHabits)
	fmt.Printf("Done today:       %d of %d\n", overall.CompletedToday, overall.TotalHabits)
	fmt.Printf("Total completed:  %d days\n", overall.TotalCompleted)
	fmt.Printf("Combined streaks: %d days\n", overall.SumCurrentStreaks)
	fmt.Printf("Using minihab:    %d days\n", profile.DaysUsingApp(now))
	return nil
}
