package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/minihab/internal/constants"
	"github.com/julianstephens/minihab/internal/stats"
)

type LogCmd struct {
	Ref   string `arg:"" optional:"" help:"Habit id (or prefix) or title. Omit for all habits combined."`
	Weeks int    `help:"Number of trailing weeks to show." default:"18"`
}

// Run renders a contribution grid of completed days, one column per week
// and one row per weekday, most recent week on the right.
func (c *LogCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	habitID := ""
	label := "all habits"
	if c.Ref != "" {
		h, err := ctx.ResolveHabit(c.Ref)
		if err != nil {
			return err
		}
		habitID = h.ID
		label = fmt.Sprintf("%s %s", h.Emoji, h.Title)
	}

	days := c.Weeks * 7
	if days < 7 {
		days = constants.ContributionWindowDays
	}

	now := time.Now()
	today := stats.DayStart(now)
	// Align the window so the last column ends on the current ISO week.
	gridEnd := stats.WeekStart(today).AddDate(0, 0, 6)
	gridStart := gridEnd.AddDate(0, 0, -days+1)

	from := gridStart
	to := stats.NextDay(today)
	attempts, err := repo.QueryAttempts(habitID, &from, &to)
	if err != nil {
		return err
	}
	calendar := stats.CompletionCalendar(attempts, gridStart, today)

	filled := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	future := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))

	fmt.Printf("Completion log for %s (last %d weeks)\n\n", label, days/7)

	weekdayLabels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for row := 0; row < 7; row++ {
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%s ", weekdayLabels[row]))
		for col := 0; col < days/7; col++ {
			day := gridStart.AddDate(0, 0, col*7+row)
			switch {
			case day.After(today):
				b.WriteString(future.Render("· "))
			case calendar[day]:
				b.WriteString(filled.Render("■ "))
			default:
				b.WriteString(empty.Render("□ "))
			}
		}
		fmt.Println(b.String())
	}

	fmt.Printf("\n%d completed days in this window.\n", len(calendar))
	return nil
}
