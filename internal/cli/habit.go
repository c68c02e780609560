package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/minihab/internal/constants"
	"github.com/julianstephens/minihab/internal/models"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits."`
	Edit    HabitEditCmd    `cmd:"" help:"Edit an existing habit."`
	Archive HabitArchiveCmd `cmd:"" help:"Archive a habit (keeps its history)."`
	Purge   HabitPurgeCmd   `cmd:"" help:"Permanently delete a habit and all of its attempts."`
	Reorder HabitReorderCmd `cmd:"" help:"Reorder active habits."`
}

type HabitAddCmd struct {
	Title    string `arg:"" optional:"" help:"Large-goal label, e.g. 'Read 30 minutes'. Omit for an interactive form."`
	Micro    string `help:"Minimal daily action, e.g. 'Read one page'."`
	Emoji    string `help:"Emoji icon."`
	Minutes  int    `help:"Focus countdown length in minutes." default:"${default_focus_minutes}"`
	Color    string `help:"Theme color as hex, e.g. '#4ECDC4'."`
	Template string `help:"Create from a built-in template by name (see 'template list')."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	var draft models.HabitDraft
	switch {
	case c.Template != "":
		tmpl, ok := models.FindTemplate(c.Template)
		if !ok {
			return fmt.Errorf("unknown template %q, see 'minihab template list'", c.Template)
		}
		draft = tmpl.Draft()
		if c.Title != "" {
			draft.Title = c.Title
		}
	case c.Title != "":
		draft = models.HabitDraft{
			Title:        c.Title,
			MicroAction:  c.Micro,
			Emoji:        c.Emoji,
			FocusMinutes: c.Minutes,
			ThemeColor:   c.Color,
		}
	default:
		d, err := habitForm()
		if err != nil {
			return err
		}
		draft = d
	}

	created, err := repo.CreateHabit(draft)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (focus %d min)\n", created.Emoji, created.Title, created.FocusMinutes)
	return nil
}

func habitForm() (models.HabitDraft, error) {
	draft := models.HabitDraft{
		Emoji:      constants.DefaultEmoji,
		ThemeColor: constants.DefaultThemeColor,
	}
	minutes := strconv.Itoa(constants.DefaultFocusMinutes)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Big goal").
				Description("The habit you want to build, e.g. 'Read 30 minutes'").
				Value(&draft.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("a title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Micro action").
				Description("The smallest possible start, e.g. 'Read one page'").
				Value(&draft.MicroAction),
			huh.NewInput().
				Title("Emoji").
				Value(&draft.Emoji),
			huh.NewInput().
				Title("Focus minutes").
				Value(&minutes).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("focus duration must be at least one minute")
					}
					return nil
				}),
			huh.NewInput().
				Title("Theme color").
				Description("Hex color, e.g. #4ECDC4").
				Value(&draft.ThemeColor),
		),
	)

	if err := form.Run(); err != nil {
		return models.HabitDraft{}, err
	}

	m, err := strconv.Atoi(minutes)
	if err != nil {
		return models.HabitDraft{}, fmt.Errorf("invalid focus minutes: %w", err)
	}
	draft.FocusMinutes = m
	return draft, nil
}

type HabitListCmd struct {
	Archived bool `help:"Include archived habits."`
}

func (c *HabitListCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	var habits []models.Habit
	if c.Archived {
		habits, err = ctx.Store.GetAllHabits(true)
		if err != nil {
			return err
		}
	} else {
		habits = repo.ListActiveHabits()
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Try 'minihab habit add' or 'minihab template list'.")
		return nil
	}

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	for _, h := range habits {
		status := ""
		if !h.IsActive {
			status = " [ARCHIVED]"
		}
		fmt.Printf("%d. %s %s%s\n", h.SortOrder+1, h.Emoji, h.Title, status)
		fmt.Printf("   %s\n", dim.Render(fmt.Sprintf("micro: %s · focus: %d min · id: %s", h.MicroAction, h.FocusMinutes, shortID(h.ID))))
	}
	return nil
}

type HabitEditCmd struct {
	Ref     string  `arg:"" help:"Habit id (or prefix) or title."`
	Title   *string `help:"New title."`
	Micro   *string `help:"New micro action."`
	Emoji   *string `help:"New emoji."`
	Minutes *int    `help:"New focus duration in minutes."`
	Color   *string `help:"New theme color."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	if c.Title != nil {
		h.Title = *c.Title
	}
	if c.Micro != nil {
		h.MicroAction = *c.Micro
	}
	if c.Emoji != nil {
		h.Emoji = *c.Emoji
	}
	if c.Minutes != nil {
		h.FocusMinutes = *c.Minutes
	}
	if c.Color != nil {
		h.ThemeColor = *c.Color
	}

	if err := repo.UpdateHabit(h); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s %s\n", h.Emoji, h.Title)
	return nil
}

type HabitArchiveCmd struct {
	Ref string `arg:"" help:"Habit id (or prefix) or title."`
}

func (c *HabitArchiveCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	if err := repo.ArchiveHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("Archived habit: %s (history kept, streak stats remain queryable)\n", h.Title)
	return nil
}

type HabitPurgeCmd struct {
	Ref   string `arg:"" help:"Habit id (or prefix) or title."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *HabitPurgeCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	h, err := ctx.ResolveHabit(c.Ref)
	if err != nil {
		return err
	}

	if !c.Force {
		var confirmed bool
		prompt := huh.NewConfirm().
			Title(fmt.Sprintf("Permanently delete %q and all of its attempts?", h.Title)).
			Value(&confirmed)
		if err := prompt.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := repo.PurgeHabit(h.ID); err != nil {
		return err
	}
	fmt.Printf("Purged habit: %s\n", h.Title)
	return nil
}

type HabitReorderCmd struct {
	Refs []string `arg:"" help:"All active habits in the desired order (ids, prefixes, or titles)."`
}

func (c *HabitReorderCmd) Run(ctx *Context) error {
	repo, err := ctx.Repository()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(c.Refs))
	for _, ref := range c.Refs {
		h, err := ctx.ResolveHabit(ref)
		if err != nil {
			return err
		}
		ids = append(ids, h.ID)
	}

	if err := repo.ReorderHabits(ids); err != nil {
		return err
	}

	fmt.Println("Reordered habits:")
	for _, h := range repo.ListActiveHabits() {
		fmt.Printf("%d. %s %s\n", h.SortOrder+1, h.Emoji, h.Title)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
