package cli

import (
	"fmt"

	"github.com/julianstephens/minihab/internal/habit"
	"github.com/julianstephens/minihab/internal/models"
)

type InitCmd struct {
	Sample bool `help:"Seed a few starter habits."`
	Force  bool `help:"Seed samples even when habits already exist."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	repo, err := habit.NewRepository(ctx.Store)
	if err != nil {
		return err
	}

	// First access creates the profile row with defaults.
	profile, err := repo.CurrentProfile()
	if err != nil {
		return err
	}

	if c.Sample && (c.Force || len(repo.ListActiveHabits()) == 0) {
		for _, draft := range models.SampleDrafts() {
			if _, err := repo.CreateHabit(draft); err != nil {
				return err
			}
		}
		fmt.Println("Seeded starter habits.")
	}

	fmt.Printf("Initialized minihab storage. Welcome, %s!\n", profile.Nickname)
	return nil
}
