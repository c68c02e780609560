package cli

import (
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/minihab/internal/errors"
	"github.com/julianstephens/minihab/internal/habit"
	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/storage"
)

// Context is shared by every command: the storage provider chosen in main
// and the repository constructed on first use.
type Context struct {
	Store storage.Provider

	repo *habit.Repository
}

// Repository loads the store on first use and returns the shared
// repository instance.
func (c *Context) Repository() (*habit.Repository, error) {
	if c.repo != nil {
		return c.repo, nil
	}
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	repo, err := habit.NewRepository(c.Store)
	if err != nil {
		return nil, err
	}
	c.repo = repo
	return repo, nil
}

// ResolveHabit finds an active habit by full id, unique id prefix, or
// exact title.
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	repo, err := c.Repository()
	if err != nil {
		return models.Habit{}, err
	}

	habits := repo.ListActiveHabits()
	var matches []models.Habit
	for _, h := range habits {
		if h.ID == ref || h.Title == ref {
			return h, nil
		}
		if strings.HasPrefix(h.ID, ref) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("habit %q: %w", ref, apperrors.ErrNotFound)
	default:
		return models.Habit{}, fmt.Errorf("habit reference %q is ambiguous (%d matches)", ref, len(matches))
	}
}
