package storage

import (
	"errors"
	"time"

	"github.com/julianstephens/minihab/internal/models"
)

// ErrProfileNotFound is returned by GetProfile before the profile row has
// been created. The repository handles this by lazily creating defaults.
var ErrProfileNotFound = errors.New("user profile not found")

// ErrNotFound is returned by id lookups that miss. Other errors from read
// operations indicate a store failure, not a miss.
var ErrNotFound = errors.New("record not found")

// Provider is the persistence collaborator the engine depends on. Both the
// SQLite and the Postgres implementations satisfy it.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	// GetActiveHabits returns active habits sorted ascending by sort order.
	GetActiveHabits() ([]models.Habit, error)
	GetAllHabits(includeArchived bool) ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	// SetSortOrders assigns the given sort orders in a single transaction;
	// on failure no ordering change is applied.
	SetSortOrders(orders map[string]int) error
	// PurgeHabit hard-deletes the habit and cascades to all of its attempts.
	PurgeHabit(id string) error

	// Attempts
	AddAttempt(models.Attempt) error
	GetAttempt(id string) (models.Attempt, error)
	UpdateAttempt(models.Attempt) error
	// GetAttempts returns attempts filtered by habit (empty id matches all)
	// and by completed-at range (nil bound is open), sorted descending by
	// completed_at.
	GetAttempts(habitID string, from, to *time.Time) ([]models.Attempt, error)

	// Profile
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Utils
	GetConfigPath() string
}
