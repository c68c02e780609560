// Package habit implements the repository layer over a storage.Provider:
// habit CRUD with dense sort-order maintenance, attempt lifecycle with the
// one-completion-per-day rule, and the lazily created user profile.
package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/minihab/internal/constants"
	apperrors "github.com/julianstephens/minihab/internal/errors"
	"github.com/julianstephens/minihab/internal/logger"
	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/stats"
	"github.com/julianstephens/minihab/internal/storage"
)

// Repository mediates all reads and writes for habits, attempts, and the
// user profile. It keeps an in-memory snapshot of the active habits that
// is reloaded wholesale after every successful mutation; failed mutations
// leave the snapshot untouched. Not safe for concurrent mutation: callers
// are expected to issue one mutation at a time.
type Repository struct {
	store       storage.Provider
	active      []models.Habit
	subscribers []func()
	now         func() time.Time
}

// NewRepository wraps the given store and loads the active-habit snapshot.
func NewRepository(store storage.Provider) (*Repository, error) {
	r := &Repository{
		store: store,
		now:   time.Now,
	}
	if err := r.reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Subscribe registers fn to run after every successful mutation. Used by
// presentation layers to re-render instead of observing fields directly.
func (r *Repository) Subscribe(fn func()) {
	r.subscribers = append(r.subscribers, fn)
}

func (r *Repository) notify() {
	for _, fn := range r.subscribers {
		fn()
	}
}

// reload replaces the active-habit snapshot from the store. Full reload
// keeps the bookkeeping trivial; n is small and bounded.
func (r *Repository) reload() error {
	habits, err := r.store.GetActiveHabits()
	if err != nil {
		return apperrors.Persistence("reload", err)
	}
	r.active = habits
	return nil
}

func (r *Repository) commit(op string) error {
	if err := r.reload(); err != nil {
		return err
	}
	logger.Debug("Repository mutation committed", "op", op)
	r.notify()
	return nil
}

// ListActiveHabits returns the active habits sorted ascending by sort
// order. The result is a copy; mutating it does not affect the snapshot.
func (r *Repository) ListActiveHabits() []models.Habit {
	out := make([]models.Habit, len(r.active))
	copy(out, r.active)
	return out
}

// FindHabit returns the active habit with the given id, checking the
// snapshot before falling back to the store.
func (r *Repository) FindHabit(id string) (models.Habit, error) {
	for _, h := range r.active {
		if h.ID == id {
			return h, nil
		}
	}

	h, err := r.store.GetHabit(id)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, apperrors.Persistence("findHabit", err)
	}
	if !h.IsActive {
		return models.Habit{}, fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
	}
	return h, nil
}

func validateDraft(draft *models.HabitDraft) error {
	draft.Title = strings.TrimSpace(draft.Title)
	draft.MicroAction = strings.TrimSpace(draft.MicroAction)
	if draft.Title == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidArgument)
	}
	if draft.FocusMinutes < 1 {
		return fmt.Errorf("%w: focus duration must be at least one minute", apperrors.ErrInvalidArgument)
	}
	if draft.Emoji == "" {
		draft.Emoji = constants.DefaultEmoji
	}
	if draft.ThemeColor == "" {
		draft.ThemeColor = constants.DefaultThemeColor
	}
	return nil
}

// CreateHabit validates the draft, appends the habit to the end of the
// active ordering, and persists it. Titles are not deduplicated.
func (r *Repository) CreateHabit(draft models.HabitDraft) (models.Habit, error) {
	if err := validateDraft(&draft); err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{
		ID:           uuid.New().String(),
		Title:        draft.Title,
		MicroAction:  draft.MicroAction,
		Emoji:        draft.Emoji,
		FocusMinutes: draft.FocusMinutes,
		ThemeColor:   draft.ThemeColor,
		CreatedAt:    r.now(),
		IsActive:     true,
		SortOrder:    len(r.active),
	}

	if err := r.store.AddHabit(habit); err != nil {
		return models.Habit{}, apperrors.Persistence("createHabit", err)
	}
	if err := r.commit("createHabit"); err != nil {
		return models.Habit{}, err
	}
	return habit, nil
}

// UpdateHabit persists caller-mutated fields in place. The sort order is
// written as given; use ReorderHabits to change ordering safely.
func (r *Repository) UpdateHabit(habit models.Habit) error {
	if _, err := r.FindHabit(habit.ID); err != nil {
		return err
	}
	habit.Title = strings.TrimSpace(habit.Title)
	if habit.Title == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrInvalidArgument)
	}
	if habit.FocusMinutes < 1 {
		return fmt.Errorf("%w: focus duration must be at least one minute", apperrors.ErrInvalidArgument)
	}

	if err := r.store.UpdateHabit(habit); err != nil {
		return apperrors.Persistence("updateHabit", err)
	}
	return r.commit("updateHabit")
}

// ArchiveHabit deactivates the habit, keeps its attempts, and re-compacts
// the remaining active habits to a dense 0..n-1 ordering.
func (r *Repository) ArchiveHabit(id string) error {
	habit, err := r.FindHabit(id)
	if err != nil {
		return err
	}

	habit.IsActive = false
	if err := r.store.UpdateHabit(habit); err != nil {
		return apperrors.Persistence("archiveHabit", err)
	}

	// Close the gap the archived habit leaves behind.
	orders := make(map[string]int)
	next := 0
	for _, h := range r.active {
		if h.ID == id {
			continue
		}
		orders[h.ID] = next
		next++
	}
	if len(orders) > 0 {
		if err := r.store.SetSortOrders(orders); err != nil {
			return apperrors.Persistence("archiveHabit", err)
		}
	}

	return r.commit("archiveHabit")
}

// PurgeHabit hard-deletes a habit and all of its attempts. Works on
// archived habits too; this is the only destructive habit operation.
func (r *Repository) PurgeHabit(id string) error {
	if _, err := r.store.GetHabit(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("habit %s: %w", id, apperrors.ErrNotFound)
		}
		return apperrors.Persistence("purgeHabit", err)
	}
	if err := r.store.PurgeHabit(id); err != nil {
		return apperrors.Persistence("purgeHabit", err)
	}
	return r.commit("purgeHabit")
}

// ReorderHabits assigns sort order by position in orderedIDs. Every id
// must name an active habit and every active habit must appear exactly
// once; otherwise the call is rejected and no ordering change is applied.
func (r *Repository) ReorderHabits(orderedIDs []string) error {
	if len(orderedIDs) != len(r.active) {
		return fmt.Errorf("%w: reorder must list all %d active habits", apperrors.ErrInvalidArgument, len(r.active))
	}

	activeIDs := make(map[string]bool, len(r.active))
	for _, h := range r.active {
		activeIDs[h.ID] = true
	}

	orders := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if !activeIDs[id] {
			return fmt.Errorf("%w: %s is not an active habit", apperrors.ErrInvalidArgument, id)
		}
		if _, dup := orders[id]; dup {
			return fmt.Errorf("%w: %s listed twice", apperrors.ErrInvalidArgument, id)
		}
		orders[id] = i
	}

	if err := r.store.SetSortOrders(orders); err != nil {
		return apperrors.Persistence("reorderHabits", err)
	}
	return r.commit("reorderHabits")
}

// completedOn reports whether the habit already has a completed attempt
// on the local calendar day containing t.
func (r *Repository) completedOn(habitID string, t time.Time) (bool, error) {
	dayStart := stats.DayStart(t)
	dayEnd := stats.NextDay(dayStart)
	attempts, err := r.store.GetAttempts(habitID, &dayStart, &dayEnd)
	if err != nil {
		return false, apperrors.Persistence("queryAttempts", err)
	}
	return stats.IsCompletedOn(attempts, t), nil
}

// StartAttempt opens an in-progress attempt for the habit. Rejected when
// the habit is already completed today.
func (r *Repository) StartAttempt(habitID string) (models.Attempt, error) {
	habit, err := r.FindHabit(habitID)
	if err != nil {
		return models.Attempt{}, err
	}

	now := r.now()
	done, err := r.completedOn(habit.ID, now)
	if err != nil {
		return models.Attempt{}, err
	}
	if done {
		return models.Attempt{}, fmt.Errorf("%w: %q is already completed today", apperrors.ErrRejected, habit.Title)
	}

	attempt := models.Attempt{
		ID:          uuid.New().String(),
		HabitID:     habit.ID,
		StartedAt:   now,
		CompletedAt: now,
		Status:      models.AttemptInProgress,
	}
	if err := r.store.AddAttempt(attempt); err != nil {
		return models.Attempt{}, apperrors.Persistence("startAttempt", err)
	}
	if err := r.commit("startAttempt"); err != nil {
		return models.Attempt{}, err
	}
	return attempt, nil
}

func (r *Repository) finishAttempt(op, attemptID string, status models.AttemptStatus, durationSeconds int, notes string) error {
	attempt, err := r.store.GetAttempt(attemptID)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("attempt %s: %w", attemptID, apperrors.ErrNotFound)
	}
	if err != nil {
		return apperrors.Persistence(op, err)
	}
	if attempt.Status.IsTerminal() {
		return fmt.Errorf("%w: attempt is already %s", apperrors.ErrRejected, attempt.Status)
	}

	attempt.Status = status
	attempt.CompletedAt = r.now()
	attempt.DurationSeconds = durationSeconds
	if notes != "" {
		attempt.Notes = notes
	}

	if err := r.store.UpdateAttempt(attempt); err != nil {
		return apperrors.Persistence(op, err)
	}
	return r.commit(op)
}

// CompleteAttempt marks an in-progress attempt completed with the actual
// focus duration. Completing an already-terminal attempt is rejected.
func (r *Repository) CompleteAttempt(attemptID string, durationSeconds int) error {
	if durationSeconds < 0 {
		return fmt.Errorf("%w: duration must be non-negative", apperrors.ErrInvalidArgument)
	}
	return r.finishAttempt("completeAttempt", attemptID, models.AttemptCompleted, durationSeconds, "")
}

// CancelAttempt marks an in-progress attempt cancelled, recording the
// reason in the attempt notes when given.
func (r *Repository) CancelAttempt(attemptID, reason string) error {
	return r.finishAttempt("cancelAttempt", attemptID, models.AttemptCancelled, 0, reason)
}

// FailAttempt marks an in-progress attempt failed, recording the reason
// in the attempt notes when given.
func (r *Repository) FailAttempt(attemptID, reason string) error {
	return r.finishAttempt("failAttempt", attemptID, models.AttemptFailed, 0, reason)
}

// MarkCompletedToday is the list-view shortcut: it records a completed
// attempt for the full configured duration without running a session. It
// routes through the same same-day uniqueness check as StartAttempt.
func (r *Repository) MarkCompletedToday(habitID string) (models.Attempt, error) {
	habit, err := r.FindHabit(habitID)
	if err != nil {
		return models.Attempt{}, err
	}

	now := r.now()
	done, err := r.completedOn(habit.ID, now)
	if err != nil {
		return models.Attempt{}, err
	}
	if done {
		return models.Attempt{}, fmt.Errorf("%w: %q is already completed today", apperrors.ErrRejected, habit.Title)
	}

	attempt := models.Attempt{
		ID:              uuid.New().String(),
		HabitID:         habit.ID,
		StartedAt:       now,
		CompletedAt:     now,
		DurationSeconds: habit.FocusMinutes * 60,
		Status:          models.AttemptCompleted,
	}
	if err := r.store.AddAttempt(attempt); err != nil {
		return models.Attempt{}, apperrors.Persistence("markCompletedToday", err)
	}
	if err := r.commit("markCompletedToday"); err != nil {
		return models.Attempt{}, err
	}
	return attempt, nil
}

// QueryAttempts returns attempts filtered by habit (empty id matches all
// habits) and completed-at range, sorted descending by completion time.
func (r *Repository) QueryAttempts(habitID string, from, to *time.Time) ([]models.Attempt, error) {
	attempts, err := r.store.GetAttempts(habitID, from, to)
	if err != nil {
		return nil, apperrors.Persistence("queryAttempts", err)
	}
	return attempts, nil
}

// CurrentProfile returns the singleton user profile, creating it with
// defaults on first access.
func (r *Repository) CurrentProfile() (models.UserProfile, error) {
	profile, err := r.store.GetProfile()
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, storage.ErrProfileNotFound) {
		return models.UserProfile{}, apperrors.Persistence("currentProfile", err)
	}

	now := r.now()
	profile = models.UserProfile{
		Nickname:             constants.DefaultNickname,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		IsFirstLaunch:        true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := r.store.SaveProfile(profile); err != nil {
		return models.UserProfile{}, apperrors.Persistence("currentProfile", err)
	}
	return profile, nil
}

// UpdateProfile applies the given settings changes. Nil fields are left
// unchanged. Every write refreshes UpdatedAt and clears the first-launch
// flag.
func (r *Repository) UpdateProfile(nickname *string, notificationsEnabled *bool) (models.UserProfile, error) {
	profile, err := r.CurrentProfile()
	if err != nil {
		return models.UserProfile{}, err
	}

	if nickname != nil {
		trimmed := strings.TrimSpace(*nickname)
		if trimmed == "" {
			return models.UserProfile{}, fmt.Errorf("%w: nickname is required", apperrors.ErrInvalidArgument)
		}
		profile.Nickname = trimmed
	}
	if notificationsEnabled != nil {
		profile.NotificationsEnabled = *notificationsEnabled
	}
	profile.IsFirstLaunch = false
	profile.UpdatedAt = r.now()

	if err := r.store.SaveProfile(profile); err != nil {
		return models.UserProfile{}, apperrors.Persistence("updateProfile", err)
	}
	r.notify()
	return profile, nil
}
