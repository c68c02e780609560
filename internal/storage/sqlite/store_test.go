package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/minihab/internal/models"
	"github.com/julianstephens/minihab/internal/storage"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testHabit(id string, sortOrder int) models.Habit {
	return models.Habit{
		ID:           id,
		Title:        "Read 30 minutes",
		MicroAction:  "Read one page",
		Emoji:        "📚",
		FocusMinutes: 3,
		ThemeColor:   "#45B7D1",
		CreatedAt:    time.Now(),
		IsActive:     true,
		SortOrder:    sortOrder,
	}
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading uninitialized storage")
	}
}

func TestLookupMissReturnsSentinel(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetHabit("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for habit miss, got %v", err)
	}
	if _, err := store.GetAttempt("missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound for attempt miss, got %v", err)
	}
}

func TestHabitRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	habit := testHabit("habit-1", 0)
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	got, err := store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Title != habit.Title || got.MicroAction != habit.MicroAction {
		t.Errorf("habit fields did not round-trip: %+v", got)
	}
	if !got.IsActive {
		t.Error("expected habit to be active")
	}
	if !got.CreatedAt.Equal(habit.CreatedAt.Truncate(time.Second)) {
		t.Errorf("created_at did not round-trip: want %v, got %v", habit.CreatedAt, got.CreatedAt)
	}

	// Upsert updates in place.
	habit.Title = "Read 60 minutes"
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("failed to update habit: %v", err)
	}
	got, err = store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.Title != "Read 60 minutes" {
		t.Errorf("expected updated title, got %q", got.Title)
	}
}

func TestActiveHabitOrdering(t *testing.T) {
	store := setupTestStore(t)

	b := testHabit("habit-b", 1)
	a := testHabit("habit-a", 0)
	archived := testHabit("habit-c", 2)
	archived.IsActive = false

	for _, h := range []models.Habit{b, a, archived} {
		if err := store.AddHabit(h); err != nil {
			t.Fatalf("failed to add habit: %v", err)
		}
	}

	active, err := store.GetActiveHabits()
	if err != nil {
		t.Fatalf("failed to get active habits: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active habits, got %d", len(active))
	}
	if active[0].ID != "habit-a" || active[1].ID != "habit-b" {
		t.Errorf("expected sort-order ordering, got %s then %s", active[0].ID, active[1].ID)
	}

	all, err := store.GetAllHabits(true)
	if err != nil {
		t.Fatalf("failed to get all habits: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 habits including archived, got %d", len(all))
	}
}

func TestSetSortOrdersRejectsUnknownID(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddHabit(testHabit("habit-1", 0)); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	err := store.SetSortOrders(map[string]int{"habit-1": 1, "missing": 0})
	if err == nil {
		t.Fatal("expected error for unknown habit id")
	}

	// The transaction must have rolled back the valid update too.
	got, err := store.GetHabit("habit-1")
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if got.SortOrder != 0 {
		t.Errorf("expected sort order unchanged after rollback, got %d", got.SortOrder)
	}
}

func TestAttemptRangeQueries(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddHabit(testHabit("habit-1", 0)); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	base := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		attempt := models.Attempt{
			ID:              string(rune('a' + i)),
			HabitID:         "habit-1",
			StartedAt:       base.AddDate(0, 0, i),
			CompletedAt:     base.AddDate(0, 0, i),
			DurationSeconds: 180,
			Status:          models.AttemptCompleted,
		}
		if err := store.AddAttempt(attempt); err != nil {
			t.Fatalf("failed to add attempt: %v", err)
		}
	}

	// Unbounded query returns everything, newest first.
	all, err := store.GetAttempts("habit-1", nil, nil)
	if err != nil {
		t.Fatalf("failed to get attempts: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(all))
	}
	if !all[0].CompletedAt.After(all[1].CompletedAt) {
		t.Error("expected descending completed_at ordering")
	}

	// Half-open range [day 2, day 3).
	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 2)
	ranged, err := store.GetAttempts("habit-1", &from, &to)
	if err != nil {
		t.Fatalf("failed to get ranged attempts: %v", err)
	}
	if len(ranged) != 1 {
		t.Fatalf("expected 1 attempt in range, got %d", len(ranged))
	}
	if ranged[0].ID != "b" {
		t.Errorf("expected attempt b, got %s", ranged[0].ID)
	}

	// Empty habit id matches all habits.
	any, err := store.GetAttempts("", nil, nil)
	if err != nil {
		t.Fatalf("failed to get attempts: %v", err)
	}
	if len(any) != 3 {
		t.Errorf("expected 3 attempts across habits, got %d", len(any))
	}
}

func TestAttemptNotesNullable(t *testing.T) {
	store := setupTestStore(t)

	attempt := models.Attempt{
		ID:          "attempt-1",
		HabitID:     "habit-1",
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
		Status:      models.AttemptInProgress,
	}
	if err := store.AddAttempt(attempt); err != nil {
		t.Fatalf("failed to add attempt: %v", err)
	}

	got, err := store.GetAttempt("attempt-1")
	if err != nil {
		t.Fatalf("failed to get attempt: %v", err)
	}
	if got.Notes != "" {
		t.Errorf("expected empty notes, got %q", got.Notes)
	}

	got.Notes = "interrupted by a phone call"
	got.Status = models.AttemptCancelled
	if err := store.UpdateAttempt(got); err != nil {
		t.Fatalf("failed to update attempt: %v", err)
	}
	got, err = store.GetAttempt("attempt-1")
	if err != nil {
		t.Fatalf("failed to get attempt: %v", err)
	}
	if got.Notes != "interrupted by a phone call" {
		t.Errorf("notes did not round-trip: %q", got.Notes)
	}
	if got.Status != models.AttemptCancelled {
		t.Errorf("expected cancelled status, got %s", got.Status)
	}
}

func TestProfileKeyValueStorage(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetProfile(); !errors.Is(err, storage.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound on empty table, got %v", err)
	}

	now := time.Now().Truncate(time.Second)
	profile := models.UserProfile{
		Nickname:             "Reader",
		NotificationsEnabled: true,
		IsFirstLaunch:        true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to save profile: %v", err)
	}

	got, err := store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got.Nickname != "Reader" || !got.NotificationsEnabled || !got.IsFirstLaunch {
		t.Errorf("profile did not round-trip: %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Errorf("created_at did not round-trip: want %v, got %v", now, got.CreatedAt)
	}

	// Saving again overwrites the singleton.
	profile.Nickname = "Night Owl"
	profile.IsFirstLaunch = false
	if err := store.SaveProfile(profile); err != nil {
		t.Fatalf("failed to re-save profile: %v", err)
	}
	got, err = store.GetProfile()
	if err != nil {
		t.Fatalf("failed to get profile: %v", err)
	}
	if got.Nickname != "Night Owl" || got.IsFirstLaunch {
		t.Errorf("expected overwritten profile, got %+v", got)
	}
}

func TestPurgeHabitDeletesAttempts(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddHabit(testHabit("habit-1", 0)); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}
	attempt := models.Attempt{
		ID:          "attempt-1",
		HabitID:     "habit-1",
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
		Status:      models.AttemptCompleted,
	}
	if err := store.AddAttempt(attempt); err != nil {
		t.Fatalf("failed to add attempt: %v", err)
	}

	if err := store.PurgeHabit("habit-1"); err != nil {
		t.Fatalf("failed to purge habit: %v", err)
	}

	if _, err := store.GetHabit("habit-1"); err == nil {
		t.Error("expected habit gone after purge")
	}
	attempts, err := store.GetAttempts("habit-1", nil, nil)
	if err != nil {
		t.Fatalf("failed to get attempts: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("expected attempts deleted with habit, got %d", len(attempts))
	}

	if err := store.PurgeHabit("missing"); err == nil {
		t.Error("expected error purging unknown habit")
	}
}
