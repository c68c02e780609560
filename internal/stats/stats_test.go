package stats

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/minihab/internal/models"
)

func completedAt(t time.Time) models.Attempt {
	return models.Attempt{
		ID:              uuid.New().String(),
		HabitID:         "habit-1",
		StartedAt:       t,
		CompletedAt:     t,
		DurationSeconds: 180,
		Status:          models.AttemptCompleted,
	}
}

func cancelledAt(t time.Time) models.Attempt {
	a := completedAt(t)
	a.Status = models.AttemptCancelled
	a.DurationSeconds = 0
	return a
}

// attempts are built newest first, matching the descending order the
// store returns.
func day(yearMonthDay ...int) time.Time {
	return time.Date(yearMonthDay[0], time.Month(yearMonthDay[1]), yearMonthDay[2], 9, 0, 0, 0, time.Local)
}

func TestIsCompletedOn(t *testing.T) {
	monday := day(2026, 8, 24)
	attempts := []models.Attempt{
		cancelledAt(monday.Add(2 * time.Hour)),
		completedAt(monday),
	}

	if !IsCompletedOn(attempts, monday.Add(10*time.Hour)) {
		t.Error("expected Monday to count as completed")
	}
	if IsCompletedOn(attempts, day(2026, 8, 25)) {
		t.Error("Tuesday has no completion")
	}

	// A cancelled attempt alone does not complete the day.
	if IsCompletedOn([]models.Attempt{cancelledAt(monday)}, monday) {
		t.Error("cancelled attempt must not complete the day")
	}
}

func TestCurrentStreakDays(t *testing.T) {
	wednesday := day(2026, 8, 26)

	tests := []struct {
		name     string
		attempts []models.Attempt
		today    time.Time
		want     int
	}{
		{
			name:     "no attempts",
			attempts: nil,
			today:    wednesday,
			want:     0,
		},
		{
			name: "today only",
			attempts: []models.Attempt{
				completedAt(wednesday),
			},
			today: wednesday,
			want:  1,
		},
		{
			name: "three consecutive days",
			attempts: []models.Attempt{
				completedAt(wednesday),
				completedAt(day(2026, 8, 25)),
				completedAt(day(2026, 8, 24)),
			},
			today: wednesday,
			want:  3,
		},
		{
			name: "monday and tuesday but not wednesday",
			attempts: []models.Attempt{
				completedAt(day(2026, 8, 25)),
				completedAt(day(2026, 8, 24)),
			},
			today: wednesday,
			want:  0,
		},
		{
			name: "gap breaks the streak",
			attempts: []models.Attempt{
				completedAt(wednesday),
				completedAt(day(2026, 8, 24)),
				completedAt(day(2026, 8, 23)),
			},
			today: wednesday,
			want:  1,
		},
		{
			name: "cancelled tail beyond the gap does not extend the walk",
			attempts: []models.Attempt{
				completedAt(wednesday),
				cancelledAt(day(2026, 8, 20)),
				cancelledAt(day(2026, 8, 15)),
				cancelledAt(day(2026, 8, 10)),
				completedAt(day(2026, 8, 1)),
			},
			today: wednesday,
			want:  1,
		},
		{
			name: "non-completed attempts are ignored",
			attempts: []models.Attempt{
				cancelledAt(wednesday.Add(time.Hour)),
				completedAt(wednesday),
				cancelledAt(day(2026, 8, 25)),
				completedAt(day(2026, 8, 25)),
			},
			today: wednesday,
			want:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreakDays(tt.attempts, tt.today)
			if got != tt.want {
				t.Errorf("expected streak %d, got %d", tt.want, got)
			}
		})
	}
}

func TestCurrentStreakDaysAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 2026-03-08 is the spring-forward date: a 23-hour calendar day.
	monday := time.Date(2026, 3, 9, 9, 0, 0, 0, loc)
	attempts := []models.Attempt{
		completedAt(time.Date(2026, 3, 9, 8, 0, 0, 0, loc)),
		completedAt(time.Date(2026, 3, 8, 10, 0, 0, 0, loc)),
		completedAt(time.Date(2026, 3, 7, 22, 0, 0, 0, loc)),
	}

	if got := CurrentStreakDays(attempts, monday); got != 3 {
		t.Errorf("expected streak 3 across the DST transition, got %d", got)
	}
}

func TestWeeklyCompletionCounts(t *testing.T) {
	// Week of Monday 2026-08-24.
	habitA := []models.Attempt{
		completedAt(day(2026, 8, 26)),
		completedAt(day(2026, 8, 24)),
	}
	habitB := []models.Attempt{
		completedAt(day(2026, 8, 30)), // Sunday
		completedAt(day(2026, 8, 24)),
	}

	counts := WeeklyCompletionCounts([][]models.Attempt{habitA, habitB}, day(2026, 8, 27))
	want := []int{2, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("day %d: expected %d completions, got %d", i, want[i], counts[i])
		}
	}
}

func TestMonthlyCompletedCount(t *testing.T) {
	attempts := []models.Attempt{
		completedAt(day(2026, 9, 1)),
		completedAt(day(2026, 8, 31)),
		completedAt(day(2026, 8, 1)),
		cancelledAt(day(2026, 8, 15)),
		completedAt(day(2026, 7, 31)),
	}

	if got := MonthlyCompletedCount(attempts, 2026, time.August, time.Local); got != 2 {
		t.Errorf("expected 2 August completions, got %d", got)
	}
}

func TestCompletionCalendar(t *testing.T) {
	from := day(2026, 8, 1)
	to := day(2026, 8, 31)

	attempts := []models.Attempt{
		completedAt(day(2026, 9, 2)),  // outside window
		completedAt(day(2026, 8, 20)),
		cancelledAt(day(2026, 8, 15)),
		completedAt(day(2026, 8, 10)),
		completedAt(day(2026, 8, 10).Add(6 * time.Hour)), // same day
		completedAt(day(2026, 7, 20)), // outside window
	}

	calendar := CompletionCalendar(attempts, from, to)
	if len(calendar) != 2 {
		t.Fatalf("expected 2 completed days in window, got %d", len(calendar))
	}
	if !calendar[DayStart(day(2026, 8, 20))] || !calendar[DayStart(day(2026, 8, 10))] {
		t.Error("expected Aug 10 and Aug 20 to be marked complete")
	}
}

func TestOverallStats(t *testing.T) {
	today := day(2026, 8, 26)
	habitA := []models.Attempt{
		completedAt(today),
		completedAt(day(2026, 8, 25)),
	}
	habitB := []models.Attempt{
		completedAt(day(2026, 8, 24)),
	}

	o := OverallStats([][]models.Attempt{habitA, habitB}, today)
	if o.TotalHabits != 2 {
		t.Errorf("expected 2 habits, got %d", o.TotalHabits)
	}
	if o.CompletedToday != 1 {
		t.Errorf("expected 1 completed today, got %d", o.CompletedToday)
	}
	if o.TotalCompleted != 3 {
		t.Errorf("expected 3 total completions, got %d", o.TotalCompleted)
	}
	if o.SumCurrentStreaks != 2 {
		t.Errorf("expected combined streaks of 2, got %d", o.SumCurrentStreaks)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"wednesday", day(2026, 8, 26), DayStart(day(2026, 8, 24))},
		{"monday", day(2026, 8, 24), DayStart(day(2026, 8, 24))},
		{"sunday", day(2026, 8, 30), DayStart(day(2026, 8, 24))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekStart(tt.in); !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
