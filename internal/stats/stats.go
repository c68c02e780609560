// Package stats derives streaks, rollups, and calendar views from a
// habit's attempt history. Every function is pure: no I/O, no store
// access, and malformed input degrades to zero values rather than errors.
// Date bucketing always uses the local calendar day (midnight to midnight
// in the reference time's location).
package stats

import (
	"time"

	"github.com/julianstephens/minihab/internal/models"
)

// IsCompletedOn reports whether some completed attempt falls on the same
// local calendar day as date.
func IsCompletedOn(attempts []models.Attempt, date time.Time) bool {
	for _, a := range attempts {
		if a.Status == models.AttemptCompleted && SameDay(a.CompletedAt, date) {
			return true
		}
	}
	return false
}

// CurrentStreakDays counts consecutive completed days ending at today,
// walking backward day by day and stopping at the first gap. Returns 0
// when today itself is not completed.
//
// Attempts must be sorted descending by CompletedAt, as returned by the
// repository's queries. The walk advances through the slice and the
// calendar in lockstep, so it inspects only the attempts belonging to the
// streak rather than the full history.
func CurrentStreakDays(attempts []models.Attempt, today time.Time) int {
	expected := DayStart(today)
	streak := 0

	i := 0
	for i < len(attempts) {
		a := attempts[i]
		day := DayStart(a.CompletedAt.In(today.Location()))

		if a.Status != models.AttemptCompleted {
			// Descending order: once any attempt's day is behind the
			// expected day, no completion for it can still follow.
			if day.Before(expected) {
				return streak
			}
			i++
			continue
		}

		switch {
		case day.Equal(expected):
			streak++
			expected = PrevDay(expected)
			i++
		case day.After(expected):
			// Attempt on a day already counted (or ahead of today); skip.
			i++
		default:
			// Gap before this attempt's day: the streak is over.
			return streak
		}
	}

	return streak
}

// TotalCompletedDays counts completed attempts. Under the one completion
// per day invariant this equals the number of distinct completed days.
func TotalCompletedDays(attempts []models.Attempt) int {
	count := 0
	for _, a := range attempts {
		if a.Status == models.AttemptCompleted {
			count++
		}
	}
	return count
}

// WeeklyCompletionCounts returns seven counts, Monday through Sunday of
// the ISO week containing weekOf. Each count is the number of habits in
// habitAttempts completed on that day.
func WeeklyCompletionCounts(habitAttempts [][]models.Attempt, weekOf time.Time) []int {
	counts := make([]int, 7)
	day := WeekStart(weekOf)
	for i := 0; i < 7; i++ {
		for _, attempts := range habitAttempts {
			if IsCompletedOn(attempts, day) {
				counts[i]++
			}
		}
		day = NextDay(day)
	}
	return counts
}

// MonthlyCompletedCount counts completed attempts whose completion time
// falls within [monthStart, monthStart+1month), judged in loc.
func MonthlyCompletedCount(attempts []models.Attempt, year int, month time.Month, loc *time.Location) int {
	start := MonthStart(year, month, loc)
	end := start.AddDate(0, 1, 0)

	count := 0
	for _, a := range attempts {
		if a.Status != models.AttemptCompleted {
			continue
		}
		t := a.CompletedAt.In(loc)
		if !t.Before(start) && t.Before(end) {
			count++
		}
	}
	return count
}

// CompletionCalendar returns the set of local calendar days in
// [fromDate, toDate] that have a completed attempt, keyed by local
// midnight. This backs the contribution-grid rendering; callers should
// pass attempts already scoped to the window so the cost is bounded by
// the window, not the full history.
func CompletionCalendar(attempts []models.Attempt, fromDate, toDate time.Time) map[time.Time]bool {
	from := DayStart(fromDate)
	to := DayStart(toDate)

	days := make(map[time.Time]bool)
	for _, a := range attempts {
		if a.Status != models.AttemptCompleted {
			continue
		}
		day := DayStart(a.CompletedAt.In(fromDate.Location()))
		if day.Before(from) || day.After(to) {
			continue
		}
		days[day] = true
	}
	return days
}

// Overall aggregates headline numbers across a set of habits for the
// statistics screen.
type Overall struct {
	TotalHabits       int
	CompletedToday    int
	TotalCompleted    int
	SumCurrentStreaks int
}

// OverallStats computes totals across all given habits' attempt histories.
func OverallStats(habitAttempts [][]models.Attempt, today time.Time) Overall {
	o := Overall{TotalHabits: len(habitAttempts)}
	for _, attempts := range habitAttempts {
		if IsCompletedOn(attempts, today) {
			o.CompletedToday++
		}
		o.TotalCompleted += TotalCompletedDays(attempts)
		o.SumCurrentStreaks += CurrentStreakDays(attempts, today)
	}
	return o
}
