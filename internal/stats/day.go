package stats

import "time"

// DayStart returns local midnight of t's calendar day, in t's location.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day, judged in
// b's location. A day spanning 23 or 25 wall-clock hours across a DST
// transition is still a single calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// PrevDay steps back one calendar day. AddDate moves by calendar date, so
// the result is the previous day's midnight even across DST transitions.
func PrevDay(day time.Time) time.Time {
	return day.AddDate(0, 0, -1)
}

// NextDay steps forward one calendar day.
func NextDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1)
}

// WeekStart returns local midnight of the Monday of the ISO week
// containing t.
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	// time.Weekday is Sunday-based; shift so Monday is 0.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// MonthStart returns local midnight of the first day of the given month.
func MonthStart(year int, month time.Month, loc *time.Location) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, loc)
}
