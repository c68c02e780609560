package models

import "time"

// Habit represents a tracked behavior: a large goal paired with the
// minimal daily action used to get started on it.
type Habit struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`        // large-goal label, e.g. "Read 30 minutes"
	MicroAction  string    `json:"micro_action"` // minimal daily action, e.g. "Read one page"
	Emoji        string    `json:"emoji"`
	FocusMinutes int       `json:"focus_minutes"` // focus countdown length, >= 1
	ThemeColor   string    `json:"theme_color"`   // hex color token, e.g. "#4ECDC4"
	CreatedAt    time.Time `json:"created_at"`
	IsActive     bool      `json:"is_active"`
	SortOrder    int       `json:"sort_order"` // dense 0..n-1 among active habits
}

// HabitDraft carries the caller-supplied fields for a new habit. The
// repository assigns ID, CreatedAt, IsActive, and SortOrder.
type HabitDraft struct {
	Title        string
	MicroAction  string
	Emoji        string
	FocusMinutes int
	ThemeColor   string
}
