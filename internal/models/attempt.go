package models

import (
	"fmt"
	"time"
)

// AttemptStatus is the lifecycle state of an attempt. An attempt is
// created in progress and transitions exactly once to a terminal status.
type AttemptStatus string

const (
	AttemptInProgress AttemptStatus = "in_progress"
	AttemptCompleted  AttemptStatus = "completed"
	AttemptCancelled  AttemptStatus = "cancelled"
	AttemptFailed     AttemptStatus = "failed"
)

// IsTerminal reports whether the status admits no further transitions.
func (s AttemptStatus) IsTerminal() bool {
	switch s {
	case AttemptCompleted, AttemptCancelled, AttemptFailed:
		return true
	default:
		return false
	}
}

// Icon returns the glyph used when rendering the attempt in lists.
func (s AttemptStatus) Icon() string {
	switch s {
	case AttemptInProgress:
		return "⏳"
	case AttemptCompleted:
		return "✅"
	case AttemptCancelled:
		return "❌"
	case AttemptFailed:
		return "⚠️"
	default:
		return "?"
	}
}

// Attempt records one instance of working on a habit. The habit owns its
// attempts (cascade delete on purge); the attempt holds only a
// foreign-key-style back-reference.
type Attempt struct {
	ID              string        `json:"id"`
	HabitID         string        `json:"habit_id"`
	StartedAt       time.Time     `json:"started_at"`
	CompletedAt     time.Time     `json:"completed_at"` // terminal transition time
	DurationSeconds int           `json:"duration_seconds"`
	Status          AttemptStatus `json:"status"`
	Notes           string        `json:"notes,omitempty"`
}

// FormattedDuration renders the actual duration as M:SS.
func (a Attempt) FormattedDuration() string {
	return fmt.Sprintf("%d:%02d", a.DurationSeconds/60, a.DurationSeconds%60)
}
