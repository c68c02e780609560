// Package session implements the focus-session countdown state machine.
// The session holds no persistence authority: it turns elapsed time into a
// terminal outcome, and the caller materializes the matching attempt
// through the repository.
package session

import (
	"errors"
	"fmt"
)

// State is the lifecycle state of a focus session.
type State int

const (
	StateReady State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state admits no further transitions.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateCancelled
}

// ErrInvalidTransition is returned when a control call is not legal in the
// session's current state.
var ErrInvalidTransition = errors.New("invalid session transition")

// Session is a one-tick-per-second countdown for a single attempt.
type Session struct {
	totalSeconds     int
	remainingSeconds int
	state            State
}

// New creates a session in the Ready state counting down from
// focusMinutes minutes.
func New(focusMinutes int) (*Session, error) {
	if focusMinutes < 1 {
		return nil, fmt.Errorf("focus duration must be at least one minute, got %d", focusMinutes)
	}
	total := focusMinutes * 60
	return &Session{
		totalSeconds:     total,
		remainingSeconds: total,
		state:            StateReady,
	}, nil
}

// Start begins the countdown from Ready, or resumes it from Paused
// without resetting the remaining time.
func (s *Session) Start() error {
	switch s.state {
	case StateReady, StatePaused:
		s.state = StateRunning
		return nil
	default:
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.state)
	}
}

// Pause freezes the countdown. Only legal while running.
func (s *Session) Pause() error {
	if s.state != StateRunning {
		return fmt.Errorf("%w: pause from %s", ErrInvalidTransition, s.state)
	}
	s.state = StatePaused
	return nil
}

// Cancel abandons the session from Running or Paused.
func (s *Session) Cancel() error {
	switch s.state {
	case StateRunning, StatePaused:
		s.state = StateCancelled
		return nil
	default:
		return fmt.Errorf("%w: cancel from %s", ErrInvalidTransition, s.state)
	}
}

// Tick advances the countdown by one second. Ticks arriving while the
// session is not running (a tick racing a pause, cancel, or completion)
// are no-ops. Returns true on the tick that completes the session.
func (s *Session) Tick() bool {
	if s.state != StateRunning {
		return false
	}
	if s.remainingSeconds > 0 {
		s.remainingSeconds--
	}
	if s.remainingSeconds == 0 {
		s.state = StateCompleted
		return true
	}
	return false
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// TotalSeconds returns the configured countdown length.
func (s *Session) TotalSeconds() int { return s.totalSeconds }

// RemainingSeconds returns the seconds left on the countdown.
func (s *Session) RemainingSeconds() int { return s.remainingSeconds }

// ElapsedSeconds returns the seconds spent so far. When the session
// completes naturally this equals the full configured duration.
func (s *Session) ElapsedSeconds() int { return s.totalSeconds - s.remainingSeconds }

// Progress returns the completed fraction of the countdown in [0, 1].
func (s *Session) Progress() float64 {
	if s.totalSeconds == 0 {
		return 0
	}
	p := float64(s.ElapsedSeconds()) / float64(s.totalSeconds)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Clock renders the remaining time as M:SS for display.
func (s *Session) Clock() string {
	return fmt.Sprintf("%d:%02d", s.remainingSeconds/60, s.remainingSeconds%60)
}
