package session

import (
	"errors"
	"testing"
)

func TestNewRejectsShortDurations(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for zero-minute session")
	}
	if _, err := New(-1); err == nil {
		t.Fatal("expected error for negative-minute session")
	}

	s, err := New(3)
	if err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	if s.State() != StateReady {
		t.Errorf("expected new session to be ready, got %s", s.State())
	}
	if s.RemainingSeconds() != 180 {
		t.Errorf("expected 180 remaining seconds, got %d", s.RemainingSeconds())
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   func(s *Session) error
		want    State
		wantErr bool
	}{
		{
			name:  "start from ready",
			steps: func(s *Session) error { return s.Start() },
			want:  StateRunning,
		},
		{
			name: "pause then resume",
			steps: func(s *Session) error {
				if err := s.Start(); err != nil {
					return err
				}
				if err := s.Pause(); err != nil {
					return err
				}
				return s.Start()
			},
			want: StateRunning,
		},
		{
			name:    "pause from ready is invalid",
			steps:   func(s *Session) error { return s.Pause() },
			want:    StateReady,
			wantErr: true,
		},
		{
			name:    "cancel from ready is invalid",
			steps:   func(s *Session) error { return s.Cancel() },
			want:    StateReady,
			wantErr: true,
		},
		{
			name: "cancel while running",
			steps: func(s *Session) error {
				if err := s.Start(); err != nil {
					return err
				}
				return s.Cancel()
			},
			want: StateCancelled,
		},
		{
			name: "cancel while paused",
			steps: func(s *Session) error {
				if err := s.Start(); err != nil {
					return err
				}
				if err := s.Pause(); err != nil {
					return err
				}
				return s.Cancel()
			},
			want: StateCancelled,
		},
		{
			name: "start after cancel is invalid",
			steps: func(s *Session) error {
				if err := s.Start(); err != nil {
					return err
				}
				if err := s.Cancel(); err != nil {
					return err
				}
				return s.Start()
			},
			want:    StateCancelled,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(1)
			if err != nil {
				t.Fatalf("failed to create session: %v", err)
			}

			err = tt.steps(s)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected transition error, got nil")
				}
				if !errors.Is(err, ErrInvalidTransition) {
					t.Errorf("expected ErrInvalidTransition, got %v", err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if s.State() != tt.want {
				t.Errorf("expected state %s, got %s", tt.want, s.State())
			}
		})
	}
}

func TestTickIsNoOpUnlessRunning(t *testing.T) {
	s, _ := New(1)

	// Ticks before starting must not consume time.
	s.Tick()
	s.Tick()
	if s.RemainingSeconds() != 60 {
		t.Errorf("expected 60 remaining after ticks in ready, got %d", s.RemainingSeconds())
	}

	if err := s.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}
	s.Tick()
	if s.RemainingSeconds() != 59 {
		t.Errorf("expected 59 remaining after one running tick, got %d", s.RemainingSeconds())
	}

	// A tick racing a pause must be dropped.
	if err := s.Pause(); err != nil {
		t.Fatalf("failed to pause: %v", err)
	}
	s.Tick()
	if s.RemainingSeconds() != 59 {
		t.Errorf("expected pause to freeze the countdown, got %d remaining", s.RemainingSeconds())
	}
}

func TestCountdownCompletes(t *testing.T) {
	s, _ := New(1)
	if err := s.Start(); err != nil {
		t.Fatalf("failed to start: %v", err)
	}

	for i := 0; i < 59; i++ {
		if s.Tick() {
			t.Fatalf("session completed early at tick %d", i)
		}
	}
	if !s.Tick() {
		t.Fatal("expected the final tick to complete the session")
	}
	if s.State() != StateCompleted {
		t.Errorf("expected completed state, got %s", s.State())
	}
	if s.ElapsedSeconds() != 60 {
		t.Errorf("expected 60 elapsed seconds, got %d", s.ElapsedSeconds())
	}

	// Ticks after completion are no-ops.
	if s.Tick() {
		t.Error("tick after completion should not report completion again")
	}
}

func TestProgressAndClock(t *testing.T) {
	s, _ := New(2)
	if s.Progress() != 0 {
		t.Errorf("expected zero progress before start, got %f", s.Progress())
	}
	if s.Clock() != "2:00" {
		t.Errorf("expected clock 2:00, got %s", s.Clock())
	}

	s.Start()
	for i := 0; i < 30; i++ {
		s.Tick()
	}
	if s.Progress() != 0.25 {
		t.Errorf("expected progress 0.25, got %f", s.Progress())
	}
	if s.Clock() != "1:30" {
		t.Errorf("expected clock 1:30, got %s", s.Clock())
	}

	for i := 0; i < 90; i++ {
		s.Tick()
	}
	if s.Progress() != 1 {
		t.Errorf("expected progress clamped at 1, got %f", s.Progress())
	}
	if s.Clock() != "0:00" {
		t.Errorf("expected clock 0:00, got %s", s.Clock())
	}
}
