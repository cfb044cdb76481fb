package game

import (
	"errors"
	"testing"
	"time"

	"github.com/decker502/fishcatch/pkg/ecs"
)

// fakeClock 手动推进的时钟
type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Now() time.Duration { return c.now }

func TestNewSessionStartsRunning(t *testing.T) {
	clock := &fakeClock{now: 2 * time.Second}
	s := NewSession(clock.Now, 10*time.Second)

	if s.State() != SessionRunning {
		t.Fatalf("expected Running, got %v", s.State())
	}
	if !s.IsRunning() || s.IsTerminal() {
		t.Error("new session should be running and not terminal")
	}
	if s.Elapsed() != 0 {
		t.Errorf("expected elapsed 0, got %v", s.Elapsed())
	}
	if s.Reason() != EndNone {
		t.Errorf("expected no end reason, got %v", s.Reason())
	}
}

func TestSessionElapsedAndRemaining(t *testing.T) {
	clock := &fakeClock{}
	s := NewSession(clock.Now, 10*time.Second)

	clock.now = 2700 * time.Millisecond
	if s.Elapsed() != 2700*time.Millisecond {
		t.Errorf("expected elapsed 2.7s, got %v", s.Elapsed())
	}
	if s.Remaining() != 7300*time.Millisecond {
		t.Errorf("expected remaining 7.3s, got %v", s.Remaining())
	}
	if s.TimedOut() {
		t.Error("should not be timed out at 2.7s")
	}

	clock.now = 10 * time.Second
	if !s.TimedOut() {
		t.Error("should be timed out exactly at the limit")
	}

	clock.now = 12 * time.Second
	if s.Remaining() != 0 {
		t.Errorf("remaining should clamp at 0, got %v", s.Remaining())
	}
}

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		name       string
		first      func(*Session) bool
		second     func(*Session) bool
		wantState  SessionState
		wantReason EndReason
	}{
		{
			name:       "win then lose",
			first:      (*Session).Win,
			second:     func(s *Session) bool { return s.Lose(EndTimeout) },
			wantState:  SessionWon,
			wantReason: EndCaught,
		},
		{
			name:       "wrong fish then win",
			first:      func(s *Session) bool { return s.Lose(EndWrongFish) },
			second:     (*Session).Win,
			wantState:  SessionLost,
			wantReason: EndWrongFish,
		},
		{
			name:       "timeout then wrong fish",
			first:      func(s *Session) bool { return s.Lose(EndTimeout) },
			second:     func(s *Session) bool { return s.Lose(EndWrongFish) },
			wantState:  SessionLost,
			wantReason: EndTimeout,
		},
		{
			name:       "win twice",
			first:      (*Session).Win,
			second:     (*Session).Win,
			wantState:  SessionWon,
			wantReason: EndCaught,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{}
			s := NewSession(clock.Now, 10*time.Second)

			if !tt.first(s) {
				t.Fatal("first transition should succeed")
			}
			if tt.second(s) {
				t.Error("second transition should be a no-op")
			}
			if s.State() != tt.wantState {
				t.Errorf("expected state %v, got %v", tt.wantState, s.State())
			}
			if s.Reason() != tt.wantReason {
				t.Errorf("expected reason %v, got %v", tt.wantReason, s.Reason())
			}
			if !s.IsTerminal() {
				t.Error("session should be terminal")
			}
		})
	}
}

func TestSessionSetTargetOnce(t *testing.T) {
	clock := &fakeClock{}
	s := NewSession(clock.Now, 10*time.Second)

	if _, ok := s.Target(); ok {
		t.Error("target should not be set initially")
	}
	if err := s.SetTarget(ecs.InvalidEntity); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("expected ErrInvalidTarget, got %v", err)
	}
	if err := s.SetTarget(7); err != nil {
		t.Fatalf("SetTarget failed: %v", err)
	}
	if err := s.SetTarget(8); !errors.Is(err, ErrTargetAlreadyChosen) {
		t.Errorf("expected ErrTargetAlreadyChosen, got %v", err)
	}

	id, ok := s.Target()
	if !ok || id != 7 {
		t.Errorf("expected target 7, got %d (ok=%v)", id, ok)
	}
}

func TestSessionStateString(t *testing.T) {
	tests := []struct {
		state SessionState
		want  string
	}{
		{SessionRunning, "Running"},
		{SessionWon, "Won"},
		{SessionLost, "Lost"},
		{SessionState(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("SessionState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
