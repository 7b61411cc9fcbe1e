// Package timer implements the focus-session countdown as a state machine
// driven by explicit clock readings. Nothing here sleeps or ticks on its
// own: the caller (the focus TUI) feeds it the current time, which keeps the
// pause/resume/cancel semantics testable without waiting.
package timer

import (
	"errors"
	"time"
)

// State of a focus session.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateCancelled
	StateDone
)

var (
	ErrNotRunning = errors.New("session is not running")
	ErrNotPaused  = errors.New("session is not paused")
	ErrFinished   = errors.New("session already finished")
)

// Session is one countdown. Pausing stops the clock without discarding
// elapsed time; cancelling discards the session entirely.
type Session struct {
	Task     string
	Duration time.Duration

	state     State
	elapsed   time.Duration // accumulated while paused
	resumedAt time.Time     // start of the current running stretch
}

// New starts a session for the task, counting down from the given number of
// minutes.
func New(task string, minutes int, now time.Time) *Session {
	return &Session{
		Task:      task,
		Duration:  time.Duration(minutes) * time.Minute,
		state:     StateRunning,
		resumedAt: now,
	}
}

// State returns the current session state, accounting for expiry.
func (s *Session) State(now time.Time) State {
	if s.state == StateRunning && s.Elapsed(now) >= s.Duration {
		return StateDone
	}
	return s.state
}

// Elapsed returns how long the session has been running, excluding paused
// stretches and capped at the session duration.
func (s *Session) Elapsed(now time.Time) time.Duration {
	elapsed := s.elapsed
	if s.state == StateRunning {
		elapsed += now.Sub(s.resumedAt)
	}
	if elapsed > s.Duration {
		return s.Duration
	}
	return elapsed
}

// Remaining returns the time left on the countdown.
func (s *Session) Remaining(now time.Time) time.Duration {
	return s.Duration - s.Elapsed(now)
}

// Done reports whether the countdown has run to zero.
func (s *Session) Done(now time.Time) bool {
	return s.State(now) == StateDone
}

// Pause stops the clock, keeping elapsed time.
func (s *Session) Pause(now time.Time) error {
	if s.state != StateRunning {
		return ErrNotRunning
	}
	if s.Done(now) {
		return ErrFinished
	}
	s.elapsed += now.Sub(s.resumedAt)
	s.state = StatePaused
	return nil
}

// Resume restarts the clock after a pause.
func (s *Session) Resume(now time.Time) error {
	if s.state != StatePaused {
		return ErrNotPaused
	}
	s.resumedAt = now
	s.state = StateRunning
	return nil
}

// Cancel abandons the session, discarding its state. A cancelled session is
// never logged.
func (s *Session) Cancel() {
	s.state = StateCancelled
	s.elapsed = 0
}

// CompletedMinutes returns the full minutes the session ran, used when
// logging the finished session.
func (s *Session) CompletedMinutes(now time.Time) int {
	return int(s.Elapsed(now) / time.Minute)
}
