package state

import (
	"context"
	"time"
)

// FSM state names.
const (
	StateIdle     = "idle"
	StateRunning  = "running"
	StatePaused   = "paused"
	StateGameOver = "gameOver"
)

// Phase is the externally visible session phase.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Phase maps the machine's current state to a phase. The transient states
// of a fall step only exist inside a single tick and read as Running.
func (s *State) Phase() Phase {
	switch s.FSM.Current() {
	case StateIdle:
		return Idle
	case StatePaused:
		return Paused
	case StateGameOver:
		return GameOver
	}
	return Running
}

func (s *State) IsRunning() bool {
	return s.FSM.Current() == StateRunning
}

// FallDue reports whether the active piece should descend at now. The first
// call after a start or resume anchors the fall clock and returns false.
func (s *State) FallDue(now time.Time) bool {
	if s.LastFall.IsZero() {
		s.LastFall = now
		return false
	}
	return now.Sub(s.LastFall) > s.Score.FallInterval
}

// Tick runs one fall step at now if one is due.
func (s *State) Tick(ctx context.Context, now time.Time) {
	if !s.IsRunning() || !s.FallDue(now) {
		return
	}
	_ = s.FSM.Event(ctx, "tick", now)
}

func (s *State) Start(ctx context.Context) {
	_ = s.FSM.Event(ctx, "start")
}

// Pause is a no-op unless the session is running.
func (s *State) Pause(ctx context.Context) {
	_ = s.FSM.Event(ctx, "pause")
}

// Resume is a no-op unless the session is paused.
func (s *State) Resume(ctx context.Context) {
	_ = s.FSM.Event(ctx, "resume")
}
