package game

import (
	"time"

	"go-tetris/internal/state"
)

// Renderer paints a snapshot. It is called once per frame and after every
// command.
type Renderer interface {
	Render(Snapshot)
}

// Loop drives a Game from a per-frame clock. The host calls Frame for every
// display refresh it scheduled and schedules another one only when Frame or
// Apply asks for it. The loop stops asking once the game is paused or over.
type Loop struct {
	game      *Game
	renderer  Renderer
	scheduled bool
}

// NewLoop returns a loop with no frame pending.
func NewLoop(g *Game, r Renderer) *Loop {
	return &Loop{game: g, renderer: r}
}

// Frame advances the game to now, renders, and reports whether another
// frame should be scheduled.
func (l *Loop) Frame(now time.Time) bool {
	l.game.Advance(now)
	l.renderer.Render(l.game.Snapshot())
	l.scheduled = l.game.Phase() == state.Running
	return l.scheduled
}

// Apply executes cmd, renders, and reports whether the host must schedule
// a frame because the game is running with none pending.
func (l *Loop) Apply(cmd Command) bool {
	l.game.Apply(cmd)
	l.renderer.Render(l.game.Snapshot())
	if l.scheduled || l.game.Phase() != state.Running {
		return false
	}
	l.scheduled = true
	return true
}

// Scheduled reports whether a frame is pending.
func (l *Loop) Scheduled() bool {
	return l.scheduled
}
