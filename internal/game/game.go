package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"
	"go-tetris/internal/state"
)

// Game encapsulates the core game logic, independent of the UI. All entry
// points are serialised, so a ticker and an input handler may call in from
// different goroutines.
type Game struct {
	mu    sync.Mutex
	State *state.State
	log   *slog.Logger
}

// NewGame creates an idle game drawing pieces from factory. A nil logger
// discards log output.
func NewGame(factory *piece.Factory, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		State: state.NewState(factory, scoring.NewScoreHistory()),
		log:   logger,
	}
	g.State.Listener = g
	return g
}

// Start begins a new round, discarding any round in progress.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.State.Start(context.Background())
}

// Pause suspends a running round. It is a no-op otherwise.
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pause()
}

// Resume continues a paused round. It is a no-op otherwise.
func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resume()
}

// Advance processes a clock reading. The active piece descends one row
// when more than the fall interval has passed since the last descent.
func (g *Game) Advance(now time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.State.Tick(context.Background(), now)
}

// Apply executes cmd. Movement commands only take effect while running.
func (g *Game) Apply(cmd Command) {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch cmd {
	case Start:
		g.State.Start(context.Background())
		return
	case PauseToggle:
		switch g.State.Phase() {
		case state.Running:
			g.pause()
		case state.Paused:
			g.resume()
		}
		return
	}

	if !g.State.IsRunning() {
		return
	}
	pieces := g.State.Pieces
	switch cmd {
	case MoveLeft:
		pieces.Move(-1, 0)
	case MoveRight:
		pieces.Move(1, 0)
	case SoftDrop:
		pieces.Move(0, 1)
	case Rotate:
		pieces.Rotate()
	case HardDrop:
		pieces.HardDrop()
	}
}

// Phase returns the current session phase.
func (g *Game) Phase() state.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.State.Phase()
}

func (g *Game) pause() {
	g.State.Pause(context.Background())
	if g.State.Phase() == state.Paused {
		g.log.Debug("round paused", "round_id", g.State.Score.RoundID())
	}
}

func (g *Game) resume() {
	g.State.Resume(context.Background())
}

// RoundStarted implements state.Listener.
func (g *Game) RoundStarted(roundID string) {
	g.log.Info("round started", "round_id", roundID, "attempt", g.State.History.Attempts+1)
}

// PieceLocked implements state.Listener.
func (g *Game) PieceLocked(cleared int, s *scoring.Scoring) {
	if cleared == 0 {
		return
	}
	g.log.Debug("lines cleared",
		"round_id", s.RoundID(),
		"cleared", cleared,
		"lines", s.Lines,
		"level", s.Level,
		"score", s.CurrentScore,
		"fall_interval", s.FallInterval,
	)
}

// RoundOver implements state.Listener.
func (g *Game) RoundOver(s *scoring.Scoring) {
	g.log.Info("game over",
		"round_id", s.RoundID(),
		"score", s.CurrentScore,
		"lines", s.Lines,
		"level", s.Level,
		"high_score", s.GotHighScore(),
	)
}
