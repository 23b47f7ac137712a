package state

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"go-tetris/internal/board"
	"go-tetris/internal/controller"
	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"
)

// Listener is notified of round events as the state machine runs them.
type Listener interface {
	RoundStarted(roundID string)
	PieceLocked(cleared int, s *scoring.Scoring)
	RoundOver(s *scoring.Scoring)
}

type State struct {
	Board    *board.Board
	Pieces   *controller.Controller
	Score    *scoring.Scoring
	History  *scoring.ScoreHistory
	FSM      *fsm.FSM
	LastFall time.Time // zero until the fall clock is anchored
	Listener Listener

	factory *piece.Factory
}

// NewState builds an idle session. Pieces are drawn from factory once the
// first round starts.
func NewState(factory *piece.Factory, history *scoring.ScoreHistory) *State {
	s := &State{
		History: history,
		factory: factory,
	}

	s.FSM = fsm.NewFSM(
		StateIdle,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

// Reset discards the current round and deals a new one.
func (s *State) Reset() {
	s.Board = board.New()
	s.Pieces = controller.New(s.Board, s.factory)
	s.Score = scoring.InitScoring(uuid.NewString(), s.History)
	s.LastFall = time.Time{}
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "start", Src: []string{StateIdle, StateRunning, StatePaused, StateGameOver}, Dst: StateRunning},
		{Name: "pause", Src: []string{StateRunning}, Dst: StatePaused},
		{Name: "resume", Src: []string{StatePaused}, Dst: StateRunning},

		// Fall step
		{Name: "tick", Src: []string{StateRunning}, Dst: "falling"},
		{Name: "fell", Src: []string{"falling"}, Dst: StateRunning},
		{Name: "rest", Src: []string{"falling"}, Dst: "locking"},

		// Lock, clear and respawn
		{Name: "spawned", Src: []string{"locking"}, Dst: StateRunning},
		{Name: "topOut", Src: []string{"locking"}, Dst: StateGameOver},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_start": func(ctx context.Context, e *fsm.Event) {
			s.Reset()
		},
		"after_start": func(ctx context.Context, e *fsm.Event) {
			if s.Listener != nil {
				s.Listener.RoundStarted(s.Score.RoundID())
			}
		},
		"after_resume": func(ctx context.Context, e *fsm.Event) {
			// Time spent paused does not count towards the next fall.
			s.LastFall = time.Time{}
		},
		"enter_falling": func(ctx context.Context, e *fsm.Event) {
			now := tickTime(e)
			if s.Pieces.Move(0, 1) {
				s.LastFall = now
				e.FSM.Event(ctx, "fell")
				return
			}
			e.FSM.Event(ctx, "rest", now)
		},
		"enter_locking": func(ctx context.Context, e *fsm.Event) {
			s.Board.Commit(s.Pieces.Active)
			cleared := s.Board.ClearCompletedRows()
			s.Score.LinesCleared(cleared)
			s.LastFall = tickTime(e)
			if s.Listener != nil {
				s.Listener.PieceLocked(cleared, s.Score)
			}

			if !s.Pieces.Promote() {
				e.FSM.Event(ctx, "topOut")
				return
			}
			e.FSM.Event(ctx, "spawned")
		},
		"enter_gameOver": func(ctx context.Context, e *fsm.Event) {
			s.Score.SaveEntry()
			if s.Listener != nil {
				s.Listener.RoundOver(s.Score)
			}
		},
	}
}

func tickTime(e *fsm.Event) time.Time {
	if len(e.Args) > 0 {
		if t, ok := e.Args[0].(time.Time); ok {
			return t
		}
	}
	return time.Time{}
}
