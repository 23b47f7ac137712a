package game

import (
	"time"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"
	"go-tetris/internal/state"
)

// Snapshot is a read-only copy of everything a renderer needs. Nothing in it
// aliases live game state.
type Snapshot struct {
	Phase  state.Phase
	Grid   [][]piece.Color
	Active *piece.Piece // nil before the first start
	Next   *piece.Piece

	Score        int
	Lines        int
	Level        int
	FallInterval time.Duration

	TopRowOccupied bool
	RoundID        string
	Attempts       int
	HighScore      int
	GotHighScore   bool
	TopScores      []scoring.ScoreHistoryEntry
}

const topScoreCount = 5

// Snapshot copies the current game state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.State
	snap := Snapshot{
		Phase:        s.Phase(),
		Level:        1,
		FallInterval: scoring.FallIntervalForLevel(1),
		Attempts:     s.History.Attempts,
		TopScores:    s.History.GetNScoreEntries(topScoreCount),
	}
	if high := s.History.GetHighScoreEntry(); high != nil {
		snap.HighScore = high.Score
	}

	if s.Board == nil {
		snap.Grid = board.New().Rows()
		return snap
	}

	snap.Grid = s.Board.Rows()
	snap.TopRowOccupied = s.Board.IsTopRowOccupied()
	snap.Active = s.Pieces.Active.Clone()
	snap.Next = s.Pieces.Next.Clone()
	snap.Score = s.Score.CurrentScore
	snap.Lines = s.Score.Lines
	snap.Level = s.Score.Level
	snap.FallInterval = s.Score.FallInterval
	snap.RoundID = s.Score.RoundID()
	snap.GotHighScore = s.Score.GotHighScore()
	return snap
}
