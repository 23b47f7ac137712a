package scoring

import (
	"time"
)

const (
	// MinFallInterval caps the fall speed at high levels.
	MinFallInterval  = 50 * time.Millisecond
	baseFallInterval = 1000 * time.Millisecond
	levelStep        = 50 * time.Millisecond
	linesPerLevel    = 10
)

// Scoring manages one round's score, cleared lines, level and fall speed,
// and reports the finished round to the shared score history.
type Scoring struct {
	// public
	CurrentScore int
	Lines        int
	Level        int
	FallInterval time.Duration
	// private
	history    *ScoreHistory
	scoreTable map[string]int
	roundID    string
	startedAt  time.Time
	saved      bool
}

// InitScoring creates the scoring for a new round at level 1. Finished rounds
// are recorded into history, which may be nil.
func InitScoring(roundID string, history *ScoreHistory) *Scoring {
	return &Scoring{
		CurrentScore: 0,
		Lines:        0,
		Level:        1,
		FallInterval: FallIntervalForLevel(1),
		history:      history,
		scoreTable:   getScoreTable(),
		roundID:      roundID,
		startedAt:    time.Now(),
	}
}

// LinesCleared applies the result of a lock that cleared n rows. The award
// is linear in n and uses the level the rows were cleared at; level and fall
// interval are then recomputed from the new line total.
func (s *Scoring) LinesCleared(n int) {
	if n <= 0 {
		return
	}
	s.CurrentScore += n * s.scoreTable["line"] * s.Level
	s.Lines += n
	s.Level = LevelForLines(s.Lines)
	s.FallInterval = FallIntervalForLevel(s.Level)
}

// RoundID identifies the round being scored.
func (s *Scoring) RoundID() string {
	return s.roundID
}

// LevelForLines returns the level reached after clearing lines rows.
func LevelForLines(lines int) int {
	return lines/linesPerLevel + 1
}

// FallIntervalForLevel returns the automatic descent interval at level,
// never shorter than MinFallInterval.
func FallIntervalForLevel(level int) time.Duration {
	return max(MinFallInterval, baseFallInterval-time.Duration(level-1)*levelStep)
}

// SaveEntry records the finished round into the history. Calling it again
// for the same round has no effect.
func (s *Scoring) SaveEntry() {
	if s.history == nil || s.saved {
		return
	}
	s.history.Add(ScoreHistoryEntry{
		RoundID:   s.roundID,
		Score:     s.CurrentScore,
		Lines:     s.Lines,
		Level:     s.Level,
		Timestamp: s.startedAt.Format(time.RFC3339),
	})
	s.saved = true
}

// Accessor methods for score history, delegating to the history object.
func (s *Scoring) GetHighScore() *ScoreHistoryEntry {
	if s.history == nil {
		return nil
	}
	return s.history.GetHighScoreEntry()
}

func (s *Scoring) GetAttempts() int {
	if s.history == nil {
		return 0
	}
	return s.history.Attempts
}

func (s *Scoring) GotHighScore() bool {
	if s.history == nil {
		return true
	}
	return s.history.GotHighScore(s.CurrentScore)
}

func (s *Scoring) GetNScoreEntries(n int) []ScoreHistoryEntry {
	if s.history == nil {
		return nil
	}
	return s.history.GetNScoreEntries(n)
}

// getScoreTable returns the points awarded per event, before the level
// multiplier.
func getScoreTable() map[string]int {
	return map[string]int{
		"line": 100,
	}
}
