package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestInitScoring_NewRound verifies that a round starts at level 1 with the
// slowest fall speed and an empty history.
func TestInitScoring_NewRound(t *testing.T) {
	scoring := InitScoring("round-1", NewScoreHistory())

	if scoring.CurrentScore != 0 || scoring.Lines != 0 {
		t.Errorf("expected empty stats, got score %d lines %d", scoring.CurrentScore, scoring.Lines)
	}
	if scoring.Level != 1 {
		t.Errorf("expected level 1, got %d", scoring.Level)
	}
	if scoring.FallInterval != time.Second {
		t.Errorf("expected 1s fall interval, got %v", scoring.FallInterval)
	}
	if scoring.GetAttempts() != 0 {
		t.Errorf("expected 0 attempts, got %d", scoring.GetAttempts())
	}
	if scoring.GetHighScore() != nil {
		t.Errorf("expected nil high score, got %v", scoring.GetHighScore())
	}
	if scoring.RoundID() != "round-1" {
		t.Errorf("unexpected round id %q", scoring.RoundID())
	}
}

// TestLinesCleared_SingleLinesAtLevelOne checks the linear award: three
// separate single clears at level 1 are worth 300.
func TestLinesCleared_SingleLinesAtLevelOne(t *testing.T) {
	scoring := InitScoring("r", nil)

	scoring.LinesCleared(1)
	scoring.LinesCleared(1)
	scoring.LinesCleared(1)

	assert.Equal(t, 300, scoring.CurrentScore)
	assert.Equal(t, 3, scoring.Lines)
	assert.Equal(t, 1, scoring.Level)
	assert.Equal(t, 1000*time.Millisecond, scoring.FallInterval)
}

// TestLinesCleared_NotTiered verifies that four lines at once score the
// same as four singles at the same level.
func TestLinesCleared_NotTiered(t *testing.T) {
	tetris := InitScoring("a", nil)
	tetris.LinesCleared(4)

	singles := InitScoring("b", nil)
	for range 4 {
		singles.LinesCleared(1)
	}

	assert.Equal(t, 400, tetris.CurrentScore)
	assert.Equal(t, singles.CurrentScore, tetris.CurrentScore)
}

// TestLinesCleared_LevelUp uses the level the rows were cleared at, then
// speeds up.
func TestLinesCleared_LevelUp(t *testing.T) {
	scoring := InitScoring("r", nil)
	scoring.LinesCleared(3)
	scoring.LinesCleared(3)
	scoring.LinesCleared(3)
	if scoring.Level != 1 {
		t.Fatalf("expected level 1 at 9 lines, got %d", scoring.Level)
	}

	scoring.LinesCleared(1)
	assert.Equal(t, 10, scoring.Lines)
	assert.Equal(t, 2, scoring.Level)
	assert.Equal(t, 950*time.Millisecond, scoring.FallInterval)
	assert.Equal(t, 1000, scoring.CurrentScore)

	scoring.LinesCleared(2)
	assert.Equal(t, 1000+2*100*2, scoring.CurrentScore, "award multiplied by level 2")
}

// TestLinesCleared_ZeroIsNoop makes sure a lock without clears changes nothing.
func TestLinesCleared_ZeroIsNoop(t *testing.T) {
	scoring := InitScoring("r", nil)
	scoring.LinesCleared(0)
	assert.Equal(t, 0, scoring.CurrentScore)
	assert.Equal(t, 1, scoring.Level)
}

func TestFallIntervalForLevel(t *testing.T) {
	tests := []struct {
		lines int
		level int
		want  time.Duration
	}{
		{0, 1, 1000 * time.Millisecond},
		{9, 1, 1000 * time.Millisecond},
		{10, 2, 950 * time.Millisecond},
		{100, 11, 500 * time.Millisecond},
		{190, 20, 50 * time.Millisecond},
		{200, 21, 50 * time.Millisecond},
		{500, 51, 50 * time.Millisecond},
	}
	for _, tt := range tests {
		level := LevelForLines(tt.lines)
		if level != tt.level {
			t.Errorf("LevelForLines(%d) = %d, expected %d", tt.lines, level, tt.level)
		}
		if got := FallIntervalForLevel(level); got != tt.want {
			t.Errorf("FallIntervalForLevel(%d) = %v, expected %v", level, got, tt.want)
		}
	}
}

// TestSaveEntry_RecordsOnce verifies that a finished round lands in the
// history exactly once and becomes the high score.
func TestSaveEntry_RecordsOnce(t *testing.T) {
	history := NewScoreHistory()
	scoring := InitScoring("round-1", history)
	scoring.LinesCleared(2)

	scoring.SaveEntry()
	scoring.SaveEntry()

	if history.Attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", history.Attempts)
	}
	high := scoring.GetHighScore()
	if high == nil {
		t.Fatal("expected a high score entry")
	}
	if high.Score != 200 || high.Lines != 2 || high.RoundID != "round-1" {
		t.Errorf("unexpected entry %+v", *high)
	}
	if !scoring.GotHighScore() {
		t.Error("the only round is the high score")
	}
}

// TestGetNScoreEntries verifies that rounds come back sorted by score and
// truncated to n.
func TestGetNScoreEntries(t *testing.T) {
	history := NewScoreHistory()
	for i, score := range []int{100, 500, 300} {
		s := InitScoring(string(rune('a'+i)), history)
		s.CurrentScore = score
		s.SaveEntry()
	}

	top := history.GetNScoreEntries(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 300 {
		t.Errorf("expected [500 300], got [%d %d]", top[0].Score, top[1].Score)
	}
	if len(history.GetNScoreEntries(10)) != 3 {
		t.Error("asking for more than available returns all entries")
	}
	if history.Entries[0].Score != 100 {
		t.Error("GetNScoreEntries must not reorder the history")
	}

	next := InitScoring("d", history)
	next.CurrentScore = 499
	if next.GotHighScore() {
		t.Error("499 does not beat 500")
	}
	next.CurrentScore = 500
	if !next.GotHighScore() {
		t.Error("ties count as a high score")
	}
}
