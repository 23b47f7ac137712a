package scoring

import (
	"sort"
)

// ScoreHistory holds the finished rounds of the current process. It is never
// written to disk.
type ScoreHistory struct {
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
	Attempts       int
}

// ScoreHistoryEntry represents a single finished round.
type ScoreHistoryEntry struct {
	RoundID   string `json:"round_id"`
	Score     int    `json:"score"`
	Lines     int    `json:"lines"`
	Level     int    `json:"level"`
	Timestamp string `json:"timestamp"`
}

// NewScoreHistory returns an empty history.
func NewScoreHistory() *ScoreHistory {
	return &ScoreHistory{}
}

// Add appends a finished round and updates the high score.
func (sh *ScoreHistory) Add(entry ScoreHistoryEntry) {
	sh.Entries = append(sh.Entries, entry)
	sh.Attempts = len(sh.Entries)

	best := 0
	for i := range sh.Entries {
		if sh.Entries[i].Score > sh.Entries[best].Score {
			best = i
		}
	}
	sh.HighScoreEntry = &sh.Entries[best]
}

// GetHighScoreEntry returns the highest scoring round so far.
func (sh ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N rounds, sorted by score.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	// Make a copy to avoid modifying the original slice.
	entriesCopy := make([]ScoreHistoryEntry, len(sh.Entries))
	copy(entriesCopy, sh.Entries)

	sort.SliceStable(entriesCopy, func(i, j int) bool {
		return entriesCopy[i].Score > entriesCopy[j].Score
	})

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// GotHighScore checks if score is greater than or equal to the best
// recorded round.
func (sh ScoreHistory) GotHighScore(score int) bool {
	if sh.HighScoreEntry == nil {
		// No finished rounds yet, so any score is a high score.
		return true
	}
	return score >= sh.HighScoreEntry.Score
}
