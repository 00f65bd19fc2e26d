package domain

import "time"

// Attempt is one answer submission for a (puzzle, level). Rows are
// append-only and never mutated after insertion; (puzzle_id, level, answer)
// is unique so the same literal answer is never submitted twice.
type Attempt struct {
	ID       int64
	PuzzleID int64
	Year     int
	Day      int

	// Timestamp is ISO-8601 with explicit offset, recorded in
	// America/New_York so the ledger reads naturally against the
	// puzzle site's own clock.
	Timestamp string

	Level        int
	Answer       string
	Correct      bool
	ResponseType ResponseType
	RawResponse  string
}

// Time parses the attempt timestamp as an absolute instant. Cooldown
// comparisons must go through this, never through string comparison.
func (a *Attempt) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, a.Timestamp)
}
