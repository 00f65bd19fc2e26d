package domain

import (
	"errors"
	"fmt"
	"time"
)

// -----------------------------------------------------------------------------
// Domain Errors
// Sentinel errors are matched with errors.Is; errors that carry data
// (identifier ranges, HTTP status, cooldown remaining) are typed and matched
// with errors.As.
// -----------------------------------------------------------------------------

// Puzzle errors
var (
	ErrPuzzleNotFound = errors.New("puzzle not found")
)

// Submission errors
var (
	ErrDuplicateAttempt       = errors.New("attempt already recorded")
	ErrLevelAlreadySolved     = errors.New("level already solved")
	ErrAnswerAlreadySubmitted = errors.New("answer already submitted for this level")
	ErrPartOneNotSolved       = errors.New("part one must be solved before part two")
)

// Configuration errors
var (
	ErrMissingSession = errors.New("AOC_SESSION is not set")
)

// BadIdentifierError reports a year, day, or level outside its allowed range,
// or a string form that is not a plain decimal number.
type BadIdentifierError struct {
	Field string // "year", "day", or "level"
	Value string
	Min   int
	Max   int
}

func (e *BadIdentifierError) Error() string {
	return fmt.Sprintf("bad %s %q: must be an integer in [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// MissingElementError reports puzzle HTML that lacks an element the extractor
// requires.
type MissingElementError struct {
	Element string
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("puzzle html has no %s element", e.Element)
}

// UpstreamError reports a non-2xx response from the puzzle site.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("adventofcode.com returned status %d", e.Status)
}

// CooldownError reports a submission rejected locally because the site's
// cooldown from a previous too-recent attempt has not elapsed.
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("cooldown active: wait %d more seconds", int(e.Remaining.Seconds()+0.5))
}
