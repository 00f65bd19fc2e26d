// Package submit is the answer-submission ledger: it decides locally whether
// a submission may go to the site at all, posts it, classifies the reply, and
// appends the outcome to the append-only attempt history.
package submit

import (
	"context"
	"log/slog"
	"time"

	"aocbench/internal/domain"
	"aocbench/internal/storage/sqlite"
)

// Poster is the slice of the remote client the ledger needs.
type Poster interface {
	SubmitAnswer(ctx context.Context, year, day, level int, answer string) (string, error)
}

// Resolver materializes the puzzle record a submission targets.
type Resolver interface {
	Resolve(ctx context.Context, year, day int) (*domain.Puzzle, error)
}

// Config holds the ledger's collaborators.
type Config struct {
	Puzzles  *sqlite.PuzzleStore
	Attempts *sqlite.AttemptStore
	Resolver Resolver
	Poster   Poster

	// Location is the timezone attempts are stamped in. Required.
	Location *time.Location

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// Ledger guards and records answer submissions.
type Ledger struct {
	puzzles  *sqlite.PuzzleStore
	attempts *sqlite.AttemptStore
	resolver Resolver
	poster   Poster
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewLedger creates a Ledger from cfg.
func NewLedger(cfg Config) *Ledger {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		puzzles:  cfg.Puzzles,
		attempts: cfg.Attempts,
		resolver: cfg.Resolver,
		poster:   cfg.Poster,
		loc:      cfg.Location,
		now:      now,
		logger:   logger,
	}
}

// WriteAttempt submits an answer for (year, day, level) and records the
// outcome. Each (puzzle, level) moves Fresh -> Pending -> Solved; Solved is
// terminal. Every guard runs before any network call, and a network or HTTP
// failure produces no attempt row at all: the submission is treated as never
// having happened.
func (l *Ledger) WriteAttempt(ctx context.Context, year, day, level int, answer string) (*domain.Attempt, error) {
	if err := domain.Validate(year, day); err != nil {
		return nil, err
	}
	if err := domain.ValidateLevel(level); err != nil {
		return nil, err
	}

	p, err := l.resolver.Resolve(ctx, year, day)
	if err != nil {
		return nil, err
	}

	if err := l.guard(p, level, answer); err != nil {
		return nil, err
	}

	body, err := l.poster.SubmitAnswer(ctx, year, day, level, answer)
	if err != nil {
		return nil, err
	}

	rtype := domain.Classify(body)
	attempt := &domain.Attempt{
		PuzzleID:     p.ID,
		Year:         year,
		Day:          day,
		Timestamp:    l.now().In(l.loc).Format(time.RFC3339),
		Level:        level,
		Answer:       answer,
		Correct:      rtype == domain.ResponseCorrect,
		ResponseType: rtype,
		RawResponse:  body,
	}
	if err := l.attempts.Insert(attempt); err != nil {
		return nil, err
	}

	l.logger.Info("attempt recorded",
		"year", year, "day", day, "level", level,
		"response", string(rtype), "correct", attempt.Correct)

	if attempt.Correct {
		p.MarkSolved(level, answer)
		if err := l.puzzles.Upsert(p); err != nil {
			return attempt, err
		}
	}
	return attempt, nil
}

// guard applies every local pre-submission check, in order: part ordering,
// solved lock, duplicate answer, cooldown.
func (l *Ledger) guard(p *domain.Puzzle, level int, answer string) error {
	if level == 2 && !p.Part1Solved {
		return domain.ErrPartOneNotSolved
	}

	if p.Solved(level) {
		return domain.ErrLevelAlreadySolved
	}
	correct, err := l.attempts.Correct(p.ID, level)
	if err != nil {
		return err
	}
	if correct != nil {
		return domain.ErrLevelAlreadySolved
	}

	history, err := l.attempts.List(p.ID, level)
	if err != nil {
		return err
	}
	for _, a := range history {
		if a.Answer == answer {
			return domain.ErrAnswerAlreadySubmitted
		}
	}

	return l.checkCooldown(history)
}

// checkCooldown rejects while the wait implied by the latest TOO_SOON reply
// has not elapsed. The latest attempt is chosen by parsed instant, not by
// the stored string: around the DST fall-back hour the ledger holds mixed
// -04:00/-05:00 offsets, where lexicographic order and temporal order
// disagree.
func (l *Ledger) checkCooldown(history []*domain.Attempt) error {
	var latest *domain.Attempt
	var latestAt time.Time
	for _, a := range history {
		at, err := a.Time()
		if err != nil {
			// An unparseable ledger timestamp would make every
			// cooldown comparison meaningless; surface it.
			return err
		}
		if latest == nil || at.After(latestAt) || at.Equal(latestAt) {
			latest, latestAt = a, at
		}
	}
	if latest == nil || latest.ResponseType != domain.ResponseTooSoon {
		return nil
	}

	wait := cooldownWait(latest.RawResponse)
	remaining := latestAt.Add(wait).Sub(l.now())
	if remaining > 0 {
		return &domain.CooldownError{Remaining: remaining}
	}
	return nil
}
