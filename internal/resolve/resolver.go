// Package resolve materializes puzzle records: a read-through cache over the
// store, falling back to the remote fetcher and HTML extractor on a miss.
// Nothing else in the workbench is allowed to populate puzzle rows from
// remote data.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"aocbench/internal/domain"
	"aocbench/internal/extract"
	"aocbench/internal/storage/local"
	"aocbench/internal/storage/sqlite"
)

// Fetcher is the slice of the remote client the resolver needs.
type Fetcher interface {
	PuzzleHTML(ctx context.Context, year, day int) (string, error)
	InputText(ctx context.Context, year, day int) (string, error)
}

// Resolver is the read-through puzzle cache.
type Resolver struct {
	puzzles *sqlite.PuzzleStore
	files   *local.Store
	fetcher Fetcher
	logger  *slog.Logger
}

// New creates a Resolver.
func New(puzzles *sqlite.PuzzleStore, files *local.Store, fetcher Fetcher, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{puzzles: puzzles, files: files, fetcher: fetcher, logger: logger}
}

// Resolve returns the puzzle record for (year, day). A stored record with a
// non-empty input is returned as-is; anything else triggers a remote fetch
// followed by one upsert, so resolving twice still yields exactly one row.
func (r *Resolver) Resolve(ctx context.Context, year, day int) (*domain.Puzzle, error) {
	if err := domain.Validate(year, day); err != nil {
		return nil, err
	}

	p, err := r.puzzles.Get(year, day)
	if err != nil && !errors.Is(err, domain.ErrPuzzleNotFound) {
		return nil, err
	}
	if p != nil && p.InputText != "" {
		return p, nil
	}

	r.logger.Info("puzzle cache miss", "year", year, "day", day)
	return r.fetchAndStore(ctx, year, day)
}

// Refresh re-fetches the puzzle page even on a cache hit, picking up newly
// solved parts, revealed answers, and the part-two description. The stored
// input is never replaced once non-empty.
func (r *Resolver) Refresh(ctx context.Context, year, day int) (*domain.Puzzle, error) {
	if err := domain.Validate(year, day); err != nil {
		return nil, err
	}
	return r.fetchAndStore(ctx, year, day)
}

// fetchAndStore pulls the page and input, extracts, and persists. Both
// remote reads complete before the first write, so a partial failure leaves
// the store unchanged.
func (r *Resolver) fetchAndStore(ctx context.Context, year, day int) (*domain.Puzzle, error) {
	html, err := r.fetcher.PuzzleHTML(ctx, year, day)
	if err != nil {
		return nil, fmt.Errorf("fetch puzzle %d/%d: %w", year, day, err)
	}
	input, err := r.fetcher.InputText(ctx, year, day)
	if err != nil {
		return nil, fmt.Errorf("fetch input %d/%d: %w", year, day, err)
	}

	res, err := extract.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("extract puzzle %d/%d: %w", year, day, err)
	}

	p := &domain.Puzzle{
		Year:             year,
		Day:              day,
		Title:            res.Title,
		Part1Description: res.Part1Description,
		Part2Description: res.Part2Description,
		ExampleText:      res.ExampleText,
		InputText:        input,
		RawHTML:          html,
		URL:              domain.PuzzleURL(domain.CanonicalBaseURL, year, day),
		Part1Solved:      res.Part1Solved,
		Part2Solved:      res.Part2Solved,
		Part1Answer:      res.Part1Answer,
		Part2Answer:      res.Part2Answer,
	}

	if err := r.puzzles.Upsert(p); err != nil {
		return nil, err
	}

	// The upsert may have kept older stored fields (first input wins);
	// reread so callers see what the store holds.
	stored, err := r.puzzles.Get(year, day)
	if err != nil {
		return nil, err
	}

	if err := r.files.WritePuzzle(stored); err != nil {
		return nil, fmt.Errorf("mirror puzzle files %d/%d: %w", year, day, err)
	}

	r.logger.Info("puzzle resolved", "year", year, "day", day, "title", stored.Title)
	return stored, nil
}
