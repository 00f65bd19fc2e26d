package aoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"aocbench/internal/config"
	"aocbench/internal/domain"
	"aocbench/internal/fetch"
	"aocbench/internal/resolve"
	"aocbench/internal/storage/local"
	"aocbench/internal/storage/sqlite"
	"aocbench/internal/submit"
)

// Compile-time check that the remote client satisfies both consumer-side
// interfaces.
var (
	_ resolve.Fetcher = (*fetch.Client)(nil)
	_ submit.Poster   = (*fetch.Client)(nil)
)

// Workbench wires the configuration, stores, resolver, and ledger together.
// One Workbench per process; it holds the single database connection.
type Workbench struct {
	cfg      *config.Config
	db       *sqlite.DB
	puzzles  *sqlite.PuzzleStore
	attempts *sqlite.AttemptStore
	files    *local.Store
	client   *fetch.Client
	resolver *resolve.Resolver
	ledger   *submit.Ledger
	logger   *slog.Logger
}

// Open loads configuration from the environment and opens the workbench.
func Open() (*Workbench, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return OpenWith(cfg)
}

// OpenWith opens the workbench over an explicit configuration.
func OpenWith(cfg *config.Config) (*Workbench, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger := slog.Default()
	puzzles := sqlite.NewPuzzleStore(db)
	attempts := sqlite.NewAttemptStore(db)
	files := local.NewStore(cfg.DataDir)
	client := fetch.NewClient(fetch.Config{
		Session: cfg.Session,
		BaseURL: cfg.BaseURL,
		Logger:  logger,
	})
	resolver := resolve.New(puzzles, files, client, logger)
	ledger := submit.NewLedger(submit.Config{
		Puzzles:  puzzles,
		Attempts: attempts,
		Resolver: resolver,
		Poster:   client,
		Location: cfg.Location,
		Logger:   logger,
	})

	return &Workbench{
		cfg:      cfg,
		db:       db,
		puzzles:  puzzles,
		attempts: attempts,
		files:    files,
		client:   client,
		resolver: resolver,
		ledger:   ledger,
		logger:   logger,
	}, nil
}

// Close releases the database connection.
func (w *Workbench) Close() error {
	return w.db.Close()
}

// Config returns the loaded configuration.
func (w *Workbench) Config() *config.Config {
	return w.cfg
}

// Puzzle resolves and returns the full puzzle record.
func (w *Workbench) Puzzle(ctx context.Context, year, day int) (*domain.Puzzle, error) {
	return w.resolver.Resolve(ctx, year, day)
}

// Input returns the raw input for (year, day), resolving on a miss.
func (w *Workbench) Input(ctx context.Context, year, day int) (string, error) {
	p, err := w.resolver.Resolve(ctx, year, day)
	if err != nil {
		return "", err
	}
	return p.InputText, nil
}

// Example returns the example block for (year, day).
func (w *Workbench) Example(ctx context.Context, year, day int) (string, error) {
	p, err := w.resolver.Resolve(ctx, year, day)
	if err != nil {
		return "", err
	}
	return p.ExampleText, nil
}

// Description returns the rendered puzzle description.
func (w *Workbench) Description(ctx context.Context, year, day int) (string, error) {
	p, err := w.resolver.Resolve(ctx, year, day)
	if err != nil {
		return "", err
	}
	return p.Description(), nil
}

// WriteAttempt submits an answer through the ledger. When the answer is
// correct, the puzzle page is re-fetched so the part-two description (or
// completion banner) lands in the cache right away.
func (w *Workbench) WriteAttempt(ctx context.Context, year, day, level int, answer string) (*domain.Attempt, error) {
	attempt, err := w.ledger.WriteAttempt(ctx, year, day, level, answer)
	if err != nil {
		return nil, err
	}
	if attempt.Correct {
		if _, err := w.resolver.Refresh(ctx, year, day); err != nil {
			// The attempt is recorded; a failed refresh only delays
			// the cached description.
			w.logger.Warn("refresh after correct answer failed", "year", year, "day", day, "error", err)
		}
	}
	return attempt, nil
}

// Attempts lists the recorded attempts for (year, day), both levels, from
// the store only.
func (w *Workbench) Attempts(year, day int) ([]*domain.Attempt, error) {
	p, err := w.puzzles.Get(year, day)
	if err != nil {
		return nil, err
	}
	return w.attempts.ListByPuzzle(p.ID)
}

// PuzzleCached returns the stored record without ever fetching.
func (w *Workbench) PuzzleCached(year, day int) (*domain.Puzzle, error) {
	return w.puzzles.Get(year, day)
}

// Years returns the years with cached puzzles.
func (w *Workbench) Years() ([]int, error) {
	return w.puzzles.ListYears()
}

// PuzzlesForYear returns the cached puzzles of one year.
func (w *Workbench) PuzzlesForYear(year int) ([]*domain.Puzzle, error) {
	return w.puzzles.ListByYear(year)
}

// Backfill fetches every not-yet-cached day of a year through a throttled
// client, spacing requests by the configured fetch interval.
func (w *Workbench) Backfill(ctx context.Context, year int) error {
	if err := domain.Validate(year, domain.FirstDay); err != nil {
		return err
	}

	throttle := fetch.NewThrottle(w.cfg.FetchInterval)
	defer throttle.Close()
	resolver := w.throttledResolver(throttle)

	for day := domain.FirstDay; day <= domain.LastDay; day++ {
		if p, err := w.puzzles.Get(year, day); err == nil && p.InputText != "" {
			continue
		}
		if _, err := resolver.Resolve(ctx, year, day); err != nil {
			return fmt.Errorf("backfill %d day %d: %w", year, day, err)
		}
	}
	return nil
}

// Sweep re-fetches the HTML of every cached puzzle, one request per sweep
// interval, picking up newly solved parts and part-two descriptions.
func (w *Workbench) Sweep(ctx context.Context) error {
	years, err := w.puzzles.ListYears()
	if err != nil {
		return err
	}

	throttle := fetch.NewThrottle(w.cfg.SweepInterval)
	defer throttle.Close()
	resolver := w.throttledResolver(throttle)

	for _, year := range years {
		cached, err := w.puzzles.ListByYear(year)
		if err != nil {
			return err
		}
		for _, p := range cached {
			if _, err := resolver.Refresh(ctx, p.Year, p.Day); err != nil {
				return fmt.Errorf("sweep %d day %d: %w", p.Year, p.Day, err)
			}
		}
	}
	return nil
}

// throttledResolver builds a resolver whose remote calls go through the
// given throttle. Stores are shared with the workbench.
func (w *Workbench) throttledResolver(throttle *fetch.Throttle) *resolve.Resolver {
	client := fetch.NewClient(fetch.Config{
		Session:  w.cfg.Session,
		BaseURL:  w.cfg.BaseURL,
		Throttle: throttle,
		Logger:   w.logger,
	})
	return resolve.New(w.puzzles, w.files, client, w.logger)
}

// IsNotFound reports whether err is the expected cache-miss signal.
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrPuzzleNotFound)
}
