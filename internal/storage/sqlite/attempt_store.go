package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"aocbench/internal/domain"
)

// AttemptStore persists the append-only answer ledger.
type AttemptStore struct {
	db *DB
}

// NewAttemptStore creates a SQLite-backed attempt store.
func NewAttemptStore(db *DB) *AttemptStore {
	return &AttemptStore{db: db}
}

const attemptColumns = `id, puzzle_id, year, day, timestamp, level, answer, correct, response_type, raw_response`

// Insert appends an attempt. A (puzzle_id, level, answer) conflict maps to
// ErrDuplicateAttempt: the database confirming what the ledger's guard
// already believed. On return a.ID is set.
func (s *AttemptStore) Insert(a *domain.Attempt) error {
	res, err := s.db.Exec(`
		INSERT INTO answers (puzzle_id, year, day, timestamp, level, answer, correct, response_type, raw_response)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.PuzzleID, a.Year, a.Day, a.Timestamp, a.Level, a.Answer,
		boolToInt(a.Correct), string(a.ResponseType), a.RawResponse,
	)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicateAttempt
		}
		return fmt.Errorf("insert attempt: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read attempt id: %w", err)
	}
	a.ID = id
	return nil
}

// List returns the attempts for (puzzle, level) ordered by timestamp
// ascending, id breaking ties.
func (s *AttemptStore) List(puzzleID int64, level int) ([]*domain.Attempt, error) {
	rows, err := s.db.Query(`
		SELECT `+attemptColumns+` FROM answers
		WHERE puzzle_id = ? AND level = ?
		ORDER BY timestamp, id`, puzzleID, level)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*domain.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// ListByPuzzle returns all attempts for a puzzle across both levels, ordered
// by level then timestamp.
func (s *AttemptStore) ListByPuzzle(puzzleID int64) ([]*domain.Attempt, error) {
	rows, err := s.db.Query(`
		SELECT `+attemptColumns+` FROM answers
		WHERE puzzle_id = ?
		ORDER BY level, timestamp, id`, puzzleID)
	if err != nil {
		return nil, fmt.Errorf("list attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*domain.Attempt
	for rows.Next() {
		a, err := scanAttempt(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

// Correct returns the correct attempt for (puzzle, level), or nil when the
// level is still open.
func (s *AttemptStore) Correct(puzzleID int64, level int) (*domain.Attempt, error) {
	row := s.db.QueryRow(`
		SELECT `+attemptColumns+` FROM answers
		WHERE puzzle_id = ? AND level = ? AND correct = 1
		ORDER BY timestamp, id LIMIT 1`, puzzleID, level)
	a, err := scanAttempt(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get correct attempt: %w", err)
	}
	return a, nil
}

func scanAttempt(scan func(...any) error) (*domain.Attempt, error) {
	var a domain.Attempt
	var correct int
	var rtype string
	err := scan(
		&a.ID, &a.PuzzleID, &a.Year, &a.Day, &a.Timestamp,
		&a.Level, &a.Answer, &correct, &rtype, &a.RawResponse,
	)
	if err != nil {
		return nil, err
	}
	a.Correct = correct != 0
	a.ResponseType = domain.ResponseType(rtype)
	return &a, nil
}
