package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"aocbench/internal/domain"
)

// PuzzleStore persists puzzle records.
type PuzzleStore struct {
	db *DB
}

// NewPuzzleStore creates a SQLite-backed puzzle store.
func NewPuzzleStore(db *DB) *PuzzleStore {
	return &PuzzleStore{db: db}
}

const puzzleColumns = `id, year, day, title, part_1_description, part_2_description,
	example_text, input_text, raw_html, url,
	part_1_solved, part_2_solved, part_1_answer, part_2_answer`

// Get retrieves the puzzle record for (year, day).
func (s *PuzzleStore) Get(year, day int) (*domain.Puzzle, error) {
	row := s.db.QueryRow(`SELECT `+puzzleColumns+` FROM puzzles WHERE year = ? AND day = ?`, year, day)
	p, err := scanPuzzle(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPuzzleNotFound
		}
		return nil, fmt.Errorf("get puzzle %d/%d: %w", year, day, err)
	}
	return p, nil
}

// Upsert inserts a puzzle or replaces its mutable fields. The id and
// (year, day) never change. Solved flags only move forward, and a stored
// non-empty input_text is kept over whatever a re-fetch produced, so inputs
// cannot silently drift. On return p.ID is set.
func (s *PuzzleStore) Upsert(p *domain.Puzzle) error {
	_, err := s.db.Exec(`
		INSERT INTO puzzles (year, day, title, part_1_description, part_2_description,
			example_text, input_text, raw_html, url,
			part_1_solved, part_2_solved, part_1_answer, part_2_answer)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(year, day) DO UPDATE SET
			title = excluded.title,
			part_1_description = excluded.part_1_description,
			part_2_description = CASE WHEN excluded.part_2_description != ''
				THEN excluded.part_2_description ELSE puzzles.part_2_description END,
			example_text = excluded.example_text,
			input_text = CASE WHEN puzzles.input_text = ''
				THEN excluded.input_text ELSE puzzles.input_text END,
			raw_html = excluded.raw_html,
			url = excluded.url,
			part_1_solved = MAX(puzzles.part_1_solved, excluded.part_1_solved),
			part_2_solved = MAX(puzzles.part_2_solved, excluded.part_2_solved),
			part_1_answer = CASE WHEN excluded.part_1_answer != ''
				THEN excluded.part_1_answer ELSE puzzles.part_1_answer END,
			part_2_answer = CASE WHEN excluded.part_2_answer != ''
				THEN excluded.part_2_answer ELSE puzzles.part_2_answer END,
			updated_at = datetime('now')`,
		p.Year, p.Day, p.Title, p.Part1Description, p.Part2Description,
		p.ExampleText, p.InputText, p.RawHTML, p.URL,
		boolToInt(p.Part1Solved), boolToInt(p.Part2Solved), p.Part1Answer, p.Part2Answer,
	)
	if err != nil {
		return fmt.Errorf("upsert puzzle %d/%d: %w", p.Year, p.Day, err)
	}

	if err := s.db.QueryRow("SELECT id FROM puzzles WHERE year = ? AND day = ?", p.Year, p.Day).Scan(&p.ID); err != nil {
		return fmt.Errorf("read puzzle id %d/%d: %w", p.Year, p.Day, err)
	}
	return nil
}

// ListYears returns the distinct years with at least one cached puzzle.
func (s *PuzzleStore) ListYears() ([]int, error) {
	rows, err := s.db.Query("SELECT DISTINCT year FROM puzzles ORDER BY year")
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// ListByYear returns all cached puzzles of a year ordered by day.
func (s *PuzzleStore) ListByYear(year int) ([]*domain.Puzzle, error) {
	rows, err := s.db.Query(`SELECT `+puzzleColumns+` FROM puzzles WHERE year = ? ORDER BY day`, year)
	if err != nil {
		return nil, fmt.Errorf("list puzzles %d: %w", year, err)
	}
	defer rows.Close()

	var puzzles []*domain.Puzzle
	for rows.Next() {
		p, err := scanPuzzle(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan puzzle: %w", err)
		}
		puzzles = append(puzzles, p)
	}
	return puzzles, rows.Err()
}

// scanPuzzle reads one puzzle row through any Scan-shaped function.
func scanPuzzle(scan func(...any) error) (*domain.Puzzle, error) {
	var p domain.Puzzle
	var part1Solved, part2Solved int
	err := scan(
		&p.ID, &p.Year, &p.Day, &p.Title, &p.Part1Description, &p.Part2Description,
		&p.ExampleText, &p.InputText, &p.RawHTML, &p.URL,
		&part1Solved, &part2Solved, &p.Part1Answer, &p.Part2Answer,
	)
	if err != nil {
		return nil, err
	}
	p.Part1Solved = part1Solved != 0
	p.Part2Solved = part2Solved != 0
	return &p, nil
}
