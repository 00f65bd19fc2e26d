// Package local mirrors fetched puzzle content to the data directory so
// solutions and humans can read it without touching the database. Layout:
// <DATA_DIR>/<year>/<day>/{aoc_<year>_day_<day>.html, input.txt, example.txt}.
package local

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"aocbench/internal/domain"
)

// Store writes per-puzzle files under a root data directory.
type Store struct {
	root string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the data directory root.
func (s *Store) Root() string {
	return s.root
}

// Dir returns the per-puzzle directory for (year, day).
func (s *Store) Dir(year, day int) string {
	return filepath.Join(s.root, strconv.Itoa(year), strconv.Itoa(day))
}

// HTMLPath returns the cached raw HTML path for (year, day).
func (s *Store) HTMLPath(year, day int) string {
	return filepath.Join(s.Dir(year, day), fmt.Sprintf("aoc_%d_day_%d.html", year, day))
}

// InputPath returns the raw input path for (year, day).
func (s *Store) InputPath(year, day int) string {
	return filepath.Join(s.Dir(year, day), "input.txt")
}

// ExamplePath returns the example block path for (year, day).
func (s *Store) ExamplePath(year, day int) string {
	return filepath.Join(s.Dir(year, day), "example.txt")
}

// WritePuzzle mirrors a puzzle's HTML, input, and example to disk.
func (s *Store) WritePuzzle(p *domain.Puzzle) error {
	if err := s.writeFile(s.HTMLPath(p.Year, p.Day), p.RawHTML); err != nil {
		return err
	}
	if err := s.writeFile(s.InputPath(p.Year, p.Day), p.InputText); err != nil {
		return err
	}
	return s.writeFile(s.ExamplePath(p.Year, p.Day), p.ExampleText)
}

// ReadInput returns the cached raw input, or "" when none is cached.
func (s *Store) ReadInput(year, day int) (string, error) {
	data, err := os.ReadFile(s.InputPath(year, day))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read input %d/%d: %w", year, day, err)
	}
	return string(data), nil
}

// writeFile writes content through a uniquely named temp file and renames it
// into place, so an interrupted write never leaves a truncated cache file.
func (s *Store) writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir %s: %w", filepath.Dir(path), err)
	}

	tmp := path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
