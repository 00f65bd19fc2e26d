package local

import (
	"os"
	"path/filepath"
	"testing"

	"aocbench/internal/domain"
)

func TestStore_Paths(t *testing.T) {
	s := NewStore("/data")

	if got, want := s.HTMLPath(2018, 7), filepath.Join("/data", "2018", "7", "aoc_2018_day_7.html"); got != want {
		t.Errorf("HTMLPath() = %q; want %q", got, want)
	}
	if got, want := s.InputPath(2018, 7), filepath.Join("/data", "2018", "7", "input.txt"); got != want {
		t.Errorf("InputPath() = %q; want %q", got, want)
	}
	if got, want := s.ExamplePath(2018, 7), filepath.Join("/data", "2018", "7", "example.txt"); got != want {
		t.Errorf("ExamplePath() = %q; want %q", got, want)
	}
}

func TestStore_WritePuzzleAndReadInput(t *testing.T) {
	s := NewStore(t.TempDir())

	p := &domain.Puzzle{
		Year:        2018,
		Day:         7,
		RawHTML:     "<html>day 7</html>",
		InputText:   "Step C must be finished before step A can begin.\n",
		ExampleText: "Step C must be finished before step A can begin.\n",
	}
	if err := s.WritePuzzle(p); err != nil {
		t.Fatalf("WritePuzzle() error = %v", err)
	}

	html, err := os.ReadFile(s.HTMLPath(2018, 7))
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	if string(html) != p.RawHTML {
		t.Errorf("html = %q; want %q", html, p.RawHTML)
	}

	input, err := s.ReadInput(2018, 7)
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if input != p.InputText {
		t.Errorf("input = %q; want %q", input, p.InputText)
	}

	// No stray temp files left behind.
	entries, err := os.ReadDir(s.Dir(2018, 7))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 3 {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("puzzle dir has %v; want exactly html, input, example", names)
	}
}

func TestStore_ReadInput_Missing(t *testing.T) {
	s := NewStore(t.TempDir())
	input, err := s.ReadInput(2015, 1)
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if input != "" {
		t.Errorf("ReadInput() = %q; want empty for missing file", input)
	}
}
