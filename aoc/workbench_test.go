package aoc

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aocbench/internal/config"
)

// fakeSite serves a minimal puzzle site and counts page hits.
type fakeSite struct {
	pageHits  int
	inputHits int
}

func (s *fakeSite) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/input"):
			s.inputHits++
			fmt.Fprint(w, "3+1\n")
		case strings.HasSuffix(r.URL.Path, "/answer"):
			r.ParseForm()
			if r.PostForm.Get("answer") == "4" {
				fmt.Fprint(w, "That's the right answer. You are one gold star closer.")
			} else {
				fmt.Fprint(w, "That's not the right answer.")
			}
		default:
			s.pageHits++
			fmt.Fprint(w, `<html><body><main>
<article class="day-desc">
<h2>--- Day 7: The Sum of Its Parts ---</h2>
<p>Add the numbers.</p>
<pre><code>3+1
</code></pre>
</article>
</main></body></html>`)
		}
	}
}

func openTestWorkbench(t *testing.T) (*Workbench, *fakeSite) {
	t.Helper()
	site := &fakeSite{}
	srv := httptest.NewServer(site.handler())
	t.Cleanup(srv.Close)

	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	dataDir := t.TempDir()
	w, err := OpenWith(&config.Config{
		Session:       "test-session",
		DataDir:       dataDir,
		DBPath:        filepath.Join(dataDir, "aoc.db"),
		BaseURL:       srv.URL,
		FetchInterval: time.Millisecond,
		SweepInterval: time.Millisecond,
		Location:      loc,
	})
	if err != nil {
		t.Fatalf("OpenWith() error = %v", err)
	}
	t.Cleanup(func() { w.Close() })
	return w, site
}

func TestWorkbench_InputCachedAfterFirstFetch(t *testing.T) {
	w, site := openTestWorkbench(t)
	ctx := context.Background()

	first, err := w.Input(ctx, 2018, 7)
	if err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if first != "3+1\n" {
		t.Errorf("Input() = %q; want 3+1\\n", first)
	}
	if site.pageHits != 1 || site.inputHits != 1 {
		t.Errorf("site hits = (%d, %d); want (1, 1)", site.pageHits, site.inputHits)
	}

	second, err := w.Input(ctx, 2018, 7)
	if err != nil {
		t.Fatalf("second Input() error = %v", err)
	}
	if second != first {
		t.Errorf("second Input() = %q; want identical string", second)
	}
	if site.pageHits != 1 || site.inputHits != 1 {
		t.Errorf("site hits after cache hit = (%d, %d); want (1, 1)", site.pageHits, site.inputHits)
	}
}

func TestWorkbench_DescriptionAndExample(t *testing.T) {
	w, _ := openTestWorkbench(t)
	ctx := context.Background()

	desc, err := w.Description(ctx, 2018, 7)
	if err != nil {
		t.Fatalf("Description() error = %v", err)
	}
	if !strings.Contains(desc, "The Sum of Its Parts") {
		t.Errorf("Description() = %q; missing title", desc)
	}

	example, err := w.Example(ctx, 2018, 7)
	if err != nil {
		t.Fatalf("Example() error = %v", err)
	}
	if example != "3+1\n" {
		t.Errorf("Example() = %q; want 3+1\\n", example)
	}
}

func TestWorkbench_OnePuzzleRowPerRequestedDay(t *testing.T) {
	w, _ := openTestWorkbench(t)
	ctx := context.Background()

	if _, err := w.Input(ctx, 2018, 7); err != nil {
		t.Fatalf("Input() error = %v", err)
	}
	if _, err := w.Description(ctx, 2018, 7); err != nil {
		t.Fatalf("Description() error = %v", err)
	}
	if _, err := w.Example(ctx, 2018, 7); err != nil {
		t.Fatalf("Example() error = %v", err)
	}

	puzzles, err := w.PuzzlesForYear(2018)
	if err != nil {
		t.Fatalf("PuzzlesForYear() error = %v", err)
	}
	if len(puzzles) != 1 {
		t.Errorf("puzzle rows = %d; want exactly 1", len(puzzles))
	}
}

func TestWorkbench_SubmitCorrectAnswer(t *testing.T) {
	w, _ := openTestWorkbench(t)
	ctx := context.Background()

	attempt, err := w.WriteAttempt(ctx, 2018, 7, 1, "4")
	if err != nil {
		t.Fatalf("WriteAttempt() error = %v", err)
	}
	if !attempt.Correct {
		t.Error("Correct = false; want true")
	}

	p, err := w.PuzzleCached(2018, 7)
	if err != nil {
		t.Fatalf("PuzzleCached() error = %v", err)
	}
	if !p.Part1Solved || p.Part1Answer != "4" {
		t.Errorf("puzzle solved=%v answer=%q; want true, 4", p.Part1Solved, p.Part1Answer)
	}

	attempts, err := w.Attempts(2018, 7)
	if err != nil {
		t.Fatalf("Attempts() error = %v", err)
	}
	if len(attempts) != 1 {
		t.Errorf("attempts = %d; want 1", len(attempts))
	}
}

func TestWorkbench_Backfill(t *testing.T) {
	w, site := openTestWorkbench(t)

	if err := w.Backfill(context.Background(), 2018); err != nil {
		t.Fatalf("Backfill() error = %v", err)
	}
	if site.pageHits != 25 {
		t.Errorf("page hits = %d; want 25", site.pageHits)
	}

	puzzles, err := w.PuzzlesForYear(2018)
	if err != nil {
		t.Fatalf("PuzzlesForYear() error = %v", err)
	}
	if len(puzzles) != 25 {
		t.Errorf("cached puzzles = %d; want 25", len(puzzles))
	}

	// A second backfill is all cache hits.
	if err := w.Backfill(context.Background(), 2018); err != nil {
		t.Fatalf("second Backfill() error = %v", err)
	}
	if site.pageHits != 25 {
		t.Errorf("page hits after re-backfill = %d; want still 25", site.pageHits)
	}
}
