package domain

import "fmt"

// CanonicalBaseURL is the public root of the puzzle site, recorded in every
// puzzle row's url column.
const CanonicalBaseURL = "https://adventofcode.com"

// Puzzle is one (year, day) unit of Advent of Code content. A row is created
// on first successful fetch and updated in place as parts get solved; it is
// never deleted.
type Puzzle struct {
	ID   int64
	Year int
	Day  int

	Title            string
	Part1Description string
	Part2Description string
	ExampleText      string
	InputText        string
	RawHTML          string
	URL              string

	Part1Solved bool
	Part2Solved bool
	Part1Answer string
	Part2Answer string
}

// PuzzleURL returns the canonical page URL for a puzzle.
func PuzzleURL(baseURL string, year, day int) string {
	return fmt.Sprintf("%s/%d/day/%d", baseURL, year, day)
}

// Solved reports whether the given level has a recorded correct answer.
func (p *Puzzle) Solved(level int) bool {
	if level == 2 {
		return p.Part2Solved
	}
	return p.Part1Solved
}

// Answer returns the revealed answer for a level, empty until solved.
func (p *Puzzle) Answer(level int) string {
	if level == 2 {
		return p.Part2Answer
	}
	return p.Part1Answer
}

// MarkSolved records a correct answer for a level. Marking part two also
// marks part one, preserving the part_2_solved implies part_1_solved
// invariant even against out-of-order updates.
func (p *Puzzle) MarkSolved(level int, answer string) {
	if level == 2 {
		p.Part2Solved = true
		p.Part2Answer = answer
		p.Part1Solved = true
		return
	}
	p.Part1Solved = true
	p.Part1Answer = answer
}

// Description renders the human-readable puzzle text: title, part one, and
// part two when it has been revealed.
func (p *Puzzle) Description() string {
	s := p.Title + "\n\n" + p.Part1Description
	if p.Part2Description != "" {
		s += "\n\n--- Part Two ---\n\n" + p.Part2Description
	}
	return s
}
