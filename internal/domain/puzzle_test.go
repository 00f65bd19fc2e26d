package domain

import (
	"strings"
	"testing"
)

func TestPuzzle_MarkSolved(t *testing.T) {
	p := &Puzzle{Year: 2018, Day: 7}

	p.MarkSolved(1, "3176")
	if !p.Part1Solved || p.Part1Answer != "3176" {
		t.Errorf("after MarkSolved(1): solved=%v answer=%q; want true, 3176", p.Part1Solved, p.Part1Answer)
	}
	if p.Part2Solved {
		t.Error("Part2Solved = true; want false")
	}

	p.MarkSolved(2, "ABLDNFWMCJRVHQITXKEUZOSYPG")
	if !p.Part2Solved || p.Part2Answer != "ABLDNFWMCJRVHQITXKEUZOSYPG" {
		t.Errorf("after MarkSolved(2): solved=%v answer=%q", p.Part2Solved, p.Part2Answer)
	}
}

func TestPuzzle_MarkSolvedPartTwoImpliesPartOne(t *testing.T) {
	p := &Puzzle{Year: 2018, Day: 7}
	p.MarkSolved(2, "x")
	if !p.Part1Solved {
		t.Error("Part1Solved = false after part two solved; invariant broken")
	}
}

func TestPuzzle_Description(t *testing.T) {
	p := &Puzzle{
		Title:            "--- Day 7: The Sum of Its Parts ---",
		Part1Description: "The instructions must be completed in order.",
	}

	got := p.Description()
	if !strings.Contains(got, p.Title) || !strings.Contains(got, p.Part1Description) {
		t.Errorf("Description() = %q; missing title or part one", got)
	}
	if strings.Contains(got, "Part Two") {
		t.Errorf("Description() = %q; part two heading present without part two text", got)
	}

	p.Part2Description = "Now count the seconds with five workers."
	got = p.Description()
	if !strings.Contains(got, "--- Part Two ---") || !strings.Contains(got, p.Part2Description) {
		t.Errorf("Description() = %q; missing part two section", got)
	}
}

func TestPuzzle_SolvedAndAnswer(t *testing.T) {
	p := &Puzzle{Part1Solved: true, Part1Answer: "42"}
	if !p.Solved(1) || p.Solved(2) {
		t.Errorf("Solved = (%v, %v); want (true, false)", p.Solved(1), p.Solved(2))
	}
	if p.Answer(1) != "42" || p.Answer(2) != "" {
		t.Errorf("Answer = (%q, %q); want (42, empty)", p.Answer(1), p.Answer(2))
	}
}
