package main

import (
	"context"
	"fmt"

	"aocbench/aoc"
	"aocbench/internal/domain"
)

// parseIdentArgs normalizes the common <year> <day> argument pair.
func parseIdentArgs(args []string, usage string) (int, int, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("usage: %s", usage)
	}
	return domain.ParseIdent(args[0], args[1])
}

// cmdFetch resolves a puzzle into the cache and prints a short summary.
func cmdFetch(args []string) error {
	year, day, err := parseIdentArgs(args, "aoc fetch <year> <day>")
	if err != nil {
		return err
	}

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	p, err := w.Puzzle(context.Background(), year, day)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", p.Title)
	fmt.Printf("  input:   %d bytes\n", len(p.InputText))
	fmt.Printf("  example: %d bytes\n", len(p.ExampleText))
	fmt.Printf("  part 1:  %s\n", solvedMark(p, 1))
	fmt.Printf("  part 2:  %s\n", solvedMark(p, 2))
	return nil
}

// cmdInput prints the raw input so it can be piped into other tools.
func cmdInput(args []string) error {
	year, day, err := parseIdentArgs(args, "aoc input <year> <day>")
	if err != nil {
		return err
	}

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	input, err := w.Input(context.Background(), year, day)
	if err != nil {
		return err
	}
	fmt.Print(input)
	return nil
}

// cmdExample prints the example block.
func cmdExample(args []string) error {
	year, day, err := parseIdentArgs(args, "aoc example <year> <day>")
	if err != nil {
		return err
	}

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	example, err := w.Example(context.Background(), year, day)
	if err != nil {
		return err
	}
	fmt.Print(example)
	return nil
}

// cmdShow prints the rendered description.
func cmdShow(args []string) error {
	year, day, err := parseIdentArgs(args, "aoc show <year> <day>")
	if err != nil {
		return err
	}

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	desc, err := w.Description(context.Background(), year, day)
	if err != nil {
		return err
	}
	fmt.Println(desc)
	return nil
}

func solvedMark(p *domain.Puzzle, level int) string {
	if p.Solved(level) {
		return "solved (" + p.Answer(level) + ")"
	}
	return "open"
}
