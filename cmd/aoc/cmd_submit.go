package main

import (
	"context"
	"fmt"
	"strconv"

	"aocbench/aoc"
	"aocbench/internal/domain"
)

// cmdSubmit pushes an answer through the ledger.
func cmdSubmit(args []string) error {
	if len(args) < 4 {
		return fmt.Errorf("usage: aoc submit <year> <day> <level> <answer>")
	}
	year, day, err := domain.ParseIdent(args[0], args[1])
	if err != nil {
		return err
	}
	level, err := strconv.Atoi(args[2])
	if err != nil {
		return &domain.BadIdentifierError{Field: "level", Value: args[2], Min: 1, Max: 2}
	}
	answer := args[3]

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	attempt, err := w.WriteAttempt(context.Background(), year, day, level, answer)
	if err != nil {
		return err
	}

	switch attempt.ResponseType {
	case domain.ResponseCorrect:
		fmt.Printf("Correct! %d day %d part %d solved with %q.\n", year, day, level, answer)
	case domain.ResponseTooHigh:
		fmt.Printf("Incorrect: %q is too high.\n", answer)
	case domain.ResponseTooLow:
		fmt.Printf("Incorrect: %q is too low.\n", answer)
	case domain.ResponseTooSoon:
		fmt.Println("Submitted too recently; the attempt was recorded, try again after the cooldown.")
	case domain.ResponseWrongLevel:
		fmt.Println("The site reports this is not the level you should be solving.")
	case domain.ResponseIncorrect:
		fmt.Printf("Incorrect: %q is not the right answer.\n", answer)
	default:
		fmt.Println("Unrecognized response; recorded as incorrect. Raw body:")
		fmt.Println(attempt.RawResponse)
	}
	return nil
}

// cmdAttempts lists the recorded history for a puzzle.
func cmdAttempts(args []string) error {
	year, day, err := parseIdentArgs(args, "aoc attempts <year> <day> [level]")
	if err != nil {
		return err
	}
	level := 0
	if len(args) > 2 {
		level, err = strconv.Atoi(args[2])
		if err != nil || (level != 1 && level != 2) {
			return &domain.BadIdentifierError{Field: "level", Value: args[2], Min: 1, Max: 2}
		}
	}

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	attempts, err := w.Attempts(year, day)
	if err != nil {
		if aoc.IsNotFound(err) {
			fmt.Printf("No cached puzzle for %d day %d.\n", year, day)
			return nil
		}
		return err
	}

	shown := 0
	for _, a := range attempts {
		if level != 0 && a.Level != level {
			continue
		}
		shown++
		mark := "✗"
		if a.Correct {
			mark = "★"
		}
		fmt.Printf("%s  %s  part %d  %-22q %s\n", mark, a.Timestamp, a.Level, a.Answer, a.ResponseType)
	}
	if shown == 0 {
		fmt.Printf("No attempts recorded for %d day %d.\n", year, day)
	}
	return nil
}
