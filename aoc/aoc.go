// Package aoc is the consumer surface for solution programs and tooling:
// puzzle input, example, and description by (year, day), plus answer
// submission through the ledger. Solution programs typically call the
// package-level helpers, which share one lazily opened workbench.
package aoc

import (
	"context"
	"log"
	"sync"

	"aocbench/internal/domain"
)

var openDefault = sync.OnceValues(func() (*Workbench, error) {
	return Open()
})

// GetInput returns the raw input text for (year, day), fetching and caching
// on first use.
func GetInput(year, day int) (string, error) {
	w, err := openDefault()
	if err != nil {
		return "", err
	}
	return w.Input(context.Background(), year, day)
}

// GetExample returns the example block for (year, day).
func GetExample(year, day int) (string, error) {
	w, err := openDefault()
	if err != nil {
		return "", err
	}
	return w.Example(context.Background(), year, day)
}

// GetDescription returns the rendered description: title, part one, and part
// two when revealed.
func GetDescription(year, day int) (string, error) {
	w, err := openDefault()
	if err != nil {
		return "", err
	}
	return w.Description(context.Background(), year, day)
}

// WriteAttempt submits an answer through the ledger and returns the recorded
// attempt.
func WriteAttempt(year, day, level int, answer string) (*domain.Attempt, error) {
	w, err := openDefault()
	if err != nil {
		return nil, err
	}
	return w.WriteAttempt(context.Background(), year, day, level, answer)
}

// MustInput is GetInput for solution programs: any failure is fatal.
func MustInput(year, day int) string {
	input, err := GetInput(year, day)
	if err != nil {
		log.Fatalf("aoc: input %d/%d: %v", year, day, err)
	}
	return input
}

// MustExample is GetExample for solution programs: any failure is fatal.
func MustExample(year, day int) string {
	example, err := GetExample(year, day)
	if err != nil {
		log.Fatalf("aoc: example %d/%d: %v", year, day, err)
	}
	return example
}
