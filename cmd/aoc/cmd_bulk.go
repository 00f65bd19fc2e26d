package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"aocbench/aoc"
	"aocbench/internal/domain"
)

// interruptibleContext cancels on Ctrl-C so a bulk run stops between
// requests rather than mid-write.
func interruptibleContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// cmdBackfill fetches every uncached day of one year.
func cmdBackfill(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: aoc backfill <year>")
	}
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return &domain.BadIdentifierError{Field: "year", Value: args[0], Min: domain.FirstYear, Max: domain.LatestYear}
	}

	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := interruptibleContext()
	defer stop()

	if err := w.Backfill(ctx, year); err != nil {
		return err
	}
	fmt.Printf("Backfill of %d complete.\n", year)
	return nil
}

// cmdSweep re-fetches the HTML of every cached puzzle.
func cmdSweep() error {
	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := interruptibleContext()
	defer stop()

	if err := w.Sweep(ctx); err != nil {
		return err
	}
	fmt.Println("Sweep complete.")
	return nil
}
