package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"aocbench/internal/domain"
)

// Version is set at build time via ldflags
var Version = "dev"

// Exit codes, stable for scripting: validation failures, local state
// violations, and upstream failures are distinguishable.
const (
	exitOK         = 0
	exitGeneric    = 1
	exitValidation = 2
	exitState      = 3
	exitUpstream   = 4
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitGeneric)
	}

	setupLogging()

	var err error
	switch os.Args[1] {
	case "fetch":
		err = cmdFetch(os.Args[2:])
	case "input":
		err = cmdInput(os.Args[2:])
	case "example":
		err = cmdExample(os.Args[2:])
	case "show":
		err = cmdShow(os.Args[2:])
	case "submit":
		err = cmdSubmit(os.Args[2:])
	case "attempts":
		err = cmdAttempts(os.Args[2:])
	case "backfill":
		err = cmdBackfill(os.Args[2:])
	case "sweep":
		err = cmdSweep()
	case "status":
		err = cmdStatus(os.Args[2:])
	case "config":
		err = cmdConfig()
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("aoc %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(exitGeneric)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps the error taxonomy onto the documented exit codes.
func exitCode(err error) int {
	var bad *domain.BadIdentifierError
	if errors.As(err, &bad) {
		return exitValidation
	}

	var cooldown *domain.CooldownError
	if errors.As(err, &cooldown) ||
		errors.Is(err, domain.ErrLevelAlreadySolved) ||
		errors.Is(err, domain.ErrAnswerAlreadySubmitted) ||
		errors.Is(err, domain.ErrPartOneNotSolved) ||
		errors.Is(err, domain.ErrDuplicateAttempt) {
		return exitState
	}

	var upstream *domain.UpstreamError
	var missing *domain.MissingElementError
	if errors.As(err, &upstream) || errors.As(err, &missing) || errors.Is(err, domain.ErrMissingSession) {
		return exitUpstream
	}

	return exitGeneric
}

func setupLogging() {
	level := slog.LevelInfo
	if os.Getenv("AOC_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	// Keep stdout for puzzle content so it can be piped.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func printUsage() {
	fmt.Println(`aoc - Advent of Code workbench

Usage:
  aoc <command> [arguments]

Puzzle Commands:
  fetch <year> <day>       Fetch and cache a puzzle (no-op when cached)
  input <year> <day>       Print the raw puzzle input
  example <year> <day>     Print the example block
  show <year> <day>        Print the puzzle description

Submission Commands:
  submit <year> <day> <level> <answer>
                           Submit an answer through the ledger
  attempts <year> <day> [level]
                           List recorded attempts

Bulk Commands:
  backfill <year>          Fetch every uncached day of a year (throttled)
  sweep                    Re-fetch HTML of all cached puzzles (throttled)

Other:
  status [year]            Show solved stars per day
  config                   Show the resolved configuration
  version                  Show version information
  help                     Show this help message

Exit codes:
  0 success, 2 validation error, 3 cooldown or state violation,
  4 upstream error.`)
}
