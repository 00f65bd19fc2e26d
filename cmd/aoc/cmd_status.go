package main

import (
	"fmt"
	"strconv"
	"strings"

	"aocbench/aoc"
	"aocbench/internal/domain"
)

// cmdStatus prints a star grid of the cached progress.
func cmdStatus(args []string) error {
	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	years, err := w.Years()
	if err != nil {
		return err
	}
	if len(args) > 0 {
		year, err := strconv.Atoi(args[0])
		if err != nil {
			return &domain.BadIdentifierError{Field: "year", Value: args[0], Min: domain.FirstYear, Max: domain.LatestYear}
		}
		years = []int{year}
	}

	if len(years) == 0 {
		fmt.Println("No cached puzzles yet. Try: aoc fetch 2015 1")
		return nil
	}

	for _, year := range years {
		puzzles, err := w.PuzzlesForYear(year)
		if err != nil {
			return err
		}

		stars := 0
		var row strings.Builder
		byDay := make(map[int]*domain.Puzzle, len(puzzles))
		for _, p := range puzzles {
			byDay[p.Day] = p
		}
		for day := domain.FirstDay; day <= domain.LastDay; day++ {
			p, ok := byDay[day]
			switch {
			case !ok:
				row.WriteString(".")
			case p.Part2Solved:
				row.WriteString("★")
				stars += 2
			case p.Part1Solved:
				row.WriteString("☆")
				stars++
			default:
				row.WriteString("0")
			}
		}
		fmt.Printf("%d  %s  %2d stars, %d cached\n", year, row.String(), stars, len(puzzles))
	}
	return nil
}

// cmdConfig shows the resolved configuration with the session masked.
func cmdConfig() error {
	w, err := aoc.Open()
	if err != nil {
		return err
	}
	defer w.Close()

	cfg := w.Config()
	session := "(not set)"
	if cfg.Session != "" {
		session = "set (" + strconv.Itoa(len(cfg.Session)) + " chars)"
	}

	fmt.Println("Configuration")
	fmt.Println("=============")
	fmt.Printf("Session:        %s\n", session)
	fmt.Printf("Data dir:       %s\n", cfg.DataDir)
	fmt.Printf("Database:       %s\n", cfg.DBPath)
	fmt.Printf("Base URL:       %s\n", cfg.BaseURL)
	fmt.Printf("Fetch interval: %s\n", cfg.FetchInterval)
	fmt.Printf("Sweep interval: %s\n", cfg.SweepInterval)
	fmt.Printf("Timezone:       %s\n", cfg.Location)
	return nil
}
