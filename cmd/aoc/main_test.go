package main

import (
	"fmt"
	"testing"
	"time"

	"aocbench/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&domain.BadIdentifierError{Field: "year", Value: "2014", Min: 2015, Max: 2025}, exitValidation},
		{fmt.Errorf("submit: %w", &domain.CooldownError{Remaining: 30 * time.Second}), exitState},
		{domain.ErrLevelAlreadySolved, exitState},
		{domain.ErrAnswerAlreadySubmitted, exitState},
		{domain.ErrPartOneNotSolved, exitState},
		{domain.ErrDuplicateAttempt, exitState},
		{&domain.UpstreamError{Status: 500}, exitUpstream},
		{&domain.MissingElementError{Element: "h2"}, exitUpstream},
		{domain.ErrMissingSession, exitUpstream},
		{fmt.Errorf("something else"), exitGeneric},
	}

	for _, tt := range tests {
		if got := exitCode(tt.err); got != tt.want {
			t.Errorf("exitCode(%v) = %d; want %d", tt.err, got, tt.want)
		}
	}
}
