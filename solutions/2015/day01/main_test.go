package main

import "testing"

func TestFinalFloor(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"(())", 0},
		{"()()", 0},
		{"(((", 3},
		{"))(((((", 3},
		{"())", -1},
		{")))", -3},
	}
	for _, tt := range tests {
		if got := finalFloor(tt.input); got != tt.want {
			t.Errorf("finalFloor(%q) = %d; want %d", tt.input, got, tt.want)
		}
	}
}

func TestFirstBasementPosition(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{")", 1},
		{"()())", 5},
	}
	for _, tt := range tests {
		if got := firstBasementPosition(tt.input); got != tt.want {
			t.Errorf("firstBasementPosition(%q) = %d; want %d", tt.input, got, tt.want)
		}
	}
}
