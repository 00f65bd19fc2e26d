// https://adventofcode.com/2015/day/1
package main

import (
	"fmt"

	"aocbench/aoc"
)

func finalFloor(input string) int {
	floor := 0
	for _, c := range input {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		}
	}
	return floor
}

func firstBasementPosition(input string) int {
	floor := 0
	for i, c := range input {
		switch c {
		case '(':
			floor++
		case ')':
			floor--
		}
		if floor == -1 {
			return i + 1
		}
	}
	return 0
}

func main() {
	input := aoc.MustInput(2015, 1)
	fmt.Println("part 1:", finalFloor(input))
	fmt.Println("part 2:", firstBasementPosition(input))
}
