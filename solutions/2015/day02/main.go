// https://adventofcode.com/2015/day/2
package main

import (
	"fmt"
	"sort"
	"strings"

	"aocbench/aoc"
)

type box struct{ l, w, h int }

func parseBoxes(input string) []box {
	var boxes []box
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		var b box
		if _, err := fmt.Sscanf(line, "%dx%dx%d", &b.l, &b.w, &b.h); err == nil {
			boxes = append(boxes, b)
		}
	}
	return boxes
}

func (b box) paper() int {
	sides := []int{b.l * b.w, b.w * b.h, b.h * b.l}
	sort.Ints(sides)
	return 2*sides[0] + 2*sides[1] + 2*sides[2] + sides[0]
}

func (b box) ribbon() int {
	dims := []int{b.l, b.w, b.h}
	sort.Ints(dims)
	return 2*dims[0] + 2*dims[1] + b.l*b.w*b.h
}

func main() {
	boxes := parseBoxes(aoc.MustInput(2015, 2))
	paper, ribbon := 0, 0
	for _, b := range boxes {
		paper += b.paper()
		ribbon += b.ribbon()
	}
	fmt.Println("part 1:", paper)
	fmt.Println("part 2:", ribbon)
}
