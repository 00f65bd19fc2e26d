// https://adventofcode.com/2018/day/7
package main

import (
	"fmt"
	"strings"

	"aocbench/aoc"
)

// deps maps each step to the set of steps that must finish first.
func parseDeps(input string) map[byte]map[byte]bool {
	deps := map[byte]map[byte]bool{}
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		// "Step C must be finished before step A can begin."
		if len(line) < 37 || !strings.HasPrefix(line, "Step ") {
			continue
		}
		before, after := line[5], line[36]
		if deps[before] == nil {
			deps[before] = map[byte]bool{}
		}
		if deps[after] == nil {
			deps[after] = map[byte]bool{}
		}
		deps[after][before] = true
	}
	return deps
}

// order runs the steps one at a time, alphabetical tie-break.
func order(deps map[byte]map[byte]bool) string {
	done := map[byte]bool{}
	var out []byte
	for len(out) < len(deps) {
		next := byte(0)
		for step := 'A'; step <= 'Z'; step++ {
			s := byte(step)
			if _, ok := deps[s]; !ok || done[s] {
				continue
			}
			ready := true
			for dep := range deps[s] {
				if !done[dep] {
					ready = false
					break
				}
			}
			if ready {
				next = s
				break
			}
		}
		if next == 0 {
			break
		}
		done[next] = true
		out = append(out, next)
	}
	return string(out)
}

// parallelTime runs the steps with the given worker count, each step taking
// base + (letter index) seconds.
func parallelTime(deps map[byte]map[byte]bool, workers, base int) int {
	done := map[byte]bool{}
	finish := map[byte]int{} // in-flight step -> completion second
	elapsed := 0

	for len(done) < len(deps) {
		for step, at := range finish {
			if at <= elapsed {
				done[step] = true
				delete(finish, step)
			}
		}

		for step := 'A'; step <= 'Z' && len(finish) < workers; step++ {
			s := byte(step)
			if _, ok := deps[s]; !ok || done[s] {
				continue
			}
			if _, running := finish[s]; running {
				continue
			}
			ready := true
			for dep := range deps[s] {
				if !done[dep] {
					ready = false
					break
				}
			}
			if ready {
				finish[s] = elapsed + base + int(s-'A') + 1
			}
		}

		if len(done) < len(deps) {
			next := -1
			for _, at := range finish {
				if next == -1 || at < next {
					next = at
				}
			}
			if next == -1 {
				break
			}
			elapsed = next
		}
	}
	return elapsed
}

func main() {
	deps := parseDeps(aoc.MustInput(2018, 7))
	fmt.Println("part 1:", order(deps))
	fmt.Println("part 2:", parallelTime(deps, 5, 60))
}
