package days

import (
	"fmt"
	"strconv"
	"strings"

	"aoc2021/puzzle"
)

// Day 1: sonar sweep.
var (
	Day1First  = puzzle.Define(1, puzzle.First, parseDepths, countIncreases)
	Day1Second = puzzle.Define(1, puzzle.Second, parseDepths, countWindowIncreases)
)

// parseDepths reads one unsigned depth per line.
func parseDepths(raw string) ([]uint32, error) {
	lines := strings.Split(raw, "\n")
	depths := make([]uint32, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		depths = append(depths, uint32(n))
	}
	return depths, nil
}

func countIncreases(depths []uint32) (int, error) {
	count := 0
	for i := 1; i < len(depths); i++ {
		if depths[i-1] < depths[i] {
			count++
		}
	}
	return count, nil
}

// countWindowIncreases compares sums of consecutive three-depth windows.
func countWindowIncreases(depths []uint32) (int, error) {
	const width = 3
	if len(depths) < width {
		return 0, nil
	}
	sums := make([]uint64, 0, len(depths)-width+1)
	for i := 0; i+width <= len(depths); i++ {
		var s uint64
		for _, d := range depths[i : i+width] {
			s += uint64(d)
		}
		sums = append(sums, s)
	}
	count := 0
	for i := 1; i < len(sums); i++ {
		if sums[i-1] < sums[i] {
			count++
		}
	}
	return count, nil
}
