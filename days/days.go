// Package days contains the parse and compute steps for each solved day.
package days

import "aoc2021/puzzle"

// RegisterAll adds every solved stage to r.
func RegisterAll(r *puzzle.Registry) {
	puzzle.Register(r, Day1First)
	puzzle.Register(r, Day1Second)
}
