package puzzle

import "context"

// DefaultInput is the input file every solver reads when no path is given.
const DefaultInput = "input.txt"

// Answer is one labeled result of a puzzle part. Err is set, and Value is
// meaningless, when the input does not admit this part.
type Answer struct {
	Label string
	Value int
	Err   error
}

// Unavailable reports whether the part could not be computed.
func (a Answer) Unavailable() bool { return a.Err != nil }

// SolveFunc computes the answers for one day from its input lines.
type SolveFunc func(ctx context.Context, lines []string) ([]Answer, error)

// Solver binds a SolveFunc to the day it solves.
type Solver struct {
	Day   int
	Title string
	Solve SolveFunc
}
