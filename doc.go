// Package advent is a set of Advent of Code 2023 solvers, one package per
// puzzle, each reading a small text file and computing two answers.
//
// Packages:
//
//   - puzzle:       input reading, labeled answers and the day registry.
//   - trebuchet:    day 1, first and last digit of every line.
//   - cubes:        day 2, which cube games are possible and their minimal bags.
//   - schematic:    day 3, part numbers and gear ratios on an engine schematic.
//   - scratchcards: day 4, card scores and the copy-winning sweep.
//
// The cmd/advent binary wires every solver behind a small CLI:
//
//	advent day 3 --input input.txt
//	advent all --dir .
package advent
