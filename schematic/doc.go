// Package schematic reads an engine schematic as a 2D grid of cells and
// extracts the part numbers and gear ratios hidden in it.
//
// What:
//
//   - Parse classifies every character: '.' is blank, '0'..'9' is a digit,
//     anything else is a symbol. Rows may differ in length.
//   - Neighbors enumerates the 8-connected neighbourhood of a cell, clamped
//     to the grid bounds (3 cells at a corner, 5 on an edge, 8 inside).
//   - WalkNumber grows a digit cell left and right into its full multi-digit
//     run and marks every cell of the run as visited.
//   - PartSum adds every run adjacent to any symbol, counting each run once.
//   - GearRatioSum adds, for each '*' touching exactly two runs, their product.
//   - Solve runs both passes concurrently over the shared, read-only grid.
//
// Visited sets:
//
//	Each pass owns one Visited set for its whole row-major scan. A run
//	adjacent to several symbols is credited to whichever symbol reaches it
//	first. The two passes never share a set.
//
// Complexity:
//
//   - Parse:        O(N) time and memory, N = number of characters.
//   - PartSum:      O(N) time, O(N) memory for the visited set.
//   - GearRatioSum: O(N) time, O(N) memory.
//
// Errors:
//
//   - ErrInvalidUTF8: a row is not valid UTF-8.
package schematic
