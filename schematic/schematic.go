package schematic

import (
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ParseCell classifies a single schematic character.
func ParseCell(r rune) Cell {
	switch {
	case r == '.':
		return Cell{Kind: KindBlank}
	case r >= '0' && r <= '9':
		return Cell{Kind: KindDigit, Digit: int(r - '0')}
	default:
		return Cell{Kind: KindSymbol, Char: r}
	}
}

// Parse builds a Grid from the schematic's lines, one row per line.
// Empty input yields a grid with zero rows.
// Returns ErrInvalidUTF8, annotated with the line number, for a bad row.
// Complexity: O(N) time and memory.
func Parse(lines []string) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	for i, line := range lines {
		if !utf8.ValidString(line) {
			return nil, errors.Wrapf(ErrInvalidUTF8, "line %d", i+1)
		}
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			row = append(row, ParseCell(r))
		}
		rows[i] = row
	}
	return &Grid{Rows: rows}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.Rows)
}

// Width returns the length of row i, or 0 when i is out of range.
func (g *Grid) Width(i int) int {
	if i < 0 || i >= len(g.Rows) {
		return 0
	}
	return len(g.Rows[i])
}

// InBounds reports whether (row,col) addresses an existing cell.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < len(g.Rows) && col >= 0 && col < len(g.Rows[row])
}

// At returns the cell at (row,col). The boolean is false outside the grid,
// which includes positions past the end of a short row.
func (g *Grid) At(row, col int) (Cell, bool) {
	if !g.InBounds(row, col) {
		return Cell{}, false
	}
	return g.Rows[row][col], true
}

// NewVisited returns an empty visited set.
func NewVisited() Visited {
	return make(Visited)
}

// Add marks c as consumed.
func (v Visited) Add(c Coord) {
	v[c] = struct{}{}
}

// Has reports whether c is already consumed.
func (v Visited) Has(c Coord) bool {
	_, ok := v[c]
	return ok
}
