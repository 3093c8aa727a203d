package schematic

// neighborOffsets lists the 8-connected (row, col) offsets in row-major order.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Neighbors returns the in-bounds 8-neighbourhood of cell (i,j), where the
// grid has rows rows and the cell's row has rowLen columns. The same rowLen
// bounds the rows above and below. The result depends only on the four
// arguments and is ordered row-major: 8 coordinates inside, 5 on an edge,
// 3 in a corner. Complexity: O(1).
func Neighbors(i, rows, j, rowLen int) []Coord {
	out := make([]Coord, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, c := i+d[0], j+d[1]
		if r < 0 || r >= rows || c < 0 || c >= rowLen {
			continue
		}
		out = append(out, Coord{Row: r, Col: c})
	}
	return out
}

// neighbors returns the neighbourhood of (i,j) bounded by g's dimensions.
func (g *Grid) neighbors(i, j int) []Coord {
	return Neighbors(i, g.Height(), j, g.Width(i))
}
