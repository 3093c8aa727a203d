package schematic

// WalkNumber expands the digit at (row,col), whose value is digit, into its
// maximal horizontal run and returns the run's value, most significant
// digit first. Every cell of the run is added to visited.
//
// The caller must have checked that (row,col) holds a digit.
func WalkNumber(g *Grid, visited Visited, row, col, digit int) int {
	return g.walk(visited, row, col, digit).Value
}

// walk is WalkNumber returning the run's extent as well as its value.
func (g *Grid) walk(visited Visited, row, col, digit int) PartNumber {
	cells := g.Rows[row]
	visited.Add(Coord{Row: row, Col: col})

	start := col
	for start > 0 && cells[start-1].IsDigit() {
		start--
		visited.Add(Coord{Row: row, Col: start})
	}
	end := col
	for end+1 < len(cells) && cells[end+1].IsDigit() {
		end++
		visited.Add(Coord{Row: row, Col: end})
	}

	value := 0
	for c := start; c <= end; c++ {
		d := cells[c].Digit
		if c == col {
			d = digit
		}
		value = value*10 + d
	}
	return PartNumber{Value: value, Row: row, Start: start, End: end}
}
