package schematic

// adjacentParts walks every not-yet-visited digit neighbour of (i,j) and
// returns the runs found, in neighbour order. Runs already in visited are
// skipped, so each physical run is returned at most once per pass.
func (g *Grid) adjacentParts(visited Visited, i, j int) []PartNumber {
	var parts []PartNumber
	for _, n := range g.neighbors(i, j) {
		cell, ok := g.At(n.Row, n.Col)
		if !ok || !cell.IsDigit() || visited.Has(n) {
			continue
		}
		parts = append(parts, g.walk(visited, n.Row, n.Col, cell.Digit))
	}
	return parts
}

// Parts returns every part number adjacent to at least one symbol, in the
// order a row-major scan of the symbols discovers them. A run bordering
// several symbols is reported once, for the first symbol that reaches it.
// Complexity: O(N) time and memory.
func Parts(g *Grid) []PartNumber {
	var out []PartNumber
	visited := NewVisited()
	for i, row := range g.Rows {
		for j, cell := range row {
			if !cell.IsSymbol() {
				continue
			}
			out = append(out, g.adjacentParts(visited, i, j)...)
		}
	}
	return out
}

// PartSum returns the sum of all part numbers.
func PartSum(g *Grid) int {
	sum := 0
	for _, p := range Parts(g) {
		sum += p.Value
	}
	return sum
}

// Gears returns every '*' symbol that touches exactly two part numbers.
// The visited set is shared across the whole scan while each '*' starts a
// fresh list, so a run already claimed by an earlier '*' is not counted
// again. Complexity: O(N) time and memory.
func Gears(g *Grid) []Gear {
	var out []Gear
	visited := NewVisited()
	for i, row := range g.Rows {
		for j, cell := range row {
			if !cell.IsGearSymbol() {
				continue
			}
			parts := g.adjacentParts(visited, i, j)
			if len(parts) != 2 {
				continue
			}
			out = append(out, Gear{
				At:    Coord{Row: i, Col: j},
				Parts: [2]int{parts[0].Value, parts[1].Value},
			})
		}
	}
	return out
}

// GearRatioSum returns the sum of all gear ratios.
func GearRatioSum(g *Grid) int {
	sum := 0
	for _, gear := range Gears(g) {
		sum += gear.Ratio()
	}
	return sum
}
