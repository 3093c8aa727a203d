package schematic

// Kind tags the variant held by a Cell.
type Kind uint8

const (
	// KindBlank is an empty '.' cell.
	KindBlank Kind = iota
	// KindDigit is a '0'..'9' cell; Cell.Digit holds its value.
	KindDigit
	// KindSymbol is any other character; Cell.Char holds it.
	KindSymbol
)

// GearSymbol marks a potential gear.
const GearSymbol = '*'

// Cell is a single parsed schematic character.
type Cell struct {
	Kind  Kind
	Digit int  // valid when Kind == KindDigit
	Char  rune // valid when Kind == KindSymbol
}

// IsDigit reports whether c holds a digit.
func (c Cell) IsDigit() bool { return c.Kind == KindDigit }

// IsSymbol reports whether c holds a symbol.
func (c Cell) IsSymbol() bool { return c.Kind == KindSymbol }

// IsGearSymbol reports whether c is a '*' symbol.
func (c Cell) IsGearSymbol() bool { return c.Kind == KindSymbol && c.Char == GearSymbol }

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// Grid is an immutable schematic. Rows[i][j] is the cell at row i, column j.
// Rows are not padded and may differ in length.
type Grid struct {
	Rows [][]Cell
}

// Visited is the set of coordinates already folded into a counted part number
// during one aggregation pass.
type Visited map[Coord]struct{}

// PartNumber is the value of one maximal horizontal digit run
// spanning columns Start..End (inclusive) of Row.
type PartNumber struct {
	Value      int
	Row        int
	Start, End int
}

// Gear is a '*' symbol adjacent to exactly two part numbers.
type Gear struct {
	At    Coord
	Parts [2]int
}

// Ratio returns the product of the two adjacent part numbers.
func (g Gear) Ratio() int {
	return g.Parts[0] * g.Parts[1]
}

// Result holds the answers of both aggregation passes.
type Result struct {
	PartSum      int
	GearRatioSum int
}
