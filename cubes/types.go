package cubes

// Sample counts the cubes of each colour in one handful.
type Sample struct {
	Red   int
	Green int
	Blue  int
}

// Power returns Red*Green*Blue.
func (s Sample) Power() int {
	return s.Red * s.Green * s.Blue
}

// Game is one numbered game and its handfuls, in order.
type Game struct {
	ID      int
	Samples []Sample
}

// DefaultLimit is the bag of 12 red, 13 green and 14 blue cubes.
var DefaultLimit = Sample{Red: 12, Green: 13, Blue: 14}
