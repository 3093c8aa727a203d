package schematic

import "errors"

var (
	// ErrInvalidUTF8 indicates a schematic row that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("schematic: row is not valid UTF-8")
)
