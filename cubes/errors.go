package cubes

import "errors"

var (
	// ErrMissingColon indicates a line without the ':' header separator.
	ErrMissingColon = errors.New("cubes: bad format: missing ':'")
	// ErrGameID indicates a malformed "Game <n>" header.
	ErrGameID = errors.New("cubes: bad format: game id")
	// ErrSample indicates a malformed "<count> <colour>" entry.
	ErrSample = errors.New("cubes: bad format: sample")
)
