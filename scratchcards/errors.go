package scratchcards

import "errors"

var (
	// ErrMissingColon indicates a line without the ':' header separator.
	ErrMissingColon = errors.New("scratchcards: bad format: missing ':'")
	// ErrMissingBar indicates a line without the '|' between number lists.
	ErrMissingBar = errors.New("scratchcards: bad format: missing '|'")
	// ErrCardID indicates a malformed "Card <n>" header.
	ErrCardID = errors.New("scratchcards: bad format: card id")
	// ErrNumber indicates a list entry that is not a number.
	ErrNumber = errors.New("scratchcards: bad format: number")
)
