package puzzle

import "errors"

var (
	// ErrInvalidUTF8 indicates an input line that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("puzzle: input is not valid UTF-8")
	// ErrDuplicateDay indicates a second solver registered for the same day.
	ErrDuplicateDay = errors.New("puzzle: solver already registered for day")
	// ErrUnknownDay indicates a lookup for a day nobody registered.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")
	// ErrNilSolver indicates a Solver with a nil Solve func.
	ErrNilSolver = errors.New("puzzle: solver has no Solve func")
)
