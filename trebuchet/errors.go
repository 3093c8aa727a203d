package trebuchet

import "errors"

var (
	// ErrNoDigit indicates a line containing no digit at all.
	ErrNoDigit = errors.New("trebuchet: line contains no digit")
)
