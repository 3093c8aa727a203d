package trebuchet

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/puzzle"
)

// words maps each spelled digit to its value; index 0 is unused since
// "zero" does not count.
var words = [...]string{"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitAt reports the digit starting at byte offset i of line.
func digitAt(line string, i int, spelled bool) (int, bool) {
	if b := line[i]; b >= '0' && b <= '9' {
		return int(b - '0'), true
	}
	if !spelled {
		return 0, false
	}
	for d := 1; d < len(words); d++ {
		if strings.HasPrefix(line[i:], words[d]) {
			return d, true
		}
	}
	return 0, false
}

// FirstDigit returns the leftmost digit of line.
func FirstDigit(line string, spelled bool) (int, bool) {
	for i := 0; i < len(line); i++ {
		if d, ok := digitAt(line, i, spelled); ok {
			return d, true
		}
	}
	return 0, false
}

// LastDigit returns the rightmost digit of line.
func LastDigit(line string, spelled bool) (int, bool) {
	for i := len(line) - 1; i >= 0; i-- {
		if d, ok := digitAt(line, i, spelled); ok {
			return d, true
		}
	}
	return 0, false
}

// CalibrationValue combines the first and last digit of line into a two-digit
// number. A single digit is used for both places. Returns ErrNoDigit.
func CalibrationValue(line string, spelled bool) (int, error) {
	first, ok := FirstDigit(line, spelled)
	if !ok {
		return 0, ErrNoDigit
	}
	last, _ := LastDigit(line, spelled)
	return 10*first + last, nil
}

// Sum adds the calibration values of every line.
func Sum(lines []string, spelled bool) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := CalibrationValue(line, spelled)
		if err != nil {
			return 0, errors.Wrapf(err, "line %d", i+1)
		}
		sum += v
	}
	return sum, nil
}

// Answers returns the digit-only sum and the spelled-digit sum. The parts
// are computed independently: a line with only spelled digits leaves part 1
// unavailable (Answer.Err set) but part 2 intact. An error is returned only
// when neither part can be computed.
func Answers(_ context.Context, lines []string) ([]puzzle.Answer, error) {
	p1, err1 := Sum(lines, false)
	p2, err2 := Sum(lines, true)
	if err2 != nil {
		// Every numeric digit also counts in spelled mode, so part 1 failed too.
		return nil, err2
	}
	return []puzzle.Answer{
		{Label: "part 1", Value: p1, Err: err1},
		{Label: "part 2", Value: p2},
	}, nil
}
