package puzzle

import (
	"bufio"
	"io"
	"math"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ReadLines opens path and returns its lines without trailing newlines.
// A missing or unreadable file and non-UTF-8 content are both reported
// as errors; no partial result is returned.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open input %s", path)
	}
	defer f.Close()

	lines, err := ScanLines(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read input %s", path)
	}
	return lines, nil
}

// ScanLines reads r to EOF, one entry per line. Lines have no length limit.
func ScanLines(r io.Reader) ([]string, error) {
	var lines []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for n := 1; s.Scan(); n++ {
		line := s.Text()
		if !utf8.ValidString(line) {
			return nil, errors.Wrapf(ErrInvalidUTF8, "line %d", n)
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
