package puzzle_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/puzzle"
)

// TestReadLines reads a small file and checks every line survives without newlines.
func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), puzzle.DefaultInput)
	require.NoError(t, os.WriteFile(path, []byte("467..114..\n...*......\n"), 0o644))

	lines, err := puzzle.ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"467..114..", "...*......"}, lines)
}

// TestReadLines_Missing verifies a missing file surfaces the underlying os error.
func TestReadLines_Missing(t *testing.T) {
	_, err := puzzle.ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)), "want not-exist, got %v", err)
}

// TestScanLines_InvalidUTF8 verifies a bad byte sequence aborts the read.
func TestScanLines_InvalidUTF8(t *testing.T) {
	_, err := puzzle.ScanLines(strings.NewReader("ok\n\xff\xfe\n"))
	require.ErrorIs(t, err, puzzle.ErrInvalidUTF8)
	require.Contains(t, err.Error(), "line 2")
}

// TestScanLines_LongLine verifies rows beyond bufio's default 64 KiB token are read whole.
func TestScanLines_LongLine(t *testing.T) {
	long := strings.Repeat(".", 70000) + "12"
	lines, err := puzzle.ScanLines(strings.NewReader("*\n" + long + "\n."))
	require.NoError(t, err)
	require.Len(t, lines, 3)
	require.Equal(t, long, lines[1])
	require.Equal(t, ".", lines[2])
}

// TestScanLines_Empty verifies empty input yields no lines and no error.
func TestScanLines_Empty(t *testing.T) {
	lines, err := puzzle.ScanLines(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, lines)
}
