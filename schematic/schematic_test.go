package schematic_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/schematic"
)

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParseCell verifies the three-way classification of characters.
func TestParseCell(t *testing.T) {
	cases := map[rune]schematic.Cell{
		'.': {Kind: schematic.KindBlank},
		'0': {Kind: schematic.KindDigit, Digit: 0},
		'7': {Kind: schematic.KindDigit, Digit: 7},
		'*': {Kind: schematic.KindSymbol, Char: '*'},
		'#': {Kind: schematic.KindSymbol, Char: '#'},
		'é': {Kind: schematic.KindSymbol, Char: 'é'},
	}
	for r, want := range cases {
		if diff := cmp.Diff(want, schematic.ParseCell(r)); diff != "" {
			t.Errorf("ParseCell(%q) mismatch (-want +got):\n%s", r, diff)
		}
	}
}

// TestParse_Ragged verifies rows keep their own length and are not padded.
func TestParse_Ragged(t *testing.T) {
	g, err := schematic.Parse([]string{"1.*", "", "é9"})
	require.NoError(t, err)
	require.Equal(t, 3, g.Height())
	require.Equal(t, 3, g.Width(0))
	require.Equal(t, 0, g.Width(1))
	require.Equal(t, 2, g.Width(2), "multi-byte runes count as one cell")
	require.Equal(t, 0, g.Width(7))

	c, ok := g.At(2, 1)
	require.True(t, ok)
	require.Equal(t, 9, c.Digit)

	_, ok = g.At(1, 0)
	require.False(t, ok, "empty row has no cells")
	_, ok = g.At(-1, 0)
	require.False(t, ok)
}

// TestParse_Empty verifies empty input produces a zero-row grid.
func TestParse_Empty(t *testing.T) {
	g, err := schematic.Parse(nil)
	require.NoError(t, err)
	require.Zero(t, g.Height())
}

// TestParse_InvalidUTF8 verifies a bad row aborts parsing with its line number.
func TestParse_InvalidUTF8(t *testing.T) {
	_, err := schematic.Parse([]string{"...", "1\xff2"})
	require.ErrorIs(t, err, schematic.ErrInvalidUTF8)
	require.Contains(t, err.Error(), "line 2")
}

// TestCellPredicates checks the gear predicate only holds for '*'.
func TestCellPredicates(t *testing.T) {
	require.True(t, schematic.ParseCell('*').IsGearSymbol())
	require.False(t, schematic.ParseCell('#').IsGearSymbol())
	require.True(t, schematic.ParseCell('#').IsSymbol())
	require.False(t, schematic.ParseCell('3').IsSymbol())
	require.True(t, schematic.ParseCell('3').IsDigit())
	require.False(t, schematic.ParseCell('.').IsDigit())
}
