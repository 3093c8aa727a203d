package schematic_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/katalvlaran/advent/schematic"
)

// randomSchematic builds a deterministic n×n schematic of blanks, digit runs
// and sparse symbols.
func randomSchematic(n int) []string {
	rng := rand.New(rand.NewSource(42))
	const symbols = "*#$+/=@%&-"
	lines := make([]string, n)
	for y := 0; y < n; y++ {
		row := make([]byte, n)
		for x := 0; x < n; x++ {
			switch p := rng.Intn(10); {
			case p < 5:
				row[x] = '.'
			case p < 9:
				row[x] = byte('0' + rng.Intn(10))
			default:
				row[x] = symbols[rng.Intn(len(symbols))]
			}
		}
		lines[y] = string(row)
	}
	return lines
}

// BenchmarkParse measures parsing a 500×500 schematic.
// Complexity: O(W×H)
func BenchmarkParse(b *testing.B) {
	lines := randomSchematic(500)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = schematic.Parse(lines)
	}
}

// BenchmarkPartSum measures the part-number pass on a 500×500 schematic.
// Complexity: O(W×H)
func BenchmarkPartSum(b *testing.B) {
	g, err := schematic.Parse(randomSchematic(500))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = schematic.PartSum(g)
	}
}

// BenchmarkSolve measures both passes run concurrently.
func BenchmarkSolve(b *testing.B) {
	g, err := schematic.Parse(randomSchematic(500))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = schematic.Solve(ctx, g)
	}
}
