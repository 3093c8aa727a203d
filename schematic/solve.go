package schematic

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/advent/puzzle"
)

// Solve runs PartSum and GearRatioSum concurrently over g. Each pass keeps
// its own visited set; g itself is only read. Solve returns ctx.Err() if ctx
// is cancelled before both passes finish.
func Solve(ctx context.Context, g *Grid) (Result, error) {
	var res Result
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		res.PartSum = PartSum(g)
		return egCtx.Err()
	})
	eg.Go(func() error {
		res.GearRatioSum = GearRatioSum(g)
		return egCtx.Err()
	})
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// Answers parses lines and returns the part-number sum and the gear-ratio sum.
func Answers(ctx context.Context, lines []string) ([]puzzle.Answer, error) {
	g, err := Parse(lines)
	if err != nil {
		return nil, err
	}
	res, err := Solve(ctx, g)
	if err != nil {
		return nil, err
	}
	return []puzzle.Answer{
		{Label: "part sum", Value: res.PartSum},
		{Label: "sum of gear ratios", Value: res.GearRatioSum},
	}, nil
}
