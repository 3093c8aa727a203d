package cmd

import (
	"context"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/advent/cubes"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/schematic"
	"github.com/katalvlaran/advent/scratchcards"
	"github.com/katalvlaran/advent/trebuchet"
)

// registry returns every solver this binary knows about.
func registry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		puzzle.Solver{Day: 1, Title: "Trebuchet?!", Solve: trebuchet.Answers},
		puzzle.Solver{Day: 2, Title: "Cube Conundrum", Solve: cubes.Answers},
		puzzle.Solver{Day: 3, Title: "Gear Ratios", Solve: schematic.Answers},
		puzzle.Solver{Day: 4, Title: "Scratchcards", Solve: scratchcards.Answers},
	)
}

// run reads path and feeds it to s.
func run(ctx context.Context, s puzzle.Solver, path string) ([]puzzle.Answer, error) {
	log := logrus.WithFields(logrus.Fields{"day": s.Day, "input": path})

	lines, err := puzzle.ReadLines(path)
	if err != nil {
		return nil, err
	}
	rows, cols := gridSize(lines)
	log.WithFields(logrus.Fields{"rows": rows, "cols": cols}).Debug("read input")

	start := time.Now()
	answers, err := s.Solve(ctx, lines)
	if err != nil {
		return nil, errors.Wrapf(err, "day %d", s.Day)
	}
	log.WithField("elapsed", time.Since(start)).Debug("solved")
	for _, a := range answers {
		if a.Unavailable() {
			log.Warnf("%s unavailable: %v", a.Label, a.Err)
		}
	}
	return answers, nil
}

// gridSize returns the line count and the widest line in characters.
func gridSize(lines []string) (rows, cols int) {
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}
	return len(lines), cols
}

// formatValue renders an answer's value, or "unavailable" for a part the
// input does not admit.
func formatValue(a puzzle.Answer) string {
	if a.Unavailable() {
		return "unavailable"
	}
	return strconv.Itoa(a.Value)
}
