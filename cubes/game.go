package cubes

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/puzzle"
)

// ParseGame parses one "Game <id>: <samples>" line. Samples are separated by
// ';' and colour counts within a sample by ','. Unknown colours are ignored.
func ParseGame(line string) (*Game, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return nil, ErrMissingColon
	}
	id, ok := strings.CutPrefix(header, "Game ")
	if !ok {
		return nil, ErrGameID
	}
	var g Game
	var err error
	if g.ID, err = strconv.Atoi(id); err != nil {
		return nil, errors.Wrapf(ErrGameID, "%q: %v", id, err)
	}

	for _, sample := range strings.Split(body, ";") {
		var s Sample
		for _, count := range strings.Split(sample, ",") {
			fields := strings.Fields(count)
			if len(fields) != 2 {
				return nil, errors.Wrapf(ErrSample, "%q", strings.TrimSpace(count))
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, errors.Wrapf(ErrSample, "%q: %v", fields[0], err)
			}
			switch fields[1] {
			case "red":
				s.Red = n
			case "green":
				s.Green = n
			case "blue":
				s.Blue = n
			}
		}
		g.Samples = append(g.Samples, s)
	}
	return &g, nil
}

// IsPossible reports whether every sample of g fits within limit.
func IsPossible(g Game, limit Sample) bool {
	for _, s := range g.Samples {
		if s.Red > limit.Red || s.Green > limit.Green || s.Blue > limit.Blue {
			return false
		}
	}
	return true
}

// MinColors returns the fewest cubes of each colour that make g possible.
func MinColors(g Game) Sample {
	var need Sample
	for _, s := range g.Samples {
		need.Red = max(need.Red, s.Red)
		need.Green = max(need.Green, s.Green)
		need.Blue = max(need.Blue, s.Blue)
	}
	return need
}

// ParseGames parses every line, annotating errors with the line number.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for i, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		games = append(games, *g)
	}
	return games, nil
}

// Answers returns the sum of the IDs of games possible with DefaultLimit and
// the sum of the powers of every game's minimal bag.
func Answers(_ context.Context, lines []string) ([]puzzle.Answer, error) {
	games, err := ParseGames(lines)
	if err != nil {
		return nil, err
	}
	var ids, power int
	for _, g := range games {
		if IsPossible(g, DefaultLimit) {
			ids += g.ID
		}
		power += MinColors(g).Power()
	}
	return []puzzle.Answer{
		{Label: "part 1", Value: ids},
		{Label: "part 2", Value: power},
	}, nil
}
