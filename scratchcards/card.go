package scratchcards

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/advent/puzzle"
)

// Set is a set of card numbers.
type Set map[int]struct{}

// NewSet returns a Set holding nums.
func NewSet(nums ...int) Set {
	s := make(Set, len(nums))
	for _, n := range nums {
		s[n] = struct{}{}
	}
	return s
}

// Card is one scratchcard.
type Card struct {
	ID      int
	Winners Set
	Numbers Set
}

// Matches returns how many of the card's numbers are winners.
func (c Card) Matches() int {
	n := 0
	for num := range c.Numbers {
		if _, ok := c.Winners[num]; ok {
			n++
		}
	}
	return n
}

// Score returns 0 without matches, else 2^(matches-1).
func (c Card) Score() int {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return 1 << (m - 1)
}

func parseSet(list string) (Set, error) {
	fields := strings.Fields(list)
	s := make(Set, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrNumber, "%q", f)
		}
		s[n] = struct{}{}
	}
	return s, nil
}

// ParseCard parses one "Card <id>: <winners> | <numbers>" line.
func ParseCard(line string) (*Card, error) {
	header, body, ok := strings.Cut(line, ":")
	if !ok {
		return nil, ErrMissingColon
	}
	fields := strings.Fields(header)
	if len(fields) != 2 || fields[0] != "Card" {
		return nil, ErrCardID
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, errors.Wrapf(ErrCardID, "%q: %v", fields[1], err)
	}
	left, right, ok := strings.Cut(body, "|")
	if !ok {
		return nil, ErrMissingBar
	}

	c := &Card{ID: id}
	if c.Winners, err = parseSet(left); err != nil {
		return nil, err
	}
	if c.Numbers, err = parseSet(right); err != nil {
		return nil, err
	}
	return c, nil
}

// ParseCards parses every line, annotating errors with the line number.
func ParseCards(lines []string) ([]Card, error) {
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		c, err := ParseCard(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		cards = append(cards, *c)
	}
	return cards, nil
}

// TotalScore sums the score of every card.
func TotalScore(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Score()
	}
	return sum
}

// TotalCards returns the originals plus every copy won. Card i with m
// matches adds one copy of cards i+1..i+m for each instance of card i held.
// Copies that would fall past the last card are dropped.
func TotalCards(cards []Card) int {
	won := make([]int, len(cards))
	for i, c := range cards {
		multiplier := won[i] + 1
		for j := i + 1; j <= i+c.Matches() && j < len(cards); j++ {
			won[j] += multiplier
		}
	}

	total := len(cards)
	for _, w := range won {
		total += w
	}
	return total
}

// Answers returns the total score and the total number of cards held.
func Answers(_ context.Context, lines []string) ([]puzzle.Answer, error) {
	cards, err := ParseCards(lines)
	if err != nil {
		return nil, err
	}
	return []puzzle.Answer{
		{Label: "part 1", Value: TotalScore(cards)},
		{Label: "part 2", Value: TotalCards(cards)},
	}, nil
}
