package puzzle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/advent/puzzle"
)

func constSolver(day int) puzzle.Solver {
	return puzzle.Solver{
		Day:   day,
		Title: "const",
		Solve: func(context.Context, []string) ([]puzzle.Answer, error) {
			return []puzzle.Answer{{Label: "day", Value: day}}, nil
		},
	}
}

// RegistrySuite exercises registration order, lookups and rejection paths.
type RegistrySuite struct {
	suite.Suite
	reg *puzzle.Registry
}

func (s *RegistrySuite) SetupTest() {
	var err error
	s.reg, err = puzzle.NewRegistry(constSolver(4), constSolver(1), constSolver(3))
	require.NoError(s.T(), err)
}

// TestAllSorted verifies All returns solvers by ascending day regardless of insertion order.
func (s *RegistrySuite) TestAllSorted() {
	var days []int
	for _, sv := range s.reg.All() {
		days = append(days, sv.Day)
	}
	require.Equal(s.T(), []int{1, 3, 4}, days)
}

// TestLookup verifies a registered solver is returned and runnable.
func (s *RegistrySuite) TestLookup() {
	sv, err := s.reg.Lookup(3)
	require.NoError(s.T(), err)
	got, err := sv.Solve(context.Background(), nil)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []puzzle.Answer{{Label: "day", Value: 3}}, got)
}

// TestLookupUnknown verifies ErrUnknownDay for an empty slot.
func (s *RegistrySuite) TestLookupUnknown() {
	_, err := s.reg.Lookup(2)
	require.ErrorIs(s.T(), err, puzzle.ErrUnknownDay)
}

// TestDuplicate verifies a second solver for the same day is refused.
func (s *RegistrySuite) TestDuplicate() {
	require.ErrorIs(s.T(), s.reg.Register(constSolver(1)), puzzle.ErrDuplicateDay)
	require.Len(s.T(), s.reg.All(), 3)
}

// TestNilSolve verifies a solver without a func is refused.
func (s *RegistrySuite) TestNilSolve() {
	require.ErrorIs(s.T(), s.reg.Register(puzzle.Solver{Day: 9}), puzzle.ErrNilSolver)
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

// TestRegistryZeroValue verifies the zero Registry accepts registrations.
func TestRegistryZeroValue(t *testing.T) {
	var r puzzle.Registry
	require.NoError(t, r.Register(constSolver(7)))
	_, err := r.Lookup(7)
	require.NoError(t, err)
}
