package puzzle

import (
	"sort"

	"github.com/pkg/errors"
)

// Registry is an ordered, day-indexed set of solvers.
// The zero value is ready to use; it is not safe for concurrent Register.
type Registry struct {
	byDay map[int]Solver
	days  []int
}

// NewRegistry returns a Registry holding the given solvers.
func NewRegistry(solvers ...Solver) (*Registry, error) {
	r := &Registry{}
	for _, s := range solvers {
		if err := r.Register(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds s. Returns ErrNilSolver or ErrDuplicateDay.
func (r *Registry) Register(s Solver) error {
	if s.Solve == nil {
		return errors.Wrapf(ErrNilSolver, "day %d", s.Day)
	}
	if r.byDay == nil {
		r.byDay = make(map[int]Solver)
	}
	if _, ok := r.byDay[s.Day]; ok {
		return errors.Wrapf(ErrDuplicateDay, "day %d", s.Day)
	}
	r.byDay[s.Day] = s
	r.days = append(r.days, s.Day)
	sort.Ints(r.days)
	return nil
}

// Lookup returns the solver registered for day, or ErrUnknownDay.
func (r *Registry) Lookup(day int) (Solver, error) {
	s, ok := r.byDay[day]
	if !ok {
		return Solver{}, errors.Wrapf(ErrUnknownDay, "day %d", day)
	}
	return s, nil
}

// All returns every solver in ascending day order.
func (r *Registry) All() []Solver {
	out := make([]Solver, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, r.byDay[d])
	}
	return out
}
