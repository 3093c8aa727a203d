// Package puzzle holds the plumbing shared by the daily solvers of
// github.com/katalvlaran/advent.
//
// What:
//
//   - ReadLines loads one puzzle input, one string per line, rejecting
//     content that is not valid UTF-8.
//   - Answer is a labeled numeric result; every solver returns one per part.
//   - Registry keeps Solvers ordered by day so a front end can look one up
//     or run them all.
//
// Errors:
//
//   - ErrInvalidUTF8: a line of the input is not valid UTF-8.
//   - ErrDuplicateDay: a solver for the same day is already registered.
//   - ErrUnknownDay: no solver is registered for the requested day.
//   - ErrNilSolver: Register was given a solver without a Solve func.
package puzzle
