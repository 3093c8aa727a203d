// Package cubes scores the cube-bag game: each game reveals handfuls of red,
// green and blue cubes, and a game is possible when no handful exceeds a
// bag's contents.
//
// Input lines look like "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red".
//
// Errors:
//
//   - ErrMissingColon: no ':' separates the game header from its samples.
//   - ErrGameID: the header is not "Game <n>".
//   - ErrSample: a sample entry is not "<count> <colour>".
package cubes
