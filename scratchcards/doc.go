// Package scratchcards scores lottery cards of the form
// "Card 1: 41 48 83 | 83 86 6 31", winning numbers left of the bar and the
// numbers you have on the right.
//
// A card's score starts at 1 for its first match and doubles for every
// further match. In the second reading each match wins copies of the cards
// that follow it. TotalCards counts them with one forward sweep that carries
// a per-card multiplier.
package scratchcards
