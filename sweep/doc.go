// Package sweep advances a counter across a grid of blocks and tallies how
// many of the counter values are divisible by two, three and five.
//
// The grid and block dimensions only determine how many values are visited.
// Divisibility is always tested against the sequential counter value 1..N,
// so any split of the bounds with the same product yields the same Tally.
package sweep
