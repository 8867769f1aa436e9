// Package assorter implements the Assorter: a deterministic, bounded,
// nonnegative function of a cast-vote record used to reduce a claim about
// a contest outcome to a claim about the mean of the assorter's values
// over all ballots.
//
// Rather than storing assort as an opaque closure, an Assorter here carries
// a small tagged variant (see assorter.go) naming the construction it came
// from. This keeps Assertions cheaply copyable and avoids a heap-allocated
// closure per contest/candidate pair when a factory builds thousands of
// them.
package assorter
