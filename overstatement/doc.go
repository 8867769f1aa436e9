// Package overstatement implements the canonical transformation from a
// raw assorter plus a (MVR, CVR) pair into a bounded sample whose mean
// exceeds 1/2 iff the assertion holds and no net overstatement error
// occurred. A value is negative when the overstatement on that ballot pair
// exceeds the reported margin.
package overstatement
