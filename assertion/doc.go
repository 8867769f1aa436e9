// Package assertion builds the assertions — "the mean of this assorter
// over all ballots exceeds 1/2" — that jointly imply a reported contest
// outcome is correct, for plurality, supermajority, and RAIRE-style IRV
// contests.
package assertion
