// Package cvr represents cast-vote records (CVRs) — the machine's record
// of marks on a single ballot, across one or more contests — and the
// handful of pure functions over them needed to reduce plurality,
// supermajority, and IRV outcomes to assertions.
//
// A CVR does not itself enforce any voting rule: a CVR is free to carry
// two marks in a plurality contest, or no marks at all. Interpretation of
// what a given pattern of marks means for a given social choice function
// lives in package assertion.
package cvr
