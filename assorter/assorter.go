package assorter

import "github.com/rla-audit/shangrla-core/cvr"

// Func maps a CVR to a nonnegative real. Used for direct construction and
// for the winner/loser indicator pair form.
type Func func(c cvr.CVR) float64

// variant is the tagged-union member implementing one construction of an
// Assorter. Unexported: callers build an Assorter through one of the New*
// constructors, never by hand.
type variant interface {
	assort(c cvr.CVR) float64
}

// Assorter is an immutable, deterministic function of a CVR bounded to
// [0, UpperBound], plus the contest it applies to.
type Assorter struct {
	ContestID  string
	UpperBound float64
	v          variant
}

// Assort evaluates the assorter on c. The result is guaranteed to lie in
// [0, a.UpperBound] provided the inputs used to build a satisfy the
// invariants documented on each constructor.
func (a Assorter) Assort(c cvr.CVR) float64 {
	return a.v.assort(c)
}

func b2f(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// directVariant wraps a caller-supplied assort function directly.
type directVariant struct{ fn Func }

func (d directVariant) assort(c cvr.CVR) float64 { return d.fn(c) }

// NewDirect builds an Assorter from an explicit assort function and its a
// priori upper bound. Panics if fn is nil or upperBound is negative: both
// are caller bugs, not data-dependent failures.
func NewDirect(contestID string, upperBound float64, fn Func) Assorter {
	if fn == nil {
		panic("assorter: assort function must not be nil")
	}
	if upperBound < 0 {
		panic("assorter: upper bound must be nonnegative")
	}
	return Assorter{ContestID: contestID, UpperBound: upperBound, v: directVariant{fn: fn}}
}

// winnerLoserVariant derives assort(c) = (winner(c) - loser(c) + 1) / 2.
type winnerLoserVariant struct{ winner, loser Func }

func (w winnerLoserVariant) assort(c cvr.CVR) float64 {
	return (w.winner(c) - w.loser(c) + 1) / 2
}

// NewFromWinnerLoser builds an Assorter from a pair of {0,1}-valued
// indicator functions, with upper bound 1. Panics if either function is
// nil.
func NewFromWinnerLoser(contestID string, winner, loser Func) Assorter {
	if winner == nil || loser == nil {
		panic("assorter: winner and loser functions must not be nil")
	}
	return Assorter{ContestID: contestID, UpperBound: 1, v: winnerLoserVariant{winner: winner, loser: loser}}
}

// pluralityVariant is the plurality pairwise assorter: vote for winner
// alone scores 1, vote for loser alone scores 0, anything else scores 1/2.
type pluralityVariant struct{ contest, winner, loser string }

func (p pluralityVariant) assort(c cvr.CVR) float64 {
	w := cvr.AsVote(c.GetVote(p.contest, p.winner))
	l := cvr.AsVote(c.GetVote(p.contest, p.loser))
	return (b2f(w) - b2f(l) + 1) / 2
}

// NewPlurality builds the pairwise plurality assorter for winner vs loser
// in contestID, upper bound 1.
func NewPlurality(contestID, winner, loser string) Assorter {
	return Assorter{ContestID: contestID, UpperBound: 1, v: pluralityVariant{contest: contestID, winner: winner, loser: loser}}
}

// supermajorityVariant is the single supermajority assorter for a contest
// requiring shareToWin of the valid vote.
type supermajorityVariant struct {
	contest, winner string
	cands           []string
	shareToWin      float64
}

func (s supermajorityVariant) assort(c cvr.CVR) float64 {
	if c.HasOneVote(s.contest, s.cands) {
		return b2f(cvr.AsVote(c.GetVote(s.contest, s.winner))) / (2 * s.shareToWin)
	}
	return 0.5
}

// NewSupermajority builds the supermajority assorter for winner against
// cands (losers plus winner) in contestID, with upper bound
// 1/(2*shareToWin). The caller (package assertion) is responsible for
// validating 1/2 < shareToWin < 1 before calling this constructor; this
// function trusts its input and only guards against division by zero.
func NewSupermajority(contestID, winner string, cands []string, shareToWin float64) Assorter {
	if shareToWin <= 0 {
		panic("assorter: share_to_win must be positive")
	}
	return Assorter{
		ContestID:  contestID,
		UpperBound: 1 / (2 * shareToWin),
		v:          supermajorityVariant{contest: contestID, winner: winner, cands: cands, shareToWin: shareToWin},
	}
}

// irvWinnerOnlyVariant is the RAIRE WINNER_ONLY assorter: winner(c) = 1
// iff winner is cvr's first preference, loser(c) = cvr.RCVLfuncWO.
type irvWinnerOnlyVariant struct{ contest, winner, loser string }

func (v irvWinnerOnlyVariant) assort(c cvr.CVR) float64 {
	w := 0.0
	if c.GetVote(v.contest, v.winner).IsFirstPreference() {
		w = 1
	}
	l := float64(cvr.RCVLfuncWO(v.contest, v.winner, v.loser, c))
	return (w - l + 1) / 2
}

// NewIRVWinnerOnly builds the RAIRE WINNER_ONLY assorter, upper bound 1.
func NewIRVWinnerOnly(contestID, winner, loser string) Assorter {
	return Assorter{ContestID: contestID, UpperBound: 1, v: irvWinnerOnlyVariant{contest: contestID, winner: winner, loser: loser}}
}

// irvEliminationVariant is the RAIRE IRV_ELIMINATION assorter, evaluated
// among the candidates still standing after already_eliminated is removed.
type irvEliminationVariant struct {
	contest, winner, loser string
	remaining              []string
}

func (v irvEliminationVariant) assort(c cvr.CVR) float64 {
	w := float64(cvr.RCVVoteForCand(v.contest, v.winner, v.remaining, c))
	l := float64(cvr.RCVVoteForCand(v.contest, v.loser, v.remaining, c))
	return (w - l + 1) / 2
}

// NewIRVElimination builds the RAIRE IRV_ELIMINATION assorter, upper
// bound 1. remaining is the candidate set surviving after eliminating
// alreadyEliminated; see package assertion for how it is computed.
func NewIRVElimination(contestID, winner, loser string, remaining []string) Assorter {
	return Assorter{
		ContestID:  contestID,
		UpperBound: 1,
		v:          irvEliminationVariant{contest: contestID, winner: winner, loser: loser, remaining: remaining},
	}
}
