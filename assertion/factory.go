package assertion

import (
	"fmt"

	"github.com/rla-audit/shangrla-core/assorter"
)

// MakePluralityAssertions constructs one Assertion per (w, l) pair of
// winners and losers, keyed "w v l". There are len(winners)*len(losers)
// assertions in all.
func MakePluralityAssertions(contestID string, winners, losers []string) map[string]Assertion {
	out := make(map[string]Assertion, len(winners)*len(losers))
	for _, w := range winners {
		for _, l := range losers {
			key := w + " v " + l
			out[key] = Assertion{
				ContestID: contestID,
				Key:       key,
				Assorter:  assorter.NewPlurality(contestID, w, l),
			}
		}
	}
	return out
}

// MakeSupermajorityAssertion constructs the single assertion implying
// winner received at least shareToWin of the valid vote, keyed "w v all".
func MakeSupermajorityAssertion(contestID, winner string, losers []string, shareToWin float64) (map[string]Assertion, error) {
	if shareToWin <= 0.5 || shareToWin >= 1 {
		return nil, fmt.Errorf("assertion: share_to_win %v: %w", shareToWin, ErrInvalidShare)
	}
	cands := make([]string, 0, len(losers)+1)
	cands = append(cands, losers...)
	cands = append(cands, winner)

	key := winner + " v all"
	return map[string]Assertion{
		key: {
			ContestID: contestID,
			Key:       key,
			Assorter:  assorter.NewSupermajority(contestID, winner, cands, shareToWin),
		},
	}, nil
}

// AssertionType names a RAIRE assertion variant.
type AssertionType string

const (
	WinnerOnly     AssertionType = "WINNER_ONLY"
	IRVElimination AssertionType = "IRV_ELIMINATION"
)

// RaireAssertionDescriptor is one RAIRE assertion: a winner/loser pair and
// the rule for comparing them, as exported by RAIRE for a single IRV
// contest.
type RaireAssertionDescriptor struct {
	AssertionType     AssertionType
	Winner            string
	Loser             string
	AlreadyEliminated []string
}

// MakeAssertionsFromRaire builds the assertion set for an IRV contest from
// its RAIRE assertion descriptors, given the full ordered candidate list
// for the contest.
func MakeAssertionsFromRaire(contestID string, candidates []string, descriptors []RaireAssertionDescriptor) (map[string]Assertion, error) {
	out := make(map[string]Assertion, len(descriptors))
	for _, d := range descriptors {
		switch d.AssertionType {
		case WinnerOnly:
			key := d.Winner + " v " + d.Loser
			out[key] = Assertion{
				ContestID: contestID,
				Key:       key,
				Assorter:  assorter.NewIRVWinnerOnly(contestID, d.Winner, d.Loser),
			}
		case IRVElimination:
			eliminated := make(map[string]bool, len(d.AlreadyEliminated))
			for _, e := range d.AlreadyEliminated {
				eliminated[e] = true
			}
			remaining := make([]string, 0, len(candidates))
			for _, c := range candidates {
				if !eliminated[c] {
					remaining = append(remaining, c)
				}
			}
			key := d.Winner + " v " + d.Loser + " elim"
			for _, e := range d.AlreadyEliminated {
				key += " " + e
			}
			out[key] = Assertion{
				ContestID: contestID,
				Key:       key,
				Assorter:  assorter.NewIRVElimination(contestID, d.Winner, d.Loser, remaining),
			}
		default:
			return nil, fmt.Errorf("assertion: type %q: %w", d.AssertionType, ErrInvalidAssertionType)
		}
	}
	return out, nil
}

// MakeAllAssertions routes each contest to its choice function's factory
// and returns the full per-contest, per-assertion-key assertion set.
func MakeAllAssertions(contests map[string]ContestDescriptor) (map[string]map[string]Assertion, error) {
	all := make(map[string]map[string]Assertion, len(contests))
	for id, c := range contests {
		losers := make([]string, 0, len(c.Candidates))
		reported := make(map[string]bool, len(c.ReportedWinners))
		for _, w := range c.ReportedWinners {
			reported[w] = true
		}
		for _, cand := range c.Candidates {
			if !reported[cand] {
				losers = append(losers, cand)
			}
		}

		switch c.ChoiceFunction {
		case Plurality:
			all[id] = MakePluralityAssertions(id, c.ReportedWinners, losers)
		case Supermajority:
			if len(c.ReportedWinners) != 1 {
				return nil, fmt.Errorf("assertion: supermajority contest %q needs exactly one reported winner: %w", id, ErrInvalidContest)
			}
			assertions, err := MakeSupermajorityAssertion(id, c.ReportedWinners[0], losers, c.ShareToWin)
			if err != nil {
				return nil, err
			}
			all[id] = assertions
		case IRV:
			assertions, err := MakeAssertionsFromRaire(id, c.Candidates, c.RaireAssertions)
			if err != nil {
				return nil, err
			}
			all[id] = assertions
		default:
			return nil, fmt.Errorf("assertion: contest %q: %w", id, ErrUnsupportedChoiceFunction)
		}
	}
	return all, nil
}
