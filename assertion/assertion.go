package assertion

import (
	"errors"

	"gonum.org/v1/gonum/stat"

	"github.com/rla-audit/shangrla-core/assorter"
	"github.com/rla-audit/shangrla-core/cvr"
)

// Errors returned by the assertion factory and RAIRE parsing. Each wraps
// one of these sentinels via fmt.Errorf so callers can test with
// errors.Is, except a malformed RAIRE JSON file, whose error wraps the
// JSON decoding error instead.
var (
	ErrInvalidShare              = errors.New("assertion: share_to_win must lie strictly between 1/2 and 1")
	ErrInvalidAssertionType      = errors.New("assertion: unrecognized RAIRE assertion_type")
	ErrUnsupportedChoiceFunction = errors.New("assertion: unsupported choice function")
	ErrInvalidContest            = errors.New("assertion: invalid contest descriptor")
)

// ChoiceFunction names a supported social choice function.
type ChoiceFunction string

const (
	Plurality     ChoiceFunction = "plurality"
	Supermajority ChoiceFunction = "supermajority"
	IRV           ChoiceFunction = "IRV"
)

// ContestDescriptor carries the contest-level metadata needed to derive
// its assertions: the voting rule, the candidate roster, and the reported
// outcome to be audited against.
type ContestDescriptor struct {
	ChoiceFunction  ChoiceFunction `json:"choice_function"`
	Candidates      []string       `json:"candidates"`
	ReportedWinners []string       `json:"reported_winners"`
	NWinners        int            `json:"n_winners"`
	RiskLimit       float64        `json:"risk_limit"`

	// ShareToWin applies only when ChoiceFunction == Supermajority.
	ShareToWin float64 `json:"share_to_win,omitempty"`

	// AssertionFile names the RAIRE assertion file this contest's
	// RaireAssertions were parsed from, if any. Required for IRV contests.
	AssertionFile string `json:"assertion_file,omitempty"`

	// RaireAssertions applies only when ChoiceFunction == IRV. Not part of
	// the audit parameter log; it is derived data, not an input parameter.
	RaireAssertions []RaireAssertionDescriptor `json:"-"`
}

// Assertion is a claim, keyed by a human-readable string, that the mean of
// Assorter's values over all ballots in ContestID exceeds 1/2.
type Assertion struct {
	ContestID string
	Key       string
	Assorter  assorter.Assorter
}

// Mean returns the mean of a.Assorter applied to cvrs.
func (a Assertion) Mean(cvrs []cvr.CVR) float64 {
	return stat.Mean(assortValues(a.Assorter, cvrs), nil)
}

// Sum returns the sum of a.Assorter applied to cvrs.
func (a Assertion) Sum(cvrs []cvr.CVR) float64 {
	var total float64
	for _, c := range cvrs {
		total += a.Assorter.Assort(c)
	}
	return total
}

// Margin returns 2*Mean(cvrs) - 1, the reported margin for this assertion.
func (a Assertion) Margin(cvrs []cvr.CVR) float64 {
	return 2*a.Mean(cvrs) - 1
}

func assortValues(a assorter.Assorter, cvrs []cvr.CVR) []float64 {
	vals := make([]float64, len(cvrs))
	for i, c := range cvrs {
		vals[i] = a.Assort(c)
	}
	return vals
}
