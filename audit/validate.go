package audit

import (
	"errors"
	"fmt"

	"github.com/rla-audit/shangrla-core/assertion"
)

// Errors returned by Validate.
var (
	ErrInvalidPadding        = errors.New("audit: g must lie in [0, 1)")
	ErrInvalidErrorRate      = errors.New("audit: error rates must be nonnegative")
	ErrInvalidRiskLimit      = errors.New("audit: risk_limit must lie strictly between 0 and 1")
	ErrTooFewCandidates      = errors.New("audit: n_winners exceeds the number of candidates")
	ErrWinnerCountMismatch   = errors.New("audit: reported_winners does not have n_winners entries")
	ErrUnknownWinner         = errors.New("audit: reported winner is not a candidate")
	ErrMultiWinnerNotAllowed = errors.New("audit: IRV and supermajority contests must have exactly one winner")
	ErrMissingAssertionFile  = errors.New("audit: IRV contest requires an assertion file")
)

// RiskFunction names a supported nonneg-mean test usable as an audit's
// risk-measuring function.
type RiskFunction string

const (
	KaplanMarkov     RiskFunction = "kaplan_markov"
	KaplanWald       RiskFunction = "kaplan_wald"
	KaplanKolmogorov RiskFunction = "kaplan_kolmogorov"
	KaplanMartingale RiskFunction = "kaplan_martingale"
	WaldSPRT         RiskFunction = "wald_sprt"
)

// usesPadding reports whether r is one of the two tests that take a g
// padding parameter.
func (r RiskFunction) usesPadding() bool {
	return r == KaplanMarkov || r == KaplanWald
}

// ErrorRates carries the audit's expected discrepancy rates; all four
// must be nonnegative.
type ErrorRates struct {
	O1Rate float64 `json:"o1_rate"`
	O2Rate float64 `json:"o2_rate"`
	U1Rate float64 `json:"u1_rate"`
	U2Rate float64 `json:"u2_rate"`
}

func (e ErrorRates) validate() error {
	for name, v := range map[string]float64{"o1_rate": e.O1Rate, "o2_rate": e.O2Rate, "u1_rate": e.U1Rate, "u2_rate": e.U2Rate} {
		if v < 0 {
			return fmt.Errorf("audit: %s=%v: %w", name, v, ErrInvalidErrorRate)
		}
	}
	return nil
}

// Parameters bundles everything needed to run and later log an audit.
type Parameters struct {
	Seed         string                                `json:"seed"`
	Replacement  bool                                  `json:"replacement"`
	RiskFunction RiskFunction                          `json:"risk_function"`
	G            float64                               `json:"g"`
	NBallots     int                                   `json:"N_ballots"`
	ErrorRates   ErrorRates                            `json:"error_rates"`
	Contests     map[string]assertion.ContestDescriptor `json:"contests"`
}

// Validate checks p against every audit-parameter precondition, returning
// the first violation found. Validation must run before any nonneg-mean
// test is invoked against p's contests.
func Validate(p Parameters) error {
	if p.RiskFunction.usesPadding() {
		if p.G < 0 || p.G >= 1 {
			return fmt.Errorf("audit: g=%v: %w", p.G, ErrInvalidPadding)
		}
	}
	if err := p.ErrorRates.validate(); err != nil {
		return err
	}
	for id, c := range p.Contests {
		if err := validateContest(id, c); err != nil {
			return err
		}
	}
	return nil
}

func validateContest(id string, c assertion.ContestDescriptor) error {
	if c.RiskLimit <= 0 || c.RiskLimit >= 1 {
		return fmt.Errorf("audit: contest %q: risk_limit=%v: %w", id, c.RiskLimit, ErrInvalidRiskLimit)
	}
	switch c.ChoiceFunction {
	case assertion.Plurality, assertion.Supermajority, assertion.IRV:
	default:
		return fmt.Errorf("audit: contest %q: choice_function=%q: %w", id, c.ChoiceFunction, assertion.ErrUnsupportedChoiceFunction)
	}
	if c.NWinners > len(c.Candidates) {
		return fmt.Errorf("audit: contest %q: %w", id, ErrTooFewCandidates)
	}
	if len(c.ReportedWinners) != c.NWinners {
		return fmt.Errorf("audit: contest %q: %w", id, ErrWinnerCountMismatch)
	}
	candidateSet := make(map[string]bool, len(c.Candidates))
	for _, cand := range c.Candidates {
		candidateSet[cand] = true
	}
	for _, w := range c.ReportedWinners {
		if !candidateSet[w] {
			return fmt.Errorf("audit: contest %q: winner %q: %w", id, w, ErrUnknownWinner)
		}
	}
	if c.ChoiceFunction == assertion.IRV || c.ChoiceFunction == assertion.Supermajority {
		if c.NWinners != 1 {
			return fmt.Errorf("audit: contest %q: %w", id, ErrMultiWinnerNotAllowed)
		}
	}
	if c.ChoiceFunction == assertion.IRV && c.AssertionFile == "" {
		return fmt.Errorf("audit: contest %q: %w", id, ErrMissingAssertionFile)
	}
	if c.ChoiceFunction == assertion.Supermajority && c.ShareToWin < 0.5 {
		return fmt.Errorf("audit: contest %q: share_to_win=%v: %w", id, c.ShareToWin, assertion.ErrInvalidShare)
	}
	return nil
}
