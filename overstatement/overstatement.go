package overstatement

import (
	"errors"
	"fmt"

	"github.com/rla-audit/shangrla-core/assorter"
	"github.com/rla-audit/shangrla-core/cvr"
)

var (
	// ErrSizeMismatch is returned when an MVR list and a CVR list passed
	// together to a batch operation have different lengths.
	ErrSizeMismatch = errors.New("overstatement: mvr and cvr lists differ in length")

	// ErrNonPositiveMargin is returned instead of dividing by a
	// nonpositive reported margin (2*reportedMean - 1 <= 0): the
	// assertion is not provable by this overstatement-assorter as
	// reported, and the caller must treat the contest as not auditable
	// by this assertion rather than receive a silently wrong ratio.
	ErrNonPositiveMargin = errors.New("overstatement: reported margin is not positive")
)

// Raw returns the signed overstatement error A(cvr) - A(mvr): how much
// more the machine-reported CVR credits the assertion's assorter than the
// manual interpretation does.
func Raw(a assorter.Assorter, mvr, c cvr.CVR) float64 {
	return a.Assort(c) - a.Assort(mvr)
}

// RawBatch returns Raw(a, mvrs[i], cvrs[i]) for each i.
func RawBatch(a assorter.Assorter, mvrs, cvrs []cvr.CVR) ([]float64, error) {
	if len(mvrs) != len(cvrs) {
		return nil, fmt.Errorf("overstatement: %d mvrs, %d cvrs: %w", len(mvrs), len(cvrs), ErrSizeMismatch)
	}
	out := make([]float64, len(mvrs))
	for i := range mvrs {
		out[i] = Raw(a, mvrs[i], cvrs[i])
	}
	return out, nil
}

// margin computes 2*reportedMean-1 and fails if it is not positive.
func margin(reportedMean float64) (float64, error) {
	m := 2*reportedMean - 1
	if m <= 0 {
		return 0, fmt.Errorf("overstatement: reported mean %v yields margin %v: %w", reportedMean, m, ErrNonPositiveMargin)
	}
	return m, nil
}

// Reduce computes the normalized overstatement-assorter value
//
//	B(mvr, cvr) = 1 - (A(cvr) - A(mvr)) / (2*reportedMean - 1)
//
// for a single ballot pair, where reportedMean is the assorter's mean
// over the full list of reported CVRs. B is the bounded sample fed to a
// nonneg-mean test with threshold t = 1/2: B > 1/2 on average iff the
// assertion holds. B is not clamped at 0: it is negative whenever
// A(cvr) - A(mvr) exceeds the reported margin.
func Reduce(a assorter.Assorter, mvr, c cvr.CVR, reportedMean float64) (float64, error) {
	m, err := margin(reportedMean)
	if err != nil {
		return 0, err
	}
	return 1 - Raw(a, mvr, c)/m, nil
}

// ReduceBatch applies Reduce across paired mvr/cvr lists.
func ReduceBatch(a assorter.Assorter, mvrs, cvrs []cvr.CVR, reportedMean float64) ([]float64, error) {
	if len(mvrs) != len(cvrs) {
		return nil, fmt.Errorf("overstatement: %d mvrs, %d cvrs: %w", len(mvrs), len(cvrs), ErrSizeMismatch)
	}
	m, err := margin(reportedMean)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(mvrs))
	for i := range mvrs {
		out[i] = 1 - Raw(a, mvrs[i], cvrs[i])/m
	}
	return out, nil
}

// UpperBound returns the a priori upper bound of B over an assort-range
// [0, a.UpperBound]: 1 + a.UpperBound/(2*reportedMean - 1). Downstream
// mean tests should use this, not an assumed bound of 1, since B is not
// itself capped at 1.
func UpperBound(a assorter.Assorter, reportedMean float64) (float64, error) {
	m, err := margin(reportedMean)
	if err != nil {
		return 0, err
	}
	return 1 + a.UpperBound/m, nil
}
