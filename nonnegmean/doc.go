// Package nonnegmean implements sequentially-valid p-value tests for the
// mean of a bounded nonnegative population — Kaplan-Markov, Kaplan-Wald,
// Kaplan-Kolmogorov, Kaplan's martingale (KMart), and the binary Wald
// SPRT — plus a simulation-based sample-size estimator.
//
// Every test returns a p-value for the null that the population mean is
// at most t (KMart: exactly t) against the alternative that it is
// greater. When randomOrder is true the sample is assumed to be in its
// true draw order and the test reports the minimum p-value achievable by
// optional stopping at any prefix, which is what preserves the tests'
// anytime-validity guarantee; callers that cannot vouch for draw order
// must pass randomOrder = false.
package nonnegmean
