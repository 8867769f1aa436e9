// Package audit validates audit parameters before a risk-limiting audit
// begins and writes them to a log file for later reference. Validation
// enforces the preconditions every other package in this module assumes
// but does not itself check (padding range for the padded risk functions,
// error rates, contest shape); the risk function name itself is not
// checked. The writer only serializes — it does not compute anything.
package audit
