package audit

import (
	"encoding/json"
	"os"
)

// WriteLog serializes p to path as a JSON object with keys
// seed, replacement, risk_function, g, N_ballots, error_rates, contests.
// It does not call Validate; callers should validate before writing.
//
// The file is held open only for the duration of the write and is closed
// on every exit path, including when encoding fails.
func WriteLog(path string, p Parameters) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(p)
}
