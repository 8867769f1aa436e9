package assertion

import (
	"encoding/json"
	"fmt"
)

// raireAssertionJSON is one element of an "assertions" array in the RAIRE
// assertion-export JSON format.
type raireAssertionJSON struct {
	Winner            string   `json:"winner"`
	Loser             string   `json:"loser"`
	AssertionType     string   `json:"assertion_type"`
	AlreadyEliminated []string `json:"already_eliminated"`
}

// raireAuditJSON is one element of the top-level "audits" array.
type raireAuditJSON struct {
	Contest    string               `json:"contest"`
	Winner     string               `json:"winner"`
	Eliminated []string             `json:"eliminated"`
	Assertions []raireAssertionJSON `json:"assertions"`
}

type raireFileJSON struct {
	Audits []raireAuditJSON `json:"audits"`
}

// ParseRaireAssertionFile parses the RAIRE assertion-export JSON format and
// builds the assertion set for every contest it describes. A contest's
// candidate set is taken to be its reported winner plus every candidate
// named in "eliminated", matching how RAIRE itself reports IRV contests.
func ParseRaireAssertionFile(data []byte) (map[string]map[string]Assertion, error) {
	var parsed raireFileJSON
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("assertion: parsing RAIRE assertion file: %w", err)
	}
	out := make(map[string]map[string]Assertion, len(parsed.Audits))
	for _, audit := range parsed.Audits {
		candidates := make([]string, 0, len(audit.Eliminated)+1)
		candidates = append(candidates, audit.Winner)
		candidates = append(candidates, audit.Eliminated...)

		descriptors := make([]RaireAssertionDescriptor, len(audit.Assertions))
		for i, a := range audit.Assertions {
			descriptors[i] = RaireAssertionDescriptor{
				AssertionType:     AssertionType(a.AssertionType),
				Winner:            a.Winner,
				Loser:             a.Loser,
				AlreadyEliminated: a.AlreadyEliminated,
			}
		}

		assertions, err := MakeAssertionsFromRaire(audit.Contest, candidates, descriptors)
		if err != nil {
			return nil, fmt.Errorf("assertion: contest %q: %w", audit.Contest, err)
		}
		out[audit.Contest] = assertions
	}
	return out, nil
}
