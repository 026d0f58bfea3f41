package fplapi

import (
	"strings"
	"time"
)

// KickoffTime wraps time.Time so it can unmarshal the kickoff_time
// field, which is null for unscheduled fixtures and occasionally comes
// back without seconds for provisional kickoffs.
type KickoffTime struct {
	time.Time
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (t *KickoffTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}

	var parseErr error
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04Z07:00", // no seconds
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		} else {
			parseErr = err
		}
	}
	return parseErr
}

// MarshalJSON implements the json.Marshaler interface. A zero kickoff
// round-trips back to null.
func (t KickoffTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}
