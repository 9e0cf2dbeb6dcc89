package timeutil

import (
	"time"
)

// RFC3339Millis is RFC 3339 UTC pinned to millisecond precision.
// All API timestamps and persisted analytics timestamps use this format.
const RFC3339Millis = "2006-01-02T15:04:05.000Z"

// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision, used for
// log timestamps where higher precision helps ordering.
const RFC3339Micros = "2006-01-02T15:04:05.000000Z"

// DateOnly is the day-key format used by the analytics daily counters.
const DateOnly = "2006-01-02"

// Time wraps time.Time to pin JSON output to RFC 3339 millisecond precision,
// e.g. "2026-08-21T10:30:00.000Z".
//
// Unmarshaling JSON null preserves the existing value, matching time.Time.
type Time struct {
	time.Time
}

// MarshalJSON renders the time in UTC at exactly millisecond precision.
func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(RFC3339Millis) + `"`), nil
}

// UnmarshalJSON accepts any RFC 3339 variant, with or without fraction.
func (t *Time) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// NewTime wraps a standard time.Time.
func NewTime(t time.Time) Time {
	return Time{Time: t}
}

// Now wraps the current time.
func Now() Time {
	return Time{Time: time.Now()}
}

// DayKey formats t as the analytics daily-counter key for its UTC day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DateOnly)
}
