package models

import (
	"fmt"
	"strings"
	"time"
)

// LocalTime marshals as ISO-8601 local date-time without a timezone,
// truncated to seconds ("2006-01-02T15:04:05"), the wire format the
// frontend expects for booking and comment timestamps.
type LocalTime struct {
	time.Time
}

const localTimeLayout = "2006-01-02T15:04:05"

func NewLocalTime(t time.Time) LocalTime {
	return LocalTime{t.Truncate(time.Second)}
}

func (lt LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + lt.Format(localTimeLayout) + `"`), nil
}

func (lt *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.ParseInLocation(localTimeLayout, s, time.Local)
	if err != nil {
		// be lenient about fractional seconds in incoming payloads
		t, err = time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.Local)
		if err != nil {
			return fmt.Errorf("parse local date-time %q: %w", s, err)
		}
	}
	lt.Time = t.Truncate(time.Second)
	return nil
}
