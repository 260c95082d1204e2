// Package usagelog defines the per-day usage records the scoring core consumes.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package usagelog

import "encoding/json"

// DayRecord holds the hours attributed to a single calendar day.
// PrimaryHours are driven directly by the user; SecondaryHours are driven by
// autonomous agent activity.
type DayRecord struct {
	PrimaryHours   float64 `json:"primaryHours"`
	SecondaryHours float64 `json:"secondaryHours"`
}

// Log maps a YYYY-MM-DD date string to that day's record.
// A missing key means zero activity for the day, not an error.
type Log map[string]DayRecord

// UnmarshalJSON accepts both record shapes found in the wild: the structured
// {primaryHours, secondaryHours} object and the legacy bare number, which is
// interpreted as secondary hours only. Malformed or missing numeric fields
// decode as zero rather than failing the run; a single bad day must not abort
// scoring.
func (r *DayRecord) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = DayRecord{SecondaryHours: clampNonNegative(n)}
		return nil
	}

	var obj struct {
		PrimaryHours   *float64 `json:"primaryHours"`
		SecondaryHours *float64 `json:"secondaryHours"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		*r = DayRecord{}
		return nil
	}
	rec := DayRecord{}
	if obj.PrimaryHours != nil {
		rec.PrimaryHours = clampNonNegative(*obj.PrimaryHours)
	}
	if obj.SecondaryHours != nil {
		rec.SecondaryHours = clampNonNegative(*obj.SecondaryHours)
	}
	*r = rec
	return nil
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// TotalHours returns the combined activity for the day.
func (r DayRecord) TotalHours() float64 {
	return r.PrimaryHours + r.SecondaryHours
}

// Active reports whether the day had any activity at all.
func (r DayRecord) Active() bool {
	return r.TotalHours() > 0
}

// Ghost reports whether the day was fully autonomous: agent hours with zero
// user-driven hours.
func (r DayRecord) Ghost() bool {
	return r.PrimaryHours == 0 && r.SecondaryHours > 0
}

// Decode parses a raw date-to-record JSON mapping into a Log.
// The top-level document must be a JSON object; anything else is a hard error
// (the caller treats it as unavailable data). Individual day values are
// decoded tolerantly by DayRecord.UnmarshalJSON.
func Decode(data []byte) (Log, error) {
	var log Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, err
	}
	if log == nil {
		log = Log{}
	}
	return log, nil
}
