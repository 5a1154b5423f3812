// pkg/standmodel/time.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package standmodel holds the entity types shared by every allocation
// component: flights, stands, airlines, settings, maintenance windows and
// the flight-connection bookkeeping used for candidate re-ranking.
package standmodel

import (
	"fmt"
	"time"

	"github.com/nickbooth1/stand-allocation-engine/pkg/util"
)

// timeOnlySentinelYear is the nominal year used to encode "HH:MM" inputs
// that carry no date of their own, mirroring the source's use of
// datetime.strptime("%H:%M") (which defaults year/month/day to 1900-01-01).
const timeOnlySentinelYear = 1900

// Timestamp wraps a parsed scheduled/maintenance time, remembering whether
// it originated from a bare "HH:MM" string (TimeOnly) or a full
// "YYYY-MM-DDTHH:MM" string, since several components (gap/overnight
// arithmetic, report formatting) must behave differently for the two.
type Timestamp struct {
	time.Time
	TimeOnly bool
}

// ParseTime accepts either "HH:MM" or "YYYY-MM-DDTHH:MM" and returns the
// parsed Timestamp. Any other shape is an error (kind-3 input validation,
// per the engine's construction-time validation pass).
func ParseTime(s string) (Timestamp, error) {
	for _, r := range s {
		if r == 'T' {
			t, err := time.Parse("2006-01-02T15:04", s)
			if err != nil {
				return Timestamp{}, fmt.Errorf("%w: %q: %v", ErrUnparseableTime, s, err)
			}
			return Timestamp{Time: t}, nil
		}
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q: %v", ErrUnparseableTime, s, err)
	}
	t = time.Date(timeOnlySentinelYear, time.January, 1, t.Hour(), t.Minute(), 0, 0, time.UTC)
	return Timestamp{Time: t, TimeOnly: true}, nil
}

// MustParseTime is ParseTime for call sites (tests, the demo CLI) that
// already know the string is well-formed.
func MustParseTime(s string) Timestamp {
	t, err := ParseTime(s)
	if err != nil {
		panic(err)
	}
	return t
}

// AddOvernightIfBefore returns end, advanced by 24h if it falls at or
// before start and both timestamps are time-only — the consumer-side
// "assume next day" rule §4.1 and §4.5 both call for.
func AddOvernightIfBefore(start, end Timestamp) Timestamp {
	if !end.Time.After(start.Time) && start.TimeOnly && end.TimeOnly {
		end.Time = end.Time.Add(24 * time.Hour)
	}
	return end
}

// MinutesBetween returns the (always non-negative, for time-only inputs)
// number of minutes from start to end, applying the same overnight-
// wraparound rule as the source's calculate_time_difference_minutes: if
// end precedes start and both timestamps are time-only (so "the same
// date" always holds, since every time-only value shares the sentinel
// date), 24h is added to end first. A date-time pair where end precedes
// start on its own calendar date is a real (negative) gap, not a
// midnight wraparound, and is returned as-is.
func MinutesBetween(start, end Timestamp) float64 {
	if end.Time.Before(start.Time) && start.TimeOnly && end.TimeOnly {
		end.Time = end.Time.Add(24 * time.Hour)
	}
	return end.Time.Sub(start.Time).Minutes()
}

// FormatReportTime renders a timestamp the way allocation/unallocation
// reports do: "HH:MM" for time-only data, "YYYY-MM-DD HH:MM" otherwise.
func FormatReportTime(t Timestamp) string {
	layout := util.Select(t.TimeOnly, "15:04", "2006-01-02 15:04")
	return t.Time.Format(layout)
}
