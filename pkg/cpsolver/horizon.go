// pkg/cpsolver/horizon.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package cpsolver

import (
	"time"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// Horizon is the time range the CP model reasons over, computed from the
// flights' scheduled times only (maintenance and turnaround extensions
// are not considered). Solve only logs it for diagnostics: because this
// solver fixes each unit's window at its minimum feasible size (see
// buildModel) rather than carrying free start/end variables, the horizon
// does not gate feasibility the way it does in a true CP-SAT domain
// declaration.
type Horizon struct {
	Earliest time.Time
	Minutes  int64
}

// CalculateHorizon mirrors the source's calculate_time_horizon: for
// time-only data (both bounds in year 1900) it uses a fixed 48h buffer;
// otherwise the observed span plus a 30-day buffer.
func CalculateHorizon(flights []*standmodel.Flight) Horizon {
	if len(flights) == 0 {
		return Horizon{Earliest: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), Minutes: 365 * 24 * 60}
	}
	earliest, latest := flights[0].ScheduledTime.Time, flights[0].ScheduledTime.Time
	for _, f := range flights[1:] {
		if f.ScheduledTime.Time.Before(earliest) {
			earliest = f.ScheduledTime.Time
		}
		if f.ScheduledTime.Time.After(latest) {
			latest = f.ScheduledTime.Time
		}
	}
	if earliest.Year() == 1900 && latest.Year() == 1900 {
		return Horizon{Earliest: earliest, Minutes: 2 * 24 * 60}
	}
	diff := latest.Sub(earliest).Minutes()
	buffer := float64(30 * 24 * 60)
	return Horizon{Earliest: earliest, Minutes: int64(diff + buffer)}
}
