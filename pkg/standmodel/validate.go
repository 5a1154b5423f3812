// pkg/standmodel/validate.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package standmodel

import (
	"fmt"

	"github.com/nickbooth1/stand-allocation-engine/pkg/util"
)

// Validate runs every kind-3 input-validation check the engine requires
// before it will run: duplicate flight IDs, a link group with more than
// one arrival or departure, and a maintenance entry referencing a stand
// that doesn't exist. It accumulates every problem found rather than
// stopping at the first.
func Validate(flights []*Flight, stands []*Stand, maintenance []MaintenanceEntry) error {
	var el util.ErrorLogger

	el.Push("flights")
	seenID := make(map[string]bool, len(flights))
	linkArrivals := make(map[string]int)
	linkDepartures := make(map[string]int)
	for _, f := range flights {
		if seenID[f.FlightID] {
			el.Errorf(ErrDuplicateFlightID, "duplicate flight_id %q", f.FlightID)
		}
		seenID[f.FlightID] = true
		if f.HasLink() {
			if f.IsArrival {
				linkArrivals[f.LinkID]++
			} else {
				linkDepartures[f.LinkID]++
			}
		}
	}
	// Sorted rather than map-order iteration so the same invalid input
	// always produces the same error list, regardless of Go's randomized
	// map iteration order.
	for _, link := range util.SortedMapKeys(linkArrivals) {
		if n := linkArrivals[link]; n > 1 {
			el.Errorf(ErrInconsistentLinkGroup, "link_id %q has %d arrivals, expected at most 1", link, n)
		}
	}
	for _, link := range util.SortedMapKeys(linkDepartures) {
		if n := linkDepartures[link]; n > 1 {
			el.Errorf(ErrInconsistentLinkGroup, "link_id %q has %d departures, expected at most 1", link, n)
		}
	}
	el.Pop()

	el.Push("maintenance")
	standNames := make(map[string]bool, len(stands))
	for _, s := range stands {
		standNames[s.StandName] = true
	}
	for _, m := range maintenance {
		if !standNames[m.StandName] {
			el.Errorf(ErrUnknownStandReference, "maintenance entry references unknown stand %q", m.StandName)
		}
		start, end := m.Interval()
		if !end.Time.After(start.Time) {
			el.Errorf(ErrMaintenanceWindowInverted, "maintenance entry on %q has non-positive duration (%s to %s)",
				m.StandName, fmt.Sprint(m.StartTime.Time), fmt.Sprint(m.EndTime.Time))
		}
	}
	el.Pop()

	return el.Combined()
}
