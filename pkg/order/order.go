// pkg/order/order.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package order groups flights into processing units (linked pairs or
// singles) and sorts them into the sequence the greedy allocator walks.
package order

import (
	"sort"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// Build groups flights by LinkID (an unlinked flight becomes its own
// single unit; a link group with both an arrival and a departure becomes
// a linked pair; a degenerate group with only one side becomes a single),
// then sorts the resulting units by (criticality score descending,
// earliest time ascending), breaking remaining ties by input order.
func Build(flights []*standmodel.Flight) []standmodel.FlightOperationUnit {
	type group struct {
		arrival, departure *standmodel.Flight
	}
	groups := make(map[string]*group)
	var linkOrder []string

	var units []standmodel.FlightOperationUnit
	for _, f := range flights {
		if !f.HasLink() {
			if f.IsArrival {
				units = append(units, standmodel.FlightOperationUnit{Arrival: f})
			} else {
				units = append(units, standmodel.FlightOperationUnit{Departure: f})
			}
			continue
		}
		g, ok := groups[f.LinkID]
		if !ok {
			g = &group{}
			groups[f.LinkID] = g
			linkOrder = append(linkOrder, f.LinkID)
		}
		if f.IsArrival {
			g.arrival = f
		} else {
			g.departure = f
		}
	}
	for _, link := range linkOrder {
		g := groups[link]
		units = append(units, standmodel.FlightOperationUnit{Arrival: g.arrival, Departure: g.departure})
	}

	// Stable sort with original append order as the final tie-break: Go's
	// sort.SliceStable preserves it automatically.
	sort.SliceStable(units, func(i, j int) bool {
		si := units[i].PrimaryFlight().CriticalityScore
		sj := units[j].PrimaryFlight().CriticalityScore
		if si != sj {
			return si > sj
		}
		return units[i].EarliestTime().Time.Before(units[j].EarliestTime().Time)
	})

	return units
}
