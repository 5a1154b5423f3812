// pkg/order/order_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package order

import (
	"testing"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

func TestBuildGroupsLinkedPairs(t *testing.T) {
	arrival := &standmodel.Flight{FlightID: "F2", IsArrival: true, LinkID: "L1", ScheduledTime: standmodel.MustParseTime("09:00")}
	departure := &standmodel.Flight{FlightID: "F3", IsArrival: false, LinkID: "L1", ScheduledTime: standmodel.MustParseTime("10:30")}
	single := &standmodel.Flight{FlightID: "F1", IsArrival: true, ScheduledTime: standmodel.MustParseTime("08:00")}

	units := Build([]*standmodel.Flight{single, arrival, departure})
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}

	var sawLinked, sawSingle bool
	for _, u := range units {
		if u.IsLinkedPair() {
			sawLinked = true
			if u.Arrival.FlightID != "F2" || u.Departure.FlightID != "F3" {
				t.Fatalf("unexpected linked pair contents: %+v", u)
			}
		} else {
			sawSingle = true
		}
	}
	if !sawLinked || !sawSingle {
		t.Fatalf("expected one linked pair and one single, got %+v", units)
	}
}

func TestBuildSortOrder(t *testing.T) {
	low := &standmodel.Flight{FlightID: "LOW", ScheduledTime: standmodel.MustParseTime("08:00"), CriticalityScore: 1}
	high := &standmodel.Flight{FlightID: "HIGH", ScheduledTime: standmodel.MustParseTime("09:00"), CriticalityScore: 10}

	units := Build([]*standmodel.Flight{low, high})
	if units[0].PrimaryFlight().FlightID != "HIGH" {
		t.Fatalf("expected the higher-criticality flight first, got %+v", units)
	}
}

func TestBuildTieBreaksByEarliestTime(t *testing.T) {
	later := &standmodel.Flight{FlightID: "LATER", ScheduledTime: standmodel.MustParseTime("10:00"), CriticalityScore: 5}
	earlier := &standmodel.Flight{FlightID: "EARLIER", ScheduledTime: standmodel.MustParseTime("08:00"), CriticalityScore: 5}

	units := Build([]*standmodel.Flight{later, earlier})
	if units[0].PrimaryFlight().FlightID != "EARLIER" {
		t.Fatalf("expected the earlier flight first on a score tie, got %+v", units)
	}
}
