// pkg/greedy/greedy_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package greedy

import (
	"testing"
	"time"

	"github.com/nickbooth1/stand-allocation-engine/pkg/criticality"
	"github.com/nickbooth1/stand-allocation-engine/pkg/occupancy"
	"github.com/nickbooth1/stand-allocation-engine/pkg/order"
	"github.com/nickbooth1/stand-allocation-engine/pkg/report"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

func baseSettings(gap int) standmodel.Settings {
	return standmodel.Settings{
		GapBetweenFlightsMinutes: gap,
		TurnaroundTimeSettings:   standmodel.TurnaroundTimes{Default: 45, Narrow: 45, Wide: 90, Super: 120},
		PrioritizationWeights:    standmodel.DefaultPrioritizationWeights(),
		SolverParameters:         standmodel.DefaultSolverParameters(),
	}
}

func newIndex(gap int) *occupancy.Index {
	return occupancy.NewIndex(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), gap)
}

// S1: single-flight fit.
func TestScenarioSingleFlightFit(t *testing.T) {
	stand := standmodel.NewStand("A1", "T1", true, standmodel.Narrow)
	airline := &standmodel.Airline{AirlineCode: "AA", BaseTerminal: "T1", RequiresContactStand: true}
	f1 := &standmodel.Flight{FlightID: "F1", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: true, ScheduledTime: standmodel.MustParseTime("08:00")}

	settings := baseSettings(15)
	idx := newIndex(settings.GapBetweenFlightsMinutes)

	alloc := &Allocator{
		Stands:   []*standmodel.Stand{stand},
		Airlines: map[string]*standmodel.Airline{"AA": airline},
		Settings: settings,
		Index:    idx,
		Log:      nil,
	}
	allocated, unallocated := alloc.Run(order.Build([]*standmodel.Flight{f1}))
	if len(unallocated) != 0 {
		t.Fatalf("expected no unallocated flights, got %+v", unallocated)
	}
	if len(allocated) != 1 || allocated[0].Stand != "A1" {
		t.Fatalf("expected F1 on A1, got %+v", allocated)
	}
	if allocated[0].StartTimeString != "08:00" || allocated[0].EndTimeString != "08:45" {
		t.Fatalf("unexpected interval: %+v", allocated[0])
	}
}

// S2: linked turnaround pair.
func TestScenarioLinkedTurnaround(t *testing.T) {
	stand := standmodel.NewStand("A1", "T1", true, standmodel.Narrow)
	airline := &standmodel.Airline{AirlineCode: "AA", BaseTerminal: "T1", RequiresContactStand: true}
	arrival := &standmodel.Flight{FlightID: "F2", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: true, LinkID: "L1", ScheduledTime: standmodel.MustParseTime("09:00")}
	departure := &standmodel.Flight{FlightID: "F3", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: false, LinkID: "L1", ScheduledTime: standmodel.MustParseTime("10:30")}

	settings := baseSettings(15)
	alloc := &Allocator{
		Stands:   []*standmodel.Stand{stand},
		Airlines: map[string]*standmodel.Airline{"AA": airline},
		Settings: settings,
		Index:    newIndex(settings.GapBetweenFlightsMinutes),
	}
	allocated, unallocated := alloc.Run(order.Build([]*standmodel.Flight{arrival, departure}))
	if len(unallocated) != 0 {
		t.Fatalf("expected both halves allocated, got unallocated %+v", unallocated)
	}
	if len(allocated) != 2 {
		t.Fatalf("expected 2 allocation records, got %+v", allocated)
	}
	for _, a := range allocated {
		if a.Stand != "A1" {
			t.Fatalf("expected both halves on A1, got %+v", a)
		}
	}
	if allocated[0].Flight.FlightID != "F2" || allocated[1].Flight.FlightID != "F3" {
		t.Fatalf("expected arrival record before departure record, got %+v", allocated)
	}
}

// S3: gap enforcement.
func TestScenarioGapEnforcement(t *testing.T) {
	stand := standmodel.NewStand("A1", "T1", true, standmodel.Narrow)
	airline := &standmodel.Airline{AirlineCode: "AA", BaseTerminal: "T1", RequiresContactStand: true}
	f1 := &standmodel.Flight{FlightID: "F1", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: true, ScheduledTime: standmodel.MustParseTime("08:00"), CriticalityScore: 10}
	f4 := &standmodel.Flight{FlightID: "F4", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: true, ScheduledTime: standmodel.MustParseTime("08:45"), CriticalityScore: 1}

	settings := baseSettings(15)
	alloc := &Allocator{
		Stands:   []*standmodel.Stand{stand},
		Airlines: map[string]*standmodel.Airline{"AA": airline},
		Settings: settings,
		Index:    newIndex(settings.GapBetweenFlightsMinutes),
	}
	allocated, unallocated := alloc.Run(order.Build([]*standmodel.Flight{f1, f4}))
	if len(allocated) != 1 || allocated[0].Flight.FlightID != "F1" {
		t.Fatalf("expected only F1 allocated, got %+v", allocated)
	}
	if len(unallocated) != 1 || unallocated[0].Flight.FlightID != "F4" || unallocated[0].Reason != report.ReasonNoStandAvailable {
		t.Fatalf("expected F4 unallocated with the standard reason, got %+v", unallocated)
	}
}

// S4: size mismatch.
func TestScenarioSizeMismatch(t *testing.T) {
	stand := standmodel.NewStand("B1", "T1", true, standmodel.Narrow)
	airline := &standmodel.Airline{AirlineCode: "AA", BaseTerminal: "T1"}
	f5 := &standmodel.Flight{FlightID: "F5", AirlineCode: "AA", AircraftType: "A380", Terminal: "T1",
		IsArrival: true, ScheduledTime: standmodel.MustParseTime("12:00")}

	settings := baseSettings(15)
	alloc := &Allocator{
		Stands:   []*standmodel.Stand{stand},
		Airlines: map[string]*standmodel.Airline{"AA": airline},
		Settings: settings,
		Index:    newIndex(settings.GapBetweenFlightsMinutes),
	}
	allocated, unallocated := alloc.Run(order.Build([]*standmodel.Flight{f5}))
	if len(allocated) != 0 {
		t.Fatalf("expected no allocation, got %+v", allocated)
	}
	if len(unallocated) != 1 || unallocated[0].Reason != report.ReasonNoStandAvailable {
		t.Fatalf("got %+v", unallocated)
	}
}

// S5: maintenance block.
func TestScenarioMaintenanceBlock(t *testing.T) {
	stand := standmodel.NewStand("A1", "T1", true, standmodel.Narrow)
	airline := &standmodel.Airline{AirlineCode: "AA", BaseTerminal: "T1"}
	f6 := &standmodel.Flight{FlightID: "F6", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: true, ScheduledTime: standmodel.MustParseTime("10:30")}

	settings := baseSettings(15)
	idx := newIndex(settings.GapBetweenFlightsMinutes)
	idx.SeedMaintenance([]standmodel.MaintenanceEntry{
		{StandName: "A1", StartTime: standmodel.MustParseTime("10:00"), EndTime: standmodel.MustParseTime("11:00")},
	})
	alloc := &Allocator{
		Stands:   []*standmodel.Stand{stand},
		Airlines: map[string]*standmodel.Airline{"AA": airline},
		Settings: settings,
		Index:    idx,
	}
	allocated, unallocated := alloc.Run(order.Build([]*standmodel.Flight{f6}))
	if len(allocated) != 0 {
		t.Fatalf("expected no allocation during maintenance, got %+v", allocated)
	}
	if len(unallocated) != 1 {
		t.Fatalf("got %+v", unallocated)
	}
}

// S6: criticality order.
func TestScenarioCriticalityOrder(t *testing.T) {
	stand := standmodel.NewStand("A1", "T1", true, standmodel.Narrow)
	airline := &standmodel.Airline{AirlineCode: "AA", BaseTerminal: "T1"}

	f7 := &standmodel.Flight{FlightID: "F7", AirlineCode: "AA", AircraftType: "A380", Terminal: "T1",
		IsArrival: true, IsCriticalConnection: true, ScheduledTime: standmodel.MustParseTime("08:00")}
	f8 := &standmodel.Flight{FlightID: "F8", AirlineCode: "AA", AircraftType: "A320", Terminal: "T1",
		IsArrival: true, ScheduledTime: standmodel.MustParseTime("08:00")}

	// Only super stands fit F7; constrain both flights to the same single
	// stand to force competition the way S6 describes.
	stand.SizeLimit = standmodel.Super
	f8.AircraftType = "A320" // still Narrow, and Narrow fits a Super stand too

	weights := standmodel.DefaultPrioritizationWeights()
	criticality.Score(f7, airline, weights)
	criticality.Score(f8, airline, weights)

	settings := baseSettings(15)
	alloc := &Allocator{
		Stands:   []*standmodel.Stand{stand},
		Airlines: map[string]*standmodel.Airline{"AA": airline},
		Settings: settings,
		Index:    newIndex(settings.GapBetweenFlightsMinutes),
	}
	units := order.Build([]*standmodel.Flight{f7, f8})
	allocated, unallocated := alloc.Run(units)

	if len(allocated) != 1 || allocated[0].Flight.FlightID != "F7" {
		t.Fatalf("expected only F7 allocated (higher criticality), got %+v", allocated)
	}
	if len(unallocated) != 1 || unallocated[0].Flight.FlightID != "F8" {
		t.Fatalf("expected F8 unallocated, got %+v", unallocated)
	}
}
