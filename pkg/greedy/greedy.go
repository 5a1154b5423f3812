// pkg/greedy/greedy.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package greedy implements the interval-tree-backed greedy allocator
// (C6): process flight operation units in criticality order, place each
// on the first available compatible stand.
package greedy

import (
	"github.com/nickbooth1/stand-allocation-engine/pkg/candidates"
	"github.com/nickbooth1/stand-allocation-engine/pkg/log"
	"github.com/nickbooth1/stand-allocation-engine/pkg/occupancy"
	"github.com/nickbooth1/stand-allocation-engine/pkg/report"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// AISupport is notified whenever a flight cannot be allocated. The core
// treats it purely as a side-effect sink; its return value is unused.
type AISupport interface {
	LogUnallocated(flight *standmodel.Flight, reason string)
}

// Allocator runs the greedy algorithm over a fixed set of stands,
// airlines and settings. It owns the occupancy index and the
// terminal/allocation bookkeeping maps the candidate selector consults
// for connection re-ranking.
type Allocator struct {
	Stands   []*standmodel.Stand
	Airlines map[string]*standmodel.Airline
	Settings standmodel.Settings
	Index    *occupancy.Index
	Adjacency candidates.AdjacencyChecker
	ConnTracker *standmodel.FlightConnectionTracker
	AISupport AISupport
	Log       *log.Logger

	allocatedFlights map[string]*standmodel.Flight
	flightTerminals  map[string]string
}

// terminalTracker adapts Allocator to candidates.AllocationTracker.
type terminalTracker struct{ a *Allocator }

func (t terminalTracker) TerminalOf(flightID string) (string, bool) {
	term, ok := t.a.flightTerminals[flightID]
	return term, ok
}

// Run processes units in the given order (the output of pkg/order.Build)
// and returns the allocated and unallocated reports, in unit-processing
// order with the arrival record preceding the departure record for a
// linked pair, per §5.
func (a *Allocator) Run(units []standmodel.FlightOperationUnit) ([]report.Allocated, []report.Unallocated) {
	if a.allocatedFlights == nil {
		a.allocatedFlights = make(map[string]*standmodel.Flight)
	}
	if a.flightTerminals == nil {
		a.flightTerminals = make(map[string]string)
	}

	var allocated []report.Allocated
	var unallocated []report.Unallocated

	for _, unit := range units {
		if unit.IsLinkedPair() {
			allocated, unallocated = a.processLinkedPair(unit, allocated, unallocated)
		} else {
			allocated, unallocated = a.processSingle(unit, allocated, unallocated)
		}
	}
	return allocated, unallocated
}

func (a *Allocator) occupancyWindow(unit standmodel.FlightOperationUnit) (standmodel.Timestamp, standmodel.Timestamp) {
	switch {
	case unit.IsLinkedPair():
		start := unit.Arrival.ScheduledTime
		end := standmodel.AddOvernightIfBefore(start, unit.Departure.ScheduledTime)
		return start, end
	case unit.Arrival != nil:
		start := unit.Arrival.ScheduledTime
		turnaround := a.Settings.TurnaroundTimeSettings.Minutes(standmodel.AircraftCategory(unit.Arrival.AircraftType))
		end := start
		end.Time = end.Time.Add(minutesDuration(turnaround))
		return start, end
	default:
		end := unit.Departure.ScheduledTime
		turnaround := a.Settings.TurnaroundTimeSettings.Minutes(standmodel.AircraftCategory(unit.Departure.AircraftType))
		start := end
		start.Time = start.Time.Add(-minutesDuration(turnaround))
		return start, end
	}
}

func (a *Allocator) processLinkedPair(unit standmodel.FlightOperationUnit, allocated []report.Allocated, unallocated []report.Unallocated) ([]report.Allocated, []report.Unallocated) {
	start, end := a.occupancyWindow(unit)
	airline := a.Airlines[unit.AirlineCode()]
	cands := candidates.Select(unit.Arrival, airline, a.Stands, a.Adjacency, a.ConnTracker, a.allocatedFlights, terminalTracker{a})

	for _, s := range cands {
		if a.Index.HasOverlap(s.StandName, start, end) {
			continue
		}
		a.Index.Insert(s.StandName, start, end, unit)
		a.recordAllocation(unit.Arrival, s)
		a.recordAllocation(unit.Departure, s)
		allocated = append(allocated,
			report.NewAllocated(unit.Arrival, s.StandName, start, end),
			report.NewAllocated(unit.Departure, s.StandName, start, end))
		a.Log.Debugf("allocated linked pair %s/%s to stand %s", unit.Arrival.FlightID, unit.Departure.FlightID, s.StandName)
		return allocated, unallocated
	}

	unallocated = append(unallocated,
		report.Unallocated{Flight: unit.Arrival, Reason: report.ReasonNoStandAvailableLinkedPair},
		report.Unallocated{Flight: unit.Departure, Reason: report.ReasonNoStandAvailableLinkedPair})
	a.notifyUnallocated(unit.Arrival, report.ReasonNoStandAvailableLinkedPair)
	a.notifyUnallocated(unit.Departure, report.ReasonNoStandAvailableLinkedPair)
	return allocated, unallocated
}

func (a *Allocator) processSingle(unit standmodel.FlightOperationUnit, allocated []report.Allocated, unallocated []report.Unallocated) ([]report.Allocated, []report.Unallocated) {
	start, end := a.occupancyWindow(unit)
	flight := unit.PrimaryFlight()
	airline := a.Airlines[unit.AirlineCode()]
	cands := candidates.Select(flight, airline, a.Stands, a.Adjacency, a.ConnTracker, a.allocatedFlights, terminalTracker{a})

	for _, s := range cands {
		if a.Index.HasOverlap(s.StandName, start, end) {
			continue
		}
		a.Index.Insert(s.StandName, start, end, unit)
		a.recordAllocation(flight, s)
		allocated = append(allocated, report.NewAllocated(flight, s.StandName, start, end))
		a.Log.Debugf("allocated flight %s to stand %s", flight.FlightID, s.StandName)
		return allocated, unallocated
	}

	unallocated = append(unallocated, report.Unallocated{Flight: flight, Reason: report.ReasonNoStandAvailable})
	a.notifyUnallocated(flight, report.ReasonNoStandAvailable)
	return allocated, unallocated
}

func (a *Allocator) recordAllocation(flight *standmodel.Flight, stand *standmodel.Stand) {
	a.allocatedFlights[flight.FlightID] = flight
	a.flightTerminals[flight.FlightID] = stand.Terminal
}

func (a *Allocator) notifyUnallocated(flight *standmodel.Flight, reason string) {
	if a.AISupport != nil {
		a.AISupport.LogUnallocated(flight, reason)
	}
}
