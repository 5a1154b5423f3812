// pkg/cpsolver/model.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package cpsolver implements the CP allocator (C7): a constraint model
// over per-unit stand assignment, a global no-overlap requirement per
// stand, linked-pair atomicity, and a criticality-weighted objective,
// solved by branch-and-bound search. No OR-Tools (or any other CP-SAT /
// ILP) binding exists anywhere in the example corpus, so the search is
// hand-rolled — the algorithmic core the base specification calls out as
// the hard part of C7, not an ambient concern a library would ordinarily
// cover.
package cpsolver

import (
	"github.com/nickbooth1/stand-allocation-engine/pkg/candidates"
	"github.com/nickbooth1/stand-allocation-engine/pkg/occupancy"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// unitVar is the CP model's view of one flight operation unit: its
// occupancy window (start_i, end_i — fixed once the window is computed,
// since widening it beyond the minimum turnaround never helps
// feasibility), the stands it may use (its "stand_i" domain, excluding
// -1 which is modeled implicitly by never assigning it), and the
// objective weight contributed when it is allocated.
type unitVar struct {
	unit       standmodel.FlightOperationUnit
	start, end standmodel.Timestamp
	domain     []*standmodel.Stand
	weight     int64
}

// buildModel computes the per-unit windows, candidate domains and
// objective weights for every unit, in the same order units were given
// (the engine passes pkg/order's processing order). Solve's reports follow
// this unit order; they are not re-projected into flight-input order.
func buildModel(
	units []standmodel.FlightOperationUnit,
	airlines map[string]*standmodel.Airline,
	stands []*standmodel.Stand,
	settings standmodel.Settings,
	adjacency candidates.AdjacencyChecker,
	connTracker *standmodel.FlightConnectionTracker,
) []unitVar {
	vars := make([]unitVar, len(units))
	for i, u := range units {
		start, end := occupancyWindow(u, settings)
		airline := airlines[u.AirlineCode()]
		primary := u.PrimaryFlight()
		dom := candidates.Select(primary, airline, stands, adjacency, connTracker, nil, noopTracker{})

		weight := int64(u.PrimaryFlight().CriticalityScore*100) + 1
		if u.IsLinkedPair() {
			weight += int64(u.Departure.CriticalityScore*100) + 1
		}

		vars[i] = unitVar{unit: u, start: start, end: end, domain: dom, weight: weight}
	}
	return vars
}

type noopTracker struct{}

func (noopTracker) TerminalOf(string) (string, bool) { return "", false }

// occupancyWindow computes [start, end) for a unit exactly as the greedy
// allocator does (§4.6): a linked pair occupies arrival-time to
// departure-time; a single occupies scheduled-time extended by its
// category's turnaround in whichever direction is missing. Any feasible
// CP solution can only lose by widening a window beyond this minimum, so
// the model fixes start_i/end_i here rather than carrying them as free
// integer variables — a deliberate simplification over the source's
// free-variable formulation, recorded in the project's design notes.
func occupancyWindow(unit standmodel.FlightOperationUnit, settings standmodel.Settings) (standmodel.Timestamp, standmodel.Timestamp) {
	switch {
	case unit.IsLinkedPair():
		start := unit.Arrival.ScheduledTime
		end := standmodel.AddOvernightIfBefore(start, unit.Departure.ScheduledTime)
		return start, end
	case unit.Arrival != nil:
		start := unit.Arrival.ScheduledTime
		turnaround := settings.TurnaroundTimeSettings.Minutes(standmodel.AircraftCategory(unit.Arrival.AircraftType))
		end := start
		end.Time = end.Time.Add(minutesDuration(turnaround))
		return start, end
	default:
		end := unit.Departure.ScheduledTime
		turnaround := settings.TurnaroundTimeSettings.Minutes(standmodel.AircraftCategory(unit.Departure.AircraftType))
		start := end
		start.Time = start.Time.Add(-minutesDuration(turnaround))
		return start, end
	}
}

// interval returns the unit's unexpanded [start, end) interval against
// idx's epoch; searchState.fits applies the gap during the no-overlap
// check.
func (v unitVar) interval(idx *occupancy.Index) occupancy.Interval {
	return occupancy.Interval{Start: idx.Encode(v.start), End: idx.Encode(v.end)}
}
