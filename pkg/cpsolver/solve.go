// pkg/cpsolver/solve.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package cpsolver

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nickbooth1/stand-allocation-engine/pkg/candidates"
	"github.com/nickbooth1/stand-allocation-engine/pkg/log"
	"github.com/nickbooth1/stand-allocation-engine/pkg/occupancy"
	"github.com/nickbooth1/stand-allocation-engine/pkg/report"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// largeInputThreshold is the flight count above which §4.7 requires the
// solver to cap its time limit and prefer a single worker.
const largeInputThreshold = 10000

// Solve builds the constraint model for units and searches for the
// allocation maximizing the criticality-weighted objective, within the
// settings' solver parameters. Leaving a unit unallocated is always
// feasible, so units with no compatible stand come back in the unallocated
// report with ok=true. It returns ok=false when the time limit expired
// before the search found any assignment that allocates at least one unit
// — the orchestrator (C8) treats that as solver failure and falls back to
// greedy.
func Solve(
	units []standmodel.FlightOperationUnit,
	airlines map[string]*standmodel.Airline,
	stands []*standmodel.Stand,
	maintenance []standmodel.MaintenanceEntry,
	settings standmodel.Settings,
	adjacency candidates.AdjacencyChecker,
	connTracker *standmodel.FlightConnectionTracker,
	logger *log.Logger,
) (allocated []report.Allocated, unallocated []report.Unallocated, ok bool) {
	if len(units) == 0 {
		return nil, nil, true
	}

	var flights []*standmodel.Flight
	for _, u := range units {
		if u.Arrival != nil {
			flights = append(flights, u.Arrival)
		}
		if u.Departure != nil {
			flights = append(flights, u.Departure)
		}
	}
	horizon := CalculateHorizon(flights)
	logger.Debugf("cp solver horizon: earliest=%s minutes=%d", horizon.Earliest, horizon.Minutes)

	epoch := occupancy.ReferenceEpoch(flights, maintenance)
	idx := occupancy.NewIndex(epoch, settings.GapBetweenFlightsMinutes)

	maintenanceIntervals := make(map[string][]occupancy.Interval)
	for _, m := range maintenance {
		start, end := m.Interval()
		maintenanceIntervals[m.StandName] = append(maintenanceIntervals[m.StandName],
			occupancy.Interval{Start: idx.Encode(start), End: idx.Encode(end)})
	}

	vars := buildModel(units, airlines, stands, settings, adjacency, connTracker)

	timeLimit := settings.SolverParameters.SolverTimeLimitSeconds
	if timeLimit <= 0 {
		timeLimit = 30
	}
	numWorkers := 3
	if len(flights) > largeInputThreshold {
		if timeLimit > 300 {
			timeLimit = 300
		}
		numWorkers = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeLimit)*time.Second)
	defer cancel()

	orderings := workerOrderings(numWorkers)
	results := make([]*worker, len(orderings))

	var g errgroup.Group
	for i, reorder := range orderings {
		i, reorder := i, reorder
		g.Go(func() error {
			workerVars := reorder(vars)
			w := newWorker(workerVars, idx)
			gap := int64(settings.GapBetweenFlightsMinutes)
			w.run(ctx, newSearchState(gap, maintenanceIntervals))
			results[i] = w
			return nil
		})
	}
	_ = g.Wait() // workers never return an error; only ctx cancellation stops them early

	best := reduceBest(results)
	if best == nil || (best.bestWeight == 0 && ctx.Err() != nil) {
		return nil, nil, false
	}

	allocated, unallocated = decode(vars, best.best, idx, logger)
	return allocated, unallocated, true
}

// reduceBest deterministically picks the highest-weight result across
// workers, breaking ties by worker index so concurrent completion order
// never affects the outcome.
func reduceBest(results []*worker) *worker {
	var best *worker
	for _, w := range results {
		if w == nil {
			continue
		}
		if best == nil || w.bestWeight > best.bestWeight {
			best = w
		}
	}
	return best
}

// workerOrderings returns n deterministic domain-reordering functions,
// each giving its worker a different branching bias so concurrent search
// covers more of the space than one worker alone would in the same wall
// time — never introducing randomness, since every ordering is a fixed
// function of the input.
func workerOrderings(n int) []func([]unitVar) []unitVar {
	all := []func([]unitVar) []unitVar{
		func(vars []unitVar) []unitVar { return vars }, // candidate order as selected (stand input order)
		reverseDomains,
		sortDomainsByStandName,
	}
	if n > len(all) {
		n = len(all)
	}
	if n < 1 {
		n = 1
	}
	return all[:n]
}

func reverseDomains(vars []unitVar) []unitVar {
	out := make([]unitVar, len(vars))
	for i, v := range vars {
		dom := append([]*standmodel.Stand(nil), v.domain...)
		for l, r := 0, len(dom)-1; l < r; l, r = l+1, r-1 {
			dom[l], dom[r] = dom[r], dom[l]
		}
		v.domain = dom
		out[i] = v
	}
	return out
}

func sortDomainsByStandName(vars []unitVar) []unitVar {
	out := make([]unitVar, len(vars))
	for i, v := range vars {
		dom := append([]*standmodel.Stand(nil), v.domain...)
		sort.Slice(dom, func(a, b int) bool { return dom[a].StandName < dom[b].StandName })
		v.domain = dom
		out[i] = v
	}
	return out
}

// decode converts a worker's winning assignment back into allocated and
// unallocated reports, in the order of vars (the unit order the caller
// passed to Solve); records are not re-sorted into flight-input order.
func decode(vars []unitVar, best assignment, idx *occupancy.Index, logger *log.Logger) ([]report.Allocated, []report.Unallocated) {
	var allocated []report.Allocated
	var unallocated []report.Unallocated

	for i, v := range vars {
		di := best[i]
		if di < 0 || di >= len(v.domain) {
			if v.unit.IsLinkedPair() {
				unallocated = append(unallocated,
					report.Unallocated{Flight: v.unit.Arrival, Reason: report.ReasonNoStandAvailableLinkedPair},
					report.Unallocated{Flight: v.unit.Departure, Reason: report.ReasonNoStandAvailableLinkedPair})
			} else {
				unallocated = append(unallocated, report.Unallocated{Flight: v.unit.PrimaryFlight(), Reason: report.ReasonNoStandAvailableCPSolver})
			}
			continue
		}
		stand := v.domain[di]
		if v.unit.IsLinkedPair() {
			allocated = append(allocated,
				report.NewAllocated(v.unit.Arrival, stand.StandName, v.start, v.end),
				report.NewAllocated(v.unit.Departure, stand.StandName, v.start, v.end))
		} else {
			allocated = append(allocated, report.NewAllocated(v.unit.PrimaryFlight(), stand.StandName, v.start, v.end))
		}
		logger.Debugf("cp solver allocated unit (primary flight %s) to stand %s", v.unit.PrimaryFlight().FlightID, stand.StandName)
	}
	return allocated, unallocated
}
