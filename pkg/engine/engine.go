// pkg/engine/engine.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package engine implements the orchestrator (C8): given a fixed set of
// flights, stands, airlines, settings and collaborators, it scores and
// orders flights, then runs either the CP allocator or the greedy
// allocator (falling back to greedy if the CP allocator fails to produce
// a feasible result), returning the two report sequences every caller
// consumes.
package engine

import (
	"github.com/brunoga/deep"

	"github.com/nickbooth1/stand-allocation-engine/pkg/candidates"
	"github.com/nickbooth1/stand-allocation-engine/pkg/cpsolver"
	"github.com/nickbooth1/stand-allocation-engine/pkg/criticality"
	"github.com/nickbooth1/stand-allocation-engine/pkg/greedy"
	"github.com/nickbooth1/stand-allocation-engine/pkg/log"
	"github.com/nickbooth1/stand-allocation-engine/pkg/occupancy"
	"github.com/nickbooth1/stand-allocation-engine/pkg/order"
	"github.com/nickbooth1/stand-allocation-engine/pkg/report"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
	"github.com/nickbooth1/stand-allocation-engine/pkg/util"
)

// largeInputThreshold is the flight count above which the CP allocator is
// skipped unless settings.SolverParameters.ForceSolver is set, per §4.8's
// state machine.
const largeInputThreshold = 25000

// Engine holds one run's fixed inputs. Construct with New; flights,
// stands and airlines are deep-copied at construction so the engine's
// lifecycle guarantee (inputs immutable after construction, per §3) holds
// even if the caller goes on to mutate the slices they passed in. The
// maintenance tracker is kept by reference, not copied.
type Engine struct {
	flights     []*standmodel.Flight
	stands      []*standmodel.Stand
	airlines    map[string]*standmodel.Airline
	settings    standmodel.Settings
	maintenance standmodel.MaintenanceTracker
	connTracker *standmodel.FlightConnectionTracker
	adjacency   candidates.AdjacencyChecker
	aiSupport   greedy.AISupport
	log         *log.Logger
}

// Options configures an Engine beyond its required inputs.
type Options struct {
	ConnTracker *standmodel.FlightConnectionTracker
	Adjacency   candidates.AdjacencyChecker
	AISupport   greedy.AISupport
	Log         *log.Logger
}

// New validates flights/stands/maintenance, deep-copies the caller's data,
// and returns a ready-to-run Engine. A non-nil error means a kind-3
// validation problem was found (possibly several; see
// standmodel.Validate) and the engine was not constructed.
func New(
	flights []*standmodel.Flight,
	stands []*standmodel.Stand,
	airlines []*standmodel.Airline,
	settings standmodel.Settings,
	maintenance standmodel.MaintenanceTracker,
	opts Options,
) (*Engine, error) {
	var maintenanceEntries []standmodel.MaintenanceEntry
	if maintenance != nil {
		maintenanceEntries = maintenance.Entries()
	}
	if err := standmodel.Validate(flights, stands, maintenanceEntries); err != nil {
		return nil, err
	}

	flightsCopy, err := deep.Copy(flights)
	if err != nil {
		return nil, err
	}
	standsCopy, err := deep.Copy(stands)
	if err != nil {
		return nil, err
	}

	airlineMap := make(map[string]*standmodel.Airline, len(airlines))
	for _, a := range airlines {
		airlineMap[a.AirlineCode] = a
	}
	airlineMapCopy, err := deep.Copy(airlineMap)
	if err != nil {
		return nil, err
	}

	logger := opts.Log
	aiSupport := opts.AISupport
	if aiSupport == nil {
		aiSupport = NewSimpleAISupport(logger)
	}

	return &Engine{
		flights:     flightsCopy,
		stands:      standsCopy,
		airlines:    airlineMapCopy,
		settings:    settings,
		maintenance: maintenance,
		connTracker: opts.ConnTracker,
		adjacency:   opts.Adjacency,
		aiSupport:   aiSupport,
		log:         logger,
	}, nil
}

// Run scores every flight, builds the processing order, and dispatches to
// the CP allocator or the greedy allocator per §4.8's state machine,
// returning the allocated and unallocated reports.
func (e *Engine) Run() ([]report.Allocated, []report.Unallocated) {
	criticality.ScoreAll(e.flights, e.airlines, e.settings.PrioritizationWeights)
	units := order.Build(e.flights)

	var maintenanceEntries []standmodel.MaintenanceEntry
	if e.maintenance != nil {
		maintenanceEntries = e.maintenance.Entries()
	}

	useSolver := e.settings.SolverParameters.UseSolver &&
		(len(e.flights) <= largeInputThreshold || e.settings.SolverParameters.ForceSolver)

	if useSolver {
		e.log.Debugf("attempting cp solver for %d flights", len(e.flights))
		allocated, unallocated, ok := cpsolver.Solve(units, e.airlines, e.stands, maintenanceEntries, e.settings, e.adjacency, e.connTracker, e.log)
		if ok {
			e.warnUnallocatedCriticalConnections(unallocated)
			return allocated, unallocated
		}
		e.log.Warn("cp solver produced no feasible result, falling back to greedy allocator")
	}

	allocated, unallocated := e.runGreedy(units, maintenanceEntries)
	e.warnUnallocatedCriticalConnections(unallocated)
	return allocated, unallocated
}

// warnUnallocatedCriticalConnections logs a single warning naming every
// unallocated flight that was carrying a critical passenger connection
// (§3's IsCriticalConnection flag) — the unallocated slice as a whole is
// already returned to the caller, but a critical-connection miss is the one
// failure an operator needs surfaced immediately rather than read off a
// report after the fact.
func (e *Engine) warnUnallocatedCriticalConnections(unallocated []report.Unallocated) {
	critical := util.FilterSlice(unallocated, func(u report.Unallocated) bool {
		return u.Flight.IsCriticalConnection
	})
	if len(critical) == 0 {
		return
	}
	ids := util.MapSlice(critical, func(u report.Unallocated) string { return u.Flight.FlightID })
	e.log.Warnf("unallocated flights with a critical connection: %v", ids)
}

func (e *Engine) runGreedy(units []standmodel.FlightOperationUnit, maintenanceEntries []standmodel.MaintenanceEntry) ([]report.Allocated, []report.Unallocated) {
	epoch := occupancy.ReferenceEpoch(e.flights, maintenanceEntries)
	idx := occupancy.NewIndex(epoch, e.settings.GapBetweenFlightsMinutes)
	idx.SeedMaintenance(maintenanceEntries)

	alloc := &greedy.Allocator{
		Stands:      e.stands,
		Airlines:    e.airlines,
		Settings:    e.settings,
		Index:       idx,
		Adjacency:   e.adjacency,
		ConnTracker: e.connTracker,
		AISupport:   e.aiSupport,
		Log:         e.log,
	}
	return alloc.Run(units)
}
