// cmd/standalloc/main.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Command standalloc runs the allocation engine against a small
// synthetic scenario and prints the resulting reports. It exists for
// manual smoke testing; it is not how the engine is meant to be
// integrated — callers build their own flights/stands/airlines and
// invoke pkg/engine directly.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nickbooth1/stand-allocation-engine/pkg/engine"
	"github.com/nickbooth1/stand-allocation-engine/pkg/log"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

var (
	loglevel   = flag.String("loglevel", "info", "logging level: debug, info, warn, or error")
	logdir     = flag.String("logdir", "", "directory to write logs to; defaults to the OS user config dir")
	useSolver  = flag.Bool("solver", false, "use the CP allocator instead of the greedy allocator")
	gapMinutes = flag.Int("gap", 15, "minimum separation, in minutes, between flights on the same stand")
)

func main() {
	flag.Parse()

	lg := log.New(false, *loglevel, *logdir)

	stands := []*standmodel.Stand{
		standmodel.NewStand("A1", "T1", true, standmodel.Narrow),
		standmodel.NewStand("B1", "T1", true, standmodel.Narrow),
	}
	airlines := []*standmodel.Airline{
		{AirlineCode: "AA", AirlineName: "Example Air", BaseTerminal: "T1", RequiresContactStand: true, PriorityTier: 1},
	}
	flights := []*standmodel.Flight{
		{FlightID: "F1", FlightNumber: "AA100", AirlineCode: "AA", AircraftType: "A320",
			Origin: "JFK", Destination: "LHR", ScheduledTime: standmodel.MustParseTime("08:00"),
			Terminal: "T1", IsArrival: true},
		{FlightID: "F2", FlightNumber: "AA101", AirlineCode: "AA", AircraftType: "A320",
			Origin: "LHR", Destination: "JFK", ScheduledTime: standmodel.MustParseTime("09:00"),
			Terminal: "T1", IsArrival: true, LinkID: "L1"},
		{FlightID: "F3", FlightNumber: "AA102", AirlineCode: "AA", AircraftType: "A320",
			Origin: "LHR", Destination: "CDG", ScheduledTime: standmodel.MustParseTime("10:30"),
			Terminal: "T1", IsArrival: false, LinkID: "L1"},
	}

	settings := standmodel.Settings{
		GapBetweenFlightsMinutes: *gapMinutes,
		TurnaroundTimeSettings:   standmodel.TurnaroundTimes{Default: 45, Narrow: 45, Wide: 90, Super: 120},
		PrioritizationWeights:    standmodel.DefaultPrioritizationWeights(),
		SolverParameters:         standmodel.DefaultSolverParameters(),
	}
	settings.SolverParameters.UseSolver = *useSolver

	maintenance := standmodel.NewMaintenanceSchedule(nil)

	eng, err := engine.New(flights, stands, airlines, settings, maintenance, engine.Options{Log: lg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to construct engine: %v\n", err)
		os.Exit(1)
	}

	allocated, unallocated := eng.Run()

	fmt.Println("Allocated:")
	for _, a := range allocated {
		fmt.Printf("  %s -> %s [%s, %s)\n", a.Flight.FlightID, a.Stand, a.StartTimeString, a.EndTimeString)
	}
	fmt.Println("Unallocated:")
	for _, u := range unallocated {
		fmt.Printf("  %s: %s\n", u.Flight.FlightID, u.Reason)
	}
}
