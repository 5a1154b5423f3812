// pkg/candidates/candidates.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package candidates selects and ranks the stands a flight may use.
package candidates

import (
	"sort"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// AdjacencyChecker is the pluggable hook §4.5 calls out: callers may
// supply stricter adjacency logic than the default (always true). The
// rule kind examined is implementation-defined; nil means "always pass".
type AdjacencyChecker func(flight *standmodel.Flight, stand *standmodel.Stand) bool

// AllocationTracker tells the candidate selector which terminal a flight
// already placed during this run ended up at. Which already-allocated
// flights connect validly with the one being placed is decided separately,
// through the connection tracker.
type AllocationTracker interface {
	TerminalOf(flightID string) (string, bool)
}

// Select returns the ordered list of stands flight may use, filtered by
// the hard constraints in §4.5 and, when a connection tracker is
// supplied, re-ranked by terminal-connection proximity.
func Select(
	flight *standmodel.Flight,
	airline *standmodel.Airline,
	stands []*standmodel.Stand,
	adjacency AdjacencyChecker,
	connTracker *standmodel.FlightConnectionTracker,
	allocatedFlights map[string]*standmodel.Flight,
	tracker AllocationTracker,
) []*standmodel.Stand {
	var out []*standmodel.Stand
	for _, s := range stands {
		if airline != nil && airline.BaseTerminal != s.Terminal {
			continue
		}
		if !standmodel.IsAircraftCompatible(flight.AircraftType, s.SizeLimit) {
			continue
		}
		if airline != nil && airline.RequiresContactStand && !s.IsContactStand {
			continue
		}
		if adjacency != nil && !adjacency(flight, s) {
			continue
		}
		out = append(out, s)
	}

	if connTracker == nil || tracker == nil || len(out) == 0 {
		return out
	}

	scores := connectionScores(flight, connTracker, allocatedFlights, tracker, out)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i].StandName] > scores[out[j].StandName]
	})
	return out
}

// connectionScores computes, for each candidate stand, the percentage of
// valid connecting flights (already allocated) whose terminal matches
// that stand's terminal — §4.5's re-ranking score.
func connectionScores(
	flight *standmodel.Flight,
	connTracker *standmodel.FlightConnectionTracker,
	allocatedFlights map[string]*standmodel.Flight,
	tracker AllocationTracker,
	candidates []*standmodel.Stand,
) map[string]float64 {
	var connectingTerminals []string
	for _, other := range allocatedFlights {
		var arrival, departure *standmodel.Flight
		switch {
		case flight.IsArrival && !other.IsArrival:
			arrival, departure = flight, other
		case !flight.IsArrival && other.IsArrival:
			arrival, departure = other, flight
		default:
			continue
		}
		if !connTracker.IsValidConnectionTime(arrival, departure) {
			continue
		}
		other2 := other
		if terminal, ok := tracker.TerminalOf(other2.FlightID); ok {
			connectingTerminals = append(connectingTerminals, terminal)
		}
	}

	scores := make(map[string]float64, len(candidates))
	if len(connectingTerminals) == 0 {
		return scores
	}
	for _, s := range candidates {
		matches := 0
		for _, t := range connectingTerminals {
			if t == s.Terminal {
				matches++
			}
		}
		scores[s.StandName] = 100 * float64(matches) / float64(len(connectingTerminals))
	}
	return scores
}
