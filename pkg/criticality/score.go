// pkg/criticality/score.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package criticality computes the per-flight priority score that orders
// the greedy allocator's processing sequence and weights the CP
// allocator's objective.
package criticality

import (
	"strings"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// wideBonusTypes is the substring list the criticality formula checks for
// its wide-body bonus. This is narrower than standmodel's own Wide
// category (which also matches B767/B757): the two lists serve different
// purposes and the source keeps them independent, so this package does
// too rather than reusing standmodel.AircraftCategory here.
var wideBonusTypes = []string{"B777", "B787", "A330", "A350"}

// Score computes and assigns flight.CriticalityScore, per §4.3's weighted
// formula. airline may be nil if the flight's airline code is unknown;
// the airline-tier and contact-stand terms simply drop out.
func Score(flight *standmodel.Flight, airline *standmodel.Airline, weights standmodel.PrioritizationWeights) float64 {
	score := float64(flight.BasePriorityScore) * weights.BaseScore

	switch {
	case strings.Contains(flight.AircraftType, "A380"):
		score += weights.AircraftTypeA380
	case strings.Contains(flight.AircraftType, "B747"):
		score += weights.AircraftTypeB747
	case containsAny(flight.AircraftType, wideBonusTypes):
		score += weights.AircraftTypeWide
	}

	if airline != nil {
		score += float64(airline.PriorityTier) * weights.AirlineTier
		if airline.RequiresContactStand {
			score += weights.RequiresContactStand
		}
	}

	if flight.IsCriticalConnection {
		score += weights.CriticalConnection
	}

	flight.CriticalityScore = score
	return score
}

// ScoreAll scores every flight, looking each one's airline up in
// airlines (keyed by AirlineCode).
func ScoreAll(flights []*standmodel.Flight, airlines map[string]*standmodel.Airline, weights standmodel.PrioritizationWeights) {
	for _, f := range flights {
		Score(f, airlines[f.AirlineCode], weights)
	}
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
