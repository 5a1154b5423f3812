// pkg/criticality/score_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package criticality

import (
	"testing"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

func TestScoreA380CriticalConnection(t *testing.T) {
	weights := standmodel.DefaultPrioritizationWeights()
	airline := &standmodel.Airline{AirlineCode: "AA", PriorityTier: 2, RequiresContactStand: true}
	flight := &standmodel.Flight{
		AirlineCode:          "AA",
		AircraftType:         "A380",
		IsCriticalConnection: true,
		BasePriorityScore:    1,
	}
	got := Score(flight, airline, weights)
	// base(1*1) + A380(10) + tier(2*2) + contact(3) + critical(5) = 23
	want := 1.0 + 10.0 + 4.0 + 3.0 + 5.0
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if flight.CriticalityScore != got {
		t.Fatalf("expected flight.CriticalityScore to be mutated")
	}
}

func TestScoreNilAirline(t *testing.T) {
	weights := standmodel.DefaultPrioritizationWeights()
	flight := &standmodel.Flight{AircraftType: "A320", BasePriorityScore: 3}
	got := Score(flight, nil, weights)
	if got != 3.0 {
		t.Fatalf("got %v, want 3.0", got)
	}
}

func TestScoreWideBodyBonusExcludesB767(t *testing.T) {
	weights := standmodel.DefaultPrioritizationWeights()
	// B767 is Wide in standmodel.AircraftCategory but the criticality
	// wide-body bonus list deliberately omits it (matches the source).
	flight := &standmodel.Flight{AircraftType: "B767"}
	if got := Score(flight, nil, weights); got != 0 {
		t.Fatalf("got %v, want 0 (no wide-body bonus for B767)", got)
	}
	flight2 := &standmodel.Flight{AircraftType: "B777"}
	if got := Score(flight2, nil, weights); got != weights.AircraftTypeWide {
		t.Fatalf("got %v, want %v", got, weights.AircraftTypeWide)
	}
}
