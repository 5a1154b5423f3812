// pkg/standmodel/aircraft_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package standmodel

import "testing"

func TestAircraftCategory(t *testing.T) {
	cases := map[string]Category{
		"A320":   Narrow,
		"B737-8": Narrow,
		"B777":   Wide,
		"A350":   Wide,
		"A380":   Super,
		"B747-8": Super,
		"AN225":  Super,
		"XYZ999": Narrow, // unknown defaults to Narrow
	}
	for aircraft, want := range cases {
		if got := AircraftCategory(aircraft); got != want {
			t.Errorf("AircraftCategory(%q) = %v, want %v", aircraft, got, want)
		}
	}
}

func TestAircraftCategoryOrderPrefersNarrowFirst(t *testing.T) {
	// A contrived type containing both a narrow and a super substring
	// must classify as Narrow: the narrow list is checked first.
	if got := AircraftCategory("A320-A380-HYBRID"); got != Narrow {
		t.Fatalf("got %v, want Narrow", got)
	}
}

func TestIsAircraftCompatible(t *testing.T) {
	if !IsAircraftCompatible("A320", Super) {
		t.Fatalf("narrow aircraft should fit a super stand")
	}
	if IsAircraftCompatible("A380", Narrow) {
		t.Fatalf("super aircraft should not fit a narrow stand")
	}
	if !IsAircraftCompatible("B777", Wide) {
		t.Fatalf("wide aircraft should fit a wide stand")
	}
	if IsAircraftCompatible("B777", Narrow) {
		t.Fatalf("wide aircraft should not fit a narrow stand")
	}
}
