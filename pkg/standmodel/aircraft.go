// pkg/standmodel/aircraft.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package standmodel

import "strings"

// Category is an aircraft size class, used both to look up turnaround
// times and to check stand compatibility.
type Category string

const (
	Narrow Category = "Narrow"
	Wide   Category = "Wide"
	Super  Category = "Super"
)

// narrowTypes, wideTypes and superTypes are checked in this order —
// narrow first — so a type substring appearing in more than one list is
// classified by whichever list is checked first.
var (
	narrowTypes = []string{"A320", "B737", "E190", "CRJ", "A220", "B717", "A319"}
	wideTypes   = []string{"B777", "B787", "A330", "A350", "B767", "B757"}
	superTypes  = []string{"A380", "B747", "AN225"}
)

// AircraftCategory classifies an aircraft type string by substring match.
// Unrecognized types default to Narrow.
func AircraftCategory(aircraftType string) Category {
	for _, n := range narrowTypes {
		if strings.Contains(aircraftType, n) {
			return Narrow
		}
	}
	for _, w := range wideTypes {
		if strings.Contains(aircraftType, w) {
			return Wide
		}
	}
	for _, s := range superTypes {
		if strings.Contains(aircraftType, s) {
			return Super
		}
	}
	return Narrow
}

// compatibleStandSizes lists, for an aircraft category, the stand size
// limits it may use.
var compatibleStandSizes = map[Category][]Category{
	Narrow: {Narrow, Wide, Super},
	Wide:   {Wide, Super},
	Super:  {Super},
}

// IsAircraftCompatible reports whether an aircraft of the given type can
// use a stand whose size limit is standSize.
func IsAircraftCompatible(aircraftType string, standSize Category) bool {
	category := AircraftCategory(aircraftType)
	for _, ok := range compatibleStandSizes[category] {
		if ok == standSize {
			return true
		}
	}
	return false
}
