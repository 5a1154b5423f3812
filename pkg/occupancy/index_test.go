// pkg/occupancy/index_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package occupancy

import (
	"testing"
	"time"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

func TestIndexGapExpansion(t *testing.T) {
	idx := NewIndex(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 15)
	start := standmodel.MustParseTime("08:00")
	end := standmodel.MustParseTime("08:45")
	idx.Insert("A1", start, end, "f1")

	// A flight starting at 08:45 (exactly adjacent) should conflict given
	// a 15 minute gap.
	if !idx.HasOverlap("A1", standmodel.MustParseTime("08:45"), standmodel.MustParseTime("09:15")) {
		t.Fatalf("expected a gap-induced conflict at 08:45")
	}
	// A flight starting at 09:00 (15 minutes clear) should not conflict.
	if idx.HasOverlap("A1", standmodel.MustParseTime("09:00"), standmodel.MustParseTime("09:30")) {
		t.Fatalf("expected no conflict once the gap is respected")
	}
}

func TestIndexMaintenanceUnexpanded(t *testing.T) {
	idx := NewIndex(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 15)
	idx.SeedMaintenance([]standmodel.MaintenanceEntry{
		{StandName: "A1", StartTime: standmodel.MustParseTime("10:00"), EndTime: standmodel.MustParseTime("11:00")},
	})
	// A flight immediately abutting the maintenance window (no gap applied
	// to maintenance) should not conflict.
	if idx.HasOverlap("A1", standmodel.MustParseTime("11:00"), standmodel.MustParseTime("11:30")) {
		t.Fatalf("expected maintenance boundary to allow immediate abutment")
	}
	if !idx.HasOverlap("A1", standmodel.MustParseTime("10:30"), standmodel.MustParseTime("10:45")) {
		t.Fatalf("expected overlap inside the maintenance window")
	}
}

func TestReferenceEpochTimeOnly(t *testing.T) {
	flights := []*standmodel.Flight{
		{ScheduledTime: standmodel.MustParseTime("08:00")},
	}
	epoch := ReferenceEpoch(flights, nil)
	if epoch.Year() != 1900 {
		t.Fatalf("expected the time-only sentinel epoch, got %v", epoch)
	}
}
