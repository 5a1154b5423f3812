// pkg/occupancy/index.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package occupancy

import (
	"time"

	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// Index is the full occupancy structure used by the greedy allocator: one
// interval tree per stand, plus the epoch used to encode timestamps as
// minute offsets. For time-only data the epoch is midnight of the nominal
// day (year 1900-01-01, see standmodel.Timestamp); for date-time data it
// is midnight (UTC) of the earliest date seen across all inputs (any fixed
// reference would do, since only relative order matters).
type Index struct {
	epoch time.Time
	gap   int64 // minutes
	trees map[string]*Tree
}

// NewIndex builds an empty index with the given gap (minutes) and epoch.
func NewIndex(epoch time.Time, gapMinutes int) *Index {
	return &Index{epoch: epoch, gap: int64(gapMinutes), trees: make(map[string]*Tree)}
}

// Encode converts a timestamp to minutes since the index's epoch.
func (idx *Index) Encode(t standmodel.Timestamp) int64 {
	return int64(t.Time.Sub(idx.epoch).Minutes())
}

func (idx *Index) treeFor(stand string) *Tree {
	tr, ok := idx.trees[stand]
	if !ok {
		tr = &Tree{}
		idx.trees[stand] = tr
	}
	return tr
}

// SeedMaintenance inserts every maintenance entry as a fixed,
// un-expanded interval — maintenance never receives the flight-to-flight
// separation gap, matching §4.2.
func (idx *Index) SeedMaintenance(entries []standmodel.MaintenanceEntry) {
	for _, m := range entries {
		start, end := m.Interval()
		idx.treeFor(m.StandName).Insert(Interval{Start: idx.Encode(start), End: idx.Encode(end)}, m)
	}
}

// HasOverlap reports whether [start, end) conflicts with any existing
// occupancy on the given stand: flight occupancies must stay at least the
// configured gap away on both sides, while maintenance windows are checked
// without the gap, so a flight may abut one.
func (idx *Index) HasOverlap(stand string, start, end standmodel.Timestamp) bool {
	tr, ok := idx.trees[stand]
	if !ok {
		return false
	}
	raw := Interval{Start: idx.Encode(start), End: idx.Encode(end)}
	q := Interval{Start: raw.Start - idx.gap, End: raw.End + idx.gap}
	for _, p := range tr.Overlapping(q) {
		m, isMaintenance := p.(standmodel.MaintenanceEntry)
		if !isMaintenance {
			return true
		}
		ms, me := m.Interval()
		if raw.overlaps(Interval{Start: idx.Encode(ms), End: idx.Encode(me)}) {
			return true
		}
	}
	return false
}

// Insert records a new flight occupancy on stand for [start, end),
// unexpanded (the gap is applied only at query time, per §4.2).
func (idx *Index) Insert(stand string, start, end standmodel.Timestamp, payload any) {
	idx.treeFor(stand).Insert(Interval{Start: idx.Encode(start), End: idx.Encode(end)}, payload)
}

// ReferenceEpoch picks the epoch an Index should use for a given set of
// flights and maintenance entries: midnight 1900-01-01 if every input is
// time-only (or there are no inputs), otherwise midnight of the earliest
// timestamp's date. Mixed inputs are undefined per §4.1; a single
// date-time input selects the date-time epoch.
func ReferenceEpoch(flights []*standmodel.Flight, maintenance []standmodel.MaintenanceEntry) time.Time {
	var earliest time.Time
	timeOnly := true
	have := false
	consider := func(t standmodel.Timestamp) {
		if !t.TimeOnly {
			timeOnly = false
		}
		if !have || t.Time.Before(earliest) {
			earliest = t.Time
			have = true
		}
	}
	for _, f := range flights {
		consider(f.ScheduledTime)
	}
	for _, m := range maintenance {
		consider(m.StartTime)
		consider(m.EndTime)
	}
	if timeOnly {
		return time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if !have {
		return time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(earliest.Year(), earliest.Month(), earliest.Day(), 0, 0, 0, 0, time.UTC)
}
