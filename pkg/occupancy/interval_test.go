// pkg/occupancy/interval_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package occupancy

import "testing"

func TestTreeHasOverlap(t *testing.T) {
	var tr Tree
	tr.Insert(Interval{Start: 100, End: 200}, "a")
	tr.Insert(Interval{Start: 300, End: 400}, "b")
	tr.Insert(Interval{Start: 50, End: 90}, "c")

	cases := []struct {
		q    Interval
		want bool
	}{
		{Interval{Start: 150, End: 160}, true},  // inside "a"
		{Interval{Start: 190, End: 210}, true},  // straddles end of "a"
		{Interval{Start: 200, End: 300}, false}, // exactly between a and b, half-open
		{Interval{Start: 0, End: 50}, false},    // before "c" (half-open at 50)
		{Interval{Start: 395, End: 500}, true},  // straddles start of "b" end
	}
	for _, c := range cases {
		if got := tr.HasOverlap(c.q); got != c.want {
			t.Errorf("HasOverlap(%+v) = %v, want %v", c.q, got, c.want)
		}
	}
}

func TestTreeOverlappingReturnsPayloads(t *testing.T) {
	var tr Tree
	tr.Insert(Interval{Start: 0, End: 10}, "x")
	tr.Insert(Interval{Start: 5, End: 15}, "y")

	got := tr.Overlapping(Interval{Start: 8, End: 9})
	if len(got) != 2 {
		t.Fatalf("expected both intervals to overlap, got %v", got)
	}
}

func TestTreeLen(t *testing.T) {
	var tr Tree
	tr.Insert(Interval{Start: 0, End: 10}, nil)
	tr.Insert(Interval{Start: 20, End: 30}, nil)
	if tr.Len() != 2 {
		t.Fatalf("got %d", tr.Len())
	}
}
