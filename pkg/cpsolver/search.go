// pkg/cpsolver/search.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package cpsolver

import (
	"context"

	"github.com/nickbooth1/stand-allocation-engine/pkg/occupancy"
)

// assignment is one full (or partial) branch-and-bound solution: for each
// unit index, the domain index assigned (-1 = unallocated).
type assignment []int

// searchState tracks, for the duration of one worker's search, which
// flight intervals are currently placed on each stand, alongside the
// fixed maintenance intervals, so a candidate assignment can be checked in
// O(occupied-on-stand): flights must keep the configured gap from each
// other, while maintenance is checked without the gap (as in C2).
// This is deliberately a plain slice-per-stand rather than C2's
// occupancy.Tree: the tree has no delete operation, and branch-and-bound
// backtracking needs cheap removal, which a slice gives for free by
// truncating.
type searchState struct {
	gap         int64
	byStand     map[string][]occupancy.Interval
	maintenance map[string][]occupancy.Interval // read-only, shared
}

func newSearchState(gap int64, maintenance map[string][]occupancy.Interval) *searchState {
	return &searchState{gap: gap, byStand: make(map[string][]occupancy.Interval), maintenance: maintenance}
}

func (st *searchState) clone() *searchState {
	cp := &searchState{gap: st.gap, byStand: make(map[string][]occupancy.Interval, len(st.byStand)), maintenance: st.maintenance}
	for stand, ivs := range st.byStand {
		cp.byStand[stand] = append([]occupancy.Interval(nil), ivs...)
	}
	return cp
}

func (st *searchState) fits(stand string, iv occupancy.Interval) bool {
	for _, m := range st.maintenance[stand] {
		if m.Start < iv.End && iv.Start < m.End {
			return false
		}
	}
	q := occupancy.Interval{Start: iv.Start - st.gap, End: iv.End + st.gap}
	for _, existing := range st.byStand[stand] {
		if existing.Start < q.End && q.Start < existing.End {
			return false
		}
	}
	return true
}

func (st *searchState) place(stand string, iv occupancy.Interval) {
	st.byStand[stand] = append(st.byStand[stand], iv)
}

func (st *searchState) unplace(stand string) {
	s := st.byStand[stand]
	st.byStand[stand] = s[:len(s)-1]
}

// worker runs one deterministic depth-first branch-and-bound search over
// its own (possibly reordered) view of the model's unit domains,
// respecting ctx's deadline. Distinct workers are given distinct, still
// fully deterministic, domain orderings so running several concurrently
// explores the space from different angles without randomness entering
// the result; see solve.go for how workers are spawned and reduced.
type worker struct {
	vars      []unitVar
	idx       *occupancy.Index
	suffixSum []int64

	cur        assignment
	best       assignment
	bestWeight int64
	nodes      int
}

func newWorker(vars []unitVar, idx *occupancy.Index) *worker {
	w := &worker{vars: vars, idx: idx}
	w.suffixSum = make([]int64, len(vars)+1)
	for i := len(vars) - 1; i >= 0; i-- {
		w.suffixSum[i] = w.suffixSum[i+1] + vars[i].weight
	}
	w.cur = make(assignment, len(vars))
	w.best = make(assignment, len(vars))
	for i := range w.cur {
		w.cur[i] = -1
		w.best[i] = -1
	}
	return w
}

const deadlineCheckEveryNodes = 2048

// run searches from the empty assignment until either the whole space is
// exhausted or ctx's deadline passes, recording the best (highest-weight)
// complete assignment found in w.best/w.bestWeight.
func (w *worker) run(ctx context.Context, state *searchState) {
	w.search(ctx, state, 0, 0)
}

func (w *worker) search(ctx context.Context, state *searchState, i int, weight int64) {
	w.nodes++
	if w.nodes%deadlineCheckEveryNodes == 0 {
		select {
		case <-ctx.Done():
			return
		default:
		}
	}

	if i == len(w.vars) {
		if weight > w.bestWeight {
			w.bestWeight = weight
			copy(w.best, w.cur)
		}
		return
	}
	if weight+w.suffixSum[i] <= w.bestWeight {
		return // no completion from here can beat the incumbent
	}

	v := w.vars[i]
	iv := v.interval(w.idx)
	for di, s := range v.domain {
		if !state.fits(s.StandName, iv) {
			continue
		}
		state.place(s.StandName, iv)
		w.cur[i] = di
		w.search(ctx, state, i+1, weight+v.weight)
		w.cur[i] = -1
		state.unplace(s.StandName)

		select {
		case <-ctx.Done():
			return
		default:
		}
	}

	// Leave unit i unallocated and continue.
	w.cur[i] = -1
	w.search(ctx, state, i+1, weight)
}
