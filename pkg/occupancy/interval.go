// pkg/occupancy/interval.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package occupancy implements the per-stand interval index the greedy
// allocator (C6) queries to decide whether a candidate stand is free for
// a proposed time window. No suitable interval-tree library was found
// anywhere in the example corpus (google/btree and tidwall/btree are
// plain ordered containers without interval augmentation), so this is a
// from-scratch augmented binary search tree — the algorithmic core the
// base specification calls out as the hard part of C2, not an ambient
// concern a library would ordinarily cover.
package occupancy

// Interval is a half-open [Start, End) span in minutes since the index's
// reference epoch.
type Interval struct {
	Start, End int64
}

// overlaps reports whether a and b, both half-open, intersect.
func (a Interval) overlaps(b Interval) bool {
	return a.Start < b.End && b.Start < a.End
}

// node is one entry in the augmented interval tree: a BST ordered by
// Start, with each node additionally tracking the maximum End across its
// subtree so overlap queries can prune entire branches.
type node struct {
	iv         Interval
	payload    any
	maxEnd     int64
	left, right *node
}

// Tree is an augmented interval tree for a single stand. The zero value
// is an empty tree ready to use.
type Tree struct {
	root *node
	size int
}

// Len returns the number of intervals currently stored.
func (t *Tree) Len() int { return t.size }

// Insert adds [iv] to the tree with the given payload (typically a
// reference to the flight or maintenance entry that owns the interval).
// Insertion does not check for overlap; callers that must enforce
// non-overlap call HasOverlap first.
func (t *Tree) Insert(iv Interval, payload any) {
	t.root = insert(t.root, iv, payload)
	t.size++
}

func insert(n *node, iv Interval, payload any) *node {
	if n == nil {
		return &node{iv: iv, payload: payload, maxEnd: iv.End}
	}
	if iv.Start < n.iv.Start {
		n.left = insert(n.left, iv, payload)
	} else {
		n.right = insert(n.right, iv, payload)
	}
	if iv.End > n.maxEnd {
		n.maxEnd = iv.End
	}
	return n
}

// HasOverlap reports whether any stored interval intersects query.
func (t *Tree) HasOverlap(query Interval) bool {
	return hasOverlap(t.root, query)
}

func hasOverlap(n *node, query Interval) bool {
	if n == nil || n.maxEnd <= query.Start {
		return false
	}
	if n.left != nil && hasOverlap(n.left, query) {
		return true
	}
	if n.iv.overlaps(query) {
		return true
	}
	// Every interval in the right subtree starts at or after n.iv.Start;
	// if query ends at or before that, nothing to the right can overlap.
	if query.End <= n.iv.Start {
		return false
	}
	return hasOverlap(n.right, query)
}

// Overlapping returns the payloads of every stored interval intersecting
// query, in no particular order. Index.HasOverlap uses it to tell
// maintenance payloads apart from flight payloads.
func (t *Tree) Overlapping(query Interval) []any {
	var out []any
	collectOverlapping(t.root, query, &out)
	return out
}

func collectOverlapping(n *node, query Interval, out *[]any) {
	if n == nil || n.maxEnd <= query.Start {
		return
	}
	collectOverlapping(n.left, query, out)
	if n.iv.overlaps(query) {
		*out = append(*out, n.payload)
	}
	if query.End > n.iv.Start {
		collectOverlapping(n.right, query, out)
	}
}
