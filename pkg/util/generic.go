// pkg/util/generic.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package util collects small generic helpers shared across the stand
// allocation packages: ordered collections, slice/map transforms, and
// error accumulation. Adapted from the vice flight simulator's pkg/util.
package util

import (
	"maps"
	"slices"

	"github.com/iancoleman/orderedmap"
	"golang.org/x/exp/constraints"
)

///////////////////////////////////////////////////////////////////////////
// OrderedMap

// OrderedMap wraps iancoleman/orderedmap so that data with a contractual
// iteration order (e.g., a stand's adjacency rules) can be walked
// deterministically without callers needing to sort keys themselves.
type OrderedMap struct {
	orderedmap.OrderedMap
}

func NewOrderedMap() *OrderedMap {
	return &OrderedMap{OrderedMap: *orderedmap.New()}
}

///////////////////////////////////////////////////////////////////////////

func Select[T any](sel bool, a, b T) T {
	if sel {
		return a
	}
	return b
}

// SortedMapKeys returns the keys of the given map, sorted from low to high.
// Used wherever map iteration order would otherwise leak into reports.
func SortedMapKeys[K constraints.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// MapSlice returns the slice that results from applying xform to all the
// elements of the given slice.
func MapSlice[F, T any](from []F, xform func(F) T) []T {
	to := make([]T, len(from))
	for i := range from {
		to[i] = xform(from[i])
	}
	return to
}

// FilterSlice applies pred to the given slice, returning a new slice that
// only contains elements where pred returned true. Order is preserved.
func FilterSlice[V any](s []V, pred func(V) bool) []V {
	var filtered []V
	for i := range s {
		if pred(s[i]) {
			filtered = append(filtered, s[i])
		}
	}
	return filtered
}
