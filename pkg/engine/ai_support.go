// pkg/engine/ai_support.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package engine

import (
	"github.com/nickbooth1/stand-allocation-engine/pkg/log"
	"github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"
)

// SimpleAISupport is a minimal AISupport implementation, grounded on the
// source's MockAISupport: it remembers every (flight, reason) pair it was
// told about, in order, and logs each one. Callers needing a real
// downstream integration supply their own implementation of
// greedy.AISupport instead.
type SimpleAISupport struct {
	Log *log.Logger

	entries []aiSupportEntry
}

type aiSupportEntry struct {
	Flight *standmodel.Flight
	Reason string
}

// NewSimpleAISupport returns a SimpleAISupport that logs through logger
// (which may be nil).
func NewSimpleAISupport(logger *log.Logger) *SimpleAISupport {
	return &SimpleAISupport{Log: logger}
}

func (s *SimpleAISupport) LogUnallocated(flight *standmodel.Flight, reason string) {
	s.entries = append(s.entries, aiSupportEntry{Flight: flight, Reason: reason})
	s.Log.Infof("unallocated flight %s: %s", flight.FlightID, reason)
}

// Entries returns every (flight, reason) pair recorded so far, in
// recording order.
func (s *SimpleAISupport) Entries() []aiSupportEntry {
	return s.entries
}
