// pkg/report/report.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package report defines the two output record types both allocators
// (greedy and CP) produce, and the reasons an unallocated record may
// carry.
package report

import "github.com/nickbooth1/stand-allocation-engine/pkg/standmodel"

const (
	ReasonNoStandAvailable           = "No suitable stand available"
	ReasonNoStandAvailableLinkedPair = "No suitable stand available for linked pair"
	ReasonNoStandAvailableCPSolver   = "No suitable stand available (CP solver)"
)

// Allocated records one flight's placement on a stand for a contiguous
// interval.
type Allocated struct {
	Flight         *standmodel.Flight
	Stand          string
	StartTimeString string
	EndTimeString   string
}

// Unallocated records a flight the allocator could not place, and why.
type Unallocated struct {
	Flight *standmodel.Flight
	Reason string
}

// NewAllocated builds an Allocated record, formatting start/end the way
// §6 requires (HH:MM for time-only data, YYYY-MM-DD HH:MM otherwise).
func NewAllocated(flight *standmodel.Flight, stand string, start, end standmodel.Timestamp) Allocated {
	return Allocated{
		Flight:          flight,
		Stand:           stand,
		StartTimeString: standmodel.FormatReportTime(start),
		EndTimeString:   standmodel.FormatReportTime(end),
	}
}
