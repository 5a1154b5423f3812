// pkg/standmodel/connection_test.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package standmodel

import "testing"

func TestFlightConnectionTrackerCriticalMarking(t *testing.T) {
	arrival := &Flight{FlightID: "A1", IsArrival: true, ScheduledTime: MustParseTime("08:00")}
	departure := &Flight{FlightID: "D1", IsArrival: false, ScheduledTime: MustParseTime("09:00")}

	tracker := NewFlightConnectionTracker()
	tracker.AddConnection(arrival, departure, TransferWindow{MinTransferMinutes: 30, MaxTransferMinutes: 90, IsCritical: true})

	if !arrival.IsCriticalConnection || !departure.IsCriticalConnection {
		t.Fatalf("expected both flights marked critical")
	}
	if !tracker.IsValidConnectionTime(arrival, departure) {
		t.Fatalf("expected a valid connection time (60 minutes, within [30,90])")
	}
}

func TestFlightConnectionTrackerRejectsOutOfWindow(t *testing.T) {
	arrival := &Flight{FlightID: "A1", IsArrival: true, ScheduledTime: MustParseTime("08:00")}
	departure := &Flight{FlightID: "D1", IsArrival: false, ScheduledTime: MustParseTime("08:10")}

	tracker := NewFlightConnectionTracker()
	tracker.AddConnection(arrival, departure, TransferWindow{MinTransferMinutes: 30, MaxTransferMinutes: 90})

	if tracker.IsValidConnectionTime(arrival, departure) {
		t.Fatalf("expected connection time of 10 minutes to fail the [30,90] window")
	}
}

func TestFlightConnectionTrackerUnknownPairIsInvalid(t *testing.T) {
	arrival := &Flight{FlightID: "A1", IsArrival: true, ScheduledTime: MustParseTime("08:00")}
	departure := &Flight{FlightID: "D1", IsArrival: false, ScheduledTime: MustParseTime("09:00")}
	tracker := NewFlightConnectionTracker()
	if tracker.IsValidConnectionTime(arrival, departure) {
		t.Fatalf("expected an unregistered pair to be invalid")
	}
}
