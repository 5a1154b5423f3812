// pkg/standmodel/entities.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package standmodel

import "github.com/nickbooth1/stand-allocation-engine/pkg/util"

// Flight is an arrival, a departure, or one half of a linked turnaround
// pair. ScheduledTime is parsed at construction time; CriticalityScore is
// the only field mutated after construction, and only by the criticality
// scorer.
type Flight struct {
	FlightID              string
	FlightNumber          string
	AirlineCode           string
	AircraftType          string
	Origin                string
	Destination           string
	ScheduledTime         Timestamp
	Terminal              string
	IsArrival             bool
	LinkID                string // empty means unlinked
	IsCriticalConnection  bool
	BasePriorityScore     int
	CriticalityScore      float64
}

// HasLink reports whether this flight is one half of a linked pair.
func (f *Flight) HasLink() bool { return f.LinkID != "" }

// Stand is a parking position. AdjacencyRules maps a rule kind to the
// ordered set of stand names it references; the ordered map keeps
// iteration (for logging/debugging) deterministic without a separate sort.
type Stand struct {
	StandName      string
	Terminal       string
	IsContactStand bool
	SizeLimit      Category
	AdjacencyRules *util.OrderedMap
}

// NewStand builds a Stand with an initialized (empty) adjacency-rule map.
func NewStand(name, terminal string, contact bool, size Category) *Stand {
	return &Stand{
		StandName:      name,
		Terminal:       terminal,
		IsContactStand: contact,
		SizeLimit:      size,
		AdjacencyRules: util.NewOrderedMap(),
	}
}

// AdjacentStands returns the stand names registered under rule, in the
// order they were added, or nil if the rule kind isn't present.
func (s *Stand) AdjacentStands(rule string) []string {
	v, ok := s.AdjacencyRules.Get(rule)
	if !ok {
		return nil
	}
	names, _ := v.([]string)
	return names
}

// AddAdjacencyRule appends stand names under the given rule kind.
func (s *Stand) AddAdjacencyRule(rule string, standNames ...string) {
	existing := s.AdjacentStands(rule)
	s.AdjacencyRules.Set(rule, append(existing, standNames...))
}

// Airline describes an operator's stand preferences.
type Airline struct {
	AirlineCode           string
	AirlineName           string
	BaseTerminal          string
	RequiresContactStand  bool
	PriorityTier          int // >= 1; 1 is standard
}

// SolverParameters configures the CP allocator (C7) and the orchestrator's
// (C8) decision to invoke it.
type SolverParameters struct {
	UseSolver              bool
	SolverTimeLimitSeconds int
	OptimalityGap          float64
	MaxSolutions           int
	ForceSolver            bool
}

// DefaultSolverParameters mirrors the source's dataclass defaults.
func DefaultSolverParameters() SolverParameters {
	return SolverParameters{
		UseSolver:              false,
		SolverTimeLimitSeconds: 30,
		OptimalityGap:          0.05,
		MaxSolutions:           1,
	}
}

// PrioritizationWeights are the named multipliers the criticality scorer
// (C3) reads. A zero-value field contributes nothing to the score; missing
// fields are not filled in automatically — DefaultPrioritizationWeights
// returns the full default set.
type PrioritizationWeights struct {
	AircraftTypeA380      float64
	AircraftTypeB747      float64
	AircraftTypeWide      float64
	AirlineTier           float64
	RequiresContactStand  float64
	CriticalConnection    float64
	BaseScore             float64
}

// DefaultPrioritizationWeights mirrors the source's dataclass defaults.
func DefaultPrioritizationWeights() PrioritizationWeights {
	return PrioritizationWeights{
		AircraftTypeA380:     10.0,
		AircraftTypeB747:     8.0,
		AircraftTypeWide:     5.0,
		AirlineTier:          2.0,
		RequiresContactStand: 3.0,
		CriticalConnection:   5.0,
		BaseScore:            1.0,
	}
}

// TurnaroundTimes maps an aircraft category to the minutes a flight of
// that category occupies a stand when only one half of a turnaround
// (arrival or departure alone) is known. "Default" is the required
// fallback when a category-specific entry is absent.
type TurnaroundTimes struct {
	Default int
	Narrow  int
	Wide    int
	Super   int
}

// Minutes looks up the turnaround time for category, falling back to
// Default per §4.1/§4.6.
func (t TurnaroundTimes) Minutes(category Category) int {
	switch category {
	case Narrow:
		if t.Narrow != 0 {
			return t.Narrow
		}
	case Wide:
		if t.Wide != 0 {
			return t.Wide
		}
	case Super:
		if t.Super != 0 {
			return t.Super
		}
	}
	return t.Default
}

// Settings holds every tunable the engine reads.
type Settings struct {
	GapBetweenFlightsMinutes int
	TurnaroundTimeSettings   TurnaroundTimes
	PrioritizationWeights    PrioritizationWeights
	SolverParameters         SolverParameters
}

// MaintenanceEntry blocks a stand for a contiguous interval.
type MaintenanceEntry struct {
	StandName string
	StartTime Timestamp
	EndTime   Timestamp
}

// Interval returns the entry's [start, end) interval, applying the same
// overnight rule flights use: a time-only entry whose end does not fall
// after its start is assumed to cross midnight.
func (m MaintenanceEntry) Interval() (Timestamp, Timestamp) {
	return m.StartTime, AddOvernightIfBefore(m.StartTime, m.EndTime)
}

// TransferWindow bounds the acceptable connection time between an arrival
// and a paired departure.
type TransferWindow struct {
	MinTransferMinutes int
	MaxTransferMinutes int
	IsCritical         bool
}

// connectionKey identifies a potential connection by the two flight IDs
// involved.
type connectionKey struct {
	arrivalFlightID   string
	departureFlightID string
}

// FlightConnectionTracker records potential passenger connections between
// an arrival and a later departure, used by the candidate selector (C5)
// to re-rank stands toward connection-friendly terminals.
type FlightConnectionTracker struct {
	connections map[connectionKey]TransferWindow
}

// NewFlightConnectionTracker returns an empty tracker.
func NewFlightConnectionTracker() *FlightConnectionTracker {
	return &FlightConnectionTracker{connections: make(map[connectionKey]TransferWindow)}
}

// AddConnection registers a potential connection. If arrival isn't an
// arrival or departure isn't a departure, the call is a no-op (mirrors the
// source's silent guard). A critical window marks both flights critical.
func (t *FlightConnectionTracker) AddConnection(arrival, departure *Flight, window TransferWindow) {
	if arrival == nil || departure == nil || !arrival.IsArrival || departure.IsArrival {
		return
	}
	t.connections[connectionKey{arrival.FlightID, departure.FlightID}] = window
	if window.IsCritical {
		arrival.IsCriticalConnection = true
		departure.IsCriticalConnection = true
	}
}

// TransferWindowFor returns the registered window for (arrival, departure)
// and whether one exists.
func (t *FlightConnectionTracker) TransferWindowFor(arrival, departure *Flight) (TransferWindow, bool) {
	w, ok := t.connections[connectionKey{arrival.FlightID, departure.FlightID}]
	return w, ok
}

// IsValidConnectionTime reports whether the elapsed time between arrival
// and departure falls within their registered transfer window. A pair with
// no registered window is never a valid connection.
func (t *FlightConnectionTracker) IsValidConnectionTime(arrival, departure *Flight) bool {
	w, ok := t.TransferWindowFor(arrival, departure)
	if !ok {
		return false
	}
	diff := MinutesBetween(arrival.ScheduledTime, departure.ScheduledTime)
	return float64(w.MinTransferMinutes) <= diff && diff <= float64(w.MaxTransferMinutes)
}

// FlightOperationUnit is either a single arrival/departure or a linked
// turnaround pair, as produced by the processing-order builder (C4).
type FlightOperationUnit struct {
	Arrival   *Flight // nil for a departure-only unit
	Departure *Flight // nil for an arrival-only unit
}

// IsLinkedPair reports whether both halves of the unit are present.
func (u FlightOperationUnit) IsLinkedPair() bool {
	return u.Arrival != nil && u.Departure != nil
}

// EarliestTime returns the arrival's time if present, else the
// departure's — the sort key used by C4.
func (u FlightOperationUnit) EarliestTime() Timestamp {
	if u.Arrival != nil {
		return u.Arrival.ScheduledTime
	}
	return u.Departure.ScheduledTime
}

// AirlineCode returns the airline code common to both halves (or the one
// present half).
func (u FlightOperationUnit) AirlineCode() string {
	if u.Arrival != nil {
		return u.Arrival.AirlineCode
	}
	return u.Departure.AirlineCode
}

// PrimaryFlight is the flight whose criticality score orders this unit:
// the arrival when present, else the departure.
func (u FlightOperationUnit) PrimaryFlight() *Flight {
	if u.Arrival != nil {
		return u.Arrival
	}
	return u.Departure
}
