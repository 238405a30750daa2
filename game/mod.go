package game

import "iter"

// Side identifies which player owns a unit or an event.
type Side int

const (
	Self Side = iota
	Opponent
)

func (s Side) Other() Side {
	if s == Self {
		return Opponent
	}
	return Self
}

func (s Side) String() string {
	if s == Self {
		return "self"
	}
	return "opponent"
}

const (
	// BulkSpawn asks the engine for more units than any budget allows so it clips to what is affordable
	BulkSpawn = 1000
)

// Engine is the set of queries the external simulation answers during a turn.
// Every query is total: it always returns a value, possibly empty or zero.
type Engine interface {
	// CanSpawn reports resource sufficiency and absence of a blocking occupant
	CanSpawn(unit UnitType, at Coordinate) bool
	// ContainsStationary reports whether a stationary unit of either side occupies the coordinate
	ContainsStationary(at Coordinate) bool
	// PathToEdge yields the projected route of a mobile unit spawned at origin. The sequence is finite and may only be consumed once
	PathToEdge(origin Coordinate) iter.Seq[Coordinate]
	// Attackers returns the stationary units hostile to side that can target the coordinate
	Attackers(at Coordinate, side Side) []Unit
	// Affordable returns how many units of the type the current resources pay for
	Affordable(unit UnitType) int
	// Spawn is best-effort, silently capped to what resources allow, and returns the number placed
	Spawn(unit UnitType, at Coordinate, count int) int
}

// SpawnDirective is a single spawn attempt emitted by a turn decision.
type SpawnDirective struct {
	Unit  UnitType   `json:"unit"`
	At    Coordinate `json:"at"`
	Count int        `json:"count"`
}
