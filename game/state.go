package game

import (
	"math"

	"golang.org/x/exp/slices"
)

// PlayerStats are one side's health and resources at turn start.
type PlayerStats struct {
	Health float64
	Cores  float64 // pays for stationary units
	Bits   float64 // pays for mobile units
}

// TurnState is the read-only snapshot delivered at the start of a turn.
// It is built once per turn and never mutated afterwards.
type TurnState struct {
	turn  int
	stats [2]PlayerStats
	units []Unit
}

func NewTurnState(turn int, self, opponent PlayerStats, units []Unit) TurnState {
	return TurnState{
		turn:  turn,
		stats: [2]PlayerStats{self, opponent},
		units: slices.Clone(units),
	}
}

func (s TurnState) Turn() int { return s.turn }

func (s TurnState) Stats(side Side) PlayerStats { return s.stats[side] }

func (s TurnState) Health(side Side) float64 { return s.stats[side].Health }

func (s TurnState) EnemyHealth() float64 { return s.stats[Opponent].Health }

// Resource returns the side's budget for the given unit type.
func (s TurnState) Resource(side Side, unit UnitType) float64 {
	if unit.Stationary() {
		return s.stats[side].Cores
	}
	return s.stats[side].Bits
}

// Units returns a copy of the board occupancy.
func (s TurnState) Units() []Unit {
	return slices.Clone(s.units)
}

// Affordable is the number of units the side could buy with its full budget.
func (s TurnState) Affordable(side Side, unit UnitType, c *Catalog) int {
	cost := c.Cost(unit)
	if cost <= 0 {
		return 0
	}
	return int(math.Floor(s.Resource(side, unit) / cost))
}
