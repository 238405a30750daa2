package strategy

import (
	"iter"
	"testing"

	"lanes/experiments/metrics"
	"lanes/game"

	"github.com/rs/zerolog"
)

type spawnKey struct {
	unit game.UnitType
	at   game.Coordinate
}

// fakeEngine answers queries from fixed tables.
type fakeEngine struct {
	paths      map[game.Coordinate][]game.Coordinate
	attackers  map[game.Coordinate]int
	feasible   map[spawnKey]bool
	occupied   map[game.Coordinate]bool
	affordable map[game.UnitType]int
	pathCalls  map[game.Coordinate]int
	spawned    []game.SpawnDirective
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		paths:      map[game.Coordinate][]game.Coordinate{},
		attackers:  map[game.Coordinate]int{},
		feasible:   map[spawnKey]bool{},
		occupied:   map[game.Coordinate]bool{},
		affordable: map[game.UnitType]int{},
		pathCalls:  map[game.Coordinate]int{},
	}
}

func (f *fakeEngine) CanSpawn(unit game.UnitType, at game.Coordinate) bool {
	return f.feasible[spawnKey{unit, at}]
}

func (f *fakeEngine) ContainsStationary(at game.Coordinate) bool {
	return f.occupied[at]
}

func (f *fakeEngine) PathToEdge(origin game.Coordinate) iter.Seq[game.Coordinate] {
	f.pathCalls[origin]++
	path := f.paths[origin]
	return func(yield func(game.Coordinate) bool) {
		for _, c := range path {
			if !yield(c) {
				return
			}
		}
	}
}

func (f *fakeEngine) Attackers(at game.Coordinate, side game.Side) []game.Unit {
	units := make([]game.Unit, f.attackers[at])
	for i := range units {
		units[i] = game.Unit{Type: game.Tower, Owner: side.Other()}
	}
	return units
}

func (f *fakeEngine) Affordable(unit game.UnitType) int {
	return f.affordable[unit]
}

func (f *fakeEngine) Spawn(unit game.UnitType, at game.Coordinate, count int) int {
	f.spawned = append(f.spawned, game.SpawnDirective{Unit: unit, At: at, Count: count})
	if !f.feasible[spawnKey{unit, at}] {
		return 0
	}
	if unit.Stationary() {
		f.occupied[at] = true
		return 1
	}
	return min(count, f.affordable[unit])
}

func c(x, y int) game.Coordinate {
	return game.Coordinate{X: x, Y: y}
}

func testTurn(t *testing.T, state game.TurnState, engine game.Engine) *Turn {
	t.Helper()
	return newTurn(state, engine, metrics.NewDummyCollector(), zerolog.Nop())
}

func stateWithEnemyHealth(turn int, health float64) game.TurnState {
	return game.NewTurnState(turn, game.PlayerStats{Health: 30}, game.PlayerStats{Health: health}, nil)
}

func testCatalog(t *testing.T) *game.Catalog {
	t.Helper()
	catalog, err := game.NewCatalog([]game.UnitStats{
		{Shorthand: "FF", Cost: 1, Stability: 60},
		{Shorthand: "EF", Cost: 4, Stability: 30},
		{Shorthand: "DF", Cost: 3, Damage: 4, Range: 3.5, Stability: 75},
		{Shorthand: "PI", Cost: 1, Damage: 1, Range: 3, Stability: 15},
		{Shorthand: "EI", Cost: 3, Damage: 3, Range: 4.5, Stability: 5},
		{Shorthand: "SI", Cost: 1, Damage: 20, Range: 3.5, Stability: 40},
	})
	if err != nil {
		t.Fatal(err)
	}
	return catalog
}
