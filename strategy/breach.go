package strategy

import (
	"sync"

	"lanes/game"

	"golang.org/x/exp/slices"
)

// BreachHistory is the append-only record of where the opponent scored.
// Breach notifications arrive from the frame feed, so access is locked.
type BreachHistory struct {
	sync.Mutex
	locations []game.Coordinate
}

func (h *BreachHistory) Len() int {
	h.Lock()
	defer h.Unlock()

	return len(h.locations)
}

func (h *BreachHistory) All() []game.Coordinate {
	h.Lock()
	defer h.Unlock()

	return slices.Clone(h.locations)
}

func (h *BreachHistory) append(at game.Coordinate) {
	h.Lock()
	defer h.Unlock()

	h.locations = append(h.locations, at)
}

// BreachTracker reinforces the fronts the opponent has broken through.
type BreachTracker struct {
	Unit game.UnitType
}

// Record keeps breaches by opponent units. Our own breaches and events
// with coordinates outside the arena are dropped.
func (t BreachTracker) Record(history *BreachHistory, event game.BreachEvent) bool {
	if event.Owner != game.Opponent || !game.InArena(event.At) {
		return false
	}
	history.append(event.At)
	return true
}

// Reinforce tries a spawn one row up from every recorded breach, repeats included.
func (t BreachTracker) Reinforce(history *BreachHistory, turn *Turn) {
	for _, at := range history.All() {
		turn.Spawn(t.Unit, at.Up(), 1)
	}
}
