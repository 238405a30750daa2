package game

import (
	"iter"
	"math"
)

// Board answers engine queries from a turn snapshot. It approximates the
// external simulation closely enough for local play and tests: occupancy,
// affordability, tower range and a breadth-first route to the far edge.
type Board struct {
	catalog    *Catalog
	budget     [2]PlayerStats
	stationary map[Coordinate]Unit
	order      []Coordinate // stationary coordinates in placement order
	placed     []Unit
}

func NewBoard(state TurnState, catalog *Catalog) *Board {
	b := &Board{
		catalog:    catalog,
		budget:     [2]PlayerStats{state.Stats(Self), state.Stats(Opponent)},
		stationary: make(map[Coordinate]Unit),
	}
	for _, u := range state.Units() {
		if u.Type.Stationary() {
			b.place(u)
		}
	}
	return b
}

func (b *Board) place(u Unit) {
	if _, ok := b.stationary[u.At]; !ok {
		b.order = append(b.order, u.At)
	}
	b.stationary[u.At] = u
}

func (b *Board) ContainsStationary(at Coordinate) bool {
	_, ok := b.stationary[at]
	return ok
}

func (b *Board) resource(unit UnitType) *float64 {
	if unit.Stationary() {
		return &b.budget[Self].Cores
	}
	return &b.budget[Self].Bits
}

func (b *Board) Affordable(unit UnitType) int {
	if !unit.Valid() {
		return 0
	}
	cost := b.catalog.Cost(unit)
	if cost <= 0 {
		return 0
	}
	return int(math.Floor(*b.resource(unit) / cost))
}

func (b *Board) CanSpawn(unit UnitType, at Coordinate) bool {
	if b.Affordable(unit) < 1 {
		return false
	}
	if b.ContainsStationary(at) {
		return false
	}
	if unit.Stationary() {
		return InHalf(at, Self)
	}
	edge, ok := EdgeOf(at)
	return ok && (edge == BottomLeft || edge == BottomRight)
}

func (b *Board) Spawn(unit UnitType, at Coordinate, count int) int {
	placed := 0
	for placed < count && b.CanSpawn(unit, at) {
		*b.resource(unit) -= b.catalog.Cost(unit)
		u := Unit{Type: unit, Owner: Self, At: at, Health: b.catalog.Stats(unit).Stability}
		b.placed = append(b.placed, u)
		placed++
		if unit.Stationary() {
			b.place(u)
			break
		}
	}
	return placed
}

// Placed lists every unit spawned through this board, in order.
func (b *Board) Placed() []Unit {
	return b.placed
}

func (b *Board) Attackers(at Coordinate, side Side) []Unit {
	var attackers []Unit
	for _, c := range b.order {
		u := b.stationary[c]
		if u.Owner == side || u.Type != Tower {
			continue
		}
		r := b.catalog.Range(Tower)
		if float64(u.At.DistanceSquared(at)) <= r*r {
			attackers = append(attackers, u)
		}
	}
	return attackers
}

// PathToEdge computes the route on first iteration.
func (b *Board) PathToEdge(origin Coordinate) iter.Seq[Coordinate] {
	return func(yield func(Coordinate) bool) {
		for _, c := range b.route(origin) {
			if !yield(c) {
				return
			}
		}
	}
}

func targetEdge(origin Coordinate) Edge {
	if edge, ok := EdgeOf(origin); ok {
		return edge.Opposite()
	}
	if origin.Y < HalfArena {
		if origin.X < HalfArena {
			return TopRight
		}
		return TopLeft
	}
	if origin.X < HalfArena {
		return BottomRight
	}
	return BottomLeft
}

// Moves toward the target edge are tried first so ties resolve the same way every time.
func stepOrder(target Edge) [4]Coordinate {
	dy, dx := 1, 1
	if target == BottomLeft || target == BottomRight {
		dy = -1
	}
	if target == TopLeft || target == BottomLeft {
		dx = -1
	}
	return [4]Coordinate{{0, dy}, {dx, 0}, {-dx, 0}, {0, -dy}}
}

// route runs a breadth-first search to the nearest cell of the target edge.
// When the edge is unreachable the unit stops at the reachable cell closest to it.
func (b *Board) route(origin Coordinate) []Coordinate {
	if !InArena(origin) || b.ContainsStationary(origin) {
		return nil
	}
	target := targetEdge(origin)
	goals := make(map[Coordinate]bool, HalfArena)
	for _, c := range EdgeLocations(target) {
		goals[c] = true
	}
	steps := stepOrder(target)

	parent := map[Coordinate]Coordinate{origin: origin}
	queue := []Coordinate{origin}
	best, bestDist := origin, edgeDistance(origin, goals)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if goals[current] {
			best = current
			break
		}
		if d := edgeDistance(current, goals); d < bestDist {
			best, bestDist = current, d
		}
		for _, step := range steps {
			next := Coordinate{current.X + step.X, current.Y + step.Y}
			if _, seen := parent[next]; seen || !InArena(next) || b.ContainsStationary(next) {
				continue
			}
			parent[next] = current
			queue = append(queue, next)
		}
	}

	var path []Coordinate
	for c := best; ; c = parent[c] {
		path = append(path, c)
		if c == origin {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func edgeDistance(c Coordinate, goals map[Coordinate]bool) int {
	best := math.MaxInt
	for g := range goals {
		if d := c.DistanceSquared(g); d < best {
			best = d
		}
	}
	return best
}
