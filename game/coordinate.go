package game

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ArenaSize is the width and height of the diamond arena. Own half is y < HalfArena
const (
	ArenaSize = 28
	HalfArena = ArenaSize / 2
)

type Coordinate struct {
	X int
	Y int
}

func (c Coordinate) Up() Coordinate    { return Coordinate{c.X, c.Y + 1} }
func (c Coordinate) Down() Coordinate  { return Coordinate{c.X, c.Y - 1} }
func (c Coordinate) Right() Coordinate { return Coordinate{c.X + 1, c.Y} }
func (c Coordinate) Left() Coordinate  { return Coordinate{c.X - 1, c.Y} }

func (c Coordinate) String() string {
	return fmt.Sprintf("[%d,%d]", c.X, c.Y)
}

// DistanceSquared avoids the square root for range checks
func (c Coordinate) DistanceSquared(o Coordinate) int {
	dx, dy := c.X-o.X, c.Y-o.Y
	return dx*dx + dy*dy
}

func (c Coordinate) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{c.X, c.Y})
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("coordinate: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate: want 2 components, got %d", len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

// Config files write coordinates as [x, y] pairs.
func (c *Coordinate) UnmarshalYAML(node *yaml.Node) error {
	var pair []int
	if err := node.Decode(&pair); err != nil {
		return fmt.Errorf("coordinate at line %d: %w", node.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("coordinate at line %d: want 2 components, got %d", node.Line, len(pair))
	}
	c.X, c.Y = pair[0], pair[1]
	return nil
}

func (c Coordinate) MarshalYAML() (any, error) {
	return []int{c.X, c.Y}, nil
}

// InArena reports whether c lies inside the diamond.
func InArena(c Coordinate) bool {
	if c.Y < 0 || c.Y >= ArenaSize {
		return false
	}
	if c.Y < HalfArena {
		return c.X >= HalfArena-1-c.Y && c.X <= HalfArena+c.Y
	}
	return c.X >= c.Y-HalfArena && c.X <= ArenaSize+HalfArena-1-c.Y
}

// InHalf reports whether c lies inside the arena half owned by side.
func InHalf(c Coordinate, side Side) bool {
	if !InArena(c) {
		return false
	}
	if side == Self {
		return c.Y < HalfArena
	}
	return c.Y >= HalfArena
}

type Edge int

const (
	TopRight Edge = iota
	TopLeft
	BottomLeft
	BottomRight
)

// Opposite is the edge a mobile unit spawned on e heads for.
func (e Edge) Opposite() Edge {
	switch e {
	case TopRight:
		return BottomLeft
	case TopLeft:
		return BottomRight
	case BottomLeft:
		return TopRight
	default:
		return TopLeft
	}
}

// EdgeOf returns the edge c sits on. Corners of the lower half resolve to the bottom edges.
func EdgeOf(c Coordinate) (Edge, bool) {
	if !InArena(c) {
		return 0, false
	}
	switch {
	case c.Y < HalfArena && c.X == HalfArena-1-c.Y:
		return BottomLeft, true
	case c.Y < HalfArena && c.X == HalfArena+c.Y:
		return BottomRight, true
	case c.Y >= HalfArena && c.X == c.Y-HalfArena:
		return TopLeft, true
	case c.Y >= HalfArena && c.X == ArenaSize+HalfArena-1-c.Y:
		return TopRight, true
	}
	return 0, false
}

// EdgeLocations lists the cells of an edge ordered by y.
func EdgeLocations(e Edge) []Coordinate {
	locations := make([]Coordinate, 0, HalfArena)
	for i := 0; i < HalfArena; i++ {
		switch e {
		case BottomLeft:
			locations = append(locations, Coordinate{HalfArena - 1 - i, i})
		case BottomRight:
			locations = append(locations, Coordinate{HalfArena + i, i})
		case TopLeft:
			y := HalfArena + i
			locations = append(locations, Coordinate{y - HalfArena, y})
		case TopRight:
			y := HalfArena + i
			locations = append(locations, Coordinate{ArenaSize + HalfArena - 1 - y, y})
		}
	}
	return locations
}
