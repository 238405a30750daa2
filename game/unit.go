package game

import (
	"encoding/json"
	"fmt"
)

type UnitType int

// Order matches the engine's unitInformation array
const (
	Shield UnitType = iota
	Booster
	Tower
	Fast
	Heavy
	Interceptor
	numUnitTypes
)

var unitTypeNames = [numUnitTypes]string{"shield", "booster", "tower", "fast", "heavy", "interceptor"}

func (u UnitType) String() string {
	if !u.Valid() {
		return fmt.Sprintf("unit(%d)", int(u))
	}
	return unitTypeNames[u]
}

func (u UnitType) Valid() bool {
	return u >= 0 && u < numUnitTypes
}

func (u UnitType) Stationary() bool {
	return u == Shield || u == Booster || u == Tower
}

func (u UnitType) Mobile() bool {
	return u == Fast || u == Heavy || u == Interceptor
}

// UnitTypes lists every unit type in engine order.
func UnitTypes() []UnitType {
	return []UnitType{Shield, Booster, Tower, Fast, Heavy, Interceptor}
}

// Unit is a unit on the board as reported by a snapshot.
type Unit struct {
	Type   UnitType
	Owner  Side
	At     Coordinate
	Health float64
	ID     string
}

// UnitStats are the static attributes the engine publishes for a unit type.
type UnitStats struct {
	Shorthand string  `json:"shorthand"`
	Display   string  `json:"display"`
	Damage    float64 `json:"damage"`
	Range     float64 `json:"range"`
	Cost      float64 `json:"cost"`
	Stability float64 `json:"stability"`
}

// Catalog maps engine identifiers to unit types and their stats.
type Catalog struct {
	stats       [numUnitTypes]UnitStats
	byShorthand map[string]UnitType
}

type engineConfig struct {
	UnitInformation []UnitStats `json:"unitInformation"`
}

// ParseCatalog reads the unitInformation section of the engine's game config.
func ParseCatalog(data []byte) (*Catalog, error) {
	var cfg engineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode game config: %w", err)
	}
	return NewCatalog(cfg.UnitInformation)
}

// NewCatalog expects one entry per unit type in engine order.
func NewCatalog(stats []UnitStats) (*Catalog, error) {
	if len(stats) < int(numUnitTypes) {
		return nil, fmt.Errorf("unit information has %d entries, need %d", len(stats), numUnitTypes)
	}
	c := &Catalog{byShorthand: make(map[string]UnitType, numUnitTypes)}
	for _, u := range UnitTypes() {
		s := stats[u]
		if s.Shorthand == "" {
			return nil, fmt.Errorf("unit information entry %d (%s) has no shorthand", u, u)
		}
		if _, dup := c.byShorthand[s.Shorthand]; dup {
			return nil, fmt.Errorf("duplicate shorthand %q", s.Shorthand)
		}
		c.stats[u] = s
		c.byShorthand[s.Shorthand] = u
	}
	return c, nil
}

func (c *Catalog) Stats(u UnitType) UnitStats {
	if !u.Valid() {
		return UnitStats{}
	}
	return c.stats[u]
}

func (c *Catalog) Damage(u UnitType) float64 { return c.Stats(u).Damage }
func (c *Catalog) Cost(u UnitType) float64   { return c.Stats(u).Cost }
func (c *Catalog) Range(u UnitType) float64  { return c.Stats(u).Range }

func (c *Catalog) Shorthand(u UnitType) string { return c.Stats(u).Shorthand }

func (c *Catalog) Lookup(shorthand string) (UnitType, bool) {
	u, ok := c.byShorthand[shorthand]
	return u, ok
}
