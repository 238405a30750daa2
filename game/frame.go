package game

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type Phase int

const (
	PhaseEnd    Phase = -1
	PhaseTurn   Phase = 0 // start of a turn, a decision is due
	PhaseAction Phase = 1 // simulated action frame, may carry events
)

// Frame is one engine message after the initial config.
type Frame struct {
	TurnInfo []int               `json:"turnInfo"`
	P1Stats  []float64           `json:"p1Stats"`
	P2Stats  []float64           `json:"p2Stats"`
	P1Units  [][]json.RawMessage `json:"p1Units"`
	P2Units  [][]json.RawMessage `json:"p2Units"`
	Events   struct {
		Breach []json.RawMessage `json:"breach"`
	} `json:"events"`
}

// BreachEvent records a mobile unit reaching an edge.
type BreachEvent struct {
	At     Coordinate
	Owner  Side // owner of the breaching unit
	Unit   UnitType
	Damage float64
}

func ParseFrame(data []byte) (*Frame, error) {
	var f Frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode frame: %w", err)
	}
	if len(f.TurnInfo) < 2 {
		return nil, fmt.Errorf("frame has no turn info")
	}
	return &f, nil
}

func (f *Frame) Phase() Phase { return Phase(f.TurnInfo[0]) }

func (f *Frame) Turn() int { return f.TurnInfo[1] }

// State builds the turn snapshot. Unit entries that fail to decode are skipped.
func (f *Frame) State() TurnState {
	units := decodeUnits(f.P1Units, Self)
	units = append(units, decodeUnits(f.P2Units, Opponent)...)
	return NewTurnState(f.Turn(), decodeStats(f.P1Stats), decodeStats(f.P2Stats), units)
}

// Breaches decodes the frame's breach events, dropping malformed entries.
func (f *Frame) Breaches() []BreachEvent {
	events := make([]BreachEvent, 0, len(f.Events.Breach))
	for _, raw := range f.Events.Breach {
		if ev, ok := decodeBreach(raw); ok {
			events = append(events, ev)
		}
	}
	return events
}

func decodeStats(values []float64) PlayerStats {
	var s PlayerStats
	if len(values) > 0 {
		s.Health = values[0]
	}
	if len(values) > 1 {
		s.Cores = values[1]
	}
	if len(values) > 2 {
		s.Bits = values[2]
	}
	return s
}

// Unit lists are indexed by unit type; trailing lists such as pending removals are ignored.
func decodeUnits(lists [][]json.RawMessage, owner Side) []Unit {
	var units []Unit
	for i, list := range lists {
		unit := UnitType(i)
		if !unit.Valid() {
			break
		}
		for _, raw := range list {
			var fields []json.RawMessage
			if err := json.Unmarshal(raw, &fields); err != nil || len(fields) < 2 {
				continue
			}
			var u Unit
			if json.Unmarshal(fields[0], &u.At.X) != nil || json.Unmarshal(fields[1], &u.At.Y) != nil {
				continue
			}
			if len(fields) > 2 {
				_ = json.Unmarshal(fields[2], &u.Health)
			}
			if len(fields) > 3 {
				u.ID = decodeID(fields[3])
			}
			u.Type = unit
			u.Owner = owner
			units = append(units, u)
		}
	}
	return units
}

// The engine sends ids as strings, older builds as numbers.
func decodeID(raw json.RawMessage) string {
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var n int64
	if json.Unmarshal(raw, &n) == nil {
		return strconv.FormatInt(n, 10)
	}
	return ""
}

// Breach entries are [[x, y], damage, unitType, id, owner] with owner 1 for self and 2 for the opponent.
func decodeBreach(raw json.RawMessage) (BreachEvent, bool) {
	var fields []json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || len(fields) < 5 {
		return BreachEvent{}, false
	}
	var ev BreachEvent
	if err := json.Unmarshal(fields[0], &ev.At); err != nil {
		return BreachEvent{}, false
	}
	if err := json.Unmarshal(fields[1], &ev.Damage); err != nil {
		return BreachEvent{}, false
	}
	var unit int
	if err := json.Unmarshal(fields[2], &unit); err != nil {
		return BreachEvent{}, false
	}
	ev.Unit = UnitType(unit)
	var owner int
	if err := json.Unmarshal(fields[4], &owner); err != nil {
		return BreachEvent{}, false
	}
	switch owner {
	case 1:
		ev.Owner = Self
	case 2:
		ev.Owner = Opponent
	default:
		return BreachEvent{}, false
	}
	return ev, true
}
