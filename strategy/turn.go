package strategy

import (
	"lanes/experiments/metrics"
	"lanes/game"

	"github.com/rs/zerolog"
)

// Turn is the scratch context of a single decision pass. It forwards spawn
// attempts to the engine and records them as directives.
type Turn struct {
	State  game.TurnState
	Engine game.Engine

	directives []game.SpawnDirective
	metrics    metrics.Collector
	logger     zerolog.Logger
}

func newTurn(state game.TurnState, engine game.Engine, collector metrics.Collector, logger zerolog.Logger) *Turn {
	return &Turn{
		State:   state,
		Engine:  engine,
		metrics: collector,
		logger:  logger,
	}
}

// Spawn never fails; an infeasible attempt simply places nothing.
func (t *Turn) Spawn(unit game.UnitType, at game.Coordinate, count int) int {
	placed := t.Engine.Spawn(unit, at, count)
	t.directives = append(t.directives, game.SpawnDirective{Unit: unit, At: at, Count: count})
	t.metrics.AddDirective(placed)
	t.logger.Trace().
		Stringer("unit", unit).
		Stringer("at", at).
		Int("count", count).
		Int("placed", placed).
		Msg("spawn")
	return placed
}

func (t *Turn) Directives() []game.SpawnDirective {
	return t.directives
}
