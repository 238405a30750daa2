package engine

import (
	"context"
	"io"

	"lanes/game"
)

// Strategy is the decision core an engine drives.
type Strategy interface {
	// OnTurnStart returns the spawn attempts for this turn
	OnTurnStart(state game.TurnState, engine game.Engine) []game.SpawnDirective
	// OnBreach may be called several times between turns
	OnBreach(event game.BreachEvent)
}

// StrategyFactory builds a strategy once the unit catalog is known.
type StrategyFactory func(catalog *game.Catalog) Strategy

type Engine interface {
	// Run consumes engine messages until the match ends or the input is exhausted
	Run(ctx context.Context, in io.Reader) error
}
