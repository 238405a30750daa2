package strategy

import (
	"lanes/config"
	"lanes/game"
)

// LayoutBuilder places the fixed support structure: boosters once the gate
// cell can no longer take a tower, then the secondary tower line.
type LayoutBuilder struct {
	cfg config.Layout
}

func NewLayoutBuilder(cfg config.Layout) LayoutBuilder {
	return LayoutBuilder{cfg: cfg}
}

func (l LayoutBuilder) Build(turn *Turn) {
	if len(l.cfg.Boosters) > 0 && !turn.Engine.CanSpawn(game.Tower, l.cfg.Gate) {
		for _, at := range l.cfg.Boosters {
			turn.Spawn(game.Booster, at, 1)
		}
	}
	for _, at := range l.cfg.Towers {
		turn.Spawn(game.Tower, at, 1)
	}
}
