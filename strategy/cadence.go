package strategy

import (
	"math"

	"lanes/config"
	"lanes/game"
)

type Action int

const (
	ActionNone Action = iota
	ActionFast
	ActionHeavy
)

func (a Action) String() string {
	switch a {
	case ActionFast:
		return "fast"
	case ActionHeavy:
		return "heavy"
	default:
		return "none"
	}
}

// CadenceState is the attack controller's memory between turns.
type CadenceState struct {
	MinFast         int
	MinHeavy        int
	LastAction      Action
	PastEnemyHealth float64
}

func NewCadenceState(cfg config.Cadence) CadenceState {
	return CadenceState{
		MinFast:         cfg.MinFast,
		MinHeavy:        cfg.MinHeavy,
		LastAction:      ActionNone,
		PastEnemyHealth: math.Inf(1),
	}
}

// CadenceController alternates fast and heavy attacks. A successful attack lowers
// the affordability bar for the next one of its kind and a failed one raises it.
type CadenceController struct {
	cfg config.Cadence
}

func NewCadenceController(cfg config.Cadence) CadenceController {
	return CadenceController{cfg: cfg}
}

// Step adjusts the thresholds from the last outcome and then commits at most one attack.
func (c CadenceController) Step(s *CadenceState, turn *Turn, risk RiskEstimator) Action {
	c.Adjust(s, turn.State.EnemyHealth())
	return c.Act(s, turn, risk)
}

func (c CadenceController) Adjust(s *CadenceState, enemyHealth float64) {
	delta := s.PastEnemyHealth - enemyHealth
	dropped := enemyHealth < s.PastEnemyHealth

	switch s.LastAction {
	case ActionFast:
		if delta >= float64(s.MinFast)/2+1 {
			s.MinFast = max(s.MinFast-c.cfg.FastStep, c.cfg.FastFloor)
		} else if !dropped {
			// No ceiling
			s.MinFast += c.cfg.FastStep
		}
	case ActionHeavy:
		if delta >= float64(s.MinHeavy)/2+1 {
			// Derived from MinFast, not the previous MinHeavy. Pending confirmation before changing.
			s.MinHeavy = max(s.MinFast-c.cfg.HeavyStep, c.cfg.HeavyFloor)
		} else if !dropped {
			s.MinHeavy += c.cfg.HeavyStep
		}
	}
}

func (c CadenceController) Act(s *CadenceState, turn *Turn, risk RiskEstimator) Action {
	enemyHealth := turn.State.EnemyHealth()
	dropped := enemyHealth < s.PastEnemyHealth

	switch {
	case !dropped && turn.Engine.Affordable(game.Heavy) >= s.MinHeavy:
		c.launch(turn, risk, game.Heavy)
		s.LastAction = ActionHeavy
	case dropped && turn.Engine.Affordable(game.Fast) >= s.MinFast:
		s.LastAction = ActionNone
		if turn.Engine.Affordable(game.Fast) > 0 {
			s.LastAction = ActionFast
		}
		c.launch(turn, risk, game.Fast)
		s.PastEnemyHealth = enemyHealth
	default:
		s.LastAction = ActionNone
	}
	return s.LastAction
}

func (c CadenceController) launch(turn *Turn, risk RiskEstimator, unit game.UnitType) {
	at, ok := risk.ChooseBest(c.cfg.Candidates)
	if !ok {
		return
	}
	turn.Spawn(unit, at, c.cfg.BulkCount)
}
