package strategy

import "lanes/game"

// RiskEstimator scores spawn locations by the tower fire a mobile unit would
// walk through on its projected path. It holds no state of its own.
type RiskEstimator struct {
	engine      game.Engine
	towerDamage float64
}

func NewRiskEstimator(engine game.Engine, towerDamage float64) RiskEstimator {
	return RiskEstimator{engine: engine, towerDamage: towerDamage}
}

// EstimateDamage sums, over every cell of the path from origin, the number of
// hostile towers covering that cell times the per-hit tower damage.
func (r RiskEstimator) EstimateDamage(origin game.Coordinate) float64 {
	damage := 0.0
	for c := range r.engine.PathToEdge(origin) {
		damage += float64(len(r.engine.Attackers(c, game.Self))) * r.towerDamage
	}
	return damage
}

// ChooseBest returns the candidate with the strictly smallest estimate; ties go
// to the earlier candidate. ok is false when there are no candidates.
func (r RiskEstimator) ChooseBest(candidates []game.Coordinate) (best game.Coordinate, ok bool) {
	minDamage := 0.0
	for i, c := range candidates {
		damage := r.EstimateDamage(c)
		if i == 0 || damage < minDamage {
			best, minDamage = c, damage
		}
	}
	return best, len(candidates) > 0
}
