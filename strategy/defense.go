package strategy

import (
	"lanes/game"

	"golang.org/x/exp/slices"
)

type SiteStatus int

const (
	SiteEmpty SiteStatus = iota
	SiteOccupied
	SiteInfeasible
)

func (s SiteStatus) String() string {
	switch s {
	case SiteEmpty:
		return "empty"
	case SiteOccupied:
		return "occupied"
	default:
		return "infeasible"
	}
}

type DefenseSite struct {
	At     game.Coordinate
	Status SiteStatus
}

// SiteSequence is the ordered, append-only list of defense coordinates.
type SiteSequence struct {
	sites []game.Coordinate
}

func NewSiteSequence(seeds []game.Coordinate) *SiteSequence {
	return &SiteSequence{sites: slices.Clone(seeds)}
}

func (s *SiteSequence) Len() int { return len(s.sites) }

// All returns a copy in insertion order.
func (s *SiteSequence) All() []game.Coordinate {
	return slices.Clone(s.sites)
}

func (s *SiteSequence) append(sites ...game.Coordinate) {
	s.sites = append(s.sites, sites...)
}

// DefensePlanner grows the perimeter around existing sites and keeps every site manned.
type DefensePlanner struct {
	Unit game.UnitType
}

// Expand visits the sites present at turn start in insertion order. An empty
// site stages the first feasible neighbour among the cell one row toward our
// edge, then +x, then -x. Staged sites are appended once the pass is over, so
// they are not expanded again until the next turn.
func (p DefensePlanner) Expand(sites *SiteSequence, engine game.Engine) []game.Coordinate {
	var staged []game.Coordinate
	for _, site := range sites.All() {
		if engine.ContainsStationary(site) {
			continue
		}
		for _, candidate := range [...]game.Coordinate{site.Down(), site.Right(), site.Left()} {
			if engine.CanSpawn(p.Unit, candidate) {
				staged = append(staged, candidate)
				break
			}
		}
	}
	sites.append(staged...)
	return staged
}

// Fortify attempts a spawn at every site. Occupied or infeasible sites are no-ops.
func (p DefensePlanner) Fortify(sites *SiteSequence, turn *Turn) {
	for _, site := range sites.All() {
		turn.Spawn(p.Unit, site, 1)
	}
}

func (p DefensePlanner) Survey(sites *SiteSequence, engine game.Engine) []DefenseSite {
	all := sites.All()
	survey := make([]DefenseSite, len(all))
	for i, site := range all {
		status := SiteEmpty
		switch {
		case engine.ContainsStationary(site):
			status = SiteOccupied
		case !engine.CanSpawn(p.Unit, site):
			status = SiteInfeasible
		}
		survey[i] = DefenseSite{At: site, Status: status}
	}
	return survey
}
