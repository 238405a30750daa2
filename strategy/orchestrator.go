package strategy

import (
	"lanes/config"
	"lanes/experiments/metrics"
	"lanes/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Match is the state carried across the turns of one match. It is owned by
// the orchestrator and handed to each component explicitly.
type Match struct {
	ID       string
	Cadence  CadenceState
	Sites    *SiteSequence
	Breaches *BreachHistory
}

type Option func(o *Orchestrator)

func WithMatchID(id string) Option {
	return func(o *Orchestrator) {
		if id != "" {
			o.match.ID = id
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithMetrics() Option {
	return func(o *Orchestrator) {
		o.metrics = metrics.NewCollector()
	}
}

// Orchestrator runs the per-turn decision: perimeter, breach reinforcement,
// support layout and the attack cadence, in that order.
type Orchestrator struct {
	match      *Match
	catalog    *game.Catalog
	expandFrom int
	planner    DefensePlanner
	tracker    BreachTracker
	layout     LayoutBuilder
	cadence    CadenceController
	metrics    metrics.Collector
	turns      []metrics.TurnMetric
	logger     zerolog.Logger
}

func NewOrchestrator(cfg config.Config, catalog *game.Catalog, options ...Option) *Orchestrator {
	o := &Orchestrator{ // Default values
		match: &Match{
			ID:       uuid.NewString(),
			Cadence:  NewCadenceState(cfg.Cadence),
			Sites:    NewSiteSequence(cfg.DefenseSites),
			Breaches: &BreachHistory{},
		},
		catalog:    catalog,
		expandFrom: cfg.ExpandFromTurn,
		planner:    DefensePlanner{Unit: game.Tower},
		tracker:    BreachTracker{Unit: game.Tower},
		layout:     NewLayoutBuilder(cfg.Layout),
		cadence:    NewCadenceController(cfg.Cadence),
		metrics:    metrics.NewDummyCollector(),
		logger:     log.Logger,
	}
	for _, option := range options {
		option(o)
	}
	o.logger = o.logger.With().Str("match", o.match.ID).Logger()
	return o
}

func (o *Orchestrator) Match() *Match { return o.match }

// Metrics returns the per-turn metrics collected so far, if enabled.
func (o *Orchestrator) Metrics() []metrics.TurnMetric { return o.turns }

// OnTurnStart decides the turn and returns every spawn attempt made, in order.
func (o *Orchestrator) OnTurnStart(state game.TurnState, engine game.Engine) []game.SpawnDirective {
	logger := o.logger.With().Int("turn", state.Turn()).Logger()
	o.metrics.Start(state.Turn())
	turn := newTurn(state, engine, o.metrics, logger)

	if state.Turn() >= o.expandFrom {
		if added := o.planner.Expand(o.match.Sites, engine); len(added) > 0 {
			logger.Debug().Interface("added", added).Int("sites", o.match.Sites.Len()).Msg("perimeter expanded")
		}
	}
	if e := logger.Debug(); e.Enabled() {
		counts := map[string]int{}
		for _, site := range o.planner.Survey(o.match.Sites, engine) {
			counts[site.Status.String()]++
		}
		e.Interface("sites", counts).Msg("perimeter status")
	}
	o.planner.Fortify(o.match.Sites, turn)
	o.tracker.Reinforce(o.match.Breaches, turn)
	o.layout.Build(turn)

	risk := NewRiskEstimator(engine, o.catalog.Damage(game.Tower))
	action := o.cadence.Step(&o.match.Cadence, turn, risk)

	metric := o.metrics.Complete(o.match.Sites.Len(), o.match.Cadence.MinFast, o.match.Cadence.MinHeavy, action.String())
	if metric != (metrics.TurnMetric{}) {
		o.turns = append(o.turns, metric)
	}

	logger.Info().
		Float64("enemy_health", state.EnemyHealth()).
		Int("sites", o.match.Sites.Len()).
		Int("breaches", o.match.Breaches.Len()).
		Int("directives", len(turn.Directives())).
		Int("min_fast", o.match.Cadence.MinFast).
		Int("min_heavy", o.match.Cadence.MinHeavy).
		Stringer("action", action).
		Msg("turn decided")

	return turn.Directives()
}

// OnBreach records an opponent breach. It produces no output.
func (o *Orchestrator) OnBreach(event game.BreachEvent) {
	if !o.tracker.Record(o.match.Breaches, event) {
		return
	}
	o.metrics.AddBreach()
	o.logger.Debug().Stringer("at", event.At).Stringer("unit", event.Unit).Msg("scored on")
}
