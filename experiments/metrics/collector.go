package metrics

import (
	"sync/atomic"
	"time"
)

// TurnMetric summarizes one turn decision.
type TurnMetric struct {
	Turn       int
	Duration   time.Duration
	Directives int // spawn attempts emitted
	Spawned    int // units the engine accepted
	Sites      int
	Breaches   int
	MinFast    int
	MinHeavy   int
	Action     string
}

type Collector interface {
	Start(turn int)
	AddDirective(spawned int)
	AddBreach()
	Complete(sites, minFast, minHeavy int, action string) TurnMetric
}

// Breaches are reported between turns so AddBreach is safe to call concurrently with the rest.
type collector struct {
	turn       int
	startTime  time.Time
	directives atomic.Int32
	spawned    atomic.Int32
	breaches   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(turn int) {
	m.startTime = time.Now()
	m.turn = turn
	m.directives.Store(0)
	m.spawned.Store(0)
}

func (m *collector) AddDirective(spawned int) {
	m.directives.Add(1)
	m.spawned.Add(int32(spawned))
}

func (m *collector) AddBreach() {
	m.breaches.Add(1)
}

// Complete reports breaches recorded since the previous turn.
func (m *collector) Complete(sites, minFast, minHeavy int, action string) TurnMetric {
	return TurnMetric{
		Turn:       m.turn,
		Duration:   time.Since(m.startTime),
		Directives: int(m.directives.Load()),
		Spawned:    int(m.spawned.Load()),
		Sites:      sites,
		Breaches:   int(m.breaches.Swap(0)),
		MinFast:    minFast,
		MinHeavy:   minHeavy,
		Action:     action,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(turn int)           {}
func (m *dummyCollector) AddDirective(spawned int) {}
func (m *dummyCollector) AddBreach()               {}
func (m *dummyCollector) Complete(sites, minFast, minHeavy int, action string) TurnMetric {
	return TurnMetric{}
}
