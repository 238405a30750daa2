package strategy

import (
	"math"
	"testing"

	"lanes/config"
	"lanes/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newController() CadenceController {
	return NewCadenceController(config.Default().Cadence)
}

func TestNewCadenceState(t *testing.T) {
	s := NewCadenceState(config.Default().Cadence)
	require.Equal(t, 9, s.MinFast)
	require.Equal(t, 3, s.MinHeavy)
	require.Equal(t, ActionNone, s.LastAction)
	require.True(t, math.IsInf(s.PastEnemyHealth, 1))
}

func TestCadenceAdjust(t *testing.T) {
	controller := newController()

	t.Run("fast success at the floor stays at the floor", func(t *testing.T) {
		s := CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionFast, PastEnemyHealth: 100}
		controller.Adjust(&s, 80)
		require.Equal(t, 9, s.MinFast)
	})

	t.Run("fast success lowers the threshold", func(t *testing.T) {
		s := CadenceState{MinFast: 17, LastAction: ActionFast, PastEnemyHealth: 100}
		controller.Adjust(&s, 90) // delta 10 >= 9.5
		require.Equal(t, 13, s.MinFast)
	})

	t.Run("fast drop below the bar changes nothing", func(t *testing.T) {
		s := CadenceState{MinFast: 17, LastAction: ActionFast, PastEnemyHealth: 100}
		controller.Adjust(&s, 91) // delta 9 < 9.5
		require.Equal(t, 17, s.MinFast)
	})

	t.Run("fast failure raises the threshold without a ceiling", func(t *testing.T) {
		s := CadenceState{MinFast: 9, LastAction: ActionFast, PastEnemyHealth: 100}
		for i := 0; i < 10; i++ {
			controller.Adjust(&s, 100)
		}
		require.Equal(t, 49, s.MinFast)
	})

	t.Run("heavy failure raises its threshold by one", func(t *testing.T) {
		s := CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionHeavy, PastEnemyHealth: 100}
		controller.Adjust(&s, 100)
		require.Equal(t, 4, s.MinHeavy)
		require.Equal(t, 9, s.MinFast)
	})

	t.Run("heavy success is derived from the fast threshold", func(t *testing.T) {
		s := CadenceState{MinFast: 13, MinHeavy: 3, LastAction: ActionHeavy, PastEnemyHealth: 100}
		controller.Adjust(&s, 90) // delta 10 >= 2.5
		require.Equal(t, 12, s.MinHeavy)
	})

	t.Run("no previous action leaves thresholds alone", func(t *testing.T) {
		s := CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionNone, PastEnemyHealth: 100}
		controller.Adjust(&s, 100)
		require.Equal(t, CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionNone, PastEnemyHealth: 100}, s)
	})

	t.Run("floors hold under any sequence", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		s := NewCadenceState(config.Default().Cadence)
		s.PastEnemyHealth = 100
		for i := 0; i < 1000; i++ {
			s.LastAction = Action(rng.Intn(3))
			s.MinFast = 9 + rng.Intn(4)
			health := s.PastEnemyHealth - float64(rng.Intn(30)) + 5
			controller.Adjust(&s, health)
			require.GreaterOrEqual(t, s.MinFast, 9)
			require.GreaterOrEqual(t, s.MinHeavy, 0)
			s.PastEnemyHealth = health
		}
	})
}

func cadenceEngine() *fakeEngine {
	engine := newFakeEngine()
	engine.paths[c(14, 0)] = []game.Coordinate{c(14, 0), c(14, 1)}
	engine.paths[c(12, 1)] = []game.Coordinate{c(12, 1), c(12, 2)}
	engine.attackers[c(14, 1)] = 2
	engine.feasible[spawnKey{game.Fast, c(12, 1)}] = true
	engine.feasible[spawnKey{game.Heavy, c(12, 1)}] = true
	return engine
}

func TestCadenceAct(t *testing.T) {
	controller := newController()

	t.Run("first turn sends fast units from the safer candidate", func(t *testing.T) {
		engine := cadenceEngine()
		engine.affordable[game.Fast] = 10
		s := NewCadenceState(config.Default().Cadence)
		turn := testTurn(t, stateWithEnemyHealth(1, 30), engine)
		risk := NewRiskEstimator(engine, 4)

		action := controller.Step(&s, turn, risk)

		require.Equal(t, ActionFast, action)
		require.Equal(t, ActionFast, s.LastAction)
		require.Equal(t, 30.0, s.PastEnemyHealth)
		require.Equal(t, []game.SpawnDirective{{Unit: game.Fast, At: c(12, 1), Count: game.BulkSpawn}}, turn.Directives())
	})

	t.Run("unchanged health sends heavy units without touching past health", func(t *testing.T) {
		engine := cadenceEngine()
		engine.affordable[game.Heavy] = 3
		s := CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionNone, PastEnemyHealth: 30}
		turn := testTurn(t, stateWithEnemyHealth(2, 30), engine)

		action := controller.Act(&s, turn, NewRiskEstimator(engine, 4))

		require.Equal(t, ActionHeavy, action)
		require.Equal(t, 30.0, s.PastEnemyHealth)
		require.Equal(t, []game.SpawnDirective{{Unit: game.Heavy, At: c(12, 1), Count: game.BulkSpawn}}, turn.Directives())
	})

	t.Run("dropped health but too few fast units waits", func(t *testing.T) {
		engine := cadenceEngine()
		engine.affordable[game.Fast] = 8
		engine.affordable[game.Heavy] = 20
		s := CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionFast, PastEnemyHealth: 30}
		turn := testTurn(t, stateWithEnemyHealth(3, 25), engine)

		action := controller.Act(&s, turn, NewRiskEstimator(engine, 4))

		require.Equal(t, ActionNone, action)
		require.Equal(t, 30.0, s.PastEnemyHealth)
		require.Empty(t, turn.Directives())
	})

	t.Run("unchanged health but too few heavy units waits", func(t *testing.T) {
		engine := cadenceEngine()
		engine.affordable[game.Heavy] = 2
		engine.affordable[game.Fast] = 20
		s := CadenceState{MinFast: 9, MinHeavy: 3, LastAction: ActionHeavy, PastEnemyHealth: 30}
		turn := testTurn(t, stateWithEnemyHealth(3, 30), engine)

		require.Equal(t, ActionNone, controller.Act(&s, turn, NewRiskEstimator(engine, 4)))
		require.Empty(t, turn.Directives())
	})

	t.Run("never commits both attack types in one turn", func(t *testing.T) {
		for _, health := range []float64{10, 30, 50} {
			engine := cadenceEngine()
			engine.affordable[game.Heavy] = 50
			engine.affordable[game.Fast] = 50
			s := CadenceState{MinFast: 9, MinHeavy: 0, PastEnemyHealth: 30}
			turn := testTurn(t, stateWithEnemyHealth(5, health), engine)

			controller.Step(&s, turn, NewRiskEstimator(engine, 4))
			require.Len(t, turn.Directives(), 1)
		}
	})
}
