package engine

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"lanes/game"

	"github.com/rs/zerolog/log"
)

// MaxFrameSize bounds a single engine message
const MaxFrameSize = 4 << 20

type LocalEngine struct {
	newStrategy StrategyFactory
	out         io.Writer
	Catalog     *game.Catalog
	Strategy    Strategy
	Turns       int
}

type spawnLine struct {
	Turn   int         `json:"turn"`
	Spawns []spawnItem `json:"spawns"`
}

type spawnItem struct {
	Unit  string `json:"unit"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Count int    `json:"count"`
}

// NewLocalEngine replays newline-delimited engine messages: the game config
// first, then frames. Decisions are written to out as one JSON line per turn.
func NewLocalEngine(newStrategy StrategyFactory, out io.Writer) *LocalEngine {
	return &LocalEngine{
		newStrategy: newStrategy,
		out:         out,
	}
}

func (e *LocalEngine) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64<<10), MaxFrameSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		if e.Strategy == nil {
			if err := e.start(line); err != nil {
				return err
			}
			continue
		}

		frame, err := game.ParseFrame(line)
		if err != nil {
			log.Warn().Err(err).Msg("dropping frame")
			continue
		}

		switch frame.Phase() {
		case game.PhaseTurn:
			if err := e.turn(frame); err != nil {
				return err
			}
		case game.PhaseAction:
			for _, breach := range frame.Breaches() {
				e.Strategy.OnBreach(breach)
			}
		case game.PhaseEnd:
			log.Info().Int("turns", e.Turns).Msg("match over")
			return nil
		default:
			log.Warn().Int("phase", int(frame.Phase())).Msg("unknown frame phase")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read engine input: %w", err)
	}
	return nil
}

func (e *LocalEngine) start(line []byte) error {
	catalog, err := game.ParseCatalog(line)
	if err != nil {
		return err
	}
	e.Catalog = catalog
	e.Strategy = e.newStrategy(catalog)
	log.Info().Msg("game config received")
	return nil
}

func (e *LocalEngine) turn(frame *game.Frame) error {
	state := frame.State()
	board := game.NewBoard(state, e.Catalog)
	directives := e.Strategy.OnTurnStart(state, board)
	e.Turns++

	out := spawnLine{Turn: state.Turn(), Spawns: make([]spawnItem, len(directives))}
	for i, d := range directives {
		out.Spawns[i] = spawnItem{
			Unit:  e.Catalog.Shorthand(d.Unit),
			X:     d.At.X,
			Y:     d.At.Y,
			Count: d.Count,
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode turn %d: %w", state.Turn(), err)
	}
	data = append(data, '\n')
	if _, err := e.out.Write(data); err != nil {
		return fmt.Errorf("failed to write turn %d: %w", state.Turn(), err)
	}
	return nil
}
