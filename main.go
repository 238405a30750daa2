package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lanes/config"
	"lanes/engine"
	"lanes/experiments/metrics"
	"lanes/game"
	"lanes/strategy"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default strategy settings")
	logLevel := flag.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	metricsDir := flag.String("metrics", "", "Directory for per-turn metrics, disabled when empty")
	flag.Parse()

	// Stdout carries decisions back to the engine
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", *logLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var orchestrator *strategy.Orchestrator
	factory := func(catalog *game.Catalog) engine.Strategy {
		options := []strategy.Option{strategy.WithLogger(log.Logger)}
		if *metricsDir != "" {
			options = append(options, strategy.WithMetrics())
		}
		orchestrator = strategy.NewOrchestrator(cfg, catalog, options...)
		return orchestrator
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := engine.NewLocalEngine(factory, os.Stdout)
	if err := e.Run(ctx, os.Stdin); err != nil {
		log.Error().Err(err).Msg("engine stopped")
	}

	if *metricsDir != "" && orchestrator != nil {
		writeMetrics(*metricsDir, orchestrator)
	}
}

func writeMetrics(dir string, o *strategy.Orchestrator) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		log.Error().Err(err).Msg("failed to create metrics writer")
		return
	}
	turns := o.Metrics()
	records := make([]metrics.TurnRecord, len(turns))
	for i, m := range turns {
		records[i] = metrics.TurnRecord{Match: o.Match().ID, TurnMetric: m}
	}
	if err := writer.WriteTurnRecords(records); err != nil {
		log.Error().Err(err).Msg("failed to write metrics")
		return
	}
	log.Info().Str("dir", writer.Dir()).Int("turns", len(records)).Msg("metrics written")
}
