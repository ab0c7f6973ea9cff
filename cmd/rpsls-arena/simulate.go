package main

import (
	"context"
	"runtime"
	"time"

	"github.com/mechanicus/rpsls-arena/cmd/rpsls-arena/shared"
	"github.com/mechanicus/rpsls-arena/internal/simulator"
)

// SimulateCmd runs bot-only tournament batches.
type SimulateCmd struct {
	Tournaments int    `kong:"default='1000',help='Number of tournaments to simulate'"`
	Bots        int    `kong:"default='8',help='Bots per tournament'"`
	Strategy    string `kong:"default='mixed',enum='mixed,random,biased,adaptive,cyclic',help='Bot strategy, or mixed for a varied field'"`
	Seed        int64  `kong:"default='0',help='Deterministic RNG seed (0 for random)'"`
	Workers     int    `kong:"default='0',help='Concurrent tournaments (0 uses all CPUs)'"`
	Debug       bool   `kong:"help='Enable debug logging'"`
}

func (c *SimulateCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	workers := c.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	logger.Info("starting simulation",
		"tournaments", c.Tournaments,
		"bots", c.Bots,
		"strategy", c.Strategy,
		"seed", seed,
		"workers", workers)

	sim := simulator.New(simulator.Config{
		Tournaments: c.Tournaments,
		Bots:        c.Bots,
		Strategy:    c.Strategy,
		Seed:        seed,
		Workers:     workers,
		Logger:      logger,
	})

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if err != nil {
		return err
	}
	logger.Info("simulation complete", "elapsed", time.Since(start))

	simulator.PrintSummary(stats, c.Strategy)
	return nil
}
