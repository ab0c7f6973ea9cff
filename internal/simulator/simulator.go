// Package simulator runs batches of bot-only tournaments and
// aggregates the outcomes. Batches are reproducible: tournament i uses
// seed base+i, so any single result can be replayed in isolation.
package simulator

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mechanicus/rpsls-arena/internal/bot"
	"github.com/mechanicus/rpsls-arena/internal/game"
	"github.com/mechanicus/rpsls-arena/internal/randutil"
	"github.com/mechanicus/rpsls-arena/internal/statistics"
	"github.com/mechanicus/rpsls-arena/internal/tournamentid"
)

// MixedStrategy assigns every bot its own randomly drawn strategy.
const MixedStrategy = "mixed"

// Config holds configuration for running a simulation batch.
type Config struct {
	Tournaments int
	Bots        int
	Strategy    string // one of bot.Strategies() or MixedStrategy
	Seed        int64
	Workers     int // concurrent tournaments, 0 means sequential
	Logger      *log.Logger
}

// Simulator runs tournament simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the batch and returns aggregated statistics. Tournaments
// run concurrently up to the configured worker limit; results land in a
// fixed slot per tournament, so the aggregate is independent of
// completion order.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Tournaments < 1 {
		return nil, fmt.Errorf("at least 1 tournament required, got %d", s.config.Tournaments)
	}
	if s.config.Bots < 2 {
		return nil, fmt.Errorf("at least 2 bots required, got %d", s.config.Bots)
	}
	if s.config.Strategy != MixedStrategy {
		if _, err := bot.New(s.config.Strategy, randutil.New(0), s.config.Logger); err != nil {
			return nil, err
		}
	}

	results := make([]statistics.TournamentResult, s.config.Tournaments)

	g, ctx := errgroup.WithContext(ctx)
	workers := s.config.Workers
	if workers < 1 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := 0; i < s.config.Tournaments; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seed := s.config.Seed + int64(i)
			result, err := s.playTournament(seed)
			if err != nil {
				return fmt.Errorf("tournament %d (seed %d): %w", i+1, seed, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.New()
	for _, r := range results {
		stats.Add(r)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playTournament runs one complete bot tournament from a single seed.
func (s *Simulator) playTournament(seed int64) (statistics.TournamentResult, error) {
	rng := randutil.New(seed)

	players := make([]*game.Player, 0, s.config.Bots)
	strategyByName := make(map[string]string, s.config.Bots)
	for i := 0; i < s.config.Bots; i++ {
		strategy := s.config.Strategy
		if strategy == MixedStrategy {
			strategy = bot.RandomStrategy(rng)
		}
		source, err := bot.New(strategy, rng, s.config.Logger)
		if err != nil {
			return statistics.TournamentResult{}, err
		}
		name := fmt.Sprintf("%s-%d", strategy, i+1)
		strategyByName[name] = strategy
		players = append(players, game.NewPlayer(name, game.Bot, source))
	}

	engine, err := game.NewEngine(tournamentid.New(), players, rng, s.config.Logger)
	if err != nil {
		return statistics.TournamentResult{}, err
	}
	outcome, err := engine.Run()
	if err != nil {
		return statistics.TournamentResult{}, err
	}

	result := statistics.TournamentResult{
		Seed:              seed,
		Rounds:            outcome.Rounds,
		Replays:           outcome.Replays,
		Players:           s.config.Bots,
		MutualElimination: outcome.MutualElimination,
	}
	if outcome.Winner != nil {
		result.WinnerName = outcome.Winner.Name()
		result.WinnerStrategy = strategyByName[outcome.Winner.Name()]
	}
	return result, nil
}

// PrintSummary prints an aggregate summary of a finished batch.
func PrintSummary(stats *statistics.Statistics, strategy string) {
	fmt.Printf("\n=== RESULTS: %d tournaments vs %s bots ===\n", stats.Tournaments, strategy)

	fmt.Printf("\n=== WINS BY STRATEGY ===\n")
	for _, name := range stats.Strategies() {
		wins := stats.WinsByStrategy[name]
		fmt.Printf("%-10s %6d wins (%.1f%%)\n", name, wins,
			float64(wins)/float64(stats.Tournaments)*100)
	}
	if stats.MutualEliminations > 0 {
		fmt.Printf("%-10s %6d (%.1f%%)\n", "no winner", stats.MutualEliminations,
			float64(stats.MutualEliminations)/float64(stats.Tournaments)*100)
	}

	low, high := stats.ConfidenceInterval95()
	fmt.Printf("\n=== TOURNAMENT LENGTH ===\n")
	fmt.Printf("Mean: %.2f rounds\n", stats.Mean())
	fmt.Printf("Median: %.2f rounds\n", stats.Median())
	fmt.Printf("Std Dev: %.2f rounds\n", stats.StdDev())
	fmt.Printf("95%% CI: [%.2f, %.2f] rounds\n", low, high)
	fmt.Printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25),
		stats.Percentile(0.75), stats.Percentile(0.95))
	fmt.Printf("Replayed tables: %d across the batch\n", stats.TotalReplays)
}
