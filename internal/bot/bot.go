// Package bot provides the built-in computer opponents. Every bot is a
// game.ChoiceSource whose decisions come only from a random source and
// the player's own visible history, so tournaments are reproducible
// from a seed.
package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// Strategy names accepted by New.
const (
	StrategyRandom   = "random"
	StrategyBiased   = "biased"
	StrategyAdaptive = "adaptive"
	StrategyCyclic   = "cyclic"
)

// Strategies returns the available strategy names in a stable order.
func Strategies() []string {
	return []string{StrategyRandom, StrategyBiased, StrategyAdaptive, StrategyCyclic}
}

// New creates a choice source for the named strategy.
func New(strategy string, rng *rand.Rand, logger *log.Logger) (game.ChoiceSource, error) {
	switch strategy {
	case StrategyRandom:
		return NewRandomBot(rng), nil
	case StrategyBiased:
		return NewBiasedBot(rng), nil
	case StrategyAdaptive:
		return NewAdaptiveBot(rng, logger), nil
	case StrategyCyclic:
		return NewCyclicBot(rng), nil
	default:
		return nil, fmt.Errorf("unknown bot strategy %q", strategy)
	}
}

// RandomStrategy picks one of the strategy names at random. Used for
// mixed fields where each bot gets its own style.
func RandomStrategy(rng *rand.Rand) string {
	names := Strategies()
	return names[rng.IntN(len(names))]
}
