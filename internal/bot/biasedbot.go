package bot

import (
	rand "math/rand/v2"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// BiasedBot favours the three classic options. It draws from a weighted
// pool where Rock, Paper and Scissors each appear twice and Lizard and
// Spock once, mimicking players who rarely reach for the new gestures.
type BiasedBot struct {
	rng  *rand.Rand
	pool []game.Choice
}

// NewBiasedBot creates a bot biased towards Rock, Paper and Scissors.
func NewBiasedBot(rng *rand.Rand) *BiasedBot {
	return &BiasedBot{
		rng: rng,
		pool: []game.Choice{
			game.Rock, game.Rock,
			game.Paper, game.Paper,
			game.Scissors, game.Scissors,
			game.Lizard,
			game.Spock,
		},
	}
}

func (b *BiasedBot) NextChoice([]game.Choice) (game.Choice, error) {
	return b.pool[b.rng.IntN(len(b.pool))], nil
}

var _ game.ChoiceSource = (*BiasedBot)(nil)
