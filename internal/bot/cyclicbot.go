package bot

import (
	rand "math/rand/v2"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// CyclicBot walks through the five choices in menu order from a random
// starting point. Trivially exploitable, useful as a predictable
// opponent and in tests.
type CyclicBot struct {
	next int
}

// NewCyclicBot creates a bot cycling from a random offset.
func NewCyclicBot(rng *rand.Rand) *CyclicBot {
	return &CyclicBot{next: rng.IntN(len(game.AllChoices()))}
}

func (b *CyclicBot) NextChoice([]game.Choice) (game.Choice, error) {
	all := game.AllChoices()
	c := all[b.next]
	b.next = (b.next + 1) % len(all)
	return c, nil
}

var _ game.ChoiceSource = (*CyclicBot)(nil)
