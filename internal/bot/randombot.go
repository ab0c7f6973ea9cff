package bot

import (
	rand "math/rand/v2"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// RandomBot plays uniformly at random. It is the baseline opponent and
// the hardest to exploit.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot creates a uniformly random bot.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

func (b *RandomBot) NextChoice([]game.Choice) (game.Choice, error) {
	all := game.AllChoices()
	return all[b.rng.IntN(len(all))], nil
}

var _ game.ChoiceSource = (*RandomBot)(nil)
