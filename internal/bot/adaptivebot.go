package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// counters maps each choice to the two choices that beat it, in menu
// order. Used to punish whichever choice the history shows most often.
var counters = map[game.Choice][]game.Choice{
	game.Rock:     {game.Paper, game.Spock},
	game.Scissors: {game.Rock, game.Spock},
	game.Paper:    {game.Scissors, game.Lizard},
	game.Lizard:   {game.Rock, game.Scissors},
	game.Spock:    {game.Lizard, game.Paper},
}

// AdaptiveBot assumes its opponents mirror its own habits: it finds the
// choice it has played most often and answers with a counter to it,
// breaking streaks in its own play. Before enough history accumulates
// it plays uniformly.
type AdaptiveBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// minHistory is how many recorded choices the bot wants before it
// trusts the frequency signal.
const minHistory = 3

// NewAdaptiveBot creates a frequency-countering bot.
func NewAdaptiveBot(rng *rand.Rand, logger *log.Logger) *AdaptiveBot {
	return &AdaptiveBot{rng: rng, logger: logger}
}

func (b *AdaptiveBot) NextChoice(history []game.Choice) (game.Choice, error) {
	all := game.AllChoices()
	if len(history) < minHistory {
		return all[b.rng.IntN(len(all))], nil
	}

	freq := make(map[game.Choice]int, len(all))
	for _, c := range history {
		freq[c]++
	}
	// Scan in menu order so ties resolve the same way every run.
	most := all[0]
	for _, c := range all[1:] {
		if freq[c] > freq[most] {
			most = c
		}
	}

	options := counters[most]
	pick := options[b.rng.IntN(len(options))]
	b.logger.Debug("countering frequent choice", "most", most, "pick", pick)
	return pick, nil
}

var _ game.ChoiceSource = (*AdaptiveBot)(nil)
