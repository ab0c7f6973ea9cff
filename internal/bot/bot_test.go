package bot

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mechanicus/rpsls-arena/internal/game"
	"github.com/mechanicus/rpsls-arena/internal/randutil"
)

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestNewKnowsEveryStrategy(t *testing.T) {
	t.Parallel()

	for _, name := range Strategies() {
		src, err := New(name, randutil.New(1), discardLogger())
		if err != nil {
			t.Errorf("New(%q) returned error: %v", name, err)
		}
		if src == nil {
			t.Errorf("New(%q) returned nil source", name)
		}
	}

	if _, err := New("psychic", randutil.New(1), discardLogger()); err == nil {
		t.Error("unknown strategy should be rejected")
	}
}

func TestEveryStrategyProducesValidChoices(t *testing.T) {
	t.Parallel()

	for _, name := range Strategies() {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			src, err := New(name, randutil.New(7), discardLogger())
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}
			var history []game.Choice
			for i := 0; i < 200; i++ {
				c, err := src.NextChoice(history)
				if err != nil {
					t.Fatalf("NextChoice returned error at turn %d: %v", i, err)
				}
				if !c.Valid() {
					t.Fatalf("turn %d produced invalid choice %d", i, int(c))
				}
				history = append(history, c)
			}
		})
	}
}

func TestRandomBotIsSeedDeterministic(t *testing.T) {
	t.Parallel()

	a := NewRandomBot(randutil.New(3))
	b := NewRandomBot(randutil.New(3))
	for i := 0; i < 50; i++ {
		ca, _ := a.NextChoice(nil)
		cb, _ := b.NextChoice(nil)
		if ca != cb {
			t.Fatalf("same seed diverged at turn %d: %v != %v", i, ca, cb)
		}
	}
}

func TestRandomBotCoversAllChoices(t *testing.T) {
	t.Parallel()

	b := NewRandomBot(randutil.New(11))
	seen := make(map[game.Choice]int)
	for i := 0; i < 1000; i++ {
		c, _ := b.NextChoice(nil)
		seen[c]++
	}
	for _, c := range game.AllChoices() {
		if seen[c] == 0 {
			t.Errorf("%v never drawn in 1000 turns", c)
		}
	}
}

func TestBiasedBotFavoursClassicChoices(t *testing.T) {
	t.Parallel()

	b := NewBiasedBot(randutil.New(5))
	seen := make(map[game.Choice]int)
	for i := 0; i < 4000; i++ {
		c, _ := b.NextChoice(nil)
		seen[c]++
	}

	classic := seen[game.Rock] + seen[game.Paper] + seen[game.Scissors]
	// The pool holds the classics at 6 of 8 slots; anything under 65%
	// over 4000 draws would mean the weighting is broken.
	if classic < 2600 {
		t.Errorf("classic choices drawn %d of 4000 times, expected a strong majority", classic)
	}
	for _, c := range game.AllChoices() {
		if seen[c] == 0 {
			t.Errorf("%v never drawn despite being in the pool", c)
		}
	}
}

func TestAdaptiveBotCountersItsOwnHabit(t *testing.T) {
	t.Parallel()

	b := NewAdaptiveBot(randutil.New(1), discardLogger())
	history := []game.Choice{game.Rock, game.Rock, game.Rock, game.Paper}

	for i := 0; i < 20; i++ {
		c, err := b.NextChoice(history)
		if err != nil {
			t.Fatalf("NextChoice returned error: %v", err)
		}
		if c != game.Paper && c != game.Spock {
			t.Fatalf("with Rock dominant, pick = %v, want Paper or Spock", c)
		}
	}
}

func TestAdaptiveBotBreaksFrequencyTiesInMenuOrder(t *testing.T) {
	t.Parallel()

	b := NewAdaptiveBot(randutil.New(1), discardLogger())
	// Rock and Spock tied; menu order puts Rock first, so its counters
	// must be chosen.
	history := []game.Choice{game.Spock, game.Rock, game.Spock, game.Rock}

	for i := 0; i < 20; i++ {
		c, err := b.NextChoice(history)
		if err != nil {
			t.Fatalf("NextChoice returned error: %v", err)
		}
		if c != game.Paper && c != game.Spock {
			t.Fatalf("tie should resolve to countering Rock, got %v", c)
		}
	}
}

func TestCyclicBotWalksTheMenu(t *testing.T) {
	t.Parallel()

	b := NewCyclicBot(randutil.New(9))
	all := game.AllChoices()

	first, _ := b.NextChoice(nil)
	start := -1
	for i, c := range all {
		if c == first {
			start = i
		}
	}
	if start < 0 {
		t.Fatalf("first choice %v not in menu", first)
	}

	for i := 1; i < 10; i++ {
		c, _ := b.NextChoice(nil)
		if want := all[(start+i)%len(all)]; c != want {
			t.Fatalf("turn %d = %v, want %v", i, c, want)
		}
	}
}

func TestCountersTableMatchesRules(t *testing.T) {
	t.Parallel()

	for target, beats := range counters {
		if len(beats) != 2 {
			t.Errorf("%v has %d counters, want 2", target, len(beats))
		}
		for _, c := range beats {
			if game.Compare(c, target) != game.AWins {
				t.Errorf("%v listed as beating %v but does not", c, target)
			}
		}
	}
}
