package game

import (
	"errors"
	"testing"
)

// fixedSource always returns the same choice. Used to build players
// whose state the scorer must leave untouched.
type fixedSource struct{ choice Choice }

func (f fixedSource) NextChoice([]Choice) (Choice, error) { return f.choice, nil }

func entriesFor(choices map[string]Choice, order []string) []Entry {
	entries := make([]Entry, 0, len(order))
	for _, name := range order {
		c := choices[name]
		entries = append(entries, Entry{Player: NewPlayer(name, Bot, fixedSource{c}), Choice: c})
	}
	return entries
}

func TestScoreRoundRequiresTwoEntries(t *testing.T) {
	t.Parallel()

	if _, err := ScoreRound(nil); !errors.Is(err, ErrTooFewEntries) {
		t.Errorf("ScoreRound(nil) error = %v, want ErrTooFewEntries", err)
	}
	one := entriesFor(map[string]Choice{"A": Rock}, []string{"A"})
	if _, err := ScoreRound(one); !errors.Is(err, ErrTooFewEntries) {
		t.Errorf("ScoreRound with 1 entry error = %v, want ErrTooFewEntries", err)
	}
}

func TestScoreRoundRockScissorsSpock(t *testing.T) {
	t.Parallel()

	// A beats B (Rock crushes Scissors), C beats A (Spock vaporizes
	// Rock), C beats B (Spock smashes Scissors).
	entries := entriesFor(map[string]Choice{
		"A": Rock,
		"B": Scissors,
		"C": Spock,
	}, []string{"A", "B", "C"})

	scores, err := ScoreRound(entries)
	if err != nil {
		t.Fatalf("ScoreRound returned error: %v", err)
	}

	want := map[string]int{"A": 0, "B": -2, "C": 2}
	for _, s := range scores {
		if s.Net() != want[s.Player.Name()] {
			t.Errorf("%s net = %d, want %d", s.Player.Name(), s.Net(), want[s.Player.Name()])
		}
	}
}

func TestScoreRoundWinsEqualLosses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		choices map[string]Choice
		order   []string
	}{
		{"all same", map[string]Choice{"A": Rock, "B": Rock, "C": Rock}, []string{"A", "B", "C"}},
		{"pairwise distinct", map[string]Choice{"A": Rock, "B": Paper, "C": Scissors, "D": Lizard}, []string{"A", "B", "C", "D"}},
		{"full house", map[string]Choice{"A": Rock, "B": Paper, "C": Scissors, "D": Lizard, "E": Spock}, []string{"A", "B", "C", "D", "E"}},
		{"two camps", map[string]Choice{"A": Spock, "B": Spock, "C": Lizard}, []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			scores, err := ScoreRound(entriesFor(tt.choices, tt.order))
			if err != nil {
				t.Fatalf("ScoreRound returned error: %v", err)
			}
			totalWins, totalLosses := 0, 0
			for _, s := range scores {
				totalWins += s.Wins
				totalLosses += s.Losses
			}
			if totalWins != totalLosses {
				t.Errorf("total wins %d != total losses %d", totalWins, totalLosses)
			}
		})
	}
}

func TestScoreRoundDoesNotMutatePlayers(t *testing.T) {
	t.Parallel()

	entries := entriesFor(map[string]Choice{"A": Rock, "B": Paper}, []string{"A", "B"})
	if _, err := ScoreRound(entries); err != nil {
		t.Fatalf("ScoreRound returned error: %v", err)
	}
	for _, e := range entries {
		if !e.Player.Active() {
			t.Errorf("%s was deactivated by scoring", e.Player.Name())
		}
		if len(e.Player.History()) != 0 {
			t.Errorf("%s history was touched by scoring", e.Player.Name())
		}
	}
}

func TestDuelsCoverEveryUnorderedPairOnce(t *testing.T) {
	t.Parallel()

	entries := entriesFor(map[string]Choice{
		"A": Rock, "B": Paper, "C": Scissors, "D": Spock,
	}, []string{"A", "B", "C", "D"})

	duels := Duels(entries)
	if len(duels) != 6 {
		t.Fatalf("4 entries produced %d duels, want 6", len(duels))
	}

	seen := make(map[string]bool)
	for _, d := range duels {
		key := d.A.Player.Name() + "/" + d.B.Player.Name()
		if seen[key] {
			t.Errorf("pair %s compared twice", key)
		}
		seen[key] = true
	}
}

func TestDuelsDecisiveOnesCarryJustification(t *testing.T) {
	t.Parallel()

	entries := entriesFor(map[string]Choice{"A": Paper, "B": Rock, "C": Rock}, []string{"A", "B", "C"})
	for _, d := range Duels(entries) {
		if d.Result == Draw {
			if d.Winner != nil || d.Loser != nil || d.Justification != "" {
				t.Errorf("draw duel %s vs %s carries winner data", d.A.Player.Name(), d.B.Player.Name())
			}
			continue
		}
		if d.Winner == nil || d.Loser == nil {
			t.Errorf("decisive duel %s vs %s missing winner or loser", d.A.Player.Name(), d.B.Player.Name())
		}
		if d.Justification == "" {
			t.Errorf("decisive duel %s vs %s missing justification", d.A.Player.Name(), d.B.Player.Name())
		}
	}
}

func TestSortScoresOrdersByNetThenWins(t *testing.T) {
	t.Parallel()

	a := NewPlayer("A", Bot, fixedSource{Rock})
	b := NewPlayer("B", Bot, fixedSource{Rock})
	c := NewPlayer("C", Bot, fixedSource{Rock})
	scores := []Score{
		{Player: a, Wins: 1, Losses: 1}, // net 0
		{Player: b, Wins: 2, Losses: 0}, // net +2
		{Player: c, Wins: 2, Losses: 2}, // net 0, more wins than A
	}

	sorted := SortScores(scores)
	wantOrder := []string{"B", "C", "A"}
	for i, name := range wantOrder {
		if sorted[i].Player.Name() != name {
			t.Errorf("sorted[%d] = %s, want %s", i, sorted[i].Player.Name(), name)
		}
	}

	// Input slice stays untouched.
	if scores[0].Player.Name() != "A" {
		t.Error("SortScores mutated its input")
	}
}
