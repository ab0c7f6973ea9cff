package game

import (
	"errors"
	"sort"
)

// ErrTooFewEntries is returned when a round is scored with fewer than
// two entries. Below two there is no pair to compare; the engine's
// setup preconditions make this a contract violation, not a
// recoverable condition.
var ErrTooFewEntries = errors.New("game: at least 2 entries required to score a round")

// Entry pairs one player with the choice they submitted for the
// current round. Entries are created fresh each round and discarded
// after scoring.
type Entry struct {
	Player *Player
	Choice Choice
}

// Duel is the resolved outcome of one unordered pair of entries.
// Winner and Loser are nil when the duel is a draw; Justification
// carries the rule phrase for decisive duels.
type Duel struct {
	A, B          Entry
	Result        Result
	Winner        *Player
	Loser         *Player
	Justification string
}

// Duels resolves every unordered pair of entries exactly once, in
// entry order. The slice feeds both scoring and presentation.
func Duels(entries []Entry) []Duel {
	duels := make([]Duel, 0, len(entries)*(len(entries)-1)/2)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			d := Duel{
				A:      entries[i],
				B:      entries[j],
				Result: Compare(entries[i].Choice, entries[j].Choice),
			}
			switch d.Result {
			case AWins:
				d.Winner, d.Loser = entries[i].Player, entries[j].Player
				d.Justification, _ = Justification(entries[i].Choice, entries[j].Choice)
			case BWins:
				d.Winner, d.Loser = entries[j].Player, entries[i].Player
				d.Justification, _ = Justification(entries[j].Choice, entries[i].Choice)
			}
			duels = append(duels, d)
		}
	}
	return duels
}

// Score is one player's tally for a single round. It is derived from
// the round's entries and not persisted across rounds.
type Score struct {
	Player *Player
	Choice Choice
	Wins   int
	Losses int
}

// Net returns wins minus losses, the balance eliminations are decided
// on.
func (s Score) Net() int { return s.Wins - s.Losses }

// ScoreRound tallies every pairwise duel between the entries. Each
// decisive duel contributes exactly one win and one loss; draws count
// for neither side, so total wins always equal total losses. Player
// state is never mutated.
func ScoreRound(entries []Entry) ([]Score, error) {
	if len(entries) < 2 {
		return nil, ErrTooFewEntries
	}
	scores := make([]Score, len(entries))
	index := make(map[*Player]int, len(entries))
	for i, e := range entries {
		scores[i] = Score{Player: e.Player, Choice: e.Choice}
		index[e.Player] = i
	}
	for _, d := range Duels(entries) {
		if d.Result == Draw {
			continue
		}
		scores[index[d.Winner]].Wins++
		scores[index[d.Loser]].Losses++
	}
	return scores, nil
}

// SortScores returns a copy of scores ordered for presentation: best
// balance first, more wins breaking ties.
func SortScores(scores []Score) []Score {
	sorted := make([]Score, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Net() != sorted[j].Net() {
			return sorted[i].Net() > sorted[j].Net()
		}
		return sorted[i].Wins > sorted[j].Wins
	})
	return sorted
}
