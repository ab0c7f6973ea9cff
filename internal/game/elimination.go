package game

// RoundOutcome is the elimination decision for one scored round.
// Either Replay is set (every balance equal, the round is void and
// must be re-collected with fresh choices) or Eliminated holds every
// player tied for the worst balance.
type RoundOutcome struct {
	Replay     bool
	Eliminated []*Player
}

// DetermineLosers decides who leaves after a scored round. All players
// sharing the minimum balance are eliminated together; ties at the
// minimum are never broken. When min equals max the round is a draw
// and replays.
func DetermineLosers(scores []Score) (RoundOutcome, error) {
	if len(scores) < 2 {
		return RoundOutcome{}, ErrTooFewEntries
	}
	min, max := scores[0].Net(), scores[0].Net()
	for _, s := range scores[1:] {
		if n := s.Net(); n < min {
			min = n
		} else if n > max {
			max = n
		}
	}
	if min == max {
		return RoundOutcome{Replay: true}, nil
	}
	var eliminated []*Player
	for _, s := range scores {
		if s.Net() == min {
			eliminated = append(eliminated, s.Player)
		}
	}
	return RoundOutcome{Eliminated: eliminated}, nil
}
