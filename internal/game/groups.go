package game

import (
	"errors"
	rand "math/rand/v2"
)

const (
	// MinGroupSize and MaxGroupSize bound every group the partitioner
	// emits.
	MinGroupSize = 2
	MaxGroupSize = 4

	// NoSplitThreshold is the largest active count that still plays as
	// a single table. Above it the engine partitions into groups.
	NoSplitThreshold = 5
)

// ErrTooFewPlayers is returned when fewer than two players are
// partitioned or enrolled. Setup validation prevents it in normal
// operation.
var ErrTooFewPlayers = errors.New("game: at least 2 players required")

// groupSizes returns the group size sequence for n players. Groups of
// four are preferred; a remainder of one borrows from a full group so
// no one is ever left in a group of one.
func groupSizes(n int) []int {
	q, r := n/MaxGroupSize, n%MaxGroupSize
	var sizes []int
	fours := q
	if r == 1 {
		fours = q - 1
	}
	for i := 0; i < fours; i++ {
		sizes = append(sizes, 4)
	}
	switch r {
	case 1:
		sizes = append(sizes, 3, 2)
	case 2:
		sizes = append(sizes, 2)
	case 3:
		sizes = append(sizes, 3)
	}
	return sizes
}

// Partition shuffles players uniformly with the supplied randomness
// source and splits them into groups of 2-4 covering every player
// exactly once. Defined for any n >= 2; n = 2 or 3 yields a single
// group of that size.
func Partition(players []*Player, rng *rand.Rand) ([][]*Player, error) {
	if len(players) < MinGroupSize {
		return nil, ErrTooFewPlayers
	}
	shuffled := make([]*Player, len(players))
	copy(shuffled, players)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var groups [][]*Player
	idx := 0
	for _, size := range groupSizes(len(shuffled)) {
		groups = append(groups, shuffled[idx:idx+size])
		idx += size
	}
	return groups, nil
}
