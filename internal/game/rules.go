package game

import "fmt"

// Result is the outcome of comparing two choices.
type Result int

const (
	Draw Result = iota
	AWins
	BWins
)

// String returns the string representation of the result.
func (r Result) String() string {
	switch r {
	case Draw:
		return "draw"
	case AWins:
		return "a_wins"
	case BWins:
		return "b_wins"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// winsAgainst maps each choice to the choices it defeats, paired with
// the canonical phrase for the victory. Each choice beats exactly two
// others and loses to the remaining two, which keeps the relation
// total and antisymmetric.
var winsAgainst = map[Choice]map[Choice]string{
	Scissors: {
		Paper:  "Scissors cuts Paper",
		Lizard: "Scissors decapitates Lizard",
	},
	Paper: {
		Rock:  "Paper covers Rock",
		Spock: "Paper disproves Spock",
	},
	Rock: {
		Lizard:   "Rock crushes Lizard",
		Scissors: "Rock crushes Scissors",
	},
	Lizard: {
		Spock: "Lizard poisons Spock",
		Paper: "Lizard eats Paper",
	},
	Spock: {
		Scissors: "Spock smashes Scissors",
		Rock:     "Spock vaporizes Rock",
	},
}

// Compare resolves a duel between two choices. Equal choices always
// draw; for distinct choices exactly one side wins.
func Compare(a, b Choice) Result {
	if a == b {
		return Draw
	}
	if _, ok := winsAgainst[a][b]; ok {
		return AWins
	}
	return BWins
}

// Justification returns the canned phrase explaining why winner beats
// loser. Asking for a pair that is not a genuine win relation (a draw,
// or the reversed direction) is a caller bug and returns an error.
func Justification(winner, loser Choice) (string, error) {
	phrase, ok := winsAgainst[winner][loser]
	if !ok {
		return "", fmt.Errorf("%s does not beat %s", winner, loser)
	}
	return phrase, nil
}
