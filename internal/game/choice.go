package game

import (
	"fmt"
	"strings"
)

// Choice is one of the five throwable signs.
type Choice int

const (
	Rock Choice = iota
	Scissors
	Paper
	Lizard
	Spock
)

// AllChoices returns every playable choice in menu order.
func AllChoices() []Choice {
	return []Choice{Rock, Scissors, Paper, Lizard, Spock}
}

// String returns the display name of the choice.
func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Scissors:
		return "Scissors"
	case Paper:
		return "Paper"
	case Lizard:
		return "Lizard"
	case Spock:
		return "Spock"
	default:
		return fmt.Sprintf("Choice(%d)", int(c))
	}
}

// Valid reports whether c is within the five-choice enumeration.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Spock
}

// ParseChoice converts user input to a Choice. It accepts the menu
// index ("1".."5", matching AllChoices order) or a choice name,
// case-insensitively.
func ParseChoice(input string) (Choice, error) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "1", "rock":
		return Rock, nil
	case "2", "scissors":
		return Scissors, nil
	case "3", "paper":
		return Paper, nil
	case "4", "lizard":
		return Lizard, nil
	case "5", "spock":
		return Spock, nil
	}
	return 0, fmt.Errorf("invalid choice %q", input)
}
