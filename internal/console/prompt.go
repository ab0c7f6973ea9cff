package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// HumanSource asks a person for their choice through a terminal select
// menu. The menu only offers valid gestures, so invalid input cannot
// reach the engine.
type HumanSource struct {
	name string
}

// NewHumanSource creates a choice source prompting the named player.
func NewHumanSource(name string) *HumanSource {
	return &HumanSource{name: name}
}

func (h *HumanSource) NextChoice([]game.Choice) (game.Choice, error) {
	options := make([]huh.Option[game.Choice], 0, len(game.AllChoices()))
	for i, c := range game.AllChoices() {
		options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, c), c))
	}

	var choice game.Choice
	err := huh.NewSelect[game.Choice]().
		Title(fmt.Sprintf("%s, throw your gesture", h.name)).
		Options(options...).
		Value(&choice).
		Run()
	if err != nil {
		return 0, fmt.Errorf("prompting %s: %w", h.name, err)
	}
	return choice, nil
}

var _ game.ChoiceSource = (*HumanSource)(nil)

// Setup is the roster gathered from interactive prompts.
type Setup struct {
	Humans []string
	Bots   int
}

// PromptSetup interactively asks for the number of humans and bots and
// each human's name. The combined roster must have at least two
// players and a lone human cannot play against nobody.
func PromptSetup() (Setup, error) {
	var humansRaw, botsRaw string

	err := huh.NewInput().
		Title("How many human players?").
		Validate(validateCount(0)).
		Value(&humansRaw).
		Run()
	if err != nil {
		return Setup{}, err
	}
	humans, _ := strconv.Atoi(strings.TrimSpace(humansRaw))

	minBots := 0
	if humans < 2 {
		minBots = 2 - humans
	}
	err = huh.NewInput().
		Title("How many bots?").
		Description("The tournament needs at least 2 players in total.").
		Validate(validateCount(minBots)).
		Value(&botsRaw).
		Run()
	if err != nil {
		return Setup{}, err
	}
	bots, _ := strconv.Atoi(strings.TrimSpace(botsRaw))

	setup := Setup{Bots: bots}
	for i := 0; i < humans; i++ {
		var name string
		err := huh.NewInput().
			Title(fmt.Sprintf("Name for player %d", i+1)).
			Value(&name).
			Run()
		if err != nil {
			return Setup{}, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		setup.Humans = append(setup.Humans, name)
	}
	return setup, nil
}

// validateCount accepts non-negative integers of at least min.
func validateCount(min int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if n < min {
			return fmt.Errorf("enter at least %d", min)
		}
		return nil
	}
}
