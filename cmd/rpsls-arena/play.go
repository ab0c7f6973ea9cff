package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mechanicus/rpsls-arena/cmd/rpsls-arena/shared"
	"github.com/mechanicus/rpsls-arena/internal/bot"
	"github.com/mechanicus/rpsls-arena/internal/config"
	"github.com/mechanicus/rpsls-arena/internal/console"
	"github.com/mechanicus/rpsls-arena/internal/game"
	"github.com/mechanicus/rpsls-arena/internal/randutil"
	"github.com/mechanicus/rpsls-arena/internal/tournamentid"
)

// PlayCmd runs one interactive tournament.
type PlayCmd struct {
	Config string `kong:"help='Roster file (HCL)'"`
	Humans int    `kong:"default='-1',help='Number of human players (skips the interactive setup)'"`
	Bots   int    `kong:"default='-1',help='Number of bot players (skips the interactive setup)'"`
	Seed   int64  `kong:"default='0',help='Deterministic RNG seed (0 for random)'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func (c *PlayCmd) Run() error {
	var cfg *config.TournamentConfig
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return err
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = loaded
	}

	logger := shared.SetupLogger(c.Debug || (cfg != nil && cfg.Settings.LogLevel == "debug"))

	// Flag wins over config file; zero means a fresh seed.
	seed := c.Seed
	if seed == 0 && cfg != nil {
		seed = cfg.Settings.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Debug("seeding tournament", "seed", seed)

	players, err := c.buildRoster(cfg, rng, logger)
	if err != nil {
		return err
	}

	id := tournamentid.New()
	engine, err := game.NewEngine(id, players, rng, logger)
	if err != nil {
		return err
	}

	renderer := console.NewRenderer(os.Stdout, os.Stdin, anyHuman(players))
	engine.Bus().Subscribe(renderer)

	logger.Info("tournament starting", "id", id, "players", len(players))
	_, err = engine.Run()
	return err
}

// buildRoster assembles players from, in order of precedence: an HCL
// config file, the --humans/--bots flags, or interactive prompts.
func (c *PlayCmd) buildRoster(cfg *config.TournamentConfig, rng *rand.Rand, logger *log.Logger) ([]*game.Player, error) {
	if cfg != nil {
		return rosterFromConfig(cfg, rng, logger)
	}

	if c.Humans >= 0 || c.Bots >= 0 {
		humans, bots := c.Humans, c.Bots
		if humans < 0 {
			humans = 0
		}
		if bots < 0 {
			bots = 0
		}
		if humans+bots < 2 {
			return nil, fmt.Errorf("at least 2 players required, got %d humans and %d bots", humans, bots)
		}
		names := make([]string, humans)
		for i := range names {
			names[i] = fmt.Sprintf("Player %d", i+1)
		}
		return assembleRoster(names, bots, rng, logger)
	}

	setup, err := console.PromptSetup()
	if err != nil {
		return nil, err
	}
	return assembleRoster(setup.Humans, setup.Bots, rng, logger)
}

// assembleRoster enrolls named humans plus n bots with randomly drawn
// strategies.
func assembleRoster(humans []string, bots int, rng *rand.Rand, logger *log.Logger) ([]*game.Player, error) {
	players := make([]*game.Player, 0, len(humans)+bots)
	for _, name := range humans {
		players = append(players, game.NewPlayer(name, game.Human, console.NewHumanSource(name)))
	}
	for i := 0; i < bots; i++ {
		strategy := bot.RandomStrategy(rng)
		source, err := bot.New(strategy, rng, logger)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("Bot %d", i+1)
		logger.Debug("enrolling bot", "name", name, "strategy", strategy)
		players = append(players, game.NewPlayer(name, game.Bot, source))
	}
	return players, nil
}

// rosterFromConfig enrolls the players a config file declares.
func rosterFromConfig(cfg *config.TournamentConfig, rng *rand.Rand, logger *log.Logger) ([]*game.Player, error) {
	players := make([]*game.Player, 0, len(cfg.Humans)+len(cfg.Bots))
	for _, h := range cfg.Humans {
		players = append(players, game.NewPlayer(h.Name, game.Human, console.NewHumanSource(h.Name)))
	}
	for _, b := range cfg.Bots {
		source, err := bot.New(b.Strategy, rng, logger)
		if err != nil {
			return nil, err
		}
		players = append(players, game.NewPlayer(b.Name, game.Bot, source))
	}
	return players, nil
}

func anyHuman(players []*game.Player) bool {
	for _, p := range players {
		if p.Kind() == game.Human {
			return true
		}
	}
	return false
}
