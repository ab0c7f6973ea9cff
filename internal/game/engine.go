package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
)

// maxChoiceRetries bounds how often the engine re-queries a source
// that keeps returning values outside the five-choice enumeration.
// Interactive sources re-prompt internally and should never hit it; a
// bot that does is broken and fails the tournament loudly.
const maxChoiceRetries = 100

// Engine drives one tournament to completion: collect choices, score,
// eliminate, repeat until a single player remains. It is synchronous
// and single-threaded; the only blocking point is choice collection.
type Engine struct {
	id      string
	players []*Player
	rng     *rand.Rand
	logger  *log.Logger
	bus     EventBus
	rounds  int
	replays int
}

// Outcome summarises a finished tournament.
type Outcome struct {
	Winner            *Player // nil when MutualElimination is set
	Rounds            int
	Replays           int
	MutualElimination bool
}

// NewEngine creates an engine over the given roster. Player names must
// be unique and at least two players are required.
func NewEngine(id string, players []*Player, rng *rand.Rand, logger *log.Logger) (*Engine, error) {
	if len(players) < 2 {
		return nil, ErrTooFewPlayers
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if seen[p.Name()] {
			return nil, fmt.Errorf("duplicate player name %q", p.Name())
		}
		seen[p.Name()] = true
	}
	return &Engine{
		id:      id,
		players: players,
		rng:     rng,
		logger:  logger,
		bus:     NewEventBus(),
	}, nil
}

// Bus returns the event bus presentation sinks subscribe to.
func (e *Engine) Bus() EventBus { return e.bus }

// ID returns the tournament identifier.
func (e *Engine) ID() string { return e.id }

// ActivePlayers returns the players still in the tournament, in
// enrollment order.
func (e *Engine) ActivePlayers() []*Player {
	var active []*Player
	for _, p := range e.players {
		if p.Active() {
			active = append(active, p)
		}
	}
	return active
}

// Run plays rounds until at most one player remains and returns the
// tournament outcome. Active counts strictly decrease across resolved
// rounds, so the loop terminates whenever every table eventually
// resolves.
func (e *Engine) Run() (Outcome, error) {
	e.bus.Publish(NewTournamentStartEvent(e.id, e.players))
	for {
		active := e.ActivePlayers()
		if len(active) <= 1 {
			break
		}
		e.rounds++
		e.logger.Debug("starting round", "tournament", e.id, "round", e.rounds, "active", len(active))
		e.bus.Publish(NewRoundStartEvent(e.rounds, active))
		if err := e.playRound(active); err != nil {
			return Outcome{}, err
		}
	}

	outcome := Outcome{Rounds: e.rounds, Replays: e.replays}
	if remaining := e.ActivePlayers(); len(remaining) == 1 {
		outcome.Winner = remaining[0]
		e.logger.Info("tournament complete", "tournament", e.id, "winner", outcome.Winner.Name(), "rounds", e.rounds)
	} else {
		// Replay semantics make an all-tied elimination impossible, so
		// an empty active set means a broken elimination policy. Report
		// it as an outcome rather than crash.
		outcome.MutualElimination = true
		e.logger.Warn("all players eliminated simultaneously", "tournament", e.id, "rounds", e.rounds)
	}
	e.bus.Publish(NewTournamentEndEvent(e.id, outcome))
	return outcome, nil
}

// playRound runs one full round, splitting into independent groups
// when more than five players are active.
func (e *Engine) playRound(active []*Player) error {
	if len(active) <= NoSplitThreshold {
		return e.playTable(active, 0)
	}
	groups, err := Partition(active, e.rng)
	if err != nil {
		return err
	}
	e.bus.Publish(NewGroupsFormedEvent(e.rounds, groups))
	for i, group := range groups {
		// Groups resolve one after another; a draw in one group only
		// replays that group. Deactivation happens inside playTable at
		// the group boundary, never mid-comparison.
		if err := e.playTable(group, i+1); err != nil {
			return err
		}
	}
	return nil
}

// playTable runs the replay-until-resolved protocol over one table
// (the whole active set, or one group of it).
func (e *Engine) playTable(players []*Player, group int) error {
	for {
		entries, err := e.collectChoices(players)
		if err != nil {
			return err
		}
		e.bus.Publish(NewChoicesCollectedEvent(e.rounds, group, entries))

		e.bus.Publish(NewDuelsComparedEvent(e.rounds, group, Duels(entries)))

		scores, err := ScoreRound(entries)
		if err != nil {
			return err
		}
		e.bus.Publish(NewScoreTableEvent(e.rounds, group, SortScores(scores)))

		outcome, err := DetermineLosers(scores)
		if err != nil {
			return err
		}
		if outcome.Replay {
			e.replays++
			e.logger.Debug("table drawn, replaying", "tournament", e.id, "round", e.rounds, "group", group)
			e.bus.Publish(NewReplayEvent(e.rounds, group))
			continue
		}

		for _, p := range outcome.Eliminated {
			p.Eliminate()
			e.logger.Info("player eliminated", "tournament", e.id, "round", e.rounds, "player", p.Name())
		}
		e.bus.Publish(NewEliminationEvent(e.rounds, group, outcome.Eliminated, SortScores(scores)))
		return nil
	}
}

// collectChoices gathers one choice per player. Humans are prompted
// first so bot choices are computed only after all interactive input
// is in; the returned entries list bots before humans, matching the
// reveal order. All choices are collected before any scoring.
func (e *Engine) collectChoices(players []*Player) ([]Entry, error) {
	humanChoices := make(map[*Player]Choice)
	for _, p := range players {
		if p.Kind() == Human {
			c, err := e.nextChoice(p)
			if err != nil {
				return nil, err
			}
			humanChoices[p] = c
		}
	}

	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		if p.Kind() == Human {
			continue
		}
		c, err := e.nextChoice(p)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Player: p, Choice: c})
	}
	for _, p := range players {
		if c, ok := humanChoices[p]; ok {
			entries = append(entries, Entry{Player: p, Choice: c})
		}
	}
	return entries, nil
}

// nextChoice queries a player's source and records the result,
// re-querying on values outside the enumeration.
func (e *Engine) nextChoice(p *Player) (Choice, error) {
	history := p.History()
	for attempt := 0; attempt < maxChoiceRetries; attempt++ {
		c, err := p.source.NextChoice(history)
		if err != nil {
			return 0, fmt.Errorf("collecting choice from %s: %w", p.Name(), err)
		}
		if !c.Valid() {
			e.logger.Warn("source returned invalid choice, re-querying", "player", p.Name(), "choice", int(c))
			continue
		}
		p.Record(c)
		return c, nil
	}
	return 0, fmt.Errorf("source for %s kept returning invalid choices", p.Name())
}
