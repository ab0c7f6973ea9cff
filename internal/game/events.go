package game

import "time"

// EventType identifies a tournament event with type safety.
type EventType string

// EventType constants for tournament domain events.
const (
	EventTypeTournamentStart  EventType = "tournament_start"
	EventTypeRoundStart       EventType = "round_start"
	EventTypeGroupsFormed     EventType = "groups_formed"
	EventTypeChoicesCollected EventType = "choices_collected"
	EventTypeDuelsCompared    EventType = "duels_compared"
	EventTypeScoreTable       EventType = "score_table"
	EventTypeReplay           EventType = "replay"
	EventTypeElimination      EventType = "elimination"
	EventTypeTournamentEnd    EventType = "tournament_end"
)

// String returns the string representation of the event type.
func (et EventType) String() string { return string(et) }

// TournamentEvent is any event published during a tournament.
type TournamentEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// TournamentStartEvent is published once before the first round.
type TournamentStartEvent struct {
	TournamentID string
	Players      []*Player
	timestamp    time.Time
}

func (e TournamentStartEvent) EventType() EventType { return EventTypeTournamentStart }
func (e TournamentStartEvent) Timestamp() time.Time { return e.timestamp }

// NewTournamentStartEvent creates a new tournament start event.
func NewTournamentStartEvent(tournamentID string, players []*Player) TournamentStartEvent {
	return TournamentStartEvent{TournamentID: tournamentID, Players: players, timestamp: time.Now()}
}

// RoundStartEvent is published at the top of each round, before any
// grouping or choice collection.
type RoundStartEvent struct {
	Round     int
	Active    []*Player
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// NewRoundStartEvent creates a new round start event.
func NewRoundStartEvent(round int, active []*Player) RoundStartEvent {
	return RoundStartEvent{Round: round, Active: active, timestamp: time.Now()}
}

// GroupsFormedEvent is published when the active set is split into
// groups for the round.
type GroupsFormedEvent struct {
	Round     int
	Groups    [][]*Player
	timestamp time.Time
}

func (e GroupsFormedEvent) EventType() EventType { return EventTypeGroupsFormed }
func (e GroupsFormedEvent) Timestamp() time.Time { return e.timestamp }

// NewGroupsFormedEvent creates a new groups formed event.
func NewGroupsFormedEvent(round int, groups [][]*Player) GroupsFormedEvent {
	return GroupsFormedEvent{Round: round, Groups: groups, timestamp: time.Now()}
}

// ChoicesCollectedEvent is published once every choice for a table is
// in, before any comparison. Group is 1-based and zero when the table
// was not split.
type ChoicesCollectedEvent struct {
	Round     int
	Group     int
	Entries   []Entry
	timestamp time.Time
}

func (e ChoicesCollectedEvent) EventType() EventType { return EventTypeChoicesCollected }
func (e ChoicesCollectedEvent) Timestamp() time.Time { return e.timestamp }

// NewChoicesCollectedEvent creates a new choices collected event.
func NewChoicesCollectedEvent(round, group int, entries []Entry) ChoicesCollectedEvent {
	return ChoicesCollectedEvent{Round: round, Group: group, Entries: entries, timestamp: time.Now()}
}

// DuelsComparedEvent carries every pairwise comparison of a table's
// entries, with justification text for the decisive ones.
type DuelsComparedEvent struct {
	Round     int
	Group     int
	Duels     []Duel
	timestamp time.Time
}

func (e DuelsComparedEvent) EventType() EventType { return EventTypeDuelsCompared }
func (e DuelsComparedEvent) Timestamp() time.Time { return e.timestamp }

// NewDuelsComparedEvent creates a new duels compared event.
func NewDuelsComparedEvent(round, group int, duels []Duel) DuelsComparedEvent {
	return DuelsComparedEvent{Round: round, Group: group, Duels: duels, timestamp: time.Now()}
}

// ScoreTableEvent carries a table's scores, sorted best first.
type ScoreTableEvent struct {
	Round     int
	Group     int
	Scores    []Score
	timestamp time.Time
}

func (e ScoreTableEvent) EventType() EventType { return EventTypeScoreTable }
func (e ScoreTableEvent) Timestamp() time.Time { return e.timestamp }

// NewScoreTableEvent creates a new score table event.
func NewScoreTableEvent(round, group int, scores []Score) ScoreTableEvent {
	return ScoreTableEvent{Round: round, Group: group, Scores: scores, timestamp: time.Now()}
}

// ReplayEvent is published when a table's balances all tie and fresh
// choices must be collected.
type ReplayEvent struct {
	Round     int
	Group     int
	timestamp time.Time
}

func (e ReplayEvent) EventType() EventType { return EventTypeReplay }
func (e ReplayEvent) Timestamp() time.Time { return e.timestamp }

// NewReplayEvent creates a new replay event.
func NewReplayEvent(round, group int) ReplayEvent {
	return ReplayEvent{Round: round, Group: group, timestamp: time.Now()}
}

// EliminationEvent is published when a table resolves. Scores are the
// final sorted standings of the deciding attempt.
type EliminationEvent struct {
	Round      int
	Group      int
	Eliminated []*Player
	Scores     []Score
	timestamp  time.Time
}

func (e EliminationEvent) EventType() EventType { return EventTypeElimination }
func (e EliminationEvent) Timestamp() time.Time { return e.timestamp }

// NewEliminationEvent creates a new elimination event.
func NewEliminationEvent(round, group int, eliminated []*Player, scores []Score) EliminationEvent {
	return EliminationEvent{Round: round, Group: group, Eliminated: eliminated, Scores: scores, timestamp: time.Now()}
}

// TournamentEndEvent is published once the active set drops to one
// player (Winner set) or, on a policy bug, to zero (MutualElimination
// set and Winner nil).
type TournamentEndEvent struct {
	TournamentID      string
	Winner            *Player
	Rounds            int
	Replays           int
	MutualElimination bool
	timestamp         time.Time
}

func (e TournamentEndEvent) EventType() EventType { return EventTypeTournamentEnd }
func (e TournamentEndEvent) Timestamp() time.Time { return e.timestamp }

// NewTournamentEndEvent creates a new tournament end event.
func NewTournamentEndEvent(tournamentID string, result Outcome) TournamentEndEvent {
	return TournamentEndEvent{
		TournamentID:      tournamentID,
		Winner:            result.Winner,
		Rounds:            result.Rounds,
		Replays:           result.Replays,
		MutualElimination: result.MutualElimination,
		timestamp:         time.Now(),
	}
}

// EventSubscriber receives tournament events.
type EventSubscriber interface {
	OnEvent(event TournamentEvent)
}

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event TournamentEvent)
}

// SimpleEventBus is a basic in-memory event bus implementation.
// Delivery is synchronous, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus.
func NewEventBus() EventBus {
	return &SimpleEventBus{subscribers: make([]EventSubscriber, 0)}
}

// Subscribe adds a subscriber to receive events.
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers.
func (bus *SimpleEventBus) Publish(event TournamentEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
