package game

// PlayerKind distinguishes interactively sourced choices from
// programmatic ones. The engine scores both identically; the kind only
// orders choice collection so humans are prompted before bot choices
// are computed.
type PlayerKind int

const (
	Human PlayerKind = iota
	Bot
)

// String returns the string representation of the player kind.
func (k PlayerKind) String() string {
	switch k {
	case Human:
		return "human"
	case Bot:
		return "bot"
	default:
		return "unknown"
	}
}

// ChoiceSource produces one choice per round for a player. history is
// the player's own past choices, oldest first; implementations must
// not retain or mutate the slice. Interactive sources may block until
// valid input arrives; programmatic sources must always terminate.
type ChoiceSource interface {
	NextChoice(history []Choice) (Choice, error)
}

// Player is a tournament participant. The active flag is mutated only
// by the engine at round boundaries and, once cleared, never reverts.
type Player struct {
	name    string
	kind    PlayerKind
	source  ChoiceSource
	history []Choice
	active  bool
}

// NewPlayer creates an active player drawing choices from source.
func NewPlayer(name string, kind PlayerKind, source ChoiceSource) *Player {
	return &Player{name: name, kind: kind, source: source, active: true}
}

// Name returns the player's tournament-unique name.
func (p *Player) Name() string { return p.name }

// Kind returns whether the player is human or bot.
func (p *Player) Kind() PlayerKind { return p.kind }

// Active reports whether the player is still in the tournament.
func (p *Player) Active() bool { return p.active }

// Eliminate removes the player from future rounds.
func (p *Player) Eliminate() { p.active = false }

// Record appends a choice to the player's history. Choices from
// voided (replayed) rounds are recorded too; history grows by one
// entry per collected choice regardless of the round outcome.
func (p *Player) Record(c Choice) { p.history = append(p.history, c) }

// History returns a copy of the player's past choices, oldest first.
func (p *Player) History() []Choice {
	out := make([]Choice, len(p.history))
	copy(out, p.history)
	return out
}
