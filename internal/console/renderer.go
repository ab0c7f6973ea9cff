// Package console is the interactive surface: it prompts humans for
// their choices and renders tournament events as styled terminal
// output. All game state arrives through the event bus, so the package
// never touches engine internals.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mechanicus/rpsls-arena/internal/game"
)

// Styles holds the lipgloss styles used by the renderer.
type Styles struct {
	Banner   lipgloss.Style
	Group    lipgloss.Style
	Choice   lipgloss.Style
	Win      lipgloss.Style
	Lose     lipgloss.Style
	Draw     lipgloss.Style
	Table    lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Champion lipgloss.Style
}

// DefaultStyles returns the renderer's standard color scheme.
func DefaultStyles() *Styles {
	return &Styles{
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Group: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Choice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")),
		Win: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Lose: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Draw: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Table: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Champion: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// Renderer subscribes to tournament events and writes a narrated
// account of the tournament. When interactive, it pauses for Enter
// before every round after the first.
type Renderer struct {
	out         io.Writer
	in          *bufio.Reader
	styles      *Styles
	interactive bool
}

// NewRenderer creates a renderer writing to out. in is only read when
// interactive is set; pass nil otherwise.
func NewRenderer(out io.Writer, in io.Reader, interactive bool) *Renderer {
	r := &Renderer{out: out, styles: DefaultStyles(), interactive: interactive}
	if in != nil {
		r.in = bufio.NewReader(in)
	}
	return r
}

// OnEvent renders one tournament event.
func (r *Renderer) OnEvent(event game.TournamentEvent) {
	switch e := event.(type) {
	case game.TournamentStartEvent:
		r.renderStart(e)
	case game.RoundStartEvent:
		r.renderRoundStart(e)
	case game.GroupsFormedEvent:
		r.renderGroups(e)
	case game.ChoicesCollectedEvent:
		r.renderChoices(e)
	case game.DuelsComparedEvent:
		r.renderDuels(e)
	case game.ScoreTableEvent:
		r.renderScores(e)
	case game.ReplayEvent:
		fmt.Fprintf(r.out, "%s%s\n", groupPrefix(e.Group),
			r.styles.Warning.Render("Everyone is tied. The round is void, choose again!"))
	case game.EliminationEvent:
		r.renderElimination(e)
	case game.TournamentEndEvent:
		r.renderEnd(e)
	}
}

func (r *Renderer) renderStart(e game.TournamentStartEvent) {
	fmt.Fprintf(r.out, "%s\n\n", r.styles.Banner.Render(
		fmt.Sprintf("Rock Paper Scissors Lizard Spock: %d players enter, one leaves", len(e.Players))))
	fmt.Fprintln(r.out, r.styles.Draw.Render(rulesRecap()))
}

func (r *Renderer) renderRoundStart(e game.RoundStartEvent) {
	if e.Round > 1 {
		r.pause()
	}
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Banner.Render(
		fmt.Sprintf("Round %d, %d players remain", e.Round, len(e.Active))))
}

func (r *Renderer) renderGroups(e game.GroupsFormedEvent) {
	fmt.Fprintln(r.out, "The field splits into groups:")
	for i, group := range e.Groups {
		names := make([]string, len(group))
		for j, p := range group {
			names[j] = p.Name()
		}
		fmt.Fprintf(r.out, "  %s %s\n",
			r.styles.Group.Render(fmt.Sprintf("Group %d:", i+1)),
			strings.Join(names, ", "))
	}
}

func (r *Renderer) renderChoices(e game.ChoicesCollectedEvent) {
	fmt.Fprintf(r.out, "%sAll choices are in:\n", groupPrefix(e.Group))
	for _, entry := range e.Entries {
		fmt.Fprintf(r.out, "  %s plays %s\n",
			entry.Player.Name(), r.styles.Choice.Render(entry.Choice.String()))
	}
}

func (r *Renderer) renderDuels(e game.DuelsComparedEvent) {
	for _, d := range e.Duels {
		if d.Result == game.Draw {
			fmt.Fprintf(r.out, "%s%s\n", groupPrefix(e.Group), r.styles.Draw.Render(
				fmt.Sprintf("%s and %s both chose %s, no blood spilled",
					d.A.Player.Name(), d.B.Player.Name(), d.A.Choice)))
			continue
		}
		fmt.Fprintf(r.out, "%s%s: %s beats %s\n", groupPrefix(e.Group),
			r.styles.Win.Render(d.Justification),
			d.Winner.Name(), d.Loser.Name())
	}
}

func (r *Renderer) renderScores(e game.ScoreTableEvent) {
	fmt.Fprintf(r.out, "%sStandings:\n", groupPrefix(e.Group))
	for _, s := range e.Scores {
		line := fmt.Sprintf("  %-20s %-9s %+d", s.Player.Name(), s.Choice, s.Net())
		style := r.styles.Table
		if s.Net() < 0 {
			style = r.styles.Lose
		}
		fmt.Fprintln(r.out, style.Render(line))
	}
}

func (r *Renderer) renderElimination(e game.EliminationEvent) {
	names := make([]string, len(e.Eliminated))
	for i, p := range e.Eliminated {
		names[i] = p.Name()
	}
	fmt.Fprintf(r.out, "%s%s\n", groupPrefix(e.Group),
		r.styles.Lose.Render(fmt.Sprintf("Eliminated: %s", strings.Join(names, ", "))))
}

func (r *Renderer) renderEnd(e game.TournamentEndEvent) {
	if e.MutualElimination {
		fmt.Fprintf(r.out, "\n%s\n", r.styles.Warning.Render(
			"Mutual elimination! Nobody survives, the arena stands empty."))
		return
	}
	fmt.Fprintf(r.out, "\n%s\n", r.styles.Champion.Render(
		fmt.Sprintf("%s wins the tournament after %d rounds!", e.Winner.Name(), e.Rounds)))
}

// pause waits for Enter in interactive mode and is a no-op otherwise.
func (r *Renderer) pause() {
	if !r.interactive || r.in == nil {
		return
	}
	fmt.Fprint(r.out, "\nPress Enter for the next round...")
	_, _ = r.in.ReadString('\n')
}

// groupPrefix labels output lines when the field has been split.
// Group 0 means the table was not split and needs no label.
func groupPrefix(group int) string {
	if group == 0 {
		return ""
	}
	return fmt.Sprintf("[Group %d] ", group)
}

// rulesRecap returns the win relations, one per line.
func rulesRecap() string {
	lines := []string{"How gestures settle their differences:"}
	all := game.AllChoices()
	for _, winner := range all {
		for _, loser := range all {
			if just, err := game.Justification(winner, loser); err == nil {
				lines = append(lines, "  "+just)
			}
		}
	}
	return strings.Join(lines, "\n")
}

var _ game.EventSubscriber = (*Renderer)(nil)
