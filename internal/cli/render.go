package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/twisty/internal/render"
	"github.com/SeamusWaldron/twisty/pkg/types"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	timerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("82")).
			Padding(0, 1)
)

// stickerColors maps sticker colours to terminal colours.
var stickerColors = map[types.Color]lipgloss.Color{
	types.White:  lipgloss.Color("255"),
	types.Yellow: lipgloss.Color("226"),
	types.Green:  lipgloss.Color("34"),
	types.Blue:   lipgloss.Color("27"),
	types.Red:    lipgloss.Color("196"),
	types.Orange: lipgloss.Color("208"),
	types.Gold:   lipgloss.Color("178"),
}

var decorationStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("0")).
	Background(lipgloss.Color("250"))

// renderNet draws the net with coloured sticker blocks. Decoration tags
// are drawn as letters since they have no colour of their own.
func renderNet(n render.Net) string {
	var b strings.Builder
	n.Layout(func(c render.Cell, ok bool) {
		switch {
		case !ok:
			b.WriteString("  ")
		case !c.Set:
			b.WriteString(statusStyle.Render("· "))
		case c.Color.IsDecoration():
			b.WriteString(decorationStyle.Render(render.Letter(c.Color) + " "))
		default:
			b.WriteString(lipgloss.NewStyle().Background(stickerColors[c.Color]).Render("  "))
		}
	}, func() {
		b.WriteString("\n")
	})
	return b.String()
}

// tail returns the last n tokens, prefixed with an ellipsis when cut.
func tail(tokens []string, n int) string {
	if len(tokens) <= n {
		return strings.Join(tokens, " ")
	}
	return "... " + strings.Join(tokens[len(tokens)-n:], " ")
}
