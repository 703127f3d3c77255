package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// View renders the current state to a string for display. The output
// follows the fixed row layout described in layout.go so that the mouse
// hit zones and the rendered controls stay in agreement.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.game.Snapshot()
	margin := strings.Repeat(" ", marginX)

	var b strings.Builder

	// Row 0: title.
	b.WriteString(margin + titleStyle.Render("2048") + "\n")

	// Row 1: HUD.
	b.WriteString(margin + renderHUD(snap) + "\n")
	b.WriteString("\n")

	// Rows 3..14: the board, three lines per tile row.
	for row := range game.Size {
		tiles := make([]string, game.Size)
		for col := range game.Size {
			tiles[col] = renderTile(snap.Board[row][col])
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
		for _, line := range strings.Split(joined, "\n") {
			b.WriteString(margin + line + "\n")
		}
	}
	b.WriteString("\n")

	// Row 16: control buttons.
	b.WriteString(margin + renderButtons(snap) + "\n")
	b.WriteString("\n")

	// Rows 18-19: arrow pad.
	padIndent := strings.Repeat(" ", marginX+arrowW+arrowGap)
	gap := strings.Repeat(" ", arrowGap)
	b.WriteString(padIndent + arrowStyle.Render("↑") + "\n")
	b.WriteString(margin +
		arrowStyle.Render("←") + gap +
		arrowStyle.Render("↓") + gap +
		arrowStyle.Render("→") + "\n")
	b.WriteString("\n")

	// Row 21: status line.
	b.WriteString(margin + renderStatus(snap, m.status) + "\n")

	// Row 22: help footer.
	b.WriteString(margin + m.help.View(m.keys))

	return b.String()
}

// renderHUD formats the score line.
func renderHUD(snap game.Snapshot) string {
	pair := func(label string, value int) string {
		return hudLabelStyle.Render(label) + " " + hudValueStyle.Render(fmt.Sprintf("%d", value))
	}

	return strings.Join([]string{
		pair("Score", snap.Score),
		pair("Best", snap.Best),
		pair("Moves", snap.Moves),
		pair("Target", snap.Target),
	}, "   ")
}

// renderButtons formats the control row. Labels and padding must match
// buttonZones, which uses the label width plus one cell each side.
func renderButtons(snap game.Snapshot) string {
	labels := buttonLabels(snap.Target)

	parts := make([]string, len(labels))
	for i, label := range labels {
		style := buttonStyle
		if label == "Undo" && !snap.CanUndo {
			style = buttonDisabledStyle
		}
		parts[i] = style.Render(label)
	}

	return strings.Join(parts, strings.Repeat(" ", buttonGap))
}

// renderStatus picks what belongs on the status line: a terminal state
// banner, a transient message, or a quiet hint.
func renderStatus(snap game.Snapshot, msg string) string {
	switch snap.Status {
	case game.StatusWon:
		return wonStyle.Render(fmt.Sprintf("You reached %d! Press n for a new game or t to raise the target.", snap.Target))
	case game.StatusLost:
		return lostStyle.Render("No moves left. Press n for a new game or u to undo.")
	}

	if msg != "" {
		return warnStyle.Render(msg)
	}
	return statusStyle.Render(fmt.Sprintf("Join the tiles, reach %d!", snap.Target))
}
