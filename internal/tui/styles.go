package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Tile palette. Hex values follow the classic 2048 color scheme; terminals
// without true color get the nearest ANSI approximation from lipgloss.
var tilePalette = map[int]lipgloss.Style{
	2:    tileStyle("#eee4da", "#776e65"),
	4:    tileStyle("#ede0c8", "#776e65"),
	8:    tileStyle("#edc850", "#f9f6f2"),
	16:   tileStyle("#edc53f", "#f9f6f2"),
	32:   tileStyle("#f67c5f", "#f9f6f2"),
	64:   tileStyle("#f65e3b", "#f9f6f2"),
	128:  tileStyle("#edcf72", "#f9f6f2"),
	256:  tileStyle("#edcc61", "#f9f6f2"),
	512:  tileStyle("#f2b179", "#776e65"),
	1024: tileStyle("#f59563", "#f9f6f2"),
	2048: tileStyle("#edc22e", "#f9f6f2"),
	4096: tileStyle("#eecb2f", "#f9f6f2"),
}

var (
	emptyTileStyle = tileStyle("#cdc1b4", "#cdc1b4")

	// Tiles above 4096 share one dark style.
	bigTileStyle = tileStyle("#3c3a32", "#f9f6f2")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#edc22e"))

	hudLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	hudValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	buttonStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("238")).
			Foreground(lipgloss.Color("252"))

	buttonDisabledStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(lipgloss.Color("236")).
				Foreground(lipgloss.Color("243"))

	// Arrow buttons are fixed-width so the rendered pad lines up with
	// the mouse hit zones.
	arrowStyle = lipgloss.NewStyle().
			Width(arrowW).
			Align(lipgloss.Center).
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("255"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	wonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	lostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))
)

// tileStyle builds the shared tile cell style with the given colors.
func tileStyle(bg, fg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(tileW).
		Padding(1, 0).
		Align(lipgloss.Center).
		Bold(true).
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color(fg))
}

// renderTile renders a single board cell as a colored block.
func renderTile(value int) string {
	if value == 0 {
		return emptyTileStyle.Render("·")
	}

	style, ok := tilePalette[value]
	if !ok {
		style = bigTileStyle
	}
	return style.Render(strconv.Itoa(value))
}
