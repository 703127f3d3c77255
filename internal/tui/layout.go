package tui

import (
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/game"
)

// Rect is an axis-aligned region of the screen in character cells, used
// for mouse hit testing on the on-screen controls.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Fixed layout rows. The view renders exactly this shape:
//
//	0   title
//	1   score / best / moves / target
//	2
//	3   board (4 rows x 3 lines each)
//	...
//	15
//	16  control buttons
//	17
//	18  arrow pad, top row (up)
//	19  arrow pad, bottom row (left, down, right)
//	20
//	21  status line
//	22  help footer
const (
	marginX    = 2
	hudY       = 1
	boardTopY  = 3
	tileW      = 7
	tileLines  = 3
	buttonsY   = boardTopY + game.Size*tileLines + 1
	padTopY    = buttonsY + 2
	statusY    = padTopY + 3
	buttonGap  = 2
	arrowW     = 5 // rendered width of one arrow button
	arrowGap   = 1
)

// control identifies a clickable on-screen element.
type control int

const (
	ctlNone control = iota
	ctlNewGame
	ctlUndo
	ctlTarget
	ctlResetBest
	ctlUp
	ctlLeft
	ctlDown
	ctlRight
)

// buttonLabels returns the control-row labels in render order. The target
// label embeds the current target so its width (and the zones behind it)
// follows the selection.
func buttonLabels(target int) []string {
	return []string{
		"New Game",
		"Undo",
		targetLabel(target),
		"Reset Best",
	}
}

func targetLabel(target int) string {
	return "Target: " + strconv.Itoa(target)
}

// buttonZones computes the clickable regions of the control row. Each
// rendered button is its label plus one cell of padding on both sides.
func buttonZones(target int) map[control]Rect {
	labels := buttonLabels(target)
	controls := []control{ctlNewGame, ctlUndo, ctlTarget, ctlResetBest}

	zones := make(map[control]Rect, len(labels)+4)
	x := marginX
	for i, label := range labels {
		w := len([]rune(label)) + 2
		zones[controls[i]] = Rect{X: x, Y: buttonsY, W: w, H: 1}
		x += w + buttonGap
	}

	// Arrow pad: up centered over the bottom row of left/down/right.
	padX := marginX
	zones[ctlUp] = Rect{X: padX + arrowW + arrowGap, Y: padTopY, W: arrowW, H: 1}
	zones[ctlLeft] = Rect{X: padX, Y: padTopY + 1, W: arrowW, H: 1}
	zones[ctlDown] = Rect{X: padX + arrowW + arrowGap, Y: padTopY + 1, W: arrowW, H: 1}
	zones[ctlRight] = Rect{X: padX + 2*(arrowW+arrowGap), Y: padTopY + 1, W: arrowW, H: 1}

	return zones
}

// hitControl returns the control under (x, y), or ctlNone.
func hitControl(target, x, y int) control {
	for ctl, zone := range buttonZones(target) {
		if zone.Contains(x, y) {
			return ctl
		}
	}
	return ctlNone
}
