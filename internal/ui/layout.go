package ui

import "image"

// Action is a request raised by the HUD for the game loop to carry out.
type Action int

const (
	ActionNone Action = iota
	ActionPrevious
	ActionNext
	ActionRandomize
	ActionTogglePause
)

type button struct {
	action Action
	label  string
	rect   image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 18
	buttonHeight   = 24
	buttonGap      = 6
	headerBaseline = 18
	groupSpacing   = 8
	buttonsTop     = panelPadding + headerBaseline + 14

	// PanelWidth is the width of the HUD column next to the board.
	PanelWidth = 220
	// MinPanelHeight fits the buttons and every parameter line.
	MinPanelHeight = 320
)

// layoutButtons stacks the controls in two rows across a panel of the given
// width: Prev/Next, then Run-Pause/Randomize.
func layoutButtons(width int) []button {
	half := (width - 2*panelPadding - buttonGap) / 2
	if half < 1 {
		half = 1
	}
	leftX := panelPadding
	rightX := panelPadding + half + buttonGap
	row2 := buttonsTop + buttonHeight + buttonGap
	return []button{
		{action: ActionPrevious, label: "< Prev", rect: image.Rect(leftX, buttonsTop, leftX+half, buttonsTop+buttonHeight)},
		{action: ActionNext, label: "Next >", rect: image.Rect(rightX, buttonsTop, rightX+half, buttonsTop+buttonHeight)},
		{action: ActionTogglePause, label: "Run/Pause", rect: image.Rect(leftX, row2, leftX+half, row2+buttonHeight)},
		{action: ActionRandomize, label: "Randomize", rect: image.Rect(rightX, row2, rightX+half, row2+buttonHeight)},
	}
}

// paramsTop is the first baseline below the button rows.
func paramsTop() int {
	return buttonsTop + 2*buttonHeight + buttonGap + 2*panelPadding
}

// hitTest returns the action of the button under (x, y), in panel coordinates.
func hitTest(buttons []button, x, y int) Action {
	for _, b := range buttons {
		if pointInRect(x, y, b.rect) {
			return b.action
		}
	}
	return ActionNone
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
