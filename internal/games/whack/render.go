package whack

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-whack/internal/core"
)

const (
	hudHeight   = 3 // Status line, timer bar, separator
	minTileW    = 7
	minTileH    = 3
	tileGap     = 1
	moleFace    = "(o.o)"
	moleFaceMin = "o"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.screenW, g.screenH = dst.Width(), dst.Height()

	snap := g.Snapshot()
	g.renderHUD(dst, snap)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	rows := g.round.Board().Rows()
	g.layout = core.GridLayout(area.Inset(1), snap.Columns, rows, tileGap)
	if len(g.layout) > len(snap.Tiles) {
		g.layout = g.layout[:len(snap.Tiles)]
	}

	if len(g.layout) == 0 || g.layout[0].W < minTileW || g.layout[0].H < minTileH {
		g.layout = nil
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for i, r := range g.layout {
		g.renderTile(dst, snap, i, r)
	}

	switch {
	case snap.Phase == PhaseNotStarted:
		g.renderOverlay(dst, g.Title(), "Press Space to start")
	case snap.Phase == PhaseEnded:
		headline := "Time's up!"
		switch snap.Reason {
		case EndBoardFull:
			headline = "Overrun! The board is full"
		case EndCancelled:
			headline = "Round cancelled"
		}
		g.renderOverlay(dst, headline, fmt.Sprintf("Final score: %d  -  Press R to play again", snap.Score.Points))
	case snap.Paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line and the timer bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	secs := int(math.Ceil(snap.Remaining.Seconds()))
	hud := fmt.Sprintf(" %s  Points: %d  Hits: %d  Misses: %d  Time: %ds",
		g.Title(), snap.Score.Points, snap.Score.Hits, snap.Score.Misses, secs)
	if snap.Score.Escapes > 0 {
		hud += fmt.Sprintf("  Escaped: %d", snap.Score.Escapes)
	}
	if snap.Pending > 0 {
		hud += fmt.Sprintf("  +%d incoming!", snap.Pending)
	}
	dst.DrawText(0, 0, hud, core.ColorWhite)

	// Timer bar shrinks with the remaining time
	barW := max(0, dst.Width()-2)
	filled := int(math.Round(snap.Fraction * float64(barW)))
	color := core.ColorGreen
	switch {
	case snap.Fraction < 0.2:
		color = core.ColorRed
	case snap.Fraction < 0.5:
		color = core.ColorYellow
	}
	dst.DrawHLine(1, 1, filled, '█', color)
	dst.DrawHLine(1+filled, 1, barW-filled, '░', core.ColorGray)

	dst.DrawHLine(0, 2, dst.Width(), '─', core.ColorGray)
}

// renderTile draws one hole with its mole, marker and cursor highlight.
func (g *Game) renderTile(dst *core.Screen, snap Snapshot, i int, r core.Rect) {
	border := core.ColorGray
	if i == snap.Cursor && snap.Phase == PhaseRunning {
		border = core.ColorBrightYellow
	}
	dst.DrawBox(r, border)

	// Number key hint for the first nine holes
	if i < 9 {
		dst.SetColored(r.X+1, r.Y+1, rune('1'+i), core.ColorGray)
	}

	_, cy := r.Center()
	inner := r.Inset(1)

	// A mole that came back up hides the marker of the previous whack
	if snap.Tiles[i].Occupied {
		face := moleFace
		if inner.W < len(moleFace) {
			face = moleFaceMin
		}
		dst.DrawTextIn(inner, cy, face, core.ColorBrown)
		return
	}

	if outcome, ok := snap.Marks[i]; ok {
		if outcome == OutcomeHit {
			dst.DrawTextIn(inner, cy, "WHACK!", core.ColorBrightYellow)
		} else {
			dst.DrawTextIn(inner, cy, "miss", core.ColorRed)
		}
		return
	}

	// Empty hole
	dst.DrawTextIn(inner, inner.Bottom()-1, "___", core.ColorGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len(line1), len(line2))
	boxW := min(maxLen+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			isTopOrBottom := y == box.Y || y == box.Bottom()-1
			isLeftOrRight := x == box.X || x == box.Right()-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.SetColored(x, y, '+', core.ColorCyan)
			case isTopOrBottom:
				dst.SetColored(x, y, '-', core.ColorCyan)
			case isLeftOrRight:
				dst.SetColored(x, y, '|', core.ColorCyan)
			}
		}
	}

	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
