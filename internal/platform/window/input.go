package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-whack/internal/core"
)

// keyActions maps keys to game actions. Several keys may share an action.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyArrowUp, core.ActionUp},
	{ebiten.KeyW, core.ActionUp},
	{ebiten.KeyArrowDown, core.ActionDown},
	{ebiten.KeyS, core.ActionDown},
	{ebiten.KeyArrowLeft, core.ActionLeft},
	{ebiten.KeyA, core.ActionLeft},
	{ebiten.KeyArrowRight, core.ActionRight},
	{ebiten.KeyD, core.ActionRight},
	{ebiten.KeySpace, core.ActionWhack},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

// digitKeys address holes 1-9 directly.
var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// pollInput pushes this frame's key presses and clicks onto q, in that
// order. rects are the tile rectangles of the last draw.
func pollInput(q *core.InputQueue, rects []core.Rect) {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			q.Push(core.Press(ka.action))
		}
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			q.Push(core.Tap(i))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if tile := tileAt(rects, x, y); tile >= 0 {
			q.Push(core.Tap(tile))
		}
	}

	// Touch screens tap like a mouse
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if tile := tileAt(rects, x, y); tile >= 0 {
			q.Push(core.Tap(tile))
		}
	}
}
