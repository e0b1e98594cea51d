package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-whack/internal/core"
	"github.com/vovakirdan/tui-whack/internal/registry"
)

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Whack   key.Binding
	Tile    key.Binding
	Start   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Mute    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Whack, k.Tile, k.Pause, k.Restart, k.Mute, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Whack, k.Tile, k.Start},
		{k.Pause, k.Restart, k.Mute, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Whack: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "whack"),
		),
		Tile: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9/click", "whack hole"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to an input event.
// Returns the event (ActionNone if unbound) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.InputEvent, isQuit bool) {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.Press(core.ActionQuit), true
	case key.Matches(msg, k.Up):
		return core.Press(core.ActionUp), false
	case key.Matches(msg, k.Down):
		return core.Press(core.ActionDown), false
	case key.Matches(msg, k.Left):
		return core.Press(core.ActionLeft), false
	case key.Matches(msg, k.Right):
		return core.Press(core.ActionRight), false
	case key.Matches(msg, k.Whack):
		return core.Press(core.ActionWhack), false
	case key.Matches(msg, k.Tile):
		// Number keys address holes 1-9 directly
		return core.Tap(int(msg.String()[0] - '1')), false
	case key.Matches(msg, k.Start):
		return core.Press(core.ActionStart), false
	case key.Matches(msg, k.Pause):
		return core.Press(core.ActionPause), false
	case key.Matches(msg, k.Restart):
		return core.Press(core.ActionRestart), false
	}

	return core.Press(core.ActionNone), false
}

// MapMouse translates a left click into a tap on the tile under the
// pointer. Returns false for other mouse events or clicks between tiles.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg, p registry.Pointer) (core.InputEvent, bool) {
	if p == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return core.InputEvent{}, false
	}

	tile := p.TileAt(msg.X, msg.Y)
	if tile < 0 {
		return core.InputEvent{}, false
	}
	return core.Tap(tile), true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionResults
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionResults
	}

	return MenuActionNone
}
