package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionWhack          // Space - whack the tile under the cursor, or start
	ActionTap            // Number key or mouse click on a specific tile
	ActionStart          // Enter - start a round
	ActionRestart        // R key - reset after the round ended
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionWhack:
		return "Whack"
	case ActionTap:
		return "Tap"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is one discrete input. Tile is only meaningful for ActionTap.
type InputEvent struct {
	Action Action
	Tile   int
}

// Tap returns an input event targeting a tile directly.
func Tap(tile int) InputEvent {
	return InputEvent{Action: ActionTap, Tile: tile}
}

// Press returns an input event for an action that has no tile.
func Press(a Action) InputEvent {
	return InputEvent{Action: a, Tile: -1}
}

// InputFrame is the ordered list of inputs consumed by one simulation tick.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an input frame from the given events.
func NewInputFrame(events ...InputEvent) InputFrame {
	return InputFrame{Events: events}
}

// DefaultQueueSize bounds the number of inputs buffered between two ticks.
const DefaultQueueSize = 32

// InputQueue is a bounded FIFO of input events filled by input callbacks
// and drained once per tick. When full, new events are dropped.
type InputQueue struct {
	buf     []InputEvent
	head    int
	size    int
	dropped int
}

// NewInputQueue creates a queue holding at most capacity events.
func NewInputQueue(capacity int) *InputQueue {
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}
	return &InputQueue{buf: make([]InputEvent, capacity)}
}

// Push appends an event. Returns false if the queue was full.
func (q *InputQueue) Push(ev InputEvent) bool {
	if q.size == len(q.buf) {
		q.dropped++
		return false
	}
	q.buf[(q.head+q.size)%len(q.buf)] = ev
	q.size++
	return true
}

// Len returns the number of buffered events.
func (q *InputQueue) Len() int {
	return q.size
}

// Dropped returns how many events were rejected because the queue was full.
func (q *InputQueue) Dropped() int {
	return q.dropped
}

// Drain removes all buffered events and returns them as a frame,
// oldest first.
func (q *InputQueue) Drain() InputFrame {
	if q.size == 0 {
		return InputFrame{}
	}
	events := make([]InputEvent, q.size)
	for i := range q.size {
		events[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.head = 0
	q.size = 0
	return InputFrame{Events: events}
}
