package core

import "testing"

func TestInputQueueOrder(t *testing.T) {
	q := NewInputQueue(4)
	q.Push(Tap(3))
	q.Push(Press(ActionUp))
	q.Push(Tap(0))

	frame := q.Drain()
	if len(frame.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(frame.Events))
	}
	if frame.Events[0] != Tap(3) || frame.Events[1] != Press(ActionUp) || frame.Events[2] != Tap(0) {
		t.Errorf("events out of order: %+v", frame.Events)
	}
	if q.Len() != 0 {
		t.Errorf("queue should be empty after Drain, has %d", q.Len())
	}
}

func TestInputQueueBounded(t *testing.T) {
	q := NewInputQueue(2)
	if !q.Push(Tap(1)) || !q.Push(Tap(2)) {
		t.Fatal("pushes within capacity should succeed")
	}
	if q.Push(Tap(3)) {
		t.Error("push beyond capacity should fail")
	}
	if q.Dropped() != 1 {
		t.Errorf("Dropped() = %d, expected 1", q.Dropped())
	}

	frame := q.Drain()
	if len(frame.Events) != 2 || frame.Events[1].Tile != 2 {
		t.Errorf("oldest events should be kept, got %+v", frame.Events)
	}
}

func TestInputQueueWrapAround(t *testing.T) {
	q := NewInputQueue(3)
	for round := range 4 {
		q.Push(Tap(round))
		q.Push(Tap(round + 10))
		frame := q.Drain()
		if len(frame.Events) != 2 || frame.Events[0].Tile != round || frame.Events[1].Tile != round+10 {
			t.Fatalf("round %d: unexpected frame %+v", round, frame.Events)
		}
	}
}

func TestInputQueueDrainEmpty(t *testing.T) {
	q := NewInputQueue(0)
	if frame := q.Drain(); len(frame.Events) != 0 {
		t.Error("draining an empty queue should give an empty frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionWhack.String() != "Whack" {
		t.Errorf("ActionWhack.String() = %q", ActionWhack.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
