package input

import "testing"

func TestDragTrackerInactiveByDefault(t *testing.T) {
	var d DragTracker

	if d.Dragging() {
		t.Error("tracker should start inactive")
	}
	if _, _, ok := d.Move(10, 10); ok {
		t.Error("Move before Begin should report no drag")
	}
}

func TestDragTrackerDeltas(t *testing.T) {
	var d DragTracker
	d.Begin(100, 200)

	dx, dy, ok := d.Move(110, 195)
	if !ok {
		t.Fatal("expected active drag")
	}
	if dx != 10 || dy != -5 {
		t.Errorf("first delta: got (%d, %d), want (10, -5)", dx, dy)
	}

	// Deltas are relative to the previous event, not the drag start.
	dx, dy, ok = d.Move(110, 195)
	if !ok || dx != 0 || dy != 0 {
		t.Errorf("repeat position: got (%d, %d, %v), want (0, 0, true)", dx, dy, ok)
	}

	dx, dy, _ = d.Move(90, 205)
	if dx != -20 || dy != 10 {
		t.Errorf("second delta: got (%d, %d), want (-20, 10)", dx, dy)
	}
}

func TestDragTrackerEnd(t *testing.T) {
	var d DragTracker
	d.Begin(0, 0)
	d.End()

	if d.Dragging() {
		t.Error("tracker should be inactive after End")
	}
	if _, _, ok := d.Move(5, 5); ok {
		t.Error("Move after End should report no drag")
	}

	// A new drag starts fresh from its Begin position.
	d.Begin(50, 50)
	dx, dy, ok := d.Move(51, 52)
	if !ok || dx != 1 || dy != 2 {
		t.Errorf("restarted drag delta: got (%d, %d, %v), want (1, 2, true)", dx, dy, ok)
	}
}
