package input

// DragTracker owns the transient pointer drag state between mouse events.
// It turns absolute motion positions into per-event deltas while a button
// is held.
type DragTracker struct {
	dragging bool
	lastX    int
	lastY    int
}

// Begin starts a drag at the given pointer position.
func (d *DragTracker) Begin(x, y int) {
	d.dragging = true
	d.lastX = x
	d.lastY = y
}

// End stops the current drag.
func (d *DragTracker) End() {
	d.dragging = false
}

// Dragging reports whether a drag is active.
func (d *DragTracker) Dragging() bool {
	return d.dragging
}

// Move returns the pointer delta since the previous position and advances
// the tracked position. ok is false when no drag is active.
func (d *DragTracker) Move(x, y int) (dx, dy int, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	dx = x - d.lastX
	dy = y - d.lastY
	d.lastX = x
	d.lastY = y
	return dx, dy, true
}
