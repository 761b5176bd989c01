package app

// Drag turns pointer motion into pan deltas while a button is held. The last
// position is tracked even when not dragging so a new drag starts without a
// jump.
type Drag struct {
	prevX, prevY float64
	grabbing     bool
}

// Press starts a drag.
func (d *Drag) Press() { d.grabbing = true }

// Release ends a drag.
func (d *Drag) Release() { d.grabbing = false }

// Grabbing reports whether a drag is in progress.
func (d *Drag) Grabbing() bool { return d.grabbing }

// Move records the pointer position and returns the pan delta, which is zero
// unless a drag is in progress.
func (d *Drag) Move(x, y float64) (dx, dy float64) {
	if d.grabbing {
		dx, dy = x-d.prevX, y-d.prevY
	}
	d.prevX, d.prevY = x, y
	return dx, dy
}
