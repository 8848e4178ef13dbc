package composer

// Point is a pointer position in canvas coordinates.
type Point struct {
	X float64
	Y float64
}

// Bounds is the size of the draft canvas.
type Bounds struct {
	W float64
	H float64
}

// ElementClass distinguishes the two draggable element kinds. Image and note
// drags are tracked in separate sessions that must never both be active.
type ElementClass int

const (
	ClassImage ElementClass = iota
	ClassNote
)

// dragSession is the ephemeral state of one active drag: the dragged element
// and the pointer's offset from its top-left, so the element does not jump on
// drag start.
type dragSession struct {
	id     int64
	offset Point
}

// Dragging reports whether any drag session is active.
func (c *Composer) Dragging() bool {
	return c.imageDrag != nil || c.noteDrag != nil
}

// StartDrag begins a drag session for the element under the pointer. At most
// one session may be active across both element classes; starting another
// while one is live is rejected.
func (c *Composer) StartDrag(class ElementClass, id int64, pointer Point) bool {
	if c.Dragging() {
		return false
	}

	switch class {
	case ClassImage:
		for _, img := range c.images {
			if img.ID == id {
				c.imageDrag = &dragSession{
					id:     id,
					offset: Point{X: pointer.X - img.X, Y: pointer.Y - img.Y},
				}
				return true
			}
		}
	case ClassNote:
		for _, n := range c.notes {
			if n.ID == id {
				c.noteDrag = &dragSession{
					id:     id,
					offset: Point{X: pointer.X - n.X, Y: pointer.Y - n.Y},
				}
				return true
			}
		}
	}
	return false
}

// UpdateDragPosition moves the dragged element to the pointer position minus
// the stored offset, clamped on both axes so it can never leave the canvas.
func (c *Composer) UpdateDragPosition(pointer Point) bool {
	switch {
	case c.imageDrag != nil:
		for i := range c.images {
			if c.images[i].ID != c.imageDrag.id {
				continue
			}
			img := &c.images[i]
			img.X = clamp(pointer.X-c.imageDrag.offset.X, c.bounds.W-img.Width)
			img.Y = clamp(pointer.Y-c.imageDrag.offset.Y, c.bounds.H-img.Height())
			return true
		}
	case c.noteDrag != nil:
		for i := range c.notes {
			if c.notes[i].ID != c.noteDrag.id {
				continue
			}
			n := &c.notes[i]
			n.X = clamp(pointer.X-c.noteDrag.offset.X, c.bounds.W-n.Width)
			n.Y = clamp(pointer.Y-c.noteDrag.offset.Y, c.bounds.H-NoteHeight)
			return true
		}
	}
	return false
}

// EndDrag clears the active session. It is safe to call with none active,
// since pointer-up fires anywhere in the window after a fast drag.
func (c *Composer) EndDrag() {
	c.imageDrag = nil
	c.noteDrag = nil
}

// clamp bounds v to [0, max]. When the element is larger than the container
// the max goes negative, and the position pins to 0.
func clamp(v, max float64) float64 {
	if max < 0 {
		max = 0
	}
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
