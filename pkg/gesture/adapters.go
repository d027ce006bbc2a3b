package gesture

// PointerAdapter feeds pointer events into a Recognizer. A press arms the
// gesture; the drag only activates once the pointer has travelled further
// than the threshold, so short presses stay clicks.
type PointerAdapter struct {
	r *Recognizer
}

// Down arms a gesture on id. It is ignored while another gesture is in flight.
func (a PointerAdapter) Down(id string, p Point) bool {
	return a.r.arm(Pointer, id, p)
}

// Move updates the pointer position.
func (a PointerAdapter) Move(p Point) {
	if a.r.phase != Idle && a.r.modality == Pointer {
		a.r.move(p)
	}
}

// Up releases the pointer at p.
func (a PointerAdapter) Up(p Point) Result {
	if a.r.phase == Idle || a.r.modality != Pointer {
		return Result{}
	}
	return a.r.end(&p)
}

// KeyboardAdapter feeds focus-and-arrow input into a Recognizer. The focused
// item is picked up at its slot center and each step moves the position to
// the center of the neighbouring slot.
type KeyboardAdapter struct {
	r *Recognizer
}

// PickUp starts a drag on id immediately; keyboard gestures have no threshold.
func (a KeyboardAdapter) PickUp(id string) bool {
	i := slotIndex(a.r.slots, id)
	if i < 0 {
		return false
	}
	c := a.r.slots[i].Rect.Center()
	if !a.r.arm(Keyboard, id, c) {
		return false
	}
	a.r.activate(c)
	return true
}

// Step moves one slot left (dir < 0) or right (dir > 0) of the current over
// slot, clamped to the ends of the row.
func (a KeyboardAdapter) Step(dir int) {
	r := a.r
	if r.phase != Dragging || r.modality != Keyboard || dir == 0 || len(r.slots) == 0 {
		return
	}
	cur := slotIndex(r.slots, r.drag.OverID)
	if cur < 0 {
		cur = slotIndex(r.slots, r.drag.DraggedID)
	}
	if cur < 0 {
		return
	}
	next := cur + 1
	if dir < 0 {
		next = cur - 1
	}
	if next < 0 || next >= len(r.slots) {
		return
	}
	r.move(r.slots[next].Rect.Center())
}

// Drop ends the keyboard drag over the current slot.
func (a KeyboardAdapter) Drop() Result {
	if a.r.phase == Idle || a.r.modality != Keyboard {
		return Result{}
	}
	return a.r.end(nil)
}

// Move picks id up, steps once in dir and drops it: a one-position move.
func (a KeyboardAdapter) Move(id string, dir int) Result {
	if !a.PickUp(id) {
		return Result{}
	}
	a.Step(dir)
	return a.Drop()
}
