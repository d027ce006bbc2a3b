package navigator

import (
	"github.com/sirupsen/logrus"

	"github.com/grovetools/pagenav/pkg/gesture"
	"github.com/grovetools/pagenav/pkg/rename"
)

// BeginRename puts id into edit mode. Any other open edit is committed first.
// Renames cannot start while a drag is in flight.
func (n *Navigator) BeginRename(id string) bool {
	if n.gestures.Phase() != gesture.Idle || !n.store.Contains(id) {
		return false
	}
	if prev, ok := n.editor.Begin(id); ok {
		n.logOutcome(prev)
	}
	return n.editor.IsEditing(id)
}

// SetDraft updates the draft of the open edit.
func (n *Navigator) SetDraft(text string) { n.editor.SetDraft(text) }

// SetInputFocused records whether the rename input has focus.
func (n *Navigator) SetInputFocused(focused bool) { n.editor.SetInputFocused(focused) }

// CommitRename applies the open edit (Enter).
func (n *Navigator) CommitRename() rename.Outcome {
	return n.logOutcome(n.editor.Commit())
}

// CancelRename discards the open edit (Escape).
func (n *Navigator) CancelRename() rename.Outcome {
	return n.logOutcome(n.editor.Cancel())
}

// BlurRename is the rename input losing focus, which commits.
func (n *Navigator) BlurRename() rename.Outcome {
	n.editor.SetInputFocused(false)
	return n.CommitRename()
}

// Editing returns the open edit session.
func (n *Navigator) Editing() (rename.Session, bool) { return n.editor.Session() }

// IsEditing reports whether id is being edited.
func (n *Navigator) IsEditing(id string) bool { return n.editor.IsEditing(id) }

func (n *Navigator) logOutcome(out rename.Outcome) rename.Outcome {
	if out.Result != rename.NoEdit {
		n.log.WithFields(logrus.Fields{
			"page":   out.ID,
			"result": out.Result.String(),
			"title":  out.Title,
		}).Debug("Rename finished")
	}
	return out
}

// SetSlots replaces the droppable geometry, one slot per page in list order.
func (n *Navigator) SetSlots(slots []gesture.Slot) {
	n.rowSlots = false
	n.gestures.SetSlots(slots)
}

// ensureSlots gives keyboard gestures one slot per page in list order when
// no view has supplied geometry.
func (n *Navigator) ensureSlots() {
	if n.gestures.Phase() != gesture.Idle {
		return
	}
	if len(n.gestures.Slots()) > 0 && !n.rowSlots {
		return
	}
	ps := n.store.Pages()
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	n.gestures.SetSlots(gesture.Row(ids, 1, 1))
	n.rowSlots = true
}

// Slots returns the droppable geometry.
func (n *Navigator) Slots() []gesture.Slot { return n.gestures.Slots() }

// SetThreshold changes the pointer activation distance.
func (n *Navigator) SetThreshold(px float64) { n.gestures.SetThreshold(px) }

// Phase returns the gesture phase.
func (n *Navigator) Phase() gesture.Phase { return n.gestures.Phase() }

// Dragging reports whether a drag is active.
func (n *Navigator) Dragging() bool { return n.gestures.Phase() == gesture.Dragging }

// DragState returns the active drag for overlay rendering.
func (n *Navigator) DragState() (gesture.DragState, bool) { return n.gestures.State() }

// IsDragging reports whether id is the page being dragged.
func (n *Navigator) IsDragging(id string) bool { return n.gestures.IsDragging(id) }

// PointerDown presses on id. Pressing a page other than the one being edited
// commits the edit, as the input loses focus.
func (n *Navigator) PointerDown(id string, p gesture.Point) bool {
	if n.gestures.Phase() != gesture.Idle {
		return false
	}
	if _, editing := n.editor.Session(); editing && !n.editor.IsEditing(id) {
		n.BlurRename()
	}
	return n.gestures.Pointer().Down(id, p)
}

// PointerMove moves the pointer.
func (n *Navigator) PointerMove(p gesture.Point) { n.gestures.Pointer().Move(p) }

// PointerUp releases the pointer. A release that never became a drag is a
// click on the pressed page.
func (n *Navigator) PointerUp(p gesture.Point) gesture.Result {
	res := n.gestures.Pointer().Up(p)
	if res.Kind == gesture.ResultClick {
		n.Click(res.ID)
	}
	return res
}

// KeyPickUp starts a keyboard drag on id. Without slots from SetSlots the
// pages are stepped through in list order.
func (n *Navigator) KeyPickUp(id string) bool {
	if n.editor.Active() {
		return false
	}
	n.ensureSlots()
	return n.gestures.Keyboard().PickUp(id)
}

// KeyStep moves a keyboard drag one slot in dir.
func (n *Navigator) KeyStep(dir int) { n.gestures.Keyboard().Step(dir) }

// KeyDrop drops a keyboard drag.
func (n *Navigator) KeyDrop() gesture.Result { return n.gestures.Keyboard().Drop() }

// KeyMove moves id one position in dir.
func (n *Navigator) KeyMove(id string, dir int) gesture.Result {
	if n.editor.Active() {
		return gesture.Result{}
	}
	n.ensureSlots()
	return n.gestures.Keyboard().Move(id, dir)
}

// CancelDrag abandons any gesture without mutating the collection.
func (n *Navigator) CancelDrag() gesture.Result { return n.gestures.Cancel() }

// Blur handles the whole view losing focus: drags are cancelled and an open
// edit is committed.
func (n *Navigator) Blur() {
	n.CancelDrag()
	n.BlurRename()
}

func (n *Navigator) dragHooks() gesture.Hooks {
	fields := func(st gesture.DragState) logrus.Fields {
		return logrus.Fields{
			"page":     st.DraggedID,
			"over":     st.OverID,
			"modality": st.Modality.String(),
		}
	}
	return gesture.Hooks{
		Start: func(st gesture.DragState) {
			n.log.WithFields(fields(st)).Debug("Drag started")
		},
		End: func(st gesture.DragState, reordered bool) {
			n.log.WithFields(fields(st)).WithField("reordered", reordered).Debug("Drag ended")
		},
		Cancel: func(st gesture.DragState) {
			n.log.WithFields(fields(st)).Debug("Drag cancelled")
		},
	}
}
