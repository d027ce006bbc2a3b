package gesture

import (
	"github.com/grovetools/pagenav/pkg/pages"
)

// DefaultThreshold is how far, in logical pixels, a pointer must travel from
// its press position before a drag activates.
const DefaultThreshold = 8.0

// Phase is the state of the gesture state machine.
type Phase int

const (
	Idle Phase = iota
	Armed
	Dragging
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Dragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Modality identifies which input adapter owns the current gesture.
type Modality int

const (
	Pointer Modality = iota
	Keyboard
)

func (m Modality) String() string {
	if m == Keyboard {
		return "keyboard"
	}
	return "pointer"
}

// DragState exists only while a drag is active.
type DragState struct {
	DraggedID string
	// OverID is the slot the drag is currently over, or "".
	OverID   string
	Modality Modality
	// Snapshot is the dragged page as it was when the drag activated.
	Snapshot pages.Page
	Position Point
}

// Source is what the recognizer reads snapshots from and drops into.
// *pages.Store satisfies it.
type Source interface {
	Get(id string) (pages.Page, bool)
	Reorder(movedID, targetID string) bool
}

// Hooks are optional callbacks fired on drag lifecycle transitions.
type Hooks struct {
	Start  func(DragState)
	Over   func(DragState)
	End    func(st DragState, reordered bool)
	Cancel func(DragState)
}

// ResultKind says how a gesture finished.
type ResultKind int

const (
	ResultNone ResultKind = iota
	// ResultClick is a press released before the drag threshold was exceeded.
	ResultClick
	ResultDrop
	ResultCancelled
)

// Result describes the end of a gesture.
type Result struct {
	Kind      ResultKind
	ID        string
	OverID    string
	Reordered bool
}

// Options configure a Recognizer.
type Options struct {
	// Threshold defaults to DefaultThreshold.
	Threshold float64
	// Collision defaults to ClosestCenter.
	Collision CollisionFunc
	// Suppress reports whether presses on an item must not start a gesture,
	// e.g. while its title is being edited.
	Suppress func(id string) bool
	Hooks    Hooks
}

// Recognizer is the single gesture state machine shared by the pointer and
// keyboard adapters. It is driven synchronously from the UI loop.
type Recognizer struct {
	source Source
	opts   Options
	slots  []Slot

	phase    Phase
	modality Modality
	pressID  string
	origin   Point
	drag     *DragState
}

// NewRecognizer returns an idle recognizer dropping into src.
func NewRecognizer(src Source, opts Options) *Recognizer {
	if opts.Threshold <= 0 {
		opts.Threshold = DefaultThreshold
	}
	if opts.Collision == nil {
		opts.Collision = ClosestCenter
	}
	return &Recognizer{source: src, opts: opts}
}

// SetSlots replaces the droppable slots, in list order.
func (r *Recognizer) SetSlots(slots []Slot) {
	r.slots = append(r.slots[:0:0], slots...)
}

// Slots returns the current droppable slots.
func (r *Recognizer) Slots() []Slot { return append([]Slot(nil), r.slots...) }

// SetThreshold changes the pointer activation distance for future gestures.
func (r *Recognizer) SetThreshold(px float64) {
	if px > 0 {
		r.opts.Threshold = px
	}
}

// Threshold returns the pointer activation distance.
func (r *Recognizer) Threshold() float64 { return r.opts.Threshold }

// Phase returns the current phase.
func (r *Recognizer) Phase() Phase { return r.phase }

// State returns the active drag, if any.
func (r *Recognizer) State() (DragState, bool) {
	if r.drag == nil {
		return DragState{}, false
	}
	return *r.drag, true
}

// IsDragging reports whether id is the item being dragged.
func (r *Recognizer) IsDragging(id string) bool {
	return r.drag != nil && r.drag.DraggedID == id
}

// Pointer returns the pointer adapter.
func (r *Recognizer) Pointer() PointerAdapter { return PointerAdapter{r: r} }

// Keyboard returns the keyboard adapter.
func (r *Recognizer) Keyboard() KeyboardAdapter { return KeyboardAdapter{r: r} }

// Cancel abandons the current gesture without touching the collection.
func (r *Recognizer) Cancel() Result {
	if r.phase == Idle {
		return Result{}
	}
	res := Result{Kind: ResultCancelled, ID: r.pressID}
	st, dragging := r.State()
	r.reset()
	if dragging && r.opts.Hooks.Cancel != nil {
		r.opts.Hooks.Cancel(st)
	}
	return res
}

func (r *Recognizer) arm(m Modality, id string, p Point) bool {
	if r.phase != Idle {
		return false
	}
	if _, ok := r.source.Get(id); !ok {
		return false
	}
	if r.opts.Suppress != nil && r.opts.Suppress(id) {
		return false
	}
	r.phase = Armed
	r.modality = m
	r.pressID = id
	r.origin = p
	return true
}

func (r *Recognizer) activate(p Point) {
	snapshot, _ := r.source.Get(r.pressID)
	r.phase = Dragging
	r.drag = &DragState{
		DraggedID: r.pressID,
		Modality:  r.modality,
		Snapshot:  snapshot,
		Position:  p,
		OverID:    r.opts.Collision(r.slots, p),
	}
	if r.opts.Hooks.Start != nil {
		r.opts.Hooks.Start(*r.drag)
	}
}

func (r *Recognizer) move(p Point) {
	switch r.phase {
	case Armed:
		if p.Distance(r.origin) > r.opts.Threshold {
			r.activate(p)
		}
	case Dragging:
		r.drag.Position = p
		over := r.opts.Collision(r.slots, p)
		if over != r.drag.OverID {
			r.drag.OverID = over
			if r.opts.Hooks.Over != nil {
				r.opts.Hooks.Over(*r.drag)
			}
		}
	}
}

// end finishes the gesture. The drag state is cleared before the drop is
// applied so store listeners never observe a stale drag.
func (r *Recognizer) end(at *Point) Result {
	switch r.phase {
	case Armed:
		res := Result{Kind: ResultClick, ID: r.pressID}
		r.reset()
		return res
	case Dragging:
		if at != nil {
			r.move(*at)
		}
		st := *r.drag
		r.reset()
		res := Result{Kind: ResultDrop, ID: st.DraggedID, OverID: st.OverID}
		if st.OverID != "" && st.OverID != st.DraggedID {
			res.Reordered = r.source.Reorder(st.DraggedID, st.OverID)
		}
		if r.opts.Hooks.End != nil {
			r.opts.Hooks.End(st, res.Reordered)
		}
		return res
	default:
		return Result{}
	}
}

func (r *Recognizer) reset() {
	r.phase = Idle
	r.pressID = ""
	r.origin = Point{}
	r.drag = nil
}
