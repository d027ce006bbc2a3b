// Package gesture turns pointer and keyboard input into drag gestures over an
// ordered row of slots and resolves which slot a drag is over.
package gesture

import "math"

// Point is a position in logical pixels.
type Point struct {
	X, Y float64
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the geometric center of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Slot is a droppable area belonging to one item.
type Slot struct {
	ID   string
	Rect Rect
}

// Row lays ids out as equal slots side by side, in order.
func Row(ids []string, w, h float64) []Slot {
	slots := make([]Slot, len(ids))
	for i, id := range ids {
		slots[i] = Slot{ID: id, Rect: Rect{X: float64(i) * w, W: w, H: h}}
	}
	return slots
}

// CollisionFunc picks the slot a drag positioned at p is over. It returns
// the slot id, or "" when nothing qualifies.
type CollisionFunc func(slots []Slot, p Point) string

// ClosestCenter picks the slot whose center is nearest to p. Ties go to the
// slot that comes first in list order.
func ClosestCenter(slots []Slot, p Point) string {
	best := ""
	bestDist := math.Inf(1)
	for _, s := range slots {
		if d := s.Rect.Center().Distance(p); d < bestDist {
			best, bestDist = s.ID, d
		}
	}
	return best
}

func slotIndex(slots []Slot, id string) int {
	for i, s := range slots {
		if s.ID == id {
			return i
		}
	}
	return -1
}
