package render

import (
	"math"

	"dgrm/shape"
)

// Bounds returns the axis-aligned box of o in the shape's local frame.
func Bounds(o shape.Outline) (lo, hi shape.Point) {
	switch o := o.(type) {
	case shape.Ellipse:
		return shape.Point{X: -o.RX, Y: -o.RY}, shape.Point{X: o.RX, Y: o.RY}
	case shape.Rect:
		return shape.Point{X: o.X, Y: o.Y}, shape.Point{X: o.X + o.W, Y: o.Y + o.H}
	case shape.Path:
		if len(o.Points) == 0 {
			return
		}
		lo, hi = o.Points[0], o.Points[0]
		for _, p := range o.Points[1:] {
			lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
			hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
		}
	}
	return lo, hi
}

// SnapshotBounds is the union of every layer's bounds.
func SnapshotBounds(snap shape.Snapshot) (lo, hi shape.Point, ok bool) {
	for _, l := range snap.Layers {
		if l.Outline == nil {
			continue
		}
		// strokes straddle the outline
		pad := l.Stroke / 2
		a, b := Bounds(l.Outline)
		a = a.Add(shape.Point{X: -pad, Y: -pad})
		b = b.Add(shape.Point{X: pad, Y: pad})
		if !ok {
			lo, hi, ok = a, b, true
			continue
		}
		lo.X, lo.Y = math.Min(lo.X, a.X), math.Min(lo.Y, a.Y)
		hi.X, hi.Y = math.Max(hi.X, b.X), math.Max(hi.Y, b.Y)
	}
	return lo, hi, ok
}
