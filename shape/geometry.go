package shape

import "fmt"

// Variant is the closed set of geometry algorithms.
type Variant int

const (
	VariantEllipse Variant = iota
	VariantRoundRect
	VariantPolygon
	VariantRhombus
	VariantLabelRect
)

func (v Variant) String() string {
	switch v {
	case VariantEllipse:
		return "ellipse"
	case VariantRoundRect:
		return "roundrect"
	case VariantPolygon:
		return "polygon"
	case VariantRhombus:
		return "rhombus"
	case VariantLabelRect:
		return "labelrect"
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Geometry is implemented by every shape variant. All methods are pure
// functions of their arguments; the lifecycle controller owns the state.
type Geometry interface {
	Variant() Variant
	LabelMode() bool

	// Resolve fills unset dimensions with defaults. Resolving twice is a no-op.
	Resolve(d *Dims)

	// Explicit reports whether any resolved dimension differs from its default.
	Explicit(d Dims) bool

	// Initial builds the template geometry and ports for resolved dims.
	Initial(d Dims) (Snapshot, Anchors)

	// Recompute returns new dims and true when the label extent no longer
	// fits d, or d and false when nothing needs to change.
	Recompute(d Dims, ext TextExtent) (Dims, bool)

	// Resize recomputes the full outline and ports from d.
	Resize(d Dims) (Snapshot, Anchors)
}

// Compensator is implemented by variants that move the shape's anchor
// position when their dimensions change. Shift returns the delta to add to
// the record position when going from prev to next.
type Compensator interface {
	Shift(prev, next Dims) Point
}

// New returns the geometry for v configured from cfg.
func New(v Variant, labelMode bool, cfg Config) Geometry {
	switch v {
	case VariantEllipse:
		return &EllipseGeometry{cfg: cfg.Ellipse, labelMode: labelMode}
	case VariantRoundRect:
		return &RoundRectGeometry{cfg: cfg.RoundRect}
	case VariantPolygon:
		return &PolygonGeometry{cfg: cfg.Polygon, labelMode: labelMode}
	case VariantRhombus:
		return &RhombusGeometry{cfg: cfg.Rhombus}
	case VariantLabelRect:
		return &LabelRectGeometry{cfg: cfg.LabelRect, labelMode: labelMode}
	}
	panic(fmt.Sprintf("shape: no geometry for %v", v))
}

// edgeAnchors are the edge midpoints of a w×h box centered on the origin.
func edgeAnchors(w, h float64) Anchors {
	var a Anchors
	a[Right] = Point{X: w / 2}
	a[Left] = Point{X: -w / 2}
	a[Top] = Point{Y: -h / 2}
	a[Bottom] = Point{Y: h / 2}
	return a
}

// centered returns a w×h rect centered on the origin, inflated by pad.
func centered(w, h, pad float64) Rect {
	return Rect{X: -w/2 - pad, Y: -h/2 - pad, W: w + 2*pad, H: h + 2*pad}
}
