package shape

import "math"

// Outline is one closed figure of a snapshot: Ellipse, Rect or Path.
type Outline interface {
	// Contains reports whether p lies inside or on the figure.
	Contains(p Point) bool
	isOutline()
}

// Ellipse is centered on the local origin.
type Ellipse struct {
	RX, RY float64
}

// Rect is an axis-aligned rectangle with optional rounded corners.
type Rect struct {
	X, Y, W, H float64
	RX, RY     float64
}

// Path is a closed polygon through Points.
type Path struct {
	Points []Point
}

func (Ellipse) isOutline() {}
func (Rect) isOutline()    {}
func (Path) isOutline()    {}

func (e Ellipse) Contains(p Point) bool {
	if e.RX <= 0 || e.RY <= 0 {
		return false
	}
	nx, ny := p.X/e.RX, p.Y/e.RY
	return nx*nx+ny*ny <= 1+1e-9
}

func (r Rect) Contains(p Point) bool {
	if p.X < r.X || p.X > r.X+r.W || p.Y < r.Y || p.Y > r.Y+r.H {
		return false
	}
	if r.RX <= 0 || r.RY <= 0 {
		return true
	}
	// corner arcs
	cx := math.Min(math.Max(p.X, r.X+r.RX), r.X+r.W-r.RX)
	cy := math.Min(math.Max(p.Y, r.Y+r.RY), r.Y+r.H-r.RY)
	return Ellipse{RX: r.RX, RY: r.RY}.Contains(Point{X: p.X - cx, Y: p.Y - cy})
}

func (pa Path) Contains(p Point) bool {
	n := len(pa.Points)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pa.Points[i], pa.Points[j]
		if onSegment(a, b, p) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

func onSegment(a, b, p Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) > 1e-9 {
		return false
	}
	return p.X >= math.Min(a.X, b.X)-1e-9 && p.X <= math.Max(a.X, b.X)+1e-9 &&
		p.Y >= math.Min(a.Y, b.Y)-1e-9 && p.Y <= math.Max(a.Y, b.Y)+1e-9
}

// Layer keys, in paint order.
const (
	LayerOuter  = "outer"
	LayerBorder = "border"
	LayerMain   = "main"
)

// Layer is a keyed outline of a shape. The outer layer is the invisible hit
// region.
type Layer struct {
	Key     string
	Outline Outline
	Stroke  float64
}

// Segment is a straight decoration line such as a divider.
type Segment struct {
	From, To Point
}

// Anchor is the horizontal anchoring of label runs.
type Anchor int

const (
	AnchorMiddle Anchor = iota
	AnchorStart
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	}
	return "middle"
}

// LabelLayout places the label node in the local frame. Y is the baseline
// of the first run; Rotate is in degrees about the local origin.
type LabelLayout struct {
	X, Y     float64
	Anchor   Anchor
	FontSize float64
	Rotate   float64
}

// Snapshot is the renderable description of a shape's outline at one instant.
// It is recomputed wholesale on every resize.
type Snapshot struct {
	Layers      []Layer
	Decorations []Segment
	Label       LabelLayout
	Classes     []string
}

// Layer returns the layer with the given key.
func (s Snapshot) Layer(key string) (Layer, bool) {
	for _, l := range s.Layers {
		if l.Key == key {
			return l, true
		}
	}
	return Layer{}, false
}

// Main returns the visible outline.
func (s Snapshot) Main() Outline {
	l, _ := s.Layer(LayerMain)
	return l.Outline
}

// TextExtent is what a Measurer reports for a rendered label: the farthest
// absolute per-axis offset of any run from the local origin, and the size of
// the runs' bounding box.
type TextExtent struct {
	Farthest      Point
	Width, Height float64
}
