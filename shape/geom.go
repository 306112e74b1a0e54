package shape

import "math"

// Point is a position in a shape's local frame or in diagram space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction is one of the four cardinal sides a connector attaches to.
type Direction int

const (
	Right Direction = iota
	Left
	Top
	Bottom
	numDirections
)

// Directions lists the cardinal directions in port order.
var Directions = [numDirections]Direction{Right, Left, Top, Bottom}

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Ladder is the arithmetic sequence min, min+step, min+2*step, ... that
// auto-sized dimensions snap to.
type Ladder struct {
	Min  float64 `yaml:"min"`
	Step float64 `yaml:"step"`
}

// Snap returns the smallest ladder value at or above required.
func (l Ladder) Snap(required float64) float64 {
	if required <= l.Min || l.Step <= 0 || math.IsNaN(required) {
		return l.Min
	}
	return l.Min + l.Step*math.Ceil((required-l.Min)/l.Step)
}

// Viewport is the canvas placement context handed to surfaces.
type Viewport struct {
	Position Point
	Scale    float64
	Cell     float64
}

// ToScreen maps a diagram-space point onto the surface.
func (v Viewport) ToScreen(p Point) Point {
	scale := v.Scale
	if scale == 0 {
		scale = 1
	}
	return Point{X: p.X*scale + v.Position.X, Y: p.Y*scale + v.Position.Y}
}
