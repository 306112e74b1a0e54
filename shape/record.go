package shape

// Align is the label alignment of a labeled rectangle.
type Align int

const (
	AlignUnset Align = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "unset"
}

// Dims holds the variant dimension fields of a record. A zero field is
// unset and resolves to the variant default.
//
//	ellipse, polygon:  RX, RY radii
//	rounded rectangle: W, H and corner radii RX, RY
//	rhombus:           W
//	labeled rectangle: W, H, Align
type Dims struct {
	RX    float64
	RY    float64
	W     float64
	H     float64
	Align Align
}

// Record is the mutable state of one shape instance.
type Record struct {
	Type     int
	Position *Point
	Title    string
	Styles   []string
	Dims     Dims
}
