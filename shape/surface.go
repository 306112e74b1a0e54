package shape

// Mount describes a shape being attached to a surface.
type Mount struct {
	ID        string
	Type      int
	Variant   Variant
	LabelMode bool
	Position  Point
	Styles    []string
	Viewport  Viewport
}

// Surface is the rendering target a registry places shapes on.
type Surface interface {
	Mount(m Mount) Node
}

// Node is one rendered shape: the hit region, the visible outline, the label
// node and the four port markers.
type Node interface {
	// Place moves the node's origin in diagram space.
	Place(pos Point)
	MovePort(dir Direction, pos Point)
	// Draw swaps in a new outline, decorations, label layout and classes.
	Draw(snap Snapshot)
	SetText(lines []string)
	SetStyles(styles []string)
}

// Measurer lays out label runs and reports their extent. It returns false
// when there is nothing to measure, e.g. an empty label.
type Measurer interface {
	Measure(lines []string, layout LabelLayout) (TextExtent, bool)
}

// Panel is a settings panel owned and rendered by a UI collaborator.
type Panel interface {
	Title() string
}

// PanelFactory builds the settings panel of a shape.
type PanelFactory func(s *Shape) Panel
