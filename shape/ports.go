package shape

// Anchors are port positions indexed by Direction.
type Anchors [numDirections]Point

// Port is a named anchor on a shape's boundary.
type Port struct {
	Dir      Direction
	Position Point
}

// PortSet is the live connector map of a shape. The pointer returned by
// Shape.Ports stays valid for the lifetime of the shape and always reflects
// the last redraw; link-drawing code reads it but never writes it.
type PortSet struct {
	ports [numDirections]Port
}

func newPortSet() *PortSet {
	ps := &PortSet{}
	for _, d := range Directions {
		ps.ports[d].Dir = d
	}
	return ps
}

// Get returns the port on side d.
func (ps *PortSet) Get(d Direction) Port {
	return ps.ports[d]
}

// All returns a copy of every port in Directions order.
func (ps *PortSet) All() []Port {
	out := make([]Port, 0, numDirections)
	out = append(out, ps.ports[:]...)
	return out
}

// Anchors returns the current positions indexed by direction.
func (ps *PortSet) Anchors() Anchors {
	var a Anchors
	for _, d := range Directions {
		a[d] = ps.ports[d].Position
	}
	return a
}

func (ps *PortSet) set(d Direction, p Point) {
	ps.ports[d].Position = p
}
