package shape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// Shapes are driven synchronously; nothing here may leave a goroutine behind.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeNode struct {
	mount  Mount
	calls  []string
	pos    Point
	ports  map[Direction]Point
	snap   Snapshot
	text   []string
	styles []string
}

func (n *fakeNode) Place(pos Point) {
	n.calls = append(n.calls, "place")
	n.pos = pos
}

func (n *fakeNode) MovePort(dir Direction, pos Point) {
	n.calls = append(n.calls, "port:"+dir.String())
	n.ports[dir] = pos
}

func (n *fakeNode) Draw(snap Snapshot) {
	n.calls = append(n.calls, "draw")
	n.snap = snap
}

func (n *fakeNode) SetText(lines []string) {
	n.calls = append(n.calls, "text")
	n.text = lines
}

func (n *fakeNode) SetStyles(styles []string) {
	n.calls = append(n.calls, "styles")
	n.styles = styles
}

// geometryCalls counts calls that change what is drawn.
func (n *fakeNode) geometryCalls() int {
	count := 0
	for _, c := range n.calls {
		if c == "draw" || c == "place" || strings.HasPrefix(c, "port:") {
			count++
		}
	}
	return count
}

func (n *fakeNode) reset() { n.calls = nil }

func drawCount(n *fakeNode) int {
	count := 0
	for _, c := range n.calls {
		if c == "draw" {
			count++
		}
	}
	return count
}

type fakeSurface struct {
	nodes []*fakeNode
}

func (s *fakeSurface) Mount(m Mount) Node {
	n := &fakeNode{mount: m, pos: m.Position, ports: make(map[Direction]Point)}
	s.nodes = append(s.nodes, n)
	return n
}

// textExtents measures a label by looking its text up.
type textExtents struct {
	extents map[string]TextExtent
	calls   int
}

func (m *textExtents) Measure(lines []string, _ LabelLayout) (TextExtent, bool) {
	m.calls++
	ext, ok := m.extents[strings.Join(lines, "\n")]
	return ext, ok
}

func newTestRegistry(t *testing.T, extents map[string]TextExtent, opts ...Option) (*Registry, *fakeSurface, *textExtents) {
	t.Helper()
	surface := &fakeSurface{}
	measure := &textExtents{extents: extents}
	opts = append([]Option{WithMeasurer(measure)}, opts...)
	return NewRegistry(surface, Viewport{Scale: 1, Cell: 24}, opts...), surface, measure
}

func mustCreate(t *testing.T, r *Registry, rec *Record) *Shape {
	t.Helper()
	s, err := r.Create(rec)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s
}

func at(x, y float64) *Point { return &Point{X: x, Y: y} }

func nodeOf(t *testing.T, s *Shape) *fakeNode {
	t.Helper()
	n, ok := s.Node().(*fakeNode)
	require.True(t, ok)
	return n
}
