// Package svgsurface retains mounted shapes and writes them out as an SVG
// document.
package svgsurface

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"dgrm/render"
	"dgrm/shape"
	"dgrm/textlayout"
)

// PortRadius is the radius of the connector port markers.
const PortRadius = 3

// Surface is a shape.Surface that keeps every mounted node in mount order.
type Surface struct {
	text  *textlayout.Measurer
	nodes []*Node
	ports bool
}

// Option configures a Surface.
type Option func(*Surface)

// WithPorts draws the port markers.
func WithPorts() Option {
	return func(s *Surface) { s.ports = true }
}

// New returns an empty surface laying out labels with text.
func New(text *textlayout.Measurer, opts ...Option) *Surface {
	s := &Surface{text: text}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount implements shape.Surface.
func (s *Surface) Mount(m shape.Mount) shape.Node {
	n := &Node{
		mount:  m,
		pos:    m.Position,
		styles: append([]string(nil), m.Styles...),
	}
	s.nodes = append(s.nodes, n)
	return n
}

// Nodes returns the mounted nodes.
func (s *Surface) Nodes() []*Node { return s.nodes }

// Reset drops every mounted node.
func (s *Surface) Reset() { s.nodes = nil }

// Render writes a width×height SVG document of every node.
func (s *Surface) Render(w io.Writer, width, height int) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height)
	canvas.Desc("dgrm shapes")
	for _, n := range s.nodes {
		s.renderNode(canvas, n)
	}
	canvas.End()
	return ew.err
}

func (s *Surface) renderNode(canvas *svg.SVG, n *Node) {
	vp := n.mount.Viewport
	scale := vp.Scale
	if scale == 0 {
		scale = 1
	}
	at := vp.ToScreen(n.pos)

	classes := append([]string{"shape", n.mount.Variant.String()}, n.snap.Classes...)
	classes = append(classes, n.styles...)
	canvas.Group(
		fmt.Sprintf(`id="%s"`, n.mount.ID),
		fmt.Sprintf(`class="%s"`, strings.Join(classes, " ")),
		fmt.Sprintf(`data-type="%d"`, n.mount.Type),
		fmt.Sprintf(`transform="translate(%g,%g) scale(%g)"`, at.X, at.Y, scale),
	)

	style := render.StyleFor(n.mount.Variant, n.mount.LabelMode)
	for _, l := range n.snap.Layers {
		fill, stroke := style.LayerColors(l.Key)
		if l.Key == shape.LayerOuter {
			// the hit region takes pointer events even when unpainted
			fill = "transparent"
		}
		if l.Stroke == 0 {
			stroke = "none"
		}
		css := fmt.Sprintf("fill:%s;stroke:%s;stroke-width:%g;stroke-linejoin:round", fill, stroke, l.Stroke)
		drawOutline(canvas, l.Outline, fmt.Sprintf(`data-key="%s"`, l.Key), css)
	}
	for _, seg := range n.snap.Decorations {
		canvas.Line(round(seg.From.X), round(seg.From.Y), round(seg.To.X), round(seg.To.Y),
			fmt.Sprintf("stroke:%s;stroke-width:1", style.Divider))
	}
	s.renderLabel(canvas, n, style.Text)

	if s.ports {
		for _, d := range shape.Directions {
			p := n.ports[d]
			canvas.Circle(round(p.X), round(p.Y), PortRadius,
				`class="port"`, fmt.Sprintf(`data-dir="%s"`, d), "fill:#fff;stroke:#000")
		}
	}
	canvas.Gend()
}

func (s *Surface) renderLabel(canvas *svg.SVG, n *Node, color string) {
	if len(n.lines) == 0 || s.text == nil {
		return
	}
	layout := s.text.Layout(n.lines, n.snap.Label)
	if layout.Rotate != 0 {
		canvas.Gtransform(fmt.Sprintf("rotate(%g)", layout.Rotate))
	}
	style := fmt.Sprintf("font-family:Go Mono,monospace;font-size:%gpx;fill:%s;white-space:pre", layout.FontSize, color)
	for _, r := range layout.Runs {
		if r.Text == "" {
			continue
		}
		canvas.Text(round(r.X), round(r.Y), r.Text, style)
	}
	if layout.Rotate != 0 {
		canvas.Gend()
	}
}

func drawOutline(canvas *svg.SVG, o shape.Outline, attrs ...string) {
	switch o := o.(type) {
	case shape.Ellipse:
		canvas.Ellipse(0, 0, round(o.RX), round(o.RY), attrs...)
	case shape.Rect:
		if o.RX > 0 || o.RY > 0 {
			canvas.Roundrect(round(o.X), round(o.Y), round(o.W), round(o.H), round(o.RX), round(o.RY), attrs...)
			return
		}
		canvas.Rect(round(o.X), round(o.Y), round(o.W), round(o.H), attrs...)
	case shape.Path:
		canvas.Path(pathData(o), attrs...)
	}
}

// pathData keeps fractional coordinates, which the integer element helpers
// would round away.
func pathData(p shape.Path) string {
	var b strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		fmt.Fprintf(&b, "%g %g", pt.X, pt.Y)
	}
	b.WriteString(" Z")
	return b.String()
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter records the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// Node is a retained shape on the surface.
type Node struct {
	mount  shape.Mount
	pos    shape.Point
	ports  shape.Anchors
	snap   shape.Snapshot
	lines  []string
	styles []string
}

func (n *Node) Place(pos shape.Point) { n.pos = pos }

func (n *Node) MovePort(dir shape.Direction, pos shape.Point) { n.ports[dir] = pos }

func (n *Node) Draw(snap shape.Snapshot) { n.snap = snap }

func (n *Node) SetText(lines []string) { n.lines = append([]string(nil), lines...) }

func (n *Node) SetStyles(styles []string) { n.styles = append([]string(nil), styles...) }

// Position returns the node origin in diagram space.
func (n *Node) Position() shape.Point { return n.pos }

// Snapshot returns the last drawn geometry.
func (n *Node) Snapshot() shape.Snapshot { return n.snap }
