// Package raster draws mounted shapes into an image with gg.
package raster

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"

	"dgrm/render"
	"dgrm/shape"
	"dgrm/textlayout"
)

// ErrEmpty is returned when exporting a surface with nothing on it.
var ErrEmpty = errors.New("nothing to export")

const (
	defaultPadding = 24
	portRadius     = 3
)

// Surface is a shape.Surface that rasterizes its nodes on demand.
type Surface struct {
	text    *textlayout.Measurer
	nodes   []*Node
	padding float64
	ports   bool
}

// Option configures a Surface.
type Option func(*Surface)

// WithPadding sets the blank margin around exported images.
func WithPadding(p float64) Option {
	return func(s *Surface) { s.padding = p }
}

// WithPorts draws the port markers.
func WithPorts() Option {
	return func(s *Surface) { s.ports = true }
}

// New returns an empty surface drawing labels with text.
func New(text *textlayout.Measurer, opts ...Option) *Surface {
	s := &Surface{text: text, padding: defaultPadding}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount implements shape.Surface.
func (s *Surface) Mount(m shape.Mount) shape.Node {
	n := &Node{mount: m, pos: m.Position}
	s.nodes = append(s.nodes, n)
	return n
}

// Reset drops every mounted node.
func (s *Surface) Reset() { s.nodes = nil }

// Bounds returns the screen-space box of every node, padding excluded.
func (s *Surface) Bounds() (lo, hi shape.Point, ok bool) {
	for _, n := range s.nodes {
		a, b, found := render.SnapshotBounds(n.snap)
		if !found {
			continue
		}
		vp := n.mount.Viewport
		a, b = vp.ToScreen(n.pos.Add(a)), vp.ToScreen(n.pos.Add(b))
		if !ok {
			lo, hi, ok = a, b, true
			continue
		}
		lo.X, lo.Y = math.Min(lo.X, a.X), math.Min(lo.Y, a.Y)
		hi.X, hi.Y = math.Max(hi.X, b.X), math.Max(hi.Y, b.Y)
	}
	return lo, hi, ok
}

// Image draws every node into an image cropped to their bounds.
func (s *Surface) Image() (image.Image, error) {
	dc, err := s.context()
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// SavePNG writes the cropped image to path.
func (s *Surface) SavePNG(path string) error {
	dc, err := s.context()
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// EncodePNG writes the cropped image to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	dc, err := s.context()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func (s *Surface) context() (*gg.Context, error) {
	lo, hi, ok := s.Bounds()
	if !ok {
		return nil, ErrEmpty
	}
	origin := shape.Point{X: lo.X - s.padding, Y: lo.Y - s.padding}
	width := int(math.Ceil(hi.X - lo.X + 2*s.padding))
	height := int(math.Ceil(hi.Y - lo.Y + 2*s.padding))

	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	dc.Translate(-origin.X, -origin.Y)
	for _, n := range s.nodes {
		s.drawNode(dc, n)
	}
	return dc, nil
}

func (s *Surface) drawNode(dc *gg.Context, n *Node) {
	vp := n.mount.Viewport
	scale := vp.Scale
	if scale == 0 {
		scale = 1
	}
	at := vp.ToScreen(n.pos)
	style := render.StyleFor(n.mount.Variant, n.mount.LabelMode)

	dc.Push()
	defer dc.Pop()
	dc.Translate(at.X, at.Y)
	dc.Scale(scale, scale)

	for _, l := range n.snap.Layers {
		fill, stroke := style.LayerColors(l.Key)
		tracePath(dc, l.Outline)
		if fill != "none" {
			dc.SetHexColor(fill)
			dc.FillPreserve()
		}
		if stroke != "none" && l.Stroke > 0 {
			dc.SetHexColor(stroke)
			dc.SetLineWidth(l.Stroke)
			dc.SetLineJoin(gg.LineJoinRound)
			dc.StrokePreserve()
		}
		dc.ClearPath()
	}

	if style.Divider != "" {
		dc.SetHexColor(style.Divider)
		dc.SetLineWidth(1)
		for _, seg := range n.snap.Decorations {
			dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
			dc.Stroke()
		}
	}

	s.drawLabel(dc, n, style.Text)

	if s.ports {
		for _, d := range shape.Directions {
			p := n.ports[d]
			dc.DrawCircle(p.X, p.Y, portRadius)
			dc.SetHexColor("#ffffff")
			dc.FillPreserve()
			dc.SetHexColor("#000000")
			dc.SetLineWidth(1)
			dc.Stroke()
		}
	}
}

func (s *Surface) drawLabel(dc *gg.Context, n *Node, color string) {
	if len(n.lines) == 0 || s.text == nil {
		return
	}
	layout := s.text.Layout(n.lines, n.snap.Label)
	dc.Push()
	defer dc.Pop()
	if layout.Rotate != 0 {
		dc.Rotate(gg.Radians(layout.Rotate))
	}
	dc.SetFontFace(s.text.Face(layout.FontSize))
	dc.SetHexColor(color)
	for _, r := range layout.Runs {
		dc.DrawString(r.Text, r.X, r.Y)
	}
}

func tracePath(dc *gg.Context, o shape.Outline) {
	switch o := o.(type) {
	case shape.Ellipse:
		dc.DrawEllipse(0, 0, o.RX, o.RY)
	case shape.Rect:
		// gg rounds corners with a single radius
		if r := math.Min(o.RX, o.RY); r > 0 {
			dc.DrawRoundedRectangle(o.X, o.Y, o.W, o.H, r)
			return
		}
		dc.DrawRectangle(o.X, o.Y, o.W, o.H)
	case shape.Path:
		for i, p := range o.Points {
			if i == 0 {
				dc.MoveTo(p.X, p.Y)
				continue
			}
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
	}
}

// Node is a retained shape on the raster surface.
type Node struct {
	mount shape.Mount
	pos   shape.Point
	ports shape.Anchors
	snap  shape.Snapshot
	lines []string
}

func (n *Node) Place(pos shape.Point) { n.pos = pos }

func (n *Node) MovePort(dir shape.Direction, pos shape.Point) { n.ports[dir] = pos }

func (n *Node) Draw(snap shape.Snapshot) { n.snap = snap }

func (n *Node) SetText(lines []string) { n.lines = append([]string(nil), lines...) }

// SetStyles is a no-op; raster output uses the variant palette only.
func (n *Node) SetStyles([]string) {}
