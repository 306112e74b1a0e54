package shape

import "fmt"

// LabelRectGeometry is a box sized from the label's bounding box, with left,
// center or right aligned text. When alignment or width changes, the shape is
// moved so the edge the text is aligned to stays where it was.
type LabelRectGeometry struct {
	cfg       LabelRectConfig
	labelMode bool
}

func (g *LabelRectGeometry) Variant() Variant { return VariantLabelRect }
func (g *LabelRectGeometry) LabelMode() bool  { return g.labelMode }

func (g *LabelRectGeometry) defaultAlign() Align {
	if g.labelMode {
		return AlignLeft
	}
	return AlignCenter
}

func (g *LabelRectGeometry) Resolve(d *Dims) {
	if d.W == 0 {
		d.W = g.cfg.W
	}
	if d.H == 0 {
		d.H = g.cfg.H
	}
	if d.Align == AlignUnset {
		d.Align = g.defaultAlign()
	}
}

func (g *LabelRectGeometry) Explicit(d Dims) bool {
	return d.W != g.cfg.W || d.H != g.cfg.H || d.Align != g.defaultAlign()
}

func (g *LabelRectGeometry) Initial(d Dims) (Snapshot, Anchors) {
	return g.Resize(d)
}

func (g *LabelRectGeometry) Recompute(d Dims, ext TextExtent) (Dims, bool) {
	width := ext.Width
	if g.labelMode {
		width += g.cfg.LabelPad
	}
	w := g.cfg.X.Snap(width)
	h := g.cfg.Y.Snap(ext.Height)
	if w == d.W && h == d.H {
		return d, false
	}
	d.W, d.H = w, h
	return d, true
}

func (g *LabelRectGeometry) Resize(d Dims) (Snapshot, Anchors) {
	main := centered(d.W, d.H, 0)
	snap := Snapshot{
		Layers: []Layer{
			{Key: LayerOuter, Outline: centered(d.W, d.H, g.cfg.HitInflate), Stroke: 2},
			{Key: LayerMain, Outline: main, Stroke: 1},
		},
		Label: g.label(d),
	}
	if g.labelMode {
		snap.Classes = []string{"shtxt"}
	} else {
		x := main.X + g.cfg.DividerInset
		snap.Decorations = []Segment{{From: Point{X: x, Y: main.Y}, To: Point{X: x, Y: main.Y + main.H}}}
		snap.Classes = []string{"shrect"}
	}
	snap.Classes = append(snap.Classes, fmt.Sprintf("ta-%d", int(d.Align)))
	return snap, edgeAnchors(d.W, d.H)
}

func (g *LabelRectGeometry) label(d Dims) LabelLayout {
	switch d.Align {
	case AlignLeft:
		return LabelLayout{X: -d.W/2 + g.cfg.TextInset, Anchor: AnchorStart}
	case AlignRight:
		return LabelLayout{X: d.W/2 - g.cfg.TextInset, Anchor: AnchorEnd}
	}
	return LabelLayout{Anchor: AnchorMiddle}
}

// Shift keeps the aligned edge in place: left-aligned boxes grow to the
// right, right-aligned ones to the left, centered ones about the center.
func (g *LabelRectGeometry) Shift(prev, next Dims) Point {
	if prev.Align == next.Align && prev.W == next.W {
		return Point{}
	}
	switch next.Align {
	case AlignLeft:
		return Point{X: (next.W - prev.W) / 2}
	case AlignRight:
		return Point{X: -(next.W - prev.W) / 2}
	}
	return Point{}
}
