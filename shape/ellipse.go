package shape

import "math"

// EllipseGeometry sizes an ellipse around its label. In label mode it draws a
// divider at a quarter of the width, the "role" ellipse of the palette.
type EllipseGeometry struct {
	cfg       RadialConfig
	labelMode bool
}

func (g *EllipseGeometry) Variant() Variant { return VariantEllipse }
func (g *EllipseGeometry) LabelMode() bool  { return g.labelMode }

func (g *EllipseGeometry) Resolve(d *Dims) {
	if d.RX == 0 {
		d.RX = g.cfg.RX
	}
	if d.RY == 0 {
		d.RY = g.cfg.RY
	}
}

func (g *EllipseGeometry) Explicit(d Dims) bool {
	return d.RX != g.cfg.RX || d.RY != g.cfg.RY
}

func (g *EllipseGeometry) Initial(d Dims) (Snapshot, Anchors) {
	return g.Resize(d)
}

func (g *EllipseGeometry) Recompute(d Dims, ext TextExtent) (Dims, bool) {
	return recomputeRadii(g.cfg, d, ext)
}

func (g *EllipseGeometry) Resize(d Dims) (Snapshot, Anchors) {
	snap := Snapshot{
		Layers: []Layer{
			{Key: LayerOuter, Outline: Ellipse{RX: d.RX + g.cfg.HitMargin, RY: d.RY + g.cfg.HitMargin}},
			{Key: LayerMain, Outline: Ellipse{RX: d.RX, RY: d.RY}, Stroke: 1},
		},
		Label: LabelLayout{Y: g.cfg.LabelY},
	}
	if g.labelMode {
		// chord of the ellipse at x = -rx/2
		x := -d.RX / 2
		y := d.RY * math.Sqrt(3) / 2
		snap.Decorations = []Segment{{From: Point{X: x, Y: -y}, To: Point{X: x, Y: y}}}
	}
	return snap, radialAnchors(d)
}

// recomputeRadii applies the radial sizing rule shared by the ellipse and the
// polygon: the X radius covers the distance to the farthest run, the Y radius
// its vertical offset.
func recomputeRadii(cfg RadialConfig, d Dims, ext TextExtent) (Dims, bool) {
	rx := cfg.X.Snap(math.Hypot(ext.Farthest.X, ext.Farthest.Y))
	ry := cfg.Y.Snap(math.Abs(ext.Farthest.Y))
	if rx == d.RX && ry == d.RY {
		return d, false
	}
	d.RX, d.RY = rx, ry
	return d, true
}

func radialAnchors(d Dims) Anchors {
	var a Anchors
	a[Right] = Point{X: d.RX}
	a[Left] = Point{X: -d.RX}
	a[Top] = Point{Y: -d.RY}
	a[Bottom] = Point{Y: d.RY}
	return a
}
