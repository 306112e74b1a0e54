package shape

import "math"

// RoundRectGeometry is a rectangle of explicit size whose corner radii grow
// with the label.
type RoundRectGeometry struct {
	cfg RoundRectConfig
}

func (g *RoundRectGeometry) Variant() Variant { return VariantRoundRect }
func (g *RoundRectGeometry) LabelMode() bool  { return false }

func (g *RoundRectGeometry) Resolve(d *Dims) {
	if d.W == 0 {
		d.W = g.cfg.W
	}
	if d.H == 0 {
		d.H = g.cfg.H
	}
	if d.RX == 0 {
		d.RX = g.cfg.RX
	}
	if d.RY == 0 {
		d.RY = g.cfg.RY
	}
}

// Explicit is true when any of the four fields is off its default.
func (g *RoundRectGeometry) Explicit(d Dims) bool {
	return d.W != g.cfg.W || d.H != g.cfg.H || d.RX != g.cfg.RX || d.RY != g.cfg.RY
}

func (g *RoundRectGeometry) Initial(d Dims) (Snapshot, Anchors) {
	return g.Resize(d)
}

func (g *RoundRectGeometry) Recompute(d Dims, ext TextExtent) (Dims, bool) {
	// the ladders start at the current corners, so corners only grow
	rx := Ladder{Min: d.RX, Step: g.cfg.CornerX.Step}.Snap(math.Hypot(ext.Farthest.X, ext.Farthest.Y))
	ry := Ladder{Min: d.RY, Step: g.cfg.CornerY.Step}.Snap(math.Abs(ext.Farthest.Y))
	if rx == d.RX && ry == d.RY {
		return d, false
	}
	d.RX, d.RY = rx, ry
	return d, true
}

func (g *RoundRectGeometry) Resize(d Dims) (Snapshot, Anchors) {
	main := centered(d.W, d.H, 0)
	// corners never exceed half a side
	main.RX = math.Min(d.RX, d.W/2)
	main.RY = math.Min(d.RY, d.H/2)
	snap := Snapshot{
		Layers: []Layer{
			{Key: LayerOuter, Outline: centered(d.W, d.H, g.cfg.HitInflate), Stroke: 2},
			{Key: LayerMain, Outline: main, Stroke: 1},
		},
	}
	return snap, edgeAnchors(d.W, d.H)
}
