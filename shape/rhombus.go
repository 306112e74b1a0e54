package shape

import "math"

// RhombusGeometry is a square rhombus with equal diagonals W. Its hit, border
// and fill paths are concentric and always recomputed together.
type RhombusGeometry struct {
	cfg RhombusConfig
}

func (g *RhombusGeometry) Variant() Variant { return VariantRhombus }
func (g *RhombusGeometry) LabelMode() bool  { return false }

func (g *RhombusGeometry) Resolve(d *Dims) {
	if d.W == 0 {
		d.W = g.cfg.W
	}
}

func (g *RhombusGeometry) Explicit(d Dims) bool {
	return d.W != g.cfg.W
}

func (g *RhombusGeometry) Initial(d Dims) (Snapshot, Anchors) {
	return g.Resize(d)
}

// Recompute fits the diamond |x|+|y| <= W/2 around the farthest run.
func (g *RhombusGeometry) Recompute(d Dims, ext TextExtent) (Dims, bool) {
	required := 2*(math.Abs(ext.Farthest.X)+math.Abs(ext.Farthest.Y)) - g.cfg.Correction
	w := g.cfg.Ladder.Snap(required)
	if w == d.W {
		return d, false
	}
	d.W = w
	return d, true
}

func (g *RhombusGeometry) Resize(d Dims) (Snapshot, Anchors) {
	inner := rhomb(d.W, g.cfg.BorderMargin)
	snap := Snapshot{
		Layers: []Layer{
			{Key: LayerOuter, Outline: rhomb(d.W, g.cfg.HitMargin)},
			{Key: LayerBorder, Outline: inner, Stroke: g.cfg.BorderStroke},
			{Key: LayerMain, Outline: inner, Stroke: g.cfg.MainStroke},
		},
		Label: LabelLayout{
			Y:        g.cfg.LabelY,
			FontSize: g.cfg.FontSize,
			Rotate:   90,
		},
		Classes: []string{"shrhomb"},
	}

	reach := d.W/2 + d.W*g.cfg.PortOffset
	var a Anchors
	a[Right] = Point{X: reach}
	a[Left] = Point{X: -reach}
	a[Top] = Point{Y: -reach}
	a[Bottom] = Point{Y: reach}
	return snap, a
}

// rhomb returns the diamond of width w shrunk by margin, vertices in
// left, top, right, bottom order.
func rhomb(w, margin float64) Path {
	half := w/2 - margin
	return Path{Points: []Point{
		{X: -half, Y: 0},
		{X: 0, Y: -half},
		{X: half, Y: 0},
		{X: 0, Y: half},
	}}
}
