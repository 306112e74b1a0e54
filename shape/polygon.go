package shape

// PolygonGeometry is a hexagon with flat top and bottom edges, sized like the
// ellipse.
type PolygonGeometry struct {
	cfg       RadialConfig
	labelMode bool
}

func (g *PolygonGeometry) Variant() Variant { return VariantPolygon }
func (g *PolygonGeometry) LabelMode() bool  { return g.labelMode }

func (g *PolygonGeometry) Resolve(d *Dims) {
	if d.RX == 0 {
		d.RX = g.cfg.RX
	}
	if d.RY == 0 {
		d.RY = g.cfg.RY
	}
}

func (g *PolygonGeometry) Explicit(d Dims) bool {
	return d.RX != g.cfg.RX || d.RY != g.cfg.RY
}

func (g *PolygonGeometry) Initial(d Dims) (Snapshot, Anchors) {
	return g.Resize(d)
}

func (g *PolygonGeometry) Recompute(d Dims, ext TextExtent) (Dims, bool) {
	return recomputeRadii(g.cfg, d, ext)
}

func (g *PolygonGeometry) Resize(d Dims) (Snapshot, Anchors) {
	m := g.cfg.HitMargin
	snap := Snapshot{
		Layers: []Layer{
			{Key: LayerOuter, Outline: hexagon(d.RX+m, d.RY+m)},
			{Key: LayerMain, Outline: hexagon(d.RX, d.RY), Stroke: 1},
		},
		Label:   LabelLayout{Y: g.cfg.LabelY},
		Classes: []string{"shrect"},
	}
	if g.labelMode {
		snap.Label.Y = 0
		snap.Classes = []string{"shtxt"}
	}
	// right/left sit on vertices, top/bottom on the flat edges
	return snap, radialAnchors(d)
}

func hexagon(rx, ry float64) Path {
	return Path{Points: []Point{
		{X: rx, Y: 0},
		{X: rx / 2, Y: -ry},
		{X: -rx / 2, Y: -ry},
		{X: -rx, Y: 0},
		{X: -rx / 2, Y: ry},
		{X: rx / 2, Y: ry},
	}}
}
