package main

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"dgrm/shape"
	"dgrm/textlayout"
)

func newWorkspace(cfg *Config, log *zap.Logger) (*workspace, error) {
	text, err := textlayout.New(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	ws := &workspace{
		cfg:     cfg,
		log:     log,
		text:    text,
		preview: newPreviewSurface(text, cfg.CellWidth, cfg.CellHeight),
	}
	ws.registry = ws.newRegistry(ws.preview, shape.Viewport{Scale: 1, Cell: cfg.CellWidth})
	return ws, nil
}

func (ws *workspace) newRegistry(surface shape.Surface, vp shape.Viewport) *shape.Registry {
	return shape.NewRegistry(surface, vp,
		shape.WithConfig(ws.cfg.Geometry),
		shape.WithMeasurer(ws.text),
		shape.WithLogger(ws.log),
		shape.WithPanel(shape.VariantLabelRect, false, newAlignPanel),
		shape.WithPanel(shape.VariantLabelRect, true, newAlignPanel),
		shape.WithPanel(shape.VariantRoundRect, false, newSizePanel),
	)
}

// create builds a shape from rec and makes it the current one.
func (ws *workspace) create(rec shape.Record) error {
	s, err := ws.registry.Create(&rec)
	if err != nil {
		return err
	}
	ws.replace(s)
	return nil
}

func (ws *workspace) load(data []byte) error {
	before, had := ws.current()
	s, err := ws.registry.DecodeJSON(data)
	if err != nil {
		return err
	}
	ws.replace(s)
	if had {
		ws.record(ActionLoad, before)
	}
	return nil
}

func (ws *workspace) replace(s *shape.Shape) {
	if ws.shape != nil {
		ws.preview.remove(ws.shape.Node())
	}
	ws.shape = s
	ws.log.Debug("current shape", zap.String("id", s.ID()), zap.Int("type", s.Record().Type))
}

func (ws *workspace) current() (shape.Record, bool) {
	if ws.shape == nil {
		return shape.Record{}, false
	}
	return cloneRecord(*ws.shape.Record()), true
}

func (ws *workspace) setText(text string) {
	before, _ := ws.current()
	ws.shape.SetText(text)
	ws.record(ActionSetText, before)
}

// cycleType swaps the shape for the next type code, keeping its position,
// label and styles. Dimensions start over from the new variant's defaults.
func (ws *workspace) cycleType(delta int) error {
	before, _ := ws.current()
	codes := ws.registry.Codes()
	i := slices.Index(codes, before.Type)
	next := codes[((i+delta)%len(codes)+len(codes))%len(codes)]

	rec := cloneRecord(before)
	rec.Type = next
	rec.Dims = shape.Dims{}
	if err := ws.create(rec); err != nil {
		return err
	}
	ws.record(ActionSetType, before)
	return nil
}

func (ws *workspace) cycleAlign() bool {
	if ws.shape.Geometry().Variant() != shape.VariantLabelRect {
		return false
	}
	before, _ := ws.current()
	d := &ws.shape.Record().Dims
	d.Align = d.Align%shape.AlignRight + 1
	ws.shape.Redraw(false)
	ws.record(ActionSetDims, before)
	return true
}

// grow changes the primary size of the shape by steps ladder steps.
func (ws *workspace) grow(steps int) bool {
	before, _ := ws.current()
	g := ws.cfg.Geometry
	d := ws.shape.Record().Dims
	delta := float64(steps)
	switch ws.shape.Geometry().Variant() {
	case shape.VariantEllipse:
		d.RX += delta * g.Ellipse.X.Step
		d.RY += delta * g.Ellipse.Y.Step
	case shape.VariantPolygon:
		d.RX += delta * g.Polygon.X.Step
		d.RY += delta * g.Polygon.Y.Step
	case shape.VariantRhombus:
		d.W += delta * g.Rhombus.Ladder.Step
	case shape.VariantRoundRect:
		d.W += delta * g.RoundRect.CornerX.Step
		d.H += delta * g.RoundRect.CornerY.Step
	case shape.VariantLabelRect:
		d.W += delta * g.LabelRect.X.Step
	}
	if d.RX < 0 || d.RY < 0 || d.W < 0 || d.H < 0 || d == before.Dims {
		return false
	}
	if (before.Dims.RX > 0 && d.RX == 0) || (before.Dims.W > 0 && d.W == 0) || (before.Dims.H > 0 && d.H == 0) {
		return false
	}
	ws.shape.Record().Dims = d
	ws.shape.Redraw(false)
	ws.record(ActionSetDims, before)
	return true
}

func (ws *workspace) move(dx, dy float64) {
	pos := *ws.shape.Record().Position
	ws.shape.MoveTo(shape.Point{X: pos.X + dx, Y: pos.Y + dy})
}

// restore brings the current shape back to rec.
func (ws *workspace) restore(rec shape.Record) error {
	cur := ws.shape.Record()
	if rec.Type != cur.Type {
		return ws.create(cloneRecord(rec))
	}
	if rec.Title != cur.Title {
		ws.shape.SetText(rec.Title)
	}
	if !slices.Equal(rec.Styles, cur.Styles) {
		ws.shape.SetStyles(rec.Styles)
	}
	cur.Dims = rec.Dims
	ws.shape.Redraw(false)
	if rec.Position != nil {
		ws.shape.MoveTo(*rec.Position)
	}
	return nil
}

func (ws *workspace) settingsLines() (string, []string) {
	p, ok := ws.shape.Settings()
	if !ok {
		return "", nil
	}
	sp, ok := p.(*settingsPanel)
	if !ok {
		return p.Title(), nil
	}
	return sp.Title(), sp.Lines()
}

func (ws *workspace) describe() string {
	rec := ws.shape.Record()
	g := ws.shape.Geometry()
	d := rec.Dims
	switch g.Variant() {
	case shape.VariantEllipse, shape.VariantPolygon:
		return fmt.Sprintf("%d %v rx=%g ry=%g", rec.Type, g.Variant(), d.RX, d.RY)
	case shape.VariantRhombus:
		return fmt.Sprintf("%d %v w=%g", rec.Type, g.Variant(), d.W)
	case shape.VariantLabelRect:
		return fmt.Sprintf("%d %v w=%g h=%g %v", rec.Type, g.Variant(), d.W, d.H, d.Align)
	}
	return fmt.Sprintf("%d %v w=%g h=%g rx=%g ry=%g", rec.Type, g.Variant(), d.W, d.H, d.RX, d.RY)
}

func cloneRecord(r shape.Record) shape.Record {
	if r.Position != nil {
		pos := *r.Position
		r.Position = &pos
	}
	r.Styles = slices.Clone(r.Styles)
	return r
}

func recordsEqual(a, b shape.Record) bool {
	samePos := (a.Position == nil) == (b.Position == nil)
	if samePos && a.Position != nil {
		samePos = *a.Position == *b.Position
	}
	return samePos && a.Type == b.Type && a.Title == b.Title &&
		a.Dims == b.Dims && slices.Equal(a.Styles, b.Styles)
}
