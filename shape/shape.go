package shape

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Shape is the handle of one rendered shape instance. It keeps the record,
// the rendered node and the connector ports consistent with each other.
// A Shape is not safe for concurrent use; callers serialize mutations.
type Shape struct {
	id    string
	rec   *Record
	geo   Geometry
	node  Node
	ports *PortSet
	snap  Snapshot
	lines []string

	// applied are the dims of the last redraw
	applied Dims

	measure Measurer
	panel   PanelFactory
	log     *zap.Logger
}

type env struct {
	surface  Surface
	viewport Viewport
	measure  Measurer
	panel    PanelFactory
	log      *zap.Logger
}

func newShape(rec *Record, geo Geometry, e env) *Shape {
	if own, ok := catalog[rec.Type]; !ok || own.variant != geo.Variant() || own.labelMode != geo.LabelMode() {
		panic(fmt.Sprintf("shape: %v geometry given record of type %d", geo.Variant(), rec.Type))
	}

	s := &Shape{
		id:      uuid.NewString(),
		rec:     rec,
		geo:     geo,
		ports:   newPortSet(),
		measure: e.measure,
		panel:   e.panel,
		log:     e.log,
	}

	geo.Resolve(&rec.Dims)
	snap, anchors := geo.Initial(rec.Dims)
	explicit := geo.Explicit(rec.Dims)
	if explicit {
		// mount at the explicit size right away, never the default first
		snap, anchors = geo.Resize(rec.Dims)
	}

	s.node = e.surface.Mount(Mount{
		ID:        s.id,
		Type:      rec.Type,
		Variant:   geo.Variant(),
		LabelMode: geo.LabelMode(),
		Position:  *rec.Position,
		Styles:    append([]string(nil), rec.Styles...),
		Viewport:  e.viewport,
	})
	s.applied = rec.Dims
	s.render(snap, anchors)

	s.log.Debug("shape created",
		zap.String("id", s.id),
		zap.Int("type", rec.Type),
		zap.Stringer("variant", geo.Variant()),
		zap.Bool("explicit", explicit),
		zap.Object("dims", logDims(rec.Dims)))

	if rec.Title != "" {
		if explicit {
			// explicit dims were sized for this label already
			s.lines = strings.Split(rec.Title, "\n")
			s.node.SetText(s.lines)
		} else {
			s.SetText(rec.Title)
		}
	}
	return s
}

// ID returns the shape's unique id.
func (s *Shape) ID() string { return s.id }

// Record returns the live record. Collaborators that change Dims must call
// Redraw afterwards.
func (s *Shape) Record() *Record { return s.rec }

// Node returns the rendered node.
func (s *Shape) Node() Node { return s.node }

// Ports returns the shape's connector ports.
func (s *Shape) Ports() *PortSet { return s.ports }

// Snapshot returns the geometry of the last redraw.
func (s *Shape) Snapshot() Snapshot { return s.snap }

// Geometry returns the variant driving this shape.
func (s *Shape) Geometry() Geometry { return s.geo }

// Text returns the label text.
func (s *Shape) Text() string { return strings.Join(s.lines, "\n") }

// SetText replaces the label and resizes the shape if the new text no
// longer fits.
func (s *Shape) SetText(text string) {
	s.rec.Title = text
	s.lines = strings.Split(text, "\n")
	s.node.SetText(s.lines)
	s.textChanged()
}

// SetStyles replaces the style tags and re-measures the label, which may
// have reflowed.
func (s *Shape) SetStyles(styles []string) {
	s.rec.Styles = append([]string(nil), styles...)
	s.node.SetStyles(s.rec.Styles)
	s.Reflow()
}

// Reflow re-measures the current label.
func (s *Shape) Reflow() {
	s.textChanged()
}

// MoveTo places the shape at pos in diagram space.
func (s *Shape) MoveTo(pos Point) {
	*s.rec.Position = pos
	s.node.Place(pos)
}

// Redraw re-applies the record's dimensions. Unless force is set, nothing is
// redrawn when they are the ones already on screen.
func (s *Shape) Redraw(force bool) {
	s.geo.Resolve(&s.rec.Dims)
	if !force && s.rec.Dims == s.applied {
		return
	}
	s.resize()
}

// Settings builds the shape's settings panel, if its variant has one.
func (s *Shape) Settings() (Panel, bool) {
	if s.panel == nil {
		return nil, false
	}
	return s.panel(s), true
}

func (s *Shape) textChanged() {
	if s.measure == nil {
		return
	}
	ext, ok := s.measure.Measure(s.lines, s.snap.Label)
	if !ok {
		s.log.Debug("label not measurable", zap.String("id", s.id))
		return
	}
	dims, changed := s.geo.Recompute(s.rec.Dims, ext)
	if !changed {
		return
	}
	s.rec.Dims = dims
	s.resize()
}

func (s *Shape) resize() {
	snap, anchors := s.geo.Resize(s.rec.Dims)
	s.render(snap, anchors)

	if c, ok := s.geo.(Compensator); ok {
		if shift := c.Shift(s.applied, s.rec.Dims); shift != (Point{}) {
			*s.rec.Position = s.rec.Position.Add(shift)
			s.node.Place(*s.rec.Position)
		}
	}
	s.applied = s.rec.Dims

	s.log.Debug("shape resized",
		zap.String("id", s.id),
		zap.Object("dims", logDims(s.rec.Dims)))
}

// render pushes ports before the outline so observers never see an outline
// without matching ports.
func (s *Shape) render(snap Snapshot, anchors Anchors) {
	for _, d := range Directions {
		s.ports.set(d, anchors[d])
		s.node.MovePort(d, anchors[d])
	}
	s.node.Draw(snap)
	s.snap = snap
}

type logDims Dims

func (d logDims) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if d.RX != 0 || d.RY != 0 {
		enc.AddFloat64("rx", d.RX)
		enc.AddFloat64("ry", d.RY)
	}
	if d.W != 0 || d.H != 0 {
		enc.AddFloat64("w", d.W)
		enc.AddFloat64("h", d.H)
	}
	if d.Align != AlignUnset {
		enc.AddString("align", d.Align.String())
	}
	return nil
}
