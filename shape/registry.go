package shape

import (
	"sort"

	"go.uber.org/zap"
)

// Palette type codes. The codes are persisted and must stay stable.
const (
	TypeEllipse       = 5
	TypeRoleEllipse   = 8
	TypePolygon       = 11
	TypeRhombus       = 14
	TypeLabelRect     = 15
	TypeTextLabelRect = 16
	TypeRoundRect     = 17
)

type entry struct {
	variant   Variant
	labelMode bool
}

var catalog = map[int]entry{
	TypeEllipse:       {VariantEllipse, false},
	TypeRoleEllipse:   {VariantEllipse, true},
	TypePolygon:       {VariantPolygon, false},
	TypeRhombus:       {VariantRhombus, false},
	TypeLabelRect:     {VariantLabelRect, false},
	TypeTextLabelRect: {VariantLabelRect, true},
	TypeRoundRect:     {VariantRoundRect, false},
}

// Registry builds shapes from type codes onto one surface.
type Registry struct {
	surface  Surface
	viewport Viewport
	cfg      Config
	measure  Measurer
	log      *zap.Logger
	panels   map[entry]PanelFactory
	geos     map[int]Geometry
}

// Option configures a Registry.
type Option func(*Registry)

// WithConfig replaces the per-variant constants.
func WithConfig(cfg Config) Option {
	return func(r *Registry) { r.cfg = cfg }
}

// WithMeasurer sets the label measurement collaborator. Without one, label
// changes never resize a shape.
func WithMeasurer(m Measurer) Option {
	return func(r *Registry) { r.measure = m }
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// WithPanel registers the settings panel factory of a variant.
func WithPanel(v Variant, labelMode bool, f PanelFactory) Option {
	return func(r *Registry) { r.panels[entry{v, labelMode}] = f }
}

// NewRegistry returns a registry placing shapes on surface under viewport.
func NewRegistry(surface Surface, viewport Viewport, opts ...Option) *Registry {
	r := &Registry{
		surface:  surface,
		viewport: viewport,
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
		panels:   make(map[entry]PanelFactory),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.geos = make(map[int]Geometry, len(catalog))
	for code, e := range catalog {
		r.geos[code] = New(e.variant, e.labelMode, r.cfg)
	}
	return r
}

// Codes returns every known type code in ascending order.
func (r *Registry) Codes() []int {
	codes := make([]int, 0, len(r.geos))
	for code := range r.geos {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Geometry returns the geometry bound to code.
func (r *Registry) Geometry(code int) (Geometry, bool) {
	g, ok := r.geos[code]
	return g, ok
}

// Factory returns the constructor for code. The factory stamps code onto
// every record it is given.
func (r *Registry) Factory(code int) (func(rec *Record) (*Shape, error), error) {
	if _, ok := r.geos[code]; !ok {
		return nil, &RecordError{Code: code, Field: "type", Err: ErrUnknownType}
	}
	return func(rec *Record) (*Shape, error) {
		if rec != nil {
			rec.Type = code
		}
		return r.Create(rec)
	}, nil
}

// Create validates rec and renders a shape for it. Malformed records are
// rejected before anything is mounted.
func (r *Registry) Create(rec *Record) (*Shape, error) {
	if rec == nil {
		return nil, &RecordError{Field: "record", Err: ErrMalformed}
	}
	geo, ok := r.geos[rec.Type]
	if !ok {
		r.log.Warn("unknown shape type", zap.Int("type", rec.Type))
		return nil, &RecordError{Code: rec.Type, Field: "type", Err: ErrUnknownType}
	}
	if rec.Position == nil {
		return nil, &RecordError{Code: rec.Type, Field: "position", Err: ErrMissingPosition}
	}
	e := catalog[rec.Type]
	return newShape(rec, geo, env{
		surface:  r.surface,
		viewport: r.viewport,
		measure:  r.measure,
		panel:    r.panels[e],
		log:      r.log,
	}), nil
}
