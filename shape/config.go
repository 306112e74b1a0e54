package shape

// RadialConfig configures the ellipse and polygon variants.
type RadialConfig struct {
	RX        float64 `yaml:"rx"`
	RY        float64 `yaml:"ry"`
	X         Ladder  `yaml:"x"`
	Y         Ladder  `yaml:"y"`
	HitMargin float64 `yaml:"hit_margin"`
	// LabelY is the label baseline; the polygon ignores it in label mode.
	LabelY float64 `yaml:"label_y"`
}

// RoundRectConfig configures the rounded rectangle.
type RoundRectConfig struct {
	W          float64 `yaml:"w"`
	H          float64 `yaml:"h"`
	RX         float64 `yaml:"rx"`
	RY         float64 `yaml:"ry"`
	CornerX    Ladder  `yaml:"corner_x"`
	CornerY    Ladder  `yaml:"corner_y"`
	HitInflate float64 `yaml:"hit_inflate"`
}

// RhombusConfig configures the square rhombus.
type RhombusConfig struct {
	W      float64 `yaml:"w"`
	Ladder Ladder  `yaml:"ladder"`
	// Correction is subtracted from the required width; measured against the
	// rendered border stroke.
	Correction   float64 `yaml:"correction"`
	HitMargin    float64 `yaml:"hit_margin"`
	BorderMargin float64 `yaml:"border_margin"`
	BorderStroke float64 `yaml:"border_stroke"`
	MainStroke   float64 `yaml:"main_stroke"`
	PortOffset   float64 `yaml:"port_offset"` // fraction of width beyond each vertex
	FontSize     float64 `yaml:"font_size"`
	LabelY       float64 `yaml:"label_y"`
}

// LabelRectConfig configures the labeled rectangle.
type LabelRectConfig struct {
	W            float64 `yaml:"w"`
	H            float64 `yaml:"h"`
	X            Ladder  `yaml:"x"`
	Y            Ladder  `yaml:"y"`
	LabelPad     float64 `yaml:"label_pad"` // extra width in label mode
	TextInset    float64 `yaml:"text_inset"`
	DividerInset float64 `yaml:"divider_inset"`
	HitInflate   float64 `yaml:"hit_inflate"`
}

// Config holds the per-variant constants.
type Config struct {
	Ellipse   RadialConfig    `yaml:"ellipse"`
	Polygon   RadialConfig    `yaml:"polygon"`
	RoundRect RoundRectConfig `yaml:"roundrect"`
	Rhombus   RhombusConfig   `yaml:"rhombus"`
	LabelRect LabelRectConfig `yaml:"labelrect"`
}

// DefaultConfig returns the stock catalog constants.
func DefaultConfig() Config {
	radial := RadialConfig{
		RX:        48,
		RY:        24,
		X:         Ladder{Min: 48, Step: 24},
		Y:         Ladder{Min: 24, Step: 12},
		HitMargin: 24,
	}
	polygon := radial
	polygon.LabelY = 12
	return Config{
		Ellipse: radial,
		Polygon: polygon,
		RoundRect: RoundRectConfig{
			W:          144,
			H:          72,
			RX:         12,
			RY:         12,
			CornerX:    Ladder{Min: 12, Step: 12},
			CornerY:    Ladder{Min: 12, Step: 6},
			HitInflate: 10,
		},
		Rhombus: RhombusConfig{
			W:            72,
			Ladder:       Ladder{Min: 72, Step: 36},
			Correction:   20,
			HitMargin:    -24,
			BorderMargin: 9,
			BorderStroke: 20,
			MainStroke:   18,
			PortOffset:   0.25,
			FontSize:     36,
			LabelY:       10,
		},
		LabelRect: LabelRectConfig{
			W:            144,
			H:            50,
			X:            Ladder{Min: 144, Step: 144},
			Y:            Ladder{Min: 50, Step: 144},
			LabelPad:     6,
			TextInset:    8,
			DividerInset: 10,
			HitInflate:   10,
		},
	}
}
