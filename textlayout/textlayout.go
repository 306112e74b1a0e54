// Package textlayout lays out shape labels in Go Mono and measures them.
// It is the default shape.Measurer and also hands the laid out runs to the
// render surfaces so what is measured is what is drawn.
package textlayout

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"

	"dgrm/shape"
)

// DefaultFontSize is used when a label layout does not carry its own size.
const DefaultFontSize = 16

// LineSpacing is the baseline distance as a multiple of the font size.
const LineSpacing = 1.2

// Run is one laid out line of a label, in the shape's local frame before
// rotation.
type Run struct {
	Text string
	// X is the left edge and Y the baseline.
	X, Y  float64
	Width float64
	// Ascent and Descent are positive distances from the baseline.
	Ascent, Descent float64
}

// Layout is the result of laying out a label.
type Layout struct {
	Runs     []Run
	FontSize float64
	Rotate   float64
}

// Measurer measures labels with cached Go Mono faces. It is safe for
// concurrent use.
type Measurer struct {
	mu          sync.RWMutex
	font        *truetype.Font
	defaultSize float64
	faces       map[float64]font.Face
}

// New parses the embedded Go Mono font. A size of zero means
// DefaultFontSize.
func New(defaultSize float64) (*Measurer, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go mono: %w", err)
	}
	if defaultSize <= 0 {
		defaultSize = DefaultFontSize
	}
	return &Measurer{
		font:        f,
		defaultSize: defaultSize,
		faces:       make(map[float64]font.Face),
	}, nil
}

// Font returns the parsed font, for renderers that build their own faces.
func (m *Measurer) Font() *truetype.Font { return m.font }

// Size returns the effective font size of layout.
func (m *Measurer) Size(layout shape.LabelLayout) float64 {
	if layout.FontSize > 0 {
		return layout.FontSize
	}
	return m.defaultSize
}

// Face returns the unhinted measuring face at size points and 72 DPI.
func (m *Measurer) Face(size float64) font.Face {
	m.mu.RLock()
	if face, ok := m.faces[size]; ok {
		m.mu.RUnlock()
		return face
	}
	m.mu.RUnlock()

	face := truetype.NewFace(m.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.faces[size]; ok {
		return cached
	}
	m.faces[size] = face
	return face
}

// Layout places each line of the label. The first baseline sits at
// layout.Y and each further line one LineSpacing below.
func (m *Measurer) Layout(lines []string, layout shape.LabelLayout) Layout {
	size := m.Size(layout)
	face := m.Face(size)
	metrics := face.Metrics()
	ascent := toFloat(metrics.Ascent)
	descent := toFloat(metrics.Descent)

	out := Layout{FontSize: size, Rotate: layout.Rotate}
	for i, line := range lines {
		w := toFloat(font.MeasureString(face, line))
		x := layout.X
		switch layout.Anchor {
		case shape.AnchorMiddle:
			x -= w / 2
		case shape.AnchorEnd:
			x -= w
		}
		out.Runs = append(out.Runs, Run{
			Text:    line,
			X:       x,
			Y:       layout.Y + float64(i)*size*LineSpacing,
			Width:   w,
			Ascent:  ascent,
			Descent: descent,
		})
	}
	return out
}

// Measure implements shape.Measurer. Blank runs take up a line but do not
// count toward the extent; a label with only blank runs is not measurable.
func (m *Measurer) Measure(lines []string, layout shape.LabelLayout) (shape.TextExtent, bool) {
	l := m.Layout(lines, layout)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	var far shape.Point
	sin, cos := math.Sincos(layout.Rotate * math.Pi / 180)
	found := false
	for _, r := range l.Runs {
		if strings.TrimSpace(r.Text) == "" {
			continue
		}
		found = true
		x0, x1 := r.X, r.X+r.Width
		y0, y1 := r.Y-r.Ascent, r.Y+r.Descent
		minX, maxX = math.Min(minX, x0), math.Max(maxX, x1)
		minY, maxY = math.Min(minY, y0), math.Max(maxY, y1)
		for _, c := range [...]shape.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}} {
			rx := c.X*cos - c.Y*sin
			ry := c.X*sin + c.Y*cos
			far.X = math.Max(far.X, math.Abs(rx))
			far.Y = math.Max(far.Y, math.Abs(ry))
		}
	}
	if !found {
		return shape.TextExtent{}, false
	}
	return shape.TextExtent{Farthest: far, Width: maxX - minX, Height: maxY - minY}, true
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
