package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dgrm/shape"
)

func TestStyleFor(t *testing.T) {
	rect := StyleFor(shape.VariantLabelRect, false)
	assert.Equal(t, "#F6FDC3", rect.Fill)
	assert.Equal(t, "#5E1675", rect.Text)

	// the role ellipse keeps its fill
	assert.Equal(t, StyleFor(shape.VariantEllipse, false), StyleFor(shape.VariantEllipse, true))
	assert.Equal(t, "none", StyleFor(shape.VariantLabelRect, true).Fill)
	assert.Equal(t, "none", StyleFor(shape.VariantPolygon, true).Fill)
	assert.Equal(t, "#000000", StyleFor(shape.Variant(42), false).Stroke)
}

func TestLayerColors(t *testing.T) {
	s := StyleFor(shape.VariantRhombus, false)
	fill, stroke := s.LayerColors(shape.LayerOuter)
	assert.Equal(t, "none", fill)
	assert.Equal(t, "none", stroke)

	fill, stroke = s.LayerColors(shape.LayerBorder)
	assert.Equal(t, "#FF004D", fill)
	assert.Equal(t, "#FF004D", stroke)
}
