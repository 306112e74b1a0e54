package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dgrm/shape"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		o      shape.Outline
		lo, hi shape.Point
	}{
		{"ellipse", shape.Ellipse{RX: 48, RY: 24}, shape.Point{X: -48, Y: -24}, shape.Point{X: 48, Y: 24}},
		{"rect", shape.Rect{X: -72, Y: -25, W: 144, H: 50}, shape.Point{X: -72, Y: -25}, shape.Point{X: 72, Y: 25}},
		{"path", shape.Path{Points: []shape.Point{{X: -27}, {Y: -27}, {X: 27}, {Y: 27}}}, shape.Point{X: -27, Y: -27}, shape.Point{X: 27, Y: 27}},
		{"empty path", shape.Path{}, shape.Point{}, shape.Point{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Bounds(tt.o)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestSnapshotBounds(t *testing.T) {
	_, _, ok := SnapshotBounds(shape.Snapshot{})
	assert.False(t, ok)

	snap := shape.Snapshot{Layers: []shape.Layer{
		{Key: shape.LayerOuter, Outline: shape.Rect{X: -82, Y: -35, W: 164, H: 70}, Stroke: 2},
		{Key: shape.LayerMain, Outline: shape.Rect{X: -72, Y: -25, W: 144, H: 50}, Stroke: 1},
	}}
	lo, hi, ok := SnapshotBounds(snap)
	assert.True(t, ok)
	assert.Equal(t, shape.Point{X: -83, Y: -36}, lo)
	assert.Equal(t, shape.Point{X: 83, Y: 36}, hi)
}
