package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLadderSnap(t *testing.T) {
	tests := []struct {
		name     string
		ladder   Ladder
		required float64
		want     float64
	}{
		{"below min", Ladder{48, 24}, 11.2, 48},
		{"at min", Ladder{48, 24}, 48, 48},
		{"just above min", Ladder{48, 24}, 48.1, 72},
		{"hypotenuse", Ladder{48, 24}, 67.08, 72},
		{"on rung", Ladder{48, 24}, 72, 72},
		{"past rung", Ladder{48, 24}, 73, 96},
		{"rhombus", Ladder{72, 36}, 60, 72},
		{"rhombus grows", Ladder{72, 36}, 120, 144},
		{"box width", Ladder{144, 144}, 145, 288},
		{"box height", Ladder{50, 144}, 51, 194},
		{"negative", Ladder{24, 12}, -5, 24},
		{"zero step", Ladder{24, 0}, 100, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ladder.Snap(tt.required))
		})
	}
}

func TestLadderSnapMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	ladders := map[string]Ladder{
		"ellipse x":   cfg.Ellipse.X,
		"ellipse y":   cfg.Ellipse.Y,
		"corner x":    cfg.RoundRect.CornerX,
		"corner y":    cfg.RoundRect.CornerY,
		"rhombus":     cfg.Rhombus.Ladder,
		"labelrect x": cfg.LabelRect.X,
		"labelrect y": cfg.LabelRect.Y,
	}
	for name, l := range ladders {
		t.Run(name, func(t *testing.T) {
			prev := l.Snap(0)
			for e := 0.25; e < 1000; e += 0.25 {
				got := l.Snap(e)
				assert.GreaterOrEqual(t, got, prev, "extent %v", e)
				assert.GreaterOrEqual(t, got, e, "extent %v", e)
				prev = got
			}
		})
	}
}

func TestViewportToScreen(t *testing.T) {
	vp := Viewport{Position: Point{X: 10, Y: -5}, Scale: 2}
	assert.Equal(t, Point{X: 30, Y: 15}, vp.ToScreen(Point{X: 10, Y: 10}))

	// zero scale behaves as identity scale
	assert.Equal(t, Point{X: 1, Y: 2}, Viewport{}.ToScreen(Point{X: 1, Y: 2}))
}

func TestOutlineContains(t *testing.T) {
	e := Ellipse{RX: 48, RY: 24}
	assert.True(t, e.Contains(Point{X: 48}))
	assert.False(t, e.Contains(Point{X: 48.01}))

	r := Rect{X: -10, Y: -5, W: 20, H: 10, RX: 4, RY: 4}
	assert.True(t, r.Contains(Point{X: 10}))
	assert.False(t, r.Contains(Point{X: 10, Y: 5}), "rounded corner is cut")

	p := rhomb(72, 0)
	assert.True(t, p.Contains(Point{X: 36}))
	assert.True(t, p.Contains(Point{X: 18, Y: 18}))
	assert.False(t, p.Contains(Point{X: 19, Y: 18}))
}
