package shape

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeOmitsDefaults(t *testing.T) {
	r, _, _ := newTestRegistry(t, nil)
	for _, code := range r.Codes() {
		s := mustCreate(t, r, &Record{Type: code, Position: at(3, 4)})
		got := r.Encode(s)
		want := map[string]any{
			"type":     code,
			"position": map[string]any{"x": 3.0, "y": 4.0},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("type %d (-want +got):\n%s", code, diff)
		}
	}
}

func TestEncodeKeepsChangedFields(t *testing.T) {
	r, _, _ := newTestRegistry(t, map[string]TextExtent{
		"wide": {Width: 200, Height: 16},
	})
	s := mustCreate(t, r, &Record{
		Type:     TypeLabelRect,
		Position: at(0, 0),
		Styles:   []string{"cl-blue"},
		Dims:     Dims{Align: AlignRight},
	})
	s.SetText("wide")

	got := r.Encode(s)
	assert.Equal(t, 288.0, got["w"])
	assert.Equal(t, int(AlignRight), got["a"])
	assert.Equal(t, "wide", got["title"])
	assert.Equal(t, []string{"cl-blue"}, got["styles"])
	assert.NotContains(t, got, "h")
	assert.NotContains(t, got, "rx")
}

func TestRoundTrip(t *testing.T) {
	extents := map[string]TextExtent{
		"grown": {Farthest: Point{X: 60, Y: 30}, Width: 200, Height: 60},
	}
	records := []*Record{
		{Type: TypeEllipse, Position: at(10, 20)},
		{Type: TypeRoleEllipse, Position: at(-5, 0), Title: "grown"},
		{Type: TypePolygon, Position: at(0, 0), Styles: []string{"cl-red", "b"}},
		{Type: TypeRhombus, Position: at(1, 1), Dims: Dims{W: 144}},
		{Type: TypeLabelRect, Position: at(7, 7), Title: "grown", Dims: Dims{Align: AlignLeft}},
		{Type: TypeTextLabelRect, Position: at(0, 9), Dims: Dims{Align: AlignCenter}},
		{Type: TypeRoundRect, Position: at(2, 3), Dims: Dims{W: 200, H: 96, RX: 24}},
	}
	for _, rec := range records {
		r, _, _ := newTestRegistry(t, extents)
		s := mustCreate(t, r, rec)

		data, err := r.EncodeJSON(s)
		require.NoError(t, err)

		r2, _, _ := newTestRegistry(t, extents)
		back, err := r2.DecodeJSON(data)
		require.NoError(t, err)
		if diff := cmp.Diff(s.Record(), back.Record()); diff != "" {
			t.Errorf("type %d record (-want +got):\n%s", rec.Type, diff)
		}
		if diff := cmp.Diff(s.Snapshot(), back.Snapshot()); diff != "" {
			t.Errorf("type %d snapshot (-want +got):\n%s", rec.Type, diff)
		}
	}
}

// Edited shapes keep their size through a save and reload even though the
// label alone would fit a smaller one.
func TestRoundTripTitledExplicitSize(t *testing.T) {
	extents := map[string]TextExtent{
		"hi": {Farthest: Point{X: 10, Y: 5}, Width: 20, Height: 19},
	}
	tests := []struct {
		name string
		code int
		dims Dims
	}{
		{"ellipse", TypeEllipse, Dims{RX: 96, RY: 48}},
		{"role ellipse", TypeRoleEllipse, Dims{RX: 72, RY: 36}},
		{"polygon", TypePolygon, Dims{RX: 96, RY: 48}},
		{"rhombus", TypeRhombus, Dims{W: 144}},
		{"label rect", TypeLabelRect, Dims{W: 288, H: 50, Align: AlignCenter}},
		{"text label rect", TypeTextLabelRect, Dims{W: 288, H: 50, Align: AlignLeft}},
		{"round rect", TypeRoundRect, Dims{W: 144, H: 72, RX: 24, RY: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newTestRegistry(t, extents)
			s := mustCreate(t, r, &Record{Type: tt.code, Position: at(0, 0)})
			s.SetText("hi")
			s.Record().Dims = tt.dims
			s.Redraw(false)
			require.Equal(t, tt.dims, s.Record().Dims)

			data, err := r.EncodeJSON(s)
			require.NoError(t, err)

			r2, surface, measure := newTestRegistry(t, extents)
			back, err := r2.DecodeJSON(data)
			require.NoError(t, err)
			if diff := cmp.Diff(s.Record(), back.Record()); diff != "" {
				t.Errorf("record (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(s.Snapshot(), back.Snapshot()); diff != "" {
				t.Errorf("snapshot (-want +got):\n%s", diff)
			}
			assert.Equal(t, "hi", back.Text())
			assert.Zero(t, measure.calls)
			require.Len(t, surface.nodes, 1)
			assert.Equal(t, 1, drawCount(surface.nodes[0]))
		})
	}
}

func TestDecodeMapPosition(t *testing.T) {
	rec, err := RecordFromMap(map[string]any{
		"type":     json.Number("14"),
		"position": Point{X: 1, Y: 2},
		"styles":   []any{"x"},
		"w":        108,
	})
	require.NoError(t, err)
	assert.Equal(t, &Record{Type: 14, Position: at(1, 2), Styles: []string{"x"}, Dims: Dims{W: 108}}, rec)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		in    map[string]any
		field string
		want  error
	}{
		{"no type", map[string]any{"position": map[string]any{"x": 0.0, "y": 0.0}}, "type", ErrMalformed},
		{"string type", map[string]any{"type": "5"}, "type", ErrMalformed},
		{"no position", map[string]any{"type": 5}, "position", ErrMissingPosition},
		{"bad position", map[string]any{"type": 5, "position": map[string]any{"x": "a"}}, "position", ErrMalformed},
		{"bad title", map[string]any{"type": 5, "position": Point{}, "title": 3}, "title", ErrMalformed},
		{"bad styles", map[string]any{"type": 5, "position": Point{}, "styles": []any{1}}, "styles", ErrMalformed},
		{"negative radius", map[string]any{"type": 5, "position": Point{}, "rx": -1.0}, "rx", ErrMalformed},
		{"align out of range", map[string]any{"type": 15, "position": Point{}, "a": 4}, "a", ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RecordFromMap(tt.in)
			require.ErrorIs(t, err, tt.want)
			var rerr *RecordError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, tt.field, rerr.Field)
		})
	}
}

func TestDecodeJSONErrors(t *testing.T) {
	r, surface, _ := newTestRegistry(t, nil)

	_, err := r.DecodeJSON([]byte("{"))
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = r.DecodeJSON([]byte(`{"type":99,"position":{"x":0,"y":0}}`))
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Empty(t, surface.nodes)
}
