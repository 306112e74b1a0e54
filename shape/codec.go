package shape

import (
	"encoding/json"
	"fmt"
)

// Encode returns the minimal persisted form of s: type, position and only
// the fields that differ from the variant defaults.
func (r *Registry) Encode(s *Shape) map[string]any {
	rec := s.Record()
	m := map[string]any{
		"type":     rec.Type,
		"position": map[string]any{"x": rec.Position.X, "y": rec.Position.Y},
	}
	if rec.Title != "" {
		m["title"] = rec.Title
	}
	if len(rec.Styles) > 0 {
		m["styles"] = append([]string(nil), rec.Styles...)
	}

	var def Dims
	s.Geometry().Resolve(&def)
	d := rec.Dims
	for _, f := range []struct {
		key      string
		val, def float64
	}{
		{"rx", d.RX, def.RX},
		{"ry", d.RY, def.RY},
		{"w", d.W, def.W},
		{"h", d.H, def.H},
	} {
		if f.val != f.def {
			m[f.key] = f.val
		}
	}
	if d.Align != def.Align {
		m["a"] = int(d.Align)
	}
	return m
}

// Decode rebuilds a shape from its persisted form.
func (r *Registry) Decode(m map[string]any) (*Shape, error) {
	rec, err := RecordFromMap(m)
	if err != nil {
		return nil, err
	}
	return r.Create(rec)
}

// EncodeJSON is Encode followed by json.Marshal.
func (r *Registry) EncodeJSON(s *Shape) ([]byte, error) {
	return json.Marshal(r.Encode(s))
}

// DecodeJSON parses data and rebuilds the shape.
func (r *Registry) DecodeJSON(data []byte) (*Shape, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &RecordError{Code: -1, Field: "record", Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	return r.Decode(m)
}

// RecordFromMap converts a persisted mapping into a record. Dimension fields
// that are absent stay unset.
func RecordFromMap(m map[string]any) (*Record, error) {
	raw, ok := m["type"]
	if !ok {
		return nil, &RecordError{Code: -1, Field: "type", Err: ErrMalformed}
	}
	code, ok := number(raw)
	if !ok {
		return nil, &RecordError{Code: -1, Field: "type", Err: ErrMalformed}
	}
	rec := &Record{Type: int(code)}

	switch p := m["position"].(type) {
	case nil:
		return nil, &RecordError{Code: rec.Type, Field: "position", Err: ErrMissingPosition}
	case Point:
		rec.Position = &p
	case *Point:
		if p == nil {
			return nil, &RecordError{Code: rec.Type, Field: "position", Err: ErrMissingPosition}
		}
		cp := *p
		rec.Position = &cp
	case map[string]any:
		x, okx := number(p["x"])
		y, oky := number(p["y"])
		if !okx || !oky {
			return nil, &RecordError{Code: rec.Type, Field: "position", Err: ErrMalformed}
		}
		rec.Position = &Point{X: x, Y: y}
	default:
		return nil, &RecordError{Code: rec.Type, Field: "position", Err: ErrMalformed}
	}

	if v, ok := m["title"]; ok {
		title, ok := v.(string)
		if !ok {
			return nil, &RecordError{Code: rec.Type, Field: "title", Err: ErrMalformed}
		}
		rec.Title = title
	}

	switch styles := m["styles"].(type) {
	case nil:
	case []string:
		rec.Styles = append([]string(nil), styles...)
	case []any:
		for _, v := range styles {
			s, ok := v.(string)
			if !ok {
				return nil, &RecordError{Code: rec.Type, Field: "styles", Err: ErrMalformed}
			}
			rec.Styles = append(rec.Styles, s)
		}
	default:
		return nil, &RecordError{Code: rec.Type, Field: "styles", Err: ErrMalformed}
	}

	for key, dst := range map[string]*float64{
		"rx": &rec.Dims.RX,
		"ry": &rec.Dims.RY,
		"w":  &rec.Dims.W,
		"h":  &rec.Dims.H,
	} {
		v, ok := m[key]
		if !ok {
			continue
		}
		n, ok := number(v)
		if !ok || n < 0 {
			return nil, &RecordError{Code: rec.Type, Field: key, Err: ErrMalformed}
		}
		*dst = n
	}
	if v, ok := m["a"]; ok {
		n, ok := number(v)
		if !ok || n < float64(AlignLeft) || n > float64(AlignRight) {
			return nil, &RecordError{Code: rec.Type, Field: "a", Err: ErrMalformed}
		}
		rec.Dims.Align = Align(n)
	}
	return rec, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
