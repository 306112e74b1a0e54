package main

import (
	"fmt"

	"dgrm/shape"
)

// settingsPanel lists the editable settings of one shape.
type settingsPanel struct {
	title  string
	shape  *shape.Shape
	fields []panelField
}

type panelField struct {
	key   string
	label string
	value func(d shape.Dims) string
}

func (p *settingsPanel) Title() string { return p.title }

// Lines renders each field as "key  label: value".
func (p *settingsPanel) Lines() []string {
	d := p.shape.Record().Dims
	lines := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		lines = append(lines, fmt.Sprintf("%-3s %s: %s", f.key, f.label, f.value(d)))
	}
	return lines
}

func newAlignPanel(s *shape.Shape) shape.Panel {
	return &settingsPanel{
		title: "Text settings",
		shape: s,
		fields: []panelField{
			{key: "a", label: "alignment", value: func(d shape.Dims) string { return d.Align.String() }},
			{key: "+/-", label: "width", value: func(d shape.Dims) string { return fmt.Sprintf("%g", d.W) }},
			{key: "", label: "height", value: func(d shape.Dims) string { return fmt.Sprintf("%g", d.H) }},
		},
	}
}

func newSizePanel(s *shape.Shape) shape.Panel {
	return &settingsPanel{
		title: "Size settings",
		shape: s,
		fields: []panelField{
			{key: "+/-", label: "size", value: func(d shape.Dims) string { return fmt.Sprintf("%gx%g", d.W, d.H) }},
			{key: "", label: "corners", value: func(d shape.Dims) string { return fmt.Sprintf("%g/%g", d.RX, d.RY) }},
		},
	}
}
