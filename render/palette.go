// Package render holds what the raster and SVG surfaces share.
package render

import "dgrm/shape"

// Style colors one shape. Colors are hex strings; "none" leaves the part
// unpainted.
type Style struct {
	Fill    string
	Stroke  string
	Outer   string
	Text    string
	Divider string
}

var palette = map[shape.Variant]Style{
	shape.VariantEllipse:   {Fill: "#fb8500", Stroke: "#ffffff", Outer: "none", Text: "#ffffff", Divider: "#ffffff"},
	shape.VariantRoundRect: {Fill: "#fb8500", Stroke: "#ffffff", Outer: "#5E1675", Text: "#ffffff"},
	shape.VariantPolygon:   {Fill: "#D20062", Stroke: "#114232", Outer: "none", Text: "#ffffff"},
	shape.VariantRhombus:   {Fill: "#FF004D", Stroke: "#FF004D", Outer: "none", Text: "#ffffff"},
	shape.VariantLabelRect: {Fill: "#F6FDC3", Stroke: "#00224D", Outer: "#5E1675", Text: "#5E1675", Divider: "#00224D"},
}

// label-mode variants draw bare text
var textStyle = Style{Fill: "none", Stroke: "none", Outer: "#5E1675", Text: "#00224D", Divider: "#00224D"}

// StyleFor returns the colors of a mounted shape.
func StyleFor(v shape.Variant, labelMode bool) Style {
	if labelMode && v != shape.VariantEllipse {
		return textStyle
	}
	if s, ok := palette[v]; ok {
		return s
	}
	return Style{Fill: "none", Stroke: "#000000", Outer: "none", Text: "#000000", Divider: "#000000"}
}

// LayerColors returns the fill and stroke of layer key. Only the outer layer
// of a shape with a visible selection frame is stroked; it is never filled.
func (s Style) LayerColors(key string) (fill, stroke string) {
	if key == shape.LayerOuter {
		return "none", s.Outer
	}
	return s.Fill, s.Stroke
}
