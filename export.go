package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"dgrm/render"
	"dgrm/render/raster"
	"dgrm/render/svgsurface"
	"dgrm/shape"
)

// export writes the current shape to filename, choosing the format from
// its extension.
func (ws *workspace) export(filename string) error {
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		err = ws.exportPNG(filename)
	case ".svg":
		err = ws.exportSVG(filename)
	case ".json":
		err = ws.exportJSON(filename)
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(filename))
	}
	if err != nil {
		return err
	}
	ws.log.Info("exported", zap.String("file", filename), zap.String("id", ws.shape.ID()))
	return nil
}

// exportPNG redraws the shape on a raster surface from its persisted form.
func (ws *workspace) exportPNG(filename string) error {
	surface := raster.New(ws.text, raster.WithPadding(exportPad))
	reg := ws.newRegistry(surface, shape.Viewport{Scale: 1})
	if _, err := reg.Decode(ws.registry.Encode(ws.shape)); err != nil {
		return err
	}
	return surface.SavePNG(filename)
}

func (ws *workspace) exportSVG(filename string) error {
	lo, hi, ok := render.SnapshotBounds(ws.shape.Snapshot())
	if !ok {
		return raster.ErrEmpty
	}
	pos := *ws.shape.Record().Position
	vp := shape.Viewport{
		Scale:    1,
		Position: shape.Point{X: exportPad - pos.X - lo.X, Y: exportPad - pos.Y - lo.Y},
	}
	surface := svgsurface.New(ws.text)
	reg := ws.newRegistry(surface, vp)
	if _, err := reg.Decode(ws.registry.Encode(ws.shape)); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	width := int(math.Ceil(hi.X-lo.X)) + 2*exportPad
	height := int(math.Ceil(hi.Y-lo.Y)) + 2*exportPad
	if err := surface.Render(file, width, height); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (ws *workspace) exportJSON(filename string) error {
	data, err := ws.registry.EncodeJSON(ws.shape)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(data, '\n'), 0644)
}
