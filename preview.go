package main

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"dgrm/shape"
	"dgrm/textlayout"
)

const (
	borderRune = '#'
	hitRune    = '.'
	portRune   = 'o'
	lineRune   = '|'
)

// previewSurface rasterizes shapes into terminal cells of cellW×cellH
// diagram pixels, sampling each cell at its center.
type previewSurface struct {
	text         *textlayout.Measurer
	cellW, cellH float64
	nodes        []*previewNode
}

func newPreviewSurface(text *textlayout.Measurer, cellW, cellH float64) *previewSurface {
	return &previewSurface{text: text, cellW: cellW, cellH: cellH}
}

func (p *previewSurface) Mount(m shape.Mount) shape.Node {
	n := &previewNode{mount: m, pos: m.Position}
	p.nodes = append(p.nodes, n)
	return n
}

func (p *previewSurface) remove(node shape.Node) {
	p.nodes = slices.DeleteFunc(p.nodes, func(n *previewNode) bool { return shape.Node(n) == node })
}

// Render draws every node into a cols×rows grid whose top-left cell shows
// diagram point (panX, panY) in cells.
func (p *previewSurface) Render(cols, rows, panX, panY int) []string {
	if cols < 1 || rows < 1 {
		return nil
	}
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	origin := shape.Point{X: float64(panX) * p.cellW, Y: float64(panY) * p.cellH}
	for _, n := range p.nodes {
		p.drawNode(grid, origin, n)
	}

	lines := make([]string, rows)
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

// cellCenter is the diagram point sampled for cell (col, row).
func (p *previewSurface) cellCenter(origin shape.Point, col, row int) shape.Point {
	return shape.Point{
		X: origin.X + (float64(col)+0.5)*p.cellW,
		Y: origin.Y + (float64(row)+0.5)*p.cellH,
	}
}

// cellOf is the cell containing diagram point d.
func (p *previewSurface) cellOf(origin, d shape.Point) (col, row int) {
	return int(math.Floor((d.X - origin.X) / p.cellW)), int(math.Floor((d.Y - origin.Y) / p.cellH))
}

func (p *previewSurface) drawNode(grid [][]rune, origin shape.Point, n *previewNode) {
	rows, cols := len(grid), len(grid[0])
	main := n.snap.Main()
	outer, hasOuter := n.snap.Layer(shape.LayerOuter)
	inside := func(col, row int) bool {
		c := p.cellCenter(origin, col, row)
		return main != nil && main.Contains(shape.Point{X: c.X - n.pos.X, Y: c.Y - n.pos.Y})
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if inside(col, row) {
				if !inside(col-1, row) || !inside(col+1, row) || !inside(col, row-1) || !inside(col, row+1) {
					grid[row][col] = borderRune
				}
				continue
			}
			if hasOuter && outer.Outline != nil && outer.Stroke > 0 {
				c := p.cellCenter(origin, col, row)
				if outer.Outline.Contains(shape.Point{X: c.X - n.pos.X, Y: c.Y - n.pos.Y}) {
					grid[row][col] = hitRune
				}
			}
		}
	}

	put := func(d shape.Point, r rune) {
		col, row := p.cellOf(origin, n.pos.Add(d))
		if row >= 0 && row < rows && col >= 0 && col < cols {
			grid[row][col] = r
		}
	}

	for _, seg := range n.snap.Decorations {
		steps := int(math.Ceil(math.Max(math.Abs(seg.To.X-seg.From.X)/p.cellW, math.Abs(seg.To.Y-seg.From.Y)/p.cellH)))
		for i := 0; i <= steps; i++ {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			put(shape.Point{X: seg.From.X + t*(seg.To.X-seg.From.X), Y: seg.From.Y + t*(seg.To.Y-seg.From.Y)}, lineRune)
		}
	}

	if len(n.lines) > 0 && p.text != nil {
		layout := p.text.Layout(n.lines, n.snap.Label)
		sin, cos := math.Sincos(layout.Rotate * math.Pi / 180)
		for _, run := range layout.Runs {
			count := utf8.RuneCountInString(run.Text)
			if count == 0 {
				continue
			}
			advance := run.Width / float64(count)
			// sample glyphs halfway up the x-height
			y := run.Y - run.Ascent/3
			i := 0
			for _, r := range run.Text {
				x := run.X + (float64(i)+0.5)*advance
				put(shape.Point{X: x*cos - y*sin, Y: x*sin + y*cos}, r)
				i++
			}
		}
	}

	for _, d := range shape.Directions {
		put(n.ports[d], portRune)
	}
}

type previewNode struct {
	mount  shape.Mount
	pos    shape.Point
	ports  shape.Anchors
	snap   shape.Snapshot
	lines  []string
	styles []string
}

func (n *previewNode) Place(pos shape.Point) { n.pos = pos }

func (n *previewNode) MovePort(dir shape.Direction, pos shape.Point) { n.ports[dir] = pos }

func (n *previewNode) Draw(snap shape.Snapshot) { n.snap = snap }

func (n *previewNode) SetText(lines []string) { n.lines = slices.Clone(lines) }

func (n *previewNode) SetStyles(styles []string) { n.styles = slices.Clone(styles) }
