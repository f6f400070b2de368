// Package svg renders a Merkle Mountain Range level snapshot as an SVG
// diagram. It is display-only: it consumes the read-only snapshot returned
// by Range.Levels and never reaches back into the accumulator.
package svg

import (
	"fmt"
	"strings"

	"github.com/taurus-i/merkle-mountain-range/mmr"
)

// Layout selects how levels are arranged on the canvas.
type Layout int

const (
	// TopDown draws level 0 as the top row, levels growing downward, all
	// rows left aligned.
	TopDown Layout = iota

	// BottomUp draws level 0 as the bottom row, levels growing upward, all
	// rows left aligned.
	BottomUp

	// BottomUpCentered is BottomUp with every row horizontally centered
	// over the leaf row.
	BottomUpCentered

	// BottomUpAnchored is BottomUp with the leaf row centered and every
	// parent placed at the midpoint of its two children, which draws the
	// mountains as actual triangles.
	BottomUpAnchored
)

// Options holds the drawing geometry. The zero value is not useful; use
// DefaultOptions.
type Options struct {
	NodeRadius float64
	HSpacing   float64
	VSpacing   float64
	Margin     float64
}

// DefaultOptions returns the geometry the demo harness uses.
func DefaultOptions() *Options {
	return &Options{
		NodeRadius: 10,
		HSpacing:   50,
		VSpacing:   70,
		Margin:     20,
	}
}

type point struct {
	x, y float64
}

// Render draws the level snapshot with the given layout. opts may be nil, in
// which case DefaultOptions applies. An empty snapshot renders an empty
// canvas.
func Render(levels [][]mmr.Digest, layout Layout, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(levels) == 0 || len(levels[0]) == 0 {
		return `<svg width="0" height="0" xmlns="http://www.w3.org/2000/svg"></svg>`
	}

	r := renderer{opts: opts, levels: levels}
	switch layout {
	case BottomUp:
		return r.render(false, false)
	case BottomUpCentered:
		return r.render(false, true)
	case BottomUpAnchored:
		return r.renderAnchored()
	default:
		return r.render(true, false)
	}
}

type renderer struct {
	opts   *Options
	levels [][]mmr.Digest
}

// maxNodes is the width of the leaf row, which bounds every other row.
func (r renderer) maxNodes() int {
	return len(r.levels[0])
}

func (r renderer) canvasSize() (float64, float64) {
	o := r.opts
	width := o.Margin*2 + float64(r.maxNodes()-1)*o.HSpacing + o.NodeRadius*2
	height := o.Margin*2 + float64(len(r.levels)-1)*o.VSpacing + o.NodeRadius*2
	return width, height
}

func (r renderer) rowY(level int, topDown bool) float64 {
	o := r.opts
	row := level
	if !topDown {
		row = len(r.levels) - 1 - level
	}
	return o.Margin + float64(row)*o.VSpacing + o.NodeRadius
}

func (r renderer) open(b *strings.Builder) {
	width, height := r.canvasSize()
	fmt.Fprintf(b, `<svg width="%.0f" height="%.0f" xmlns="http://www.w3.org/2000/svg">`, width, height)
}

func (r renderer) circle(b *strings.Builder, p point) {
	fmt.Fprintf(b, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="lightblue" stroke="black" />`,
		p.x, p.y, r.opts.NodeRadius)
}

func (r renderer) line(b *strings.Builder, from, to point) {
	fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="gray" />`,
		from.x, from.y, to.x, to.y)
}

// render draws the aligned layouts. Rows are placed top down or bottom up,
// optionally centered over the leaf row, and each completed pair is
// connected to the parent at the halved index in the row above.
func (r renderer) render(topDown, centered bool) string {
	o := r.opts
	var b strings.Builder
	r.open(&b)

	coords := make([][]point, len(r.levels))
	for level, nodes := range r.levels {
		y := r.rowY(level, topDown)
		xStart := o.Margin + o.NodeRadius
		if centered {
			xStart += float64(r.maxNodes()-len(nodes)) * o.HSpacing / 2
		}
		row := make([]point, len(nodes))
		for i := range nodes {
			row[i] = point{x: xStart + float64(i)*o.HSpacing, y: y}
			r.circle(&b, row[i])
		}
		coords[level] = row
	}

	for level, nodes := range r.levels {
		if level+1 >= len(r.levels) {
			break
		}
		next := coords[level+1]
		for i := 0; i+1 < len(nodes); i += 2 {
			// only a completed pair has a parent; an unpaired tail does not
			parent := next[i/2]
			r.line(&b, coords[level][i], parent)
			r.line(&b, coords[level][i+1], parent)
		}
	}

	b.WriteString("</svg>")
	return b.String()
}

// renderAnchored centers the leaf row and derives every higher node position
// from the midpoint of its children, so each mountain is drawn as a
// triangle.
func (r renderer) renderAnchored() string {
	o := r.opts
	var b strings.Builder
	r.open(&b)

	coords := make([][]point, len(r.levels))

	y0 := r.rowY(0, false)
	xStart := o.Margin + o.NodeRadius
	row := make([]point, len(r.levels[0]))
	for i := range r.levels[0] {
		row[i] = point{x: xStart + float64(i)*o.HSpacing, y: y0}
		r.circle(&b, row[i])
	}
	coords[0] = row

	for level := 1; level < len(r.levels); level++ {
		y := r.rowY(level, false)
		row := make([]point, len(r.levels[level]))
		for j := range r.levels[level] {
			left := coords[level-1][2*j]
			right := coords[level-1][2*j+1]
			row[j] = point{x: (left.x + right.x) / 2, y: y}
			r.circle(&b, row[j])
		}
		coords[level] = row
	}

	for level := 1; level < len(r.levels); level++ {
		for j := range r.levels[level] {
			parent := coords[level][j]
			r.line(&b, coords[level-1][2*j], parent)
			r.line(&b, coords[level-1][2*j+1], parent)
		}
	}

	b.WriteString("</svg>")
	return b.String()
}
