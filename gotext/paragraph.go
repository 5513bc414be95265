package gotext

import (
	"math"

	"github.com/gogpu/paragraph"
)

// shapedGlyph is one shaped glyph before line wrapping. Positions are
// assigned by wrapping; a shaped glyph only knows its advance.
type shapedGlyph struct {
	gid     uint32
	cluster int // byte offset in the paragraph content of the cluster start
	xOffset float64
	yOffset float64
	advance float64
	run     uint16 // index into the paragraph's run metrics
	space   bool   // whitespace, trimmed at line ends
	// breakBefore marks a wrap opportunity: a line may break before
	// this glyph. Always false within a cluster.
	breakBefore bool
}

// runMetrics holds resolved styling for one styled span.
type runMetrics struct {
	font       *Font
	size       float64
	ascent     float64
	descent    float64
	lineHeight float64
}

// shapedBlock is a hard-break-separated stretch of shaped glyphs. The
// shaping is retained across resizes; only wrapping is redone.
type shapedBlock struct {
	glyphs     []shapedGlyph
	start, end int // byte range in content, excluding any trailing newline
	defaultRun int // metrics used when the block has no glyphs
}

// glyphPos is a glyph positioned within a line.
type glyphPos struct {
	gid     uint32
	cluster int
	x       float64 // pen position relative to the line's left edge
	xOffset float64
	yOffset float64
	advance float64
}

// line is one laid-out visual line.
type line struct {
	glyphs  []glyphPos
	start   int     // byte offset of the line's first cluster
	width   float64 // advance width with trailing whitespace trimmed
	full    float64 // advance width including trailing whitespace
	x, y    float64 // top-left corner of the line box in bounds space
	height  float64
	ascent  float64
	descent float64
}

// baseline returns the Y position glyphs sit on, placing the text
// block centered within the line box (half-leading above and below).
func (ln *line) baseline() float64 {
	leading := ln.height - (ln.ascent + ln.descent)
	return ln.y + leading/2 + ln.ascent
}

// Glyph is a positioned glyph in bounds space, ready for a renderer.
type Glyph struct {
	// ID is the glyph index in the font.
	ID uint32

	// Cluster is the byte offset in the paragraph content of the
	// glyph's cluster. Used for hit testing and cursor positioning.
	Cluster int

	// X, Y position the glyph's origin on its line's baseline.
	X, Y float64
}

// Paragraph is a laid-out paragraph produced by Shaper. It implements
// paragraph.Paragraph[*Font].
//
// The zero value is a well-defined empty paragraph.
//
// A Paragraph is exclusively owned by its caller and is not safe for
// concurrent use.
type Paragraph struct {
	layout    paragraph.Layout[*Font]
	runs      []runMetrics
	blocks    []shapedBlock
	lines     []line
	minBounds paragraph.Size
}

var _ paragraph.Paragraph[*Font] = (*Paragraph)(nil)

// Resize re-wraps the paragraph within new bounds, reusing the shaped
// glyphs. Only valid while content and styling are unchanged; see the
// paragraph.Paragraph contract.
func (p *Paragraph) Resize(bounds paragraph.Size) {
	p.layout.Bounds = bounds
	p.position()
}

// Compare classifies how the paragraph's build parameters differ from
// layout. Content is not part of the comparison.
func (p *Paragraph) Compare(layout paragraph.Layout[*Font]) paragraph.Difference {
	if p.layout == layout {
		return paragraph.DifferenceNone
	}

	styled := layout
	styled.Bounds = p.layout.Bounds
	if p.layout == styled {
		return paragraph.DifferenceBounds
	}

	// A combined bounds and styling change still requires a rebuild,
	// so it classifies the same as a styling change.
	return paragraph.DifferenceShape
}

// HorizontalAlignment returns the alignment the paragraph was last
// built or resized with.
func (p *Paragraph) HorizontalAlignment() paragraph.Horizontal {
	return p.layout.HorizontalAlignment
}

// VerticalAlignment returns the alignment the paragraph was last
// built or resized with.
func (p *Paragraph) VerticalAlignment() paragraph.Vertical {
	return p.layout.VerticalAlignment
}

// MinBounds returns the smallest box that fits the laid-out content.
// It is recorded during layout; no re-shaping happens here.
func (p *Paragraph) MinBounds() paragraph.Size {
	return p.minBounds
}

// NumLines returns the number of visual lines.
func (p *Paragraph) NumLines() int {
	return len(p.lines)
}

// Glyphs returns all glyphs positioned in bounds space, line by line.
// The slice is freshly allocated on each call.
func (p *Paragraph) Glyphs() []Glyph {
	var n int
	for i := range p.lines {
		n += len(p.lines[i].glyphs)
	}
	glyphs := make([]Glyph, 0, n)
	for i := range p.lines {
		ln := &p.lines[i]
		base := ln.baseline()
		for _, g := range ln.glyphs {
			glyphs = append(glyphs, Glyph{
				ID:      g.gid,
				Cluster: g.cluster,
				X:       ln.x + g.x + g.xOffset,
				Y:       base + g.yOffset,
			})
		}
	}
	return glyphs
}

// HitTest reports the grapheme nearest to point. A point above the
// first line or below the last is outside; horizontally the nearest
// grapheme on the hit line is reported even when the point lies in the
// alignment margin.
func (p *Paragraph) HitTest(point paragraph.Point) (paragraph.Hit, bool) {
	for i := range p.lines {
		ln := &p.lines[i]
		if point.Y < ln.y || point.Y >= ln.y+ln.height {
			continue
		}

		groups := ln.graphemes()
		if len(groups) == 0 {
			return paragraph.Hit{Line: i, CharOffset: ln.start}, true
		}

		rel := point.X - ln.x
		best := groups[0]
		bestDist := math.Abs(rel - (best.x + best.width/2))
		for _, g := range groups[1:] {
			if d := math.Abs(rel - (g.x + g.width/2)); d < bestDist {
				best, bestDist = g, d
			}
		}
		return paragraph.Hit{Line: i, CharOffset: best.cluster}, true
	}
	return paragraph.Hit{}, false
}

// GraphemePosition returns the leading edge of the grapheme at the
// given index within the given visual line. An index equal to the
// line's grapheme count addresses the trailing edge, so a caret can be
// placed after the last character.
func (p *Paragraph) GraphemePosition(lineIdx, grapheme int) (paragraph.Point, bool) {
	if lineIdx < 0 || lineIdx >= len(p.lines) || grapheme < 0 {
		return paragraph.Point{}, false
	}
	ln := &p.lines[lineIdx]
	groups := ln.graphemes()
	switch {
	case grapheme < len(groups):
		return paragraph.Point{X: ln.x + groups[grapheme].x, Y: ln.y}, true
	case grapheme == len(groups):
		return paragraph.Point{X: ln.x + ln.full, Y: ln.y}, true
	default:
		return paragraph.Point{}, false
	}
}

// graphemeGroup is a run of glyphs sharing one cluster: the backend's
// grapheme unit. Combining marks shape into the base character's
// cluster, and a ligature covering several characters forms a single
// group.
type graphemeGroup struct {
	cluster int
	x       float64
	width   float64
}

func (ln *line) graphemes() []graphemeGroup {
	if len(ln.glyphs) == 0 {
		return nil
	}
	groups := make([]graphemeGroup, 0, len(ln.glyphs))
	for i := 0; i < len(ln.glyphs); {
		j := i
		var width float64
		for ; j < len(ln.glyphs) && ln.glyphs[j].cluster == ln.glyphs[i].cluster; j++ {
			width += ln.glyphs[j].advance
		}
		groups = append(groups, graphemeGroup{
			cluster: ln.glyphs[i].cluster,
			x:       ln.glyphs[i].x,
			width:   width,
		})
		i = j
	}
	return groups
}

// position wraps the shaped blocks into lines within the current
// bounds and aligns them. Shaping is reused; only wrapping and
// placement change.
func (p *Paragraph) position() {
	p.lines = nil
	p.minBounds = paragraph.Size{}

	bounds := p.layout.Bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		// Degenerate bounds produce a paragraph with no visible lines.
		return
	}
	if len(p.blocks) == 0 {
		return
	}

	lines := make([]line, 0, len(p.blocks))
	for i := range p.blocks {
		lines = append(lines, wrapBlock(&p.blocks[i], p.runs, bounds.Width)...)
	}

	var y, maxWidth float64
	for i := range lines {
		ln := &lines[i]
		ln.y = y
		y += ln.height
		if ln.width > maxWidth {
			maxWidth = ln.width
		}
	}
	total := y

	alignWidth := bounds.Width
	if math.IsInf(alignWidth, 1) {
		alignWidth = maxWidth
	}
	for i := range lines {
		ln := &lines[i]
		switch p.layout.HorizontalAlignment {
		case paragraph.AlignCenter:
			ln.x = (alignWidth - ln.width) / 2
		case paragraph.AlignRight:
			ln.x = alignWidth - ln.width
		}
		if ln.x < 0 {
			ln.x = 0
		}
	}

	if !math.IsInf(bounds.Height, 1) {
		if extra := bounds.Height - total; extra > 0 {
			var dy float64
			switch p.layout.VerticalAlignment {
			case paragraph.AlignMiddle:
				dy = extra / 2
			case paragraph.AlignBottom:
				dy = extra
			}
			for i := range lines {
				lines[i].y += dy
			}
		}
	}

	p.lines = lines
	p.minBounds = paragraph.Size{Width: maxWidth, Height: total}
}
