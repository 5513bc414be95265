package gotext

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/paragraph"
)

// Shaper builds paragraphs using go-text/typesetting's HarfBuzz
// implementation for advanced shaping, and plain advance-based glyph
// positioning for basic shaping. It implements paragraph.Shaper[*Font].
//
// Shaper is safe for concurrent use: HarfbuzzShaper has internal
// mutable state and is NOT safe for concurrent use, so instances are
// pooled and each build takes its own.
type Shaper struct {
	pool   sync.Pool
	config config
}

var _ paragraph.Shaper[*Font] = (*Shaper)(nil)

// config holds optional Shaper configuration.
type config struct {
	direction Direction
}

// Option configures a Shaper during creation.
type Option func(*config)

// WithDirection sets the base direction used to resolve neutral text
// during bidirectional segmentation. The default is DirectionLTR.
func WithDirection(d Direction) Option {
	return func(c *config) {
		c.direction = d
	}
}

// NewShaper creates a Shaper.
func NewShaper(opts ...Option) *Shaper {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Shaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		config: cfg,
	}
}

// FromText implements paragraph.Shaper.
func (s *Shaper) FromText(text paragraph.Text[*Font]) paragraph.Paragraph[*Font] {
	return s.build([]paragraph.Span[*Font]{{Text: text.Content}}, text.Layout)
}

// FromSpans implements paragraph.Shaper.
func (s *Shaper) FromSpans(spans paragraph.Spans[*Font]) paragraph.Paragraph[*Font] {
	return s.build(spans.Spans, spans.Layout)
}

// build shapes the spans and lays them out within layout.Bounds.
//
// Shaping happens once here; the resulting blocks are retained by the
// Paragraph so that Resize only has to re-wrap.
func (s *Shaper) build(spans []paragraph.Span[*Font], layout paragraph.Layout[*Font]) *Paragraph {
	p := &Paragraph{layout: layout}
	if layout.Font == nil {
		// No font, nothing to shape: a well-defined empty paragraph.
		p.position()
		return p
	}

	if len(spans) == 0 {
		// An empty paragraph still has one empty line, so callers can
		// place a caret on it.
		spans = []paragraph.Span[*Font]{{}}
	}

	runs := make([]runMetrics, len(spans))
	var content strings.Builder
	for i, span := range spans {
		runs[i] = resolveRun(span, layout)
		content.WriteString(span.Text)
	}

	p.runs = runs
	p.blocks = s.shapeBlocks(spans, runs, layout.Shaping)

	text := content.String()
	var glyphs int
	for i := range p.blocks {
		computeBreaks(text, p.blocks[i].glyphs)
		glyphs += len(p.blocks[i].glyphs)
	}

	p.position()
	paragraph.Logger().Debug("gotext: paragraph shaped",
		"bytes", len(text), "glyphs", glyphs, "lines", len(p.lines))
	return p
}

// resolveRun applies a span's styling overrides on top of the
// paragraph defaults.
func resolveRun(span paragraph.Span[*Font], layout paragraph.Layout[*Font]) runMetrics {
	font := span.Font
	if font == nil {
		font = layout.Font
	}
	size := span.Size
	if size <= 0 {
		size = layout.Size
	}
	lh := span.LineHeight
	if lh == (paragraph.LineHeight{}) {
		lh = layout.LineHeight
	}

	m := font.metrics(size)
	return runMetrics{
		font:       font,
		size:       size,
		ascent:     m.ascent,
		descent:    m.descent,
		lineHeight: lh.Pixels(size),
	}
}

// shapeBlocks shapes all spans and splits the glyph stream into blocks
// at hard line breaks. Blocks are addressed by byte offsets into the
// concatenated span content.
func (s *Shaper) shapeBlocks(spans []paragraph.Span[*Font], runs []runMetrics, mode paragraph.Shaping) []shapedBlock {
	var blocks []shapedBlock
	var byteBase int
	cur := shapedBlock{}

	for i, span := range spans {
		text := span.Text
		for {
			nl := strings.IndexByte(text, '\n')
			seg := text
			if nl >= 0 {
				seg = text[:nl]
			}

			cur.glyphs = append(cur.glyphs, s.shapeSegment(seg, byteBase, runs[i], i, mode)...)

			if nl < 0 {
				byteBase += len(text)
				break
			}

			cur.end = byteBase + nl
			blocks = append(blocks, cur)
			byteBase += nl + 1
			cur = shapedBlock{start: byteBase, defaultRun: i}
			text = text[nl+1:]
		}
	}

	cur.end = byteBase
	return append(blocks, cur)
}

// shapeSegment shapes one newline-free piece of a single span.
func (s *Shaper) shapeSegment(seg string, byteBase int, rm runMetrics, run int, mode paragraph.Shaping) []shapedGlyph {
	if seg == "" {
		return nil
	}

	if mode == paragraph.ShapingAdvanced {
		if rm.font.hb != nil {
			return s.shapeAdvanced(seg, byteBase, rm, run)
		}
		// Font parsing for advanced shaping failed at ParseFont time.
		paragraph.Logger().Warn("gotext: falling back to basic shaping",
			"font", rm.font.Name())
	}
	return shapeBasic(seg, byteBase, rm, run)
}

// shapeBasic positions glyphs by their horizontal advances only: no
// kerning, no ligatures, no reordering. One glyph per rune.
func shapeBasic(seg string, byteBase int, rm runMetrics, run int) []shapedGlyph {
	glyphs := make([]shapedGlyph, 0, len(seg))
	for i, r := range seg {
		gid := rm.font.glyphIndex(r)
		glyphs = append(glyphs, shapedGlyph{
			gid:     uint32(gid),
			cluster: byteBase + i,
			advance: rm.font.glyphAdvance(gid, rm.size),
			run:     uint16(run),
			space:   isSpaceRune(r),
		})
	}
	return glyphs
}

// shapeAdvanced runs the segment through bidi segmentation and HarfBuzz
// shaping. Runs are shaped independently and emitted in logical order.
func (s *Shaper) shapeAdvanced(seg string, byteBase int, rm runMetrics, run int) []shapedGlyph {
	runes := []rune(seg)

	// Byte offset of each rune within seg.
	offsets := make([]int, len(runes)+1)
	k := 0
	for i := range seg {
		offsets[k] = i
		k++
	}
	offsets[len(runes)] = len(seg)

	// font.Face is NOT safe for concurrent use, so each build gets its
	// own instance. NewFace is cheap; it wraps the thread-safe *Font.
	face := gtfont.NewFace(rm.font.hb)

	glyphs := make([]shapedGlyph, 0, len(runes))
	for _, br := range bidiRuns(seg, s.config.direction) {
		dir := di.DirectionLTR
		if br.rtl {
			dir = di.DirectionRTL
		}
		sub := runes[br.runeStart:br.runeEnd]

		input := shaping.Input{
			Text:      sub,
			RunStart:  0,
			RunEnd:    len(sub),
			Direction: dir,
			Face:      face,
			Size:      floatToFixed(rm.size),
			Script:    detectScript(sub),
			Language:  language.NewLanguage("en"),
		}

		hb := s.pool.Get().(*shaping.HarfbuzzShaper)
		output := hb.Shape(input)
		s.pool.Put(hb)

		for _, g := range output.Glyphs {
			local := offsets[br.runeStart+g.TextIndex()]
			r, _ := utf8.DecodeRuneInString(seg[local:])
			glyphs = append(glyphs, shapedGlyph{
				gid:     uint32(g.GlyphID),
				cluster: byteBase + local,
				xOffset: fixedToFloat(g.XOffset),
				yOffset: fixedToFloat(g.YOffset),
				advance: fixedToFloat(g.Advance),
				run:     uint16(run),
				space:   isSpaceRune(r),
			})
		}
	}
	return glyphs
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Segments are produced per bidi run, so mixed
// scripts within one run are shaped with the first run's script.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func isSpaceRune(r rune) bool {
	return r == ' ' || r == '\t'
}
