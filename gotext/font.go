package gotext

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paragraph"
)

// Sentinel errors for the gotext package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("gotext: empty font data")
)

// Font is a parsed font (TTF or OTF) usable as the comparable font
// handle of this backend: paragraphs and requests refer to fonts by
// *Font pointer identity.
//
// Font is heavyweight and should be shared across the application.
// It is safe for concurrent use; metric lookups use per-call buffers.
type Font struct {
	name string
	sfnt *opentype.Font

	// hb is the go-text representation used for advanced shaping.
	// It is nil when the font could not be parsed by go-text; the
	// shaper then falls back to basic shaping for this font.
	hb *gtfont.Font
}

// ParseFont parses font data (TTF or OTF). The data slice is retained
// only as long as parsing needs it and can be reused after this call.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to parse font: %w", err)
	}

	f := &Font{sfnt: parsed}

	if name, err := parsed.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}

	// Parse the go-text representation eagerly so shaping never has
	// to report an error. A failure here only disables advanced
	// shaping for this font.
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		paragraph.Logger().Warn("gotext: font not usable for advanced shaping",
			"font", f.name, "err", err)
	} else {
		f.hb = face.Font
	}

	return f, nil
}

// ParseFontFromFile parses a font from a file path.
func ParseFontFromFile(path string) (*Font, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gotext: failed to read font file: %w", err)
	}
	return ParseFont(data)
}

// Name returns the font family name, or "" when the font has none.
func (f *Font) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}

// fontMetrics holds vertical metrics scaled to a size, in pixels.
type fontMetrics struct {
	ascent  float64 // distance above the baseline (positive)
	descent float64 // distance below the baseline (positive)
}

// metrics returns the font's vertical metrics at the given size.
func (f *Font) metrics(size float64) fontMetrics {
	if f == nil || f.sfnt == nil {
		return fontMetrics{}
	}

	var buf sfnt.Buffer
	m, err := f.sfnt.Metrics(&buf, floatToFixed(size), font.HintingFull)
	if err != nil {
		return fontMetrics{}
	}

	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return fontMetrics{
		ascent:  fixedToFloat(m.Ascent),
		descent: descent,
	}
}

// glyphIndex returns the font's glyph index for a rune, or 0 (the
// missing-glyph index) when the font has no glyph for it.
func (f *Font) glyphIndex(r rune) sfnt.GlyphIndex {
	if f == nil || f.sfnt == nil {
		return 0
	}
	var buf sfnt.Buffer
	idx, err := f.sfnt.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return idx
}

// glyphAdvance returns the advance width of a glyph at the given size.
func (f *Font) glyphAdvance(gid sfnt.GlyphIndex, size float64) float64 {
	if f == nil || f.sfnt == nil {
		return 0
	}
	var buf sfnt.Buffer
	advance, err := f.sfnt.GlyphAdvance(&buf, gid, floatToFixed(size), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// floatToFixed converts a float64 pixel value to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
