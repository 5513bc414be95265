// Package gotext implements the paragraph backend contract on top of
// go-text/typesetting and golang.org/x/image.
//
// Two shaping paths are provided, selected by the request's
// paragraph.Shaping mode:
//
//   - Basic: glyphs are positioned by their horizontal advances using
//     the font's metric tables. Fast, no kerning or ligatures, no
//     bidirectional handling. Suitable for ASCII and other simple
//     left-to-right text.
//   - Advanced: text is segmented into bidirectional runs (via
//     golang.org/x/text/unicode/bidi) and each run is shaped with
//     go-text/typesetting's HarfBuzz implementation.
//
// Shaping happens once per build; a Resize only re-wraps the retained
// shaped glyphs, which is what makes the paragraph cache's bounds-only
// path cheap.
//
// Shaper is safe for concurrent use. Paragraph values are not; each
// displayed text element owns its own.
package gotext
