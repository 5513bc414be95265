package gotext

import "unicode/utf8"

// computeBreaks marks the glyphs a line may break before. Breaks are
// only allowed at cluster boundaries and follow a simplified set of
// UAX #14 rules: after spaces, tabs and zero-width spaces, after
// hyphens, and around CJK ideographs.
func computeBreaks(content string, glyphs []shapedGlyph) {
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].cluster == glyphs[i-1].cluster {
			continue
		}
		cl := glyphs[i].cluster
		curr, _ := utf8.DecodeRuneInString(content[cl:])
		prev, _ := utf8.DecodeLastRuneInString(content[:cl])
		glyphs[i].breakBefore = allowBreak(prev, curr)
	}
}

// allowBreak reports whether a line may break between prev and curr.
func allowBreak(prev, curr rune) bool {
	if prev == ' ' || prev == '\t' || prev == '\u200b' {
		return true
	}
	if isHyphen(prev) && !isHyphen(curr) {
		return true
	}
	// CJK: break before and after ideographs.
	if isCJK(curr) {
		return true
	}
	if isCJK(prev) && !isClosing(curr) {
		return true
	}
	return false
}

// isHyphen returns true for hyphens and dashes that allow a break after.
func isHyphen(r rune) bool {
	switch r {
	case '-', '‐', '‑', '–', '—':
		return true
	}
	return false
}

// isClosing returns true for closing punctuation that no line may
// start with.
func isClosing(r rune) bool {
	switch r {
	case ')', ']', '}', '”', '’', ',', '.', '、', '。':
		return true
	}
	return false
}

// isCJK returns true if the rune is a CJK character that allows
// breaking on either side.
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) || // CJK Unified Ideographs
		(r >= 0x3400 && r <= 0x4DBF) || // CJK Extension A
		(r >= 0x20000 && r <= 0x2A6DF) || // CJK Extension B
		(r >= 0x3040 && r <= 0x309F) || // Hiragana
		(r >= 0x30A0 && r <= 0x30FF) || // Katakana
		(r >= 0xAC00 && r <= 0xD7AF) || // Hangul Syllables
		(r >= 0xFF00 && r <= 0xFFEF) // Fullwidth forms
}

// wrapBlock greedily wraps a shaped block into lines no wider than
// maxWidth. Word breaks are preferred; when a line has none, it falls
// back to breaking at a cluster boundary. A single cluster wider than
// maxWidth overflows rather than being split.
//
// Trailing whitespace never forces a break: it hangs past the edge and
// is trimmed from the line's reported width.
func wrapBlock(b *shapedBlock, runs []runMetrics, maxWidth float64) []line {
	if len(b.glyphs) == 0 {
		rm := runs[b.defaultRun]
		return []line{{
			start:   b.start,
			height:  rm.lineHeight,
			ascent:  rm.ascent,
			descent: rm.descent,
		}}
	}

	var lines []line
	start := 0
	lastBreak := -1
	var width float64

	for i := 0; i < len(b.glyphs); i++ {
		g := &b.glyphs[i]
		if i > start && g.breakBefore {
			lastBreak = i
		}

		if !g.space && i > start && width+g.advance > maxWidth {
			at := lastBreak
			if at <= start {
				// No word break on this line: fall back to the
				// nearest cluster boundary before the overflow.
				at = i
				for at > start && b.glyphs[at].cluster == b.glyphs[at-1].cluster {
					at--
				}
			}
			if at <= start {
				// A single cluster wider than the bounds; overflow.
				width += g.advance
				continue
			}

			lines = append(lines, buildLine(b.glyphs[start:at], runs))
			start = at
			lastBreak = -1
			width = 0
			i = at - 1 // re-scan from the new line start
			continue
		}

		width += g.advance
	}

	return append(lines, buildLine(b.glyphs[start:], runs))
}

// buildLine assigns pen positions to a stretch of shaped glyphs and
// computes its metrics. Line metrics are the maximum over the runs
// present on the line.
func buildLine(glyphs []shapedGlyph, runs []runMetrics) line {
	var ln line
	ln.glyphs = make([]glyphPos, len(glyphs))
	ln.start = glyphs[0].cluster

	var x float64
	for i, g := range glyphs {
		if g.cluster < ln.start {
			ln.start = g.cluster
		}
		ln.glyphs[i] = glyphPos{
			gid:     g.gid,
			cluster: g.cluster,
			x:       x,
			xOffset: g.xOffset,
			yOffset: g.yOffset,
			advance: g.advance,
		}
		x += g.advance

		rm := &runs[g.run]
		if rm.ascent > ln.ascent {
			ln.ascent = rm.ascent
		}
		if rm.descent > ln.descent {
			ln.descent = rm.descent
		}
		if rm.lineHeight > ln.height {
			ln.height = rm.lineHeight
		}
	}

	ln.full = x
	trimmed := x
	for i := len(glyphs) - 1; i >= 0 && glyphs[i].space; i-- {
		trimmed -= glyphs[i].advance
	}
	ln.width = trimmed
	return ln
}
