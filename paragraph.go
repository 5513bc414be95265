package paragraph

// Paragraph is a laid-out block of styled text owned by a shaping
// backend. Its internals (line breaks, glyph positions, measured
// extents) are opaque; all access goes through the query methods below.
//
// A Paragraph is exclusively owned by its caller and is not safe for
// concurrent use.
type Paragraph[F comparable] interface {
	// Resize re-wraps the paragraph in place within new bounds,
	// reusing prior shaping where possible. It must not change which
	// characters are part of the content.
	//
	// Resize is only valid while content and styling are unchanged
	// from the paragraph's original build parameters. Plain.Update is
	// the gatekeeper that enforces this; implementations must not
	// re-derive the check.
	Resize(bounds Size)

	// Compare classifies how the paragraph's build parameters differ
	// from layout. Content is deliberately excluded; the caller
	// compares it separately.
	Compare(layout Layout[F]) Difference

	// HorizontalAlignment returns the alignment the paragraph was
	// last built or resized with.
	HorizontalAlignment() Horizontal

	// VerticalAlignment returns the alignment the paragraph was
	// last built or resized with.
	VerticalAlignment() Vertical

	// MinBounds returns the smallest box that fits the current
	// content without clipping. It must be answerable without
	// re-shaping.
	MinBounds() Size

	// HitTest reports the grapheme nearest to point. The second
	// return value is false when the point lies outside the laid-out
	// region; probing outside the text is a normal outcome, not a
	// fault.
	HitTest(point Point) (Hit, bool)

	// GraphemePosition returns the leading edge of the grapheme at
	// the given index within the given visual line. An index equal to
	// the line's grapheme count addresses the line's trailing edge.
	// The second return value is false when either index is out of
	// range.
	GraphemePosition(line, grapheme int) (Point, bool)
}

// Shaper builds paragraphs from text requests. It is the contract a
// text-shaping engine satisfies to plug into the cache, and the
// package's primary extension point.
type Shaper[F comparable] interface {
	// FromText shapes and lays out a plain text request.
	FromText(text Text[F]) Paragraph[F]

	// FromSpans shapes and lays out a rich text request. Per-span
	// font, size and line height override the paragraph defaults for
	// that sub-range.
	FromSpans(spans Spans[F]) Paragraph[F]
}
