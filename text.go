package paragraph

// Layout is the content-independent portion of a text request:
// everything that parameterizes shaping and wrapping except the text
// itself. Content is carried separately (see Text and Spans) because
// content comparison requires owning a copy that backends do not
// necessarily retain; Paragraph.Compare therefore operates on Layout
// alone.
//
// The font type parameter F must be comparable; backends typically use
// a pointer to their font handle (e.g. *gotext.Font).
type Layout[F comparable] struct {
	// Bounds is the box the text is laid out within. Dimensions may
	// be Unbounded.
	Bounds Size

	// Size is the font size in pixels.
	Size float64

	// LineHeight is the vertical distance between lines.
	LineHeight LineHeight

	// Font is the font the text is shaped with.
	Font F

	// HorizontalAlignment positions lines within Bounds.Width.
	HorizontalAlignment Horizontal

	// VerticalAlignment positions the line stack within Bounds.Height.
	VerticalAlignment Vertical

	// Shaping selects the shaping strategy.
	Shaping Shaping
}

// Text describes a paragraph of plain text to lay out.
//
// Text is a view, not an owner: backend implementations must not
// retain it or assume Content outlives the call that received it.
type Text[F comparable] struct {
	// Content is the text to lay out.
	Content string

	Layout[F]
}

// Spans describes a paragraph of rich text composed of styled spans
// sharing one set of layout bounds and alignments.
type Spans[F comparable] struct {
	// Spans is the ordered sequence of styled runs. Their
	// concatenated text is the paragraph content.
	Spans []Span[F]

	Layout[F]
}

// Span is a run of text with styling overrides. Zero-valued fields
// inherit the paragraph's own styling.
type Span[F comparable] struct {
	// Text is the span's content.
	Text string

	// Size overrides the paragraph font size when non-zero.
	Size float64

	// LineHeight overrides the paragraph line height when set;
	// the zero value inherits.
	LineHeight LineHeight

	// Font overrides the paragraph font when non-zero.
	Font F
}

// Content returns the concatenated text of all spans.
func (s Spans[F]) Content() string {
	switch len(s.Spans) {
	case 0:
		return ""
	case 1:
		return s.Spans[0].Text
	}
	var n int
	for _, span := range s.Spans {
		n += len(span.Text)
	}
	buf := make([]byte, 0, n)
	for _, span := range s.Spans {
		buf = append(buf, span.Text...)
	}
	return string(buf)
}
