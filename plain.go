package paragraph

import "strings"

// Plain caches one laid-out paragraph of plain text. On each Update it
// diffs the request against the cache and applies the cheapest
// sufficient corrective action: nothing, an in-place resize, or a full
// rebuild.
//
// Plain owns its paragraph and a copy of the content string it was
// built from. The copy is needed because a Text request is a transient
// view and the cache must be able to compare content across calls.
//
// Plain is exclusively owned by its caller (typically one per
// displayed text element) and is not safe for concurrent use.
type Plain[F comparable] struct {
	shaper  Shaper[F]
	raw     Paragraph[F]
	content string
}

// NewPlain creates an empty cached paragraph backed by shaper. The
// first Update builds the initial layout.
func NewPlain[F comparable](shaper Shaper[F]) *Plain[F] {
	return &Plain[F]{shaper: shaper}
}

// Update makes the cached paragraph match text, doing the least work
// that suffices.
//
// Content is compared first, byte-exact: a content change always
// requires a full reshape, and the string comparison is cheap enough
// to dominate the common nothing-changed fast path. Otherwise the
// request's layout is handed to the paragraph's own Compare, and the
// classification picks between no action, an in-place Resize, and a
// rebuild.
func (p *Plain[F]) Update(text Text[F]) {
	if p.raw == nil || p.content != text.Content {
		// Clone detaches the copy from any larger backing array the
		// caller's string may be a slice of.
		p.content = strings.Clone(text.Content)
		p.raw = p.shaper.FromText(text)
		logger().Debug("paragraph rebuilt", "reason", "content", "len", len(p.content))
		return
	}

	switch p.raw.Compare(text.Layout) {
	case DifferenceNone:
		// Cache still valid.
	case DifferenceBounds:
		p.raw.Resize(text.Bounds)
		logger().Debug("paragraph resized",
			"width", text.Bounds.Width, "height", text.Bounds.Height)
	case DifferenceShape:
		p.raw = p.shaper.FromText(text)
		logger().Debug("paragraph rebuilt", "reason", "style")
	}
}

// Content returns the text the cached paragraph was built from.
func (p *Plain[F]) Content() string {
	return p.content
}

// HorizontalAlignment returns the horizontal alignment of the cached
// paragraph.
func (p *Plain[F]) HorizontalAlignment() Horizontal {
	if p.raw == nil {
		return AlignLeft
	}
	return p.raw.HorizontalAlignment()
}

// VerticalAlignment returns the vertical alignment of the cached
// paragraph.
func (p *Plain[F]) VerticalAlignment() Vertical {
	if p.raw == nil {
		return AlignTop
	}
	return p.raw.VerticalAlignment()
}

// MinBounds returns the smallest box that fits the cached paragraph's
// contents.
func (p *Plain[F]) MinBounds() Size {
	if p.raw == nil {
		return Size{}
	}
	return p.raw.MinBounds()
}

// MinWidth returns the smallest width that fits the cached paragraph's
// contents.
func (p *Plain[F]) MinWidth() float64 {
	return p.MinBounds().Width
}

// MinHeight returns the smallest height that fits the cached
// paragraph's contents.
func (p *Plain[F]) MinHeight() float64 {
	return p.MinBounds().Height
}

// Raw returns the cached backend paragraph, or nil before the first
// Update. Callers may type-assert it to reach backend-specific
// functionality.
func (p *Plain[F]) Raw() Paragraph[F] {
	return p.raw
}
