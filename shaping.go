package paragraph

// Shaping selects the text shaping strategy for a paragraph.
type Shaping uint8

const (
	// ShapingBasic positions glyphs by their horizontal advances only.
	// It is cheap and sufficient for ASCII and other simple
	// left-to-right scripts, but performs no kerning, no ligature
	// substitution, and no bidirectional reordering.
	ShapingBasic Shaping = iota

	// ShapingAdvanced runs full Unicode-aware shaping: bidirectional
	// segmentation, script detection, and OpenType shaping (kerning,
	// ligatures, contextual forms). Use it for any text that may
	// contain non-Latin scripts.
	ShapingAdvanced
)

// String returns the string representation of the shaping mode.
func (s Shaping) String() string {
	switch s {
	case ShapingBasic:
		return "Basic"
	case ShapingAdvanced:
		return "Advanced"
	default:
		return unknownStr
	}
}
