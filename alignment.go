package paragraph

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Horizontal specifies horizontal text alignment within the layout bounds.
type Horizontal uint8

const (
	// AlignLeft aligns text to the left edge (default).
	AlignLeft Horizontal = iota
	// AlignCenter centers text horizontally.
	AlignCenter
	// AlignRight aligns text to the right edge.
	AlignRight
)

// String returns the string representation of the alignment.
func (h Horizontal) String() string {
	switch h {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Vertical specifies vertical text alignment within the layout bounds.
type Vertical uint8

const (
	// AlignTop aligns text to the top edge (default).
	AlignTop Vertical = iota
	// AlignMiddle centers text vertically.
	AlignMiddle
	// AlignBottom aligns text to the bottom edge.
	AlignBottom
)

// String returns the string representation of the alignment.
func (v Vertical) String() string {
	switch v {
	case AlignTop:
		return "Top"
	case AlignMiddle:
		return "Middle"
	case AlignBottom:
		return "Bottom"
	default:
		return unknownStr
	}
}
