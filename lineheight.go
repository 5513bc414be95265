package paragraph

// DefaultLineHeightFactor is the relative line height used when a
// LineHeight is left at its zero value.
const DefaultLineHeightFactor = 1.3

type lineHeightMode uint8

const (
	lineHeightRelative lineHeightMode = iota
	lineHeightAbsolute
)

// LineHeight controls the vertical distance between paragraph lines.
// It is either a factor of the text size or an absolute pixel value.
// The zero value means a relative factor of DefaultLineHeightFactor.
//
// LineHeight values are comparable with ==, which is what Compare
// relies on to classify styling changes.
type LineHeight struct {
	mode  lineHeightMode
	value float64
}

// RelativeLineHeight returns a line height of factor times the text size.
func RelativeLineHeight(factor float64) LineHeight {
	return LineHeight{mode: lineHeightRelative, value: factor}
}

// AbsoluteLineHeight returns a fixed line height in pixels.
func AbsoluteLineHeight(pixels float64) LineHeight {
	return LineHeight{mode: lineHeightAbsolute, value: pixels}
}

// Pixels resolves the line height to pixels for the given text size.
func (lh LineHeight) Pixels(textSize float64) float64 {
	switch lh.mode {
	case lineHeightAbsolute:
		return lh.value
	default:
		factor := lh.value
		if factor <= 0 {
			factor = DefaultLineHeightFactor
		}
		return factor * textSize
	}
}
