package paragraph

// Difference is the outcome of comparing a paragraph's build parameters
// against a new layout request. It drives the minimal corrective action
// applied by Plain.Update.
type Difference uint8

const (
	// DifferenceNone means every compared field matches; the cached
	// layout is still valid.
	DifferenceNone Difference = iota

	// DifferenceBounds means only the layout bounds differ; a cheap
	// in-place Resize suffices.
	DifferenceBounds

	// DifferenceShape means a styling field differs; the paragraph
	// must be fully rebuilt. A simultaneous bounds change still
	// classifies as DifferenceShape, since a rebuild re-wraps anyway.
	DifferenceShape
)

// String returns the string representation of the difference.
func (d Difference) String() string {
	switch d {
	case DifferenceNone:
		return "None"
	case DifferenceBounds:
		return "Bounds"
	case DifferenceShape:
		return "Shape"
	default:
		return unknownStr
	}
}
