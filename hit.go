package paragraph

// Hit is the result of a point-in-paragraph query. It identifies the
// grapheme nearest the queried point.
type Hit struct {
	// Line is the index of the visual line that was hit.
	Line int

	// CharOffset is the byte offset in the paragraph content of the
	// nearest grapheme's first byte.
	CharOffset int
}
