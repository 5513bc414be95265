package gotext

import "golang.org/x/text/unicode/bidi"

// Direction is the base text direction used to resolve neutral
// characters during bidirectional segmentation.
type Direction uint8

const (
	// DirectionLTR resolves neutral text as left-to-right (default).
	DirectionLTR Direction = iota
	// DirectionRTL resolves neutral text as right-to-left.
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return "Unknown"
	}
}

// bidiRun is a maximal run of uniform direction, addressed by rune
// indices into the segmented text.
type bidiRun struct {
	runeStart, runeEnd int // [runeStart, runeEnd)
	rtl                bool
}

// bidiRuns splits text into maximal runs of uniform direction using
// the Unicode bidirectional algorithm. Runs are returned in logical
// order. An empty text yields no runs.
func bidiRuns(text string, base Direction) []bidiRun {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	levels := make([]int, len(runes))

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	var p bidi.Paragraph
	_, _ = p.SetString(text, bidi.DefaultDirection(defaultDir))

	if ordering, err := p.Order(); err == nil {
		for i := 0; i < ordering.NumRuns(); i++ {
			run := ordering.Run(i)
			// run.Pos() returns RUNE indices (start, end inclusive).
			start, end := run.Pos()
			level := 0
			if run.Direction() == bidi.RightToLeft {
				level = 1
			}
			for j := start; j <= end && j < len(levels); j++ {
				levels[j] = level
			}
		}
	}

	runs := make([]bidiRun, 0, 2)
	start := 0
	for i := 1; i <= len(levels); i++ {
		if i < len(levels) && levels[i] == levels[start] {
			continue
		}
		runs = append(runs, bidiRun{
			runeStart: start,
			runeEnd:   i,
			rtl:       levels[start] == 1,
		})
		start = i
	}
	return runs
}
