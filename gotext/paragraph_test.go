package gotext

import (
	"math"
	"testing"

	"github.com/gogpu/paragraph"
)

func TestParagraph_Compare(t *testing.T) {
	f := testFont(t)
	other := testFont(t) // separate parse: a distinct handle
	s := NewShaper()

	base := paragraph.Layout[*Font]{
		Bounds:     paragraph.Size{Width: 200, Height: 50},
		Size:       16,
		LineHeight: paragraph.RelativeLineHeight(1.3),
		Font:       f,
	}
	p := build(t, s, paragraph.Text[*Font]{Content: "compare", Layout: base})

	tests := []struct {
		name   string
		mutate func(*paragraph.Layout[*Font])
		want   paragraph.Difference
	}{
		{"identical", func(*paragraph.Layout[*Font]) {}, paragraph.DifferenceNone},
		{"bounds width", func(l *paragraph.Layout[*Font]) { l.Bounds.Width = 300 }, paragraph.DifferenceBounds},
		{"bounds height", func(l *paragraph.Layout[*Font]) { l.Bounds.Height = 300 }, paragraph.DifferenceBounds},
		{"size", func(l *paragraph.Layout[*Font]) { l.Size = 18 }, paragraph.DifferenceShape},
		{"line height", func(l *paragraph.Layout[*Font]) { l.LineHeight = paragraph.AbsoluteLineHeight(30) }, paragraph.DifferenceShape},
		{"font", func(l *paragraph.Layout[*Font]) { l.Font = other }, paragraph.DifferenceShape},
		{"horizontal alignment", func(l *paragraph.Layout[*Font]) { l.HorizontalAlignment = paragraph.AlignCenter }, paragraph.DifferenceShape},
		{"vertical alignment", func(l *paragraph.Layout[*Font]) { l.VerticalAlignment = paragraph.AlignBottom }, paragraph.DifferenceShape},
		{"shaping", func(l *paragraph.Layout[*Font]) { l.Shaping = paragraph.ShapingAdvanced }, paragraph.DifferenceShape},
		{"bounds and style", func(l *paragraph.Layout[*Font]) { l.Bounds.Width = 300; l.Size = 18 }, paragraph.DifferenceShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := base
			tt.mutate(&layout)
			if got := p.Compare(layout); got != tt.want {
				t.Errorf("Compare = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParagraph_Resize(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	p := build(t, s, textRequest(f, "hello world hello world",
		paragraph.Size{Width: 300, Height: 500}, paragraph.ShapingBasic))
	wide := p.NumLines()

	p.Resize(paragraph.Size{Width: 80, Height: 500})
	if got := p.NumLines(); got <= wide {
		t.Errorf("NumLines() after narrowing = %d, want > %d", got, wide)
	}
	if w := p.MinBounds().Width; w > 80 {
		t.Errorf("MinBounds().Width = %v, want <= 80", w)
	}

	// Resizing back restores the original wrapping: shaping was
	// reused, not redone.
	p.Resize(paragraph.Size{Width: 300, Height: 500})
	if got := p.NumLines(); got != wide {
		t.Errorf("NumLines() after restoring = %d, want %d", got, wide)
	}
}

func TestParagraph_ResizeDegenerate(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	p := build(t, s, textRequest(f, "vanishing", paragraph.Size{Width: 200, Height: 50}, paragraph.ShapingBasic))

	p.Resize(paragraph.Size{})
	if got := p.NumLines(); got != 0 {
		t.Errorf("NumLines() at zero bounds = %d, want 0", got)
	}
	if got := p.MinBounds(); got != (paragraph.Size{}) {
		t.Errorf("MinBounds() at zero bounds = %v, want zero", got)
	}

	// The shaped content survives a degenerate resize.
	p.Resize(paragraph.Size{Width: 200, Height: 50})
	if got := p.NumLines(); got != 1 {
		t.Errorf("NumLines() after restoring = %d, want 1", got)
	}
}

func TestParagraph_HitTest(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	p := build(t, s, textRequest(f, "Hello", paragraph.Size{Width: 200, Height: 100}, paragraph.ShapingBasic))

	// Inside the first character.
	hit, ok := p.HitTest(paragraph.Pt(2, 5))
	if !ok {
		t.Fatal("point on the first line should hit")
	}
	if hit.Line != 0 || hit.CharOffset != 0 {
		t.Errorf("hit = %+v, want line 0, offset 0", hit)
	}

	// In the alignment margin to the right: nearest is the last glyph.
	hit, ok = p.HitTest(paragraph.Pt(190, 5))
	if !ok {
		t.Fatal("point in the right margin of the line should hit")
	}
	if hit.CharOffset != len("Hello")-1 {
		t.Errorf("hit offset = %d, want %d", hit.CharOffset, len("Hello")-1)
	}

	// Below the laid-out text: outside.
	if _, ok := p.HitTest(paragraph.Pt(5, 60)); ok {
		t.Error("point below the text should not hit")
	}
	// Above the first line: outside.
	if _, ok := p.HitTest(paragraph.Pt(5, -1)); ok {
		t.Error("point above the text should not hit")
	}
}

func TestParagraph_HitTest_SecondLine(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	p := build(t, s, textRequest(f, "one\ntwo", paragraph.Size{Width: 200, Height: 100}, paragraph.ShapingBasic))
	if p.NumLines() != 2 {
		t.Fatalf("NumLines() = %d, want 2", p.NumLines())
	}

	lineHeight := 1.3 * 16
	hit, ok := p.HitTest(paragraph.Pt(2, lineHeight+5))
	if !ok {
		t.Fatal("point on the second line should hit")
	}
	if hit.Line != 1 {
		t.Errorf("hit line = %d, want 1", hit.Line)
	}
	if hit.CharOffset != len("one\n") {
		t.Errorf("hit offset = %d, want %d", hit.CharOffset, len("one\n"))
	}
}

func TestParagraph_GraphemePosition(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	p := build(t, s, textRequest(f, "Hi", paragraph.Size{Width: 200, Height: 100}, paragraph.ShapingBasic))

	pos, ok := p.GraphemePosition(0, 0)
	if !ok || pos != paragraph.Pt(0, 0) {
		t.Errorf("GraphemePosition(0, 0) = %v, %v, want origin", pos, ok)
	}

	second, ok := p.GraphemePosition(0, 1)
	if !ok {
		t.Fatal("GraphemePosition(0, 1) should exist")
	}
	if second.X <= 0 {
		t.Errorf("second grapheme X = %v, want > 0", second.X)
	}

	// One past the last grapheme addresses the trailing edge.
	trailing, ok := p.GraphemePosition(0, 2)
	if !ok {
		t.Fatal("trailing edge should exist")
	}
	if trailing.X <= second.X {
		t.Errorf("trailing edge X = %v, want > %v", trailing.X, second.X)
	}

	// Out of range.
	if _, ok := p.GraphemePosition(0, 3); ok {
		t.Error("grapheme index past the trailing edge should not exist")
	}
	if _, ok := p.GraphemePosition(1, 0); ok {
		t.Error("line index out of range should not exist")
	}
	if _, ok := p.GraphemePosition(-1, 0); ok {
		t.Error("negative line index should not exist")
	}
	if _, ok := p.GraphemePosition(0, -1); ok {
		t.Error("negative grapheme index should not exist")
	}
}

func TestParagraph_Alignment(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	req := textRequest(f, "Hi", paragraph.Size{Width: 100, Height: 100}, paragraph.ShapingBasic)
	req.HorizontalAlignment = paragraph.AlignRight
	req.VerticalAlignment = paragraph.AlignBottom
	p := build(t, s, req)

	if got := p.HorizontalAlignment(); got != paragraph.AlignRight {
		t.Errorf("HorizontalAlignment() = %v, want Right", got)
	}
	if got := p.VerticalAlignment(); got != paragraph.AlignBottom {
		t.Errorf("VerticalAlignment() = %v, want Bottom", got)
	}

	pos, ok := p.GraphemePosition(0, 0)
	if !ok {
		t.Fatal("GraphemePosition(0, 0) should exist")
	}

	wantX := 100 - p.MinBounds().Width
	if math.Abs(pos.X-wantX) > 1e-6 {
		t.Errorf("right-aligned X = %v, want %v", pos.X, wantX)
	}
	wantY := 100 - p.MinBounds().Height
	if math.Abs(pos.Y-wantY) > 1e-6 {
		t.Errorf("bottom-aligned Y = %v, want %v", pos.Y, wantY)
	}
}

func TestParagraph_AlignmentCentered(t *testing.T) {
	f := testFont(t)
	s := NewShaper()

	req := textRequest(f, "Hi", paragraph.Size{Width: 100, Height: 100}, paragraph.ShapingBasic)
	req.HorizontalAlignment = paragraph.AlignCenter
	req.VerticalAlignment = paragraph.AlignMiddle
	p := build(t, s, req)

	pos, ok := p.GraphemePosition(0, 0)
	if !ok {
		t.Fatal("GraphemePosition(0, 0) should exist")
	}
	bounds := p.MinBounds()
	if wantX := (100 - bounds.Width) / 2; math.Abs(pos.X-wantX) > 1e-6 {
		t.Errorf("centered X = %v, want %v", pos.X, wantX)
	}
	if wantY := (100 - bounds.Height) / 2; math.Abs(pos.Y-wantY) > 1e-6 {
		t.Errorf("middle Y = %v, want %v", pos.Y, wantY)
	}
}

func TestParagraph_ZeroValue(t *testing.T) {
	var p Paragraph

	if got := p.NumLines(); got != 0 {
		t.Errorf("NumLines() = %d, want 0", got)
	}
	if got := p.MinBounds(); got != (paragraph.Size{}) {
		t.Errorf("MinBounds() = %v, want zero", got)
	}
	if _, ok := p.HitTest(paragraph.Pt(0, 0)); ok {
		t.Error("empty paragraph should not hit")
	}
	if _, ok := p.GraphemePosition(0, 0); ok {
		t.Error("empty paragraph should have no grapheme positions")
	}
	if got := len(p.Glyphs()); got != 0 {
		t.Errorf("len(Glyphs()) = %d, want 0", got)
	}
}

// =============================================================================
// Integration with the cache wrapper
// =============================================================================

func TestPlain_WithGotextBackend(t *testing.T) {
	f := testFont(t)
	s := NewShaper()
	plain := paragraph.NewPlain[*Font](s)

	req := func(content string, width float64) paragraph.Text[*Font] {
		return textRequest(f, content, paragraph.Size{Width: width, Height: 40}, paragraph.ShapingBasic)
	}

	plain.Update(req("Hello", 100))
	first := plain.Raw()
	if first == nil {
		t.Fatal("Raw() should be set after the first update")
	}

	// Bounds-only change resizes in place: same backend instance.
	plain.Update(req("Hello", 200))
	if plain.Raw() != first {
		t.Error("bounds-only update should keep the same paragraph instance")
	}
	if w := plain.MinWidth(); w > 200 {
		t.Errorf("MinWidth = %v, want <= 200", w)
	}

	// Content change rebuilds: a new backend instance.
	plain.Update(req("World", 200))
	if plain.Raw() == first {
		t.Error("content change should rebuild the paragraph")
	}
	if plain.Content() != "World" {
		t.Errorf("Content() = %q, want %q", plain.Content(), "World")
	}

	// Identical request leaves everything untouched.
	second := plain.Raw()
	plain.Update(req("World", 200))
	if plain.Raw() != second {
		t.Error("identical update should not rebuild")
	}
}
