// Package paragraph caches laid-out styled text so a render loop can
// avoid re-shaping and re-measuring on every frame.
//
// # Overview
//
// Text shaping is expensive. A paragraph that has not changed since the
// last frame should not be shaped again, and a paragraph whose available
// bounds changed (but whose content and styling did not) only needs a
// cheap re-wrap. This package provides:
//
//   - Paragraph: the capability contract any text-shaping backend
//     implements (building, resizing, self-comparison, bounds queries,
//     hit-testing, grapheme position lookup).
//   - Shaper: the factory contract that builds paragraphs from plain
//     text or styled spans.
//   - Plain: a cached wrapper that owns one backend paragraph plus the
//     content it was built from, and applies the cheapest sufficient
//     corrective action on each Update: nothing, a resize, or a full
//     rebuild.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/paragraph"
//	    "github.com/gogpu/paragraph/gotext"
//	)
//
//	font, err := gotext.ParseFontFromFile("Roboto-Regular.ttf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	shaper := gotext.NewShaper()
//	cached := paragraph.NewPlain[*gotext.Font](shaper)
//
//	// Once per layout pass:
//	cached.Update(paragraph.Text[*gotext.Font]{
//	    Content: "Hello, world!",
//	    Layout: paragraph.Layout[*gotext.Font]{
//	        Bounds:  paragraph.Size{Width: 200, Height: 40},
//	        Size:    16,
//	        Font:    font,
//	        Shaping: paragraph.ShapingAdvanced,
//	    },
//	})
//
//	bounds := cached.MinBounds()
//
// # Backends
//
// The gotext subpackage provides a backend built on
// go-text/typesetting (HarfBuzz shaping) and golang.org/x/image
// (font parsing and metrics). Any other shaping engine can plug in by
// implementing Paragraph and Shaper.
//
// # Redraw scheduling
//
// The redraw subpackage provides the comparable deadline value a render
// loop uses to merge pending redraw demands into the single earliest
// one; it is independent of the cache and shares no state with it.
package paragraph
