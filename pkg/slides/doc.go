// Package slides provides an object model for PowerPoint presentations (PPTX).
//
// Go-slides opens an OPC package (the zip container PPTX files use), resolves
// its core presentation part, and exposes the slides and their shape trees.
// The central type is GroupShape: an ordered container of shapes with its own
// placement anchor, an interior coordinate space for its children, and typed
// factory methods for every supported shape kind.
//
// # Quick Start
//
//	pres, err := slides.OpenFile("deck.pptx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sheet, err := pres.Slide(0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	group := sheet.RootGroup().CreateGroup()
//	group.SetAnchor(slides.Rect{X: 100, Y: 100, Width: 300, Height: 200})
//	group.SetInteriorAnchor(slides.Rect{Width: 300, Height: 200})
//
//	box := group.CreateTextBox()
//	box.SetText("Hello")
//	box.SetAnchor(slides.Rect{Width: 120, Height: 40})
//
//	out, err := os.Create("out.pptx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Close()
//	if err := pres.Save(out); err != nil {
//	    log.Fatal(err)
//	}
//
// # Coordinates
//
// The public API works in points. Storage uses EMUs (1 point = 12700 EMU),
// converted with round-to-nearest on write. Rotation is stored in 1/60000
// degree units, truncated on write.
//
// # Shape lifecycle
//
// Shapes are created only through their container's Create* methods, which
// allocate the structural XML node, wrap it, and link the parent reference.
// RemoveShape detaches the node and the handle atomically. Inserting a shape
// built by a different container is not supported and fails with
// UnsupportedOperationError.
//
// # Concurrency
//
// A Presentation and its shape trees are not safe for concurrent mutation.
// Callers that share a document across goroutines must serialize access:
// one writer at a time, and no readers while a writer runs.
package slides
