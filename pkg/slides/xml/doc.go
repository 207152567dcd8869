// Package xml provides XML structure definitions and types for PPTX slides.
//
// This package contains the structural DrawingML and PresentationML types used
// by go-slides to parse and manipulate PPTX files. PPTX files are ZIP archives
// (OPC packages) containing XML parts that define the presentation structure
// and binary parts such as images.
//
// # Structure Organization
//
//   - types.go: Core interfaces (GroupElement) and common types
//   - slide.go: Top-level Slide structure and the shape tree root
//   - shapes.go: Shape nodes (sp, grpSp, cxnSp, pic, graphicFrame) and their
//     non-visual property blocks
//   - transform.go: Transform nodes (xfrm) holding offset, extent, flip and
//     rotation fields, including the group variant with the child coordinate
//     space (chOff/chExt)
//
// # Key Concepts
//
// GroupElement: any node that can appear inside a group shape's tree. The
// shape tree preserves document order, which is the paint (z) order.
//
// Transform auto-vivification: every optional transform sub-structure has a
// pair of accessors. The plain getter returns nil when the node is absent;
// the Ensure* variant creates the node on first use. Setters in the layers
// above always go through Ensure*, readers never do.
//
// # XML Namespaces
//
// PPTX slide XML uses three namespaces:
//   - p: (presentation) - PresentationML namespace
//   - a: (drawing) - DrawingML namespace
//   - r: (relationships) - Relationships namespace
//
// Elements are matched by local name on decode and written with their
// conventional prefixes on encode.
package xml
