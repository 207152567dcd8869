package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// ShapeContainer is implemented by anything that owns an ordered list of
// shapes. Shapes are created through the container's factory methods and
// removed through RemoveShape; the slice returned by Shapes must not be
// mutated directly.
type ShapeContainer interface {
	Shapes() []Shape
	RemoveShape(Shape) (bool, error)
	Clear() error
	AddShape(Shape) error
}

// Shape is the capability set shared by every entity placed inside a group.
// The concrete kinds are AutoShape, Freeform, TextBox, ConnectorShape,
// GroupShape, TableShape and PictureShape; code that needs per-kind behavior
// dispatches with a type switch over that closed set.
type Shape interface {
	// Anchor reads the shape's placement rectangle in points. It fails with
	// MissingTransformError if no write has established the transform.
	Anchor() (Rect, error)
	// SetAnchor writes the placement rectangle, creating the transform node
	// and its offset/extent sub-structures if absent.
	SetAnchor(Rect)

	FlipHorizontal() bool
	FlipVertical() bool
	SetFlipHorizontal(bool)
	SetFlipVertical(bool)

	// Rotation returns degrees; 0 if never set.
	Rotation() float64
	SetRotation(float64)

	// Name returns the shape's non-visual name.
	Name() string
	// Parent returns the container that currently owns this shape, or nil
	// for a slide's root group.
	Parent() ShapeContainer
	// Sheet returns the slide the shape belongs to.
	Sheet() *Sheet

	setParent(ShapeContainer)
	copyFrom(src Shape) error
}

// baseShape carries the state shared by all simple (spPr-backed) shapes:
// the sheet, the non-owning parent back-reference, and the property block
// holding the transform.
type baseShape struct {
	sheet  *Sheet
	parent ShapeContainer
	nv     *oxml.NonVisualDrawingProps
	props  *oxml.ShapeProperties
}

func (b *baseShape) Sheet() *Sheet {
	return b.sheet
}

func (b *baseShape) Parent() ShapeContainer {
	return b.parent
}

func (b *baseShape) setParent(p ShapeContainer) {
	b.parent = p
}

func (b *baseShape) Name() string {
	if b.nv == nil {
		return ""
	}
	return b.nv.Name
}

// xfrm returns the transform if present, nil otherwise. Readers use this.
func (b *baseShape) xfrm() *oxml.Transform {
	return b.props.Transform
}

// safeXfrm returns the transform, creating it if absent. Setters use this.
func (b *baseShape) safeXfrm() *oxml.Transform {
	return b.props.EnsureTransform()
}

func (b *baseShape) Anchor() (Rect, error) {
	xfrm := b.xfrm()
	if xfrm == nil {
		return Rect{}, NewMissingTransformError("xfrm")
	}
	return readAnchor(xfrm.Off, xfrm.Ext, "off", "ext")
}

func (b *baseShape) SetAnchor(anchor Rect) {
	xfrm := b.safeXfrm()
	writeAnchor(xfrm.EnsureOff(), xfrm.EnsureExt(), anchor)
}

func (b *baseShape) FlipHorizontal() bool {
	xfrm := b.xfrm()
	return xfrm != nil && xfrm.FlipH != nil && *xfrm.FlipH
}

func (b *baseShape) FlipVertical() bool {
	xfrm := b.xfrm()
	return xfrm != nil && xfrm.FlipV != nil && *xfrm.FlipV
}

func (b *baseShape) SetFlipHorizontal(flip bool) {
	v := flip
	b.safeXfrm().FlipH = &v
}

func (b *baseShape) SetFlipVertical(flip bool) {
	v := flip
	b.safeXfrm().FlipV = &v
}

func (b *baseShape) Rotation() float64 {
	xfrm := b.xfrm()
	if xfrm == nil || xfrm.Rot == nil {
		return 0
	}
	return float64(*xfrm.Rot) / DegreeUnits
}

// SetRotation stores the angle truncated to 1/60000 degree units.
func (b *baseShape) SetRotation(degrees float64) {
	rot := int32(degrees * DegreeUnits)
	b.safeXfrm().Rot = &rot
}

// copyGeometryFrom propagates anchor, flips and rotation from another shape.
// A source without an established transform contributes nothing.
func (b *baseShape) copyGeometryFrom(src Shape) {
	if anchor, err := src.Anchor(); err == nil {
		b.SetAnchor(anchor)
	}
	if src.FlipHorizontal() {
		b.SetFlipHorizontal(true)
	}
	if src.FlipVertical() {
		b.SetFlipVertical(true)
	}
	if rot := src.Rotation(); rot != 0 {
		b.SetRotation(rot)
	}
}

// readAnchor converts stored EMU offset/extent nodes into a point rectangle.
// The field names appear in the error when a sub-structure is missing.
func readAnchor(off *oxml.Point2D, ext *oxml.PositiveSize2D, offField, extField string) (Rect, error) {
	if off == nil {
		return Rect{}, NewMissingTransformError(offField)
	}
	if ext == nil {
		return Rect{}, NewMissingTransformError(extField)
	}
	return Rect{
		X:      ToPoints(off.X),
		Y:      ToPoints(off.Y),
		Width:  ToPoints(ext.Cx),
		Height: ToPoints(ext.Cy),
	}, nil
}

// writeAnchor converts a point rectangle into EMU offset/extent nodes.
func writeAnchor(off *oxml.Point2D, ext *oxml.PositiveSize2D, anchor Rect) {
	off.X = ToEMU(anchor.X)
	off.Y = ToEMU(anchor.Y)
	ext.Cx = ToEMU(anchor.Width)
	ext.Cy = ToEMU(anchor.Height)
}

// kindName names a shape's kind in diagnostics.
func kindName(sh Shape) string {
	switch sh.(type) {
	case *AutoShape:
		return "autoShape"
	case *Freeform:
		return "freeform"
	case *TextBox:
		return "textBox"
	case *ConnectorShape:
		return "connector"
	case *GroupShape:
		return "group"
	case *TableShape:
		return "table"
	case *PictureShape:
		return "picture"
	default:
		return "unknown"
	}
}
