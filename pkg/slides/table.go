package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// TableShape is a graphic frame carrying a table payload. Its transform sits
// directly on the frame node rather than inside a shape property block, so it
// does not reuse baseShape.
type TableShape struct {
	sheet  *Sheet
	parent ShapeContainer
	frame  *oxml.GraphicFrame
}

func (t *TableShape) Sheet() *Sheet {
	return t.sheet
}

func (t *TableShape) Parent() ShapeContainer {
	return t.parent
}

func (t *TableShape) setParent(p ShapeContainer) {
	t.parent = p
}

func (t *TableShape) Name() string {
	if t.frame.NonVisual == nil || t.frame.NonVisual.DrawingProps == nil {
		return ""
	}
	return t.frame.NonVisual.DrawingProps.Name
}

func (t *TableShape) Anchor() (Rect, error) {
	xfrm := t.frame.Transform
	if xfrm == nil {
		return Rect{}, NewMissingTransformError("xfrm")
	}
	return readAnchor(xfrm.Off, xfrm.Ext, "off", "ext")
}

func (t *TableShape) SetAnchor(anchor Rect) {
	xfrm := t.frame.EnsureTransform()
	writeAnchor(xfrm.EnsureOff(), xfrm.EnsureExt(), anchor)
}

func (t *TableShape) FlipHorizontal() bool {
	xfrm := t.frame.Transform
	return xfrm != nil && xfrm.FlipH != nil && *xfrm.FlipH
}

func (t *TableShape) FlipVertical() bool {
	xfrm := t.frame.Transform
	return xfrm != nil && xfrm.FlipV != nil && *xfrm.FlipV
}

func (t *TableShape) SetFlipHorizontal(flip bool) {
	v := flip
	t.frame.EnsureTransform().FlipH = &v
}

func (t *TableShape) SetFlipVertical(flip bool) {
	v := flip
	t.frame.EnsureTransform().FlipV = &v
}

func (t *TableShape) Rotation() float64 {
	xfrm := t.frame.Transform
	if xfrm == nil || xfrm.Rot == nil {
		return 0
	}
	return float64(*xfrm.Rot) / DegreeUnits
}

func (t *TableShape) SetRotation(degrees float64) {
	rot := int32(degrees * DegreeUnits)
	t.frame.EnsureTransform().Rot = &rot
}

func (t *TableShape) copyFrom(src Shape) error {
	other, ok := src.(*TableShape)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	if anchor, err := other.Anchor(); err == nil {
		t.SetAnchor(anchor)
	}
	if other.FlipHorizontal() {
		t.SetFlipHorizontal(true)
	}
	if other.FlipVertical() {
		t.SetFlipVertical(true)
	}
	if rot := other.Rotation(); rot != 0 {
		t.SetRotation(rot)
	}
	return nil
}
