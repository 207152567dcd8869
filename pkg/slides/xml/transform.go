package xml

import (
	"encoding/xml"
	"fmt"
)

// Point2D represents an offset in EMUs (a:off, a:chOff).
type Point2D struct {
	X int64 `xml:"x,attr"`
	Y int64 `xml:"y,attr"`
}

// PositiveSize2D represents an extent in EMUs (a:ext, a:chExt).
type PositiveSize2D struct {
	Cx int64 `xml:"cx,attr"`
	Cy int64 `xml:"cy,attr"`
}

// Transform represents the 2D transform of a simple shape (a:xfrm).
// Nil sub-structures and attribute pointers mean "not set".
type Transform struct {
	Rot   *int32          `xml:"rot,attr"`
	FlipH *bool           `xml:"flipH,attr"`
	FlipV *bool           `xml:"flipV,attr"`
	Off   *Point2D        `xml:"off"`
	Ext   *PositiveSize2D `xml:"ext"`
}

// EnsureOff returns the offset node, creating it if absent.
func (t *Transform) EnsureOff() *Point2D {
	if t.Off == nil {
		t.Off = &Point2D{}
	}
	return t.Off
}

// EnsureExt returns the extent node, creating it if absent.
func (t *Transform) EnsureExt() *PositiveSize2D {
	if t.Ext == nil {
		t.Ext = &PositiveSize2D{}
	}
	return t.Ext
}

// MarshalXML writes the transform under the element name supplied by the
// caller (a:xfrm for DrawingML shape properties, p:xfrm on graphic frames).
func (t Transform) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = transformAttrs(t.Rot, t.FlipH, t.FlipV)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if t.Off != nil {
		if err := e.EncodeElement(t.Off, xml.StartElement{Name: xml.Name{Local: "a:off"}}); err != nil {
			return err
		}
	}
	if t.Ext != nil {
		if err := e.EncodeElement(t.Ext, xml.StartElement{Name: xml.Name{Local: "a:ext"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GroupTransform represents the 2D transform of a group shape (a:xfrm on
// grpSpPr). In addition to the group's own offset and extent it carries the
// child coordinate space (chOff/chExt) that nested shapes are expressed in.
type GroupTransform struct {
	Rot   *int32          `xml:"rot,attr"`
	FlipH *bool           `xml:"flipH,attr"`
	FlipV *bool           `xml:"flipV,attr"`
	Off   *Point2D        `xml:"off"`
	Ext   *PositiveSize2D `xml:"ext"`
	ChOff *Point2D        `xml:"chOff"`
	ChExt *PositiveSize2D `xml:"chExt"`
}

// EnsureOff returns the offset node, creating it if absent.
func (t *GroupTransform) EnsureOff() *Point2D {
	if t.Off == nil {
		t.Off = &Point2D{}
	}
	return t.Off
}

// EnsureExt returns the extent node, creating it if absent.
func (t *GroupTransform) EnsureExt() *PositiveSize2D {
	if t.Ext == nil {
		t.Ext = &PositiveSize2D{}
	}
	return t.Ext
}

// EnsureChOff returns the child-space offset node, creating it if absent.
func (t *GroupTransform) EnsureChOff() *Point2D {
	if t.ChOff == nil {
		t.ChOff = &Point2D{}
	}
	return t.ChOff
}

// EnsureChExt returns the child-space extent node, creating it if absent.
func (t *GroupTransform) EnsureChExt() *PositiveSize2D {
	if t.ChExt == nil {
		t.ChExt = &PositiveSize2D{}
	}
	return t.ChExt
}

// MarshalXML writes the group transform under the supplied element name.
func (t GroupTransform) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = transformAttrs(t.Rot, t.FlipH, t.FlipV)
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	children := []struct {
		name string
		node interface{}
	}{
		{"a:off", t.Off},
		{"a:ext", t.Ext},
		{"a:chOff", t.ChOff},
		{"a:chExt", t.ChExt},
	}
	for _, c := range children {
		switch n := c.node.(type) {
		case *Point2D:
			if n == nil {
				continue
			}
			if err := e.EncodeElement(n, xml.StartElement{Name: xml.Name{Local: c.name}}); err != nil {
				return err
			}
		case *PositiveSize2D:
			if n == nil {
				continue
			}
			if err := e.EncodeElement(n, xml.StartElement{Name: xml.Name{Local: c.name}}); err != nil {
				return err
			}
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

func transformAttrs(rot *int32, flipH, flipV *bool) []xml.Attr {
	var attrs []xml.Attr
	if rot != nil {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "rot"}, Value: fmt.Sprintf("%d", *rot)})
	}
	if flipH != nil {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "flipH"}, Value: boolAttr(*flipH)})
	}
	if flipV != nil {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: "flipV"}, Value: boolAttr(*flipV)})
	}
	return attrs
}

func boolAttr(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
