package xml

import (
	"encoding/xml"
	"fmt"
	"io"
)

// ShapeProperties represents the visual property block of a simple shape
// (spPr). The transform is optional; setters above this layer create it
// through EnsureTransform, readers inspect Transform directly.
type ShapeProperties struct {
	Transform      *Transform      `xml:"xfrm"`
	PresetGeometry *PresetGeometry `xml:"prstGeom"`
	CustomGeometry *CustomGeometry `xml:"custGeom"`
}

// EnsureTransform returns the transform node, creating it if absent.
func (p *ShapeProperties) EnsureTransform() *Transform {
	if p.Transform == nil {
		p.Transform = &Transform{}
	}
	return p.Transform
}

// MarshalXML writes the property block under the caller-supplied name (p:spPr).
func (p ShapeProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Transform != nil {
		if err := e.EncodeElement(p.Transform, xml.StartElement{Name: xml.Name{Local: "a:xfrm"}}); err != nil {
			return err
		}
	}
	if p.PresetGeometry != nil {
		if err := e.EncodeElement(p.PresetGeometry, xml.StartElement{Name: xml.Name{Local: "a:prstGeom"}}); err != nil {
			return err
		}
	}
	if p.CustomGeometry != nil {
		if err := e.EncodeElement(p.CustomGeometry, xml.StartElement{Name: xml.Name{Local: "a:custGeom"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// PresetGeometry marks a shape as using one of the preset geometries (prstGeom).
type PresetGeometry struct {
	Preset string `xml:"prst,attr"`
}

// MarshalXML writes the preset geometry with its (empty) adjust value list.
func (p PresetGeometry) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{{Name: xml.Name{Local: "prst"}, Value: p.Preset}}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	av := xml.StartElement{Name: xml.Name{Local: "a:avLst"}}
	if err := e.EncodeToken(av); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: av.Name}); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// CustomGeometry marks a shape as freeform (custGeom). Path data beyond the
// empty path list is not modelled here.
type CustomGeometry struct{}

// MarshalXML writes the custom geometry with an empty path list.
func (c CustomGeometry) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	pl := xml.StartElement{Name: xml.Name{Local: "a:pathLst"}}
	if err := e.EncodeToken(pl); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: pl.Name}); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GroupShapeProperties represents the property block of a group shape
// (grpSpPr), which carries the group transform variant.
type GroupShapeProperties struct {
	Transform *GroupTransform `xml:"xfrm"`
}

// EnsureTransform returns the group transform node, creating it if absent.
func (p *GroupShapeProperties) EnsureTransform() *GroupTransform {
	if p.Transform == nil {
		p.Transform = &GroupTransform{}
	}
	return p.Transform
}

// MarshalXML writes the group property block under the caller-supplied name.
func (p GroupShapeProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Transform != nil {
		if err := e.EncodeElement(p.Transform, xml.StartElement{Name: xml.Name{Local: "a:xfrm"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TextBody represents the text content of a shape (txBody).
type TextBody struct {
	Paragraphs []*TextParagraph `xml:"p"`
}

// TextParagraph is one paragraph of shape text.
type TextParagraph struct {
	Runs []*TextRun `xml:"r"`
}

// TextRun is a contiguous run of text.
type TextRun struct {
	Text string `xml:"t"`
}

// PlainText returns all run text joined with newlines between paragraphs.
func (t *TextBody) PlainText() string {
	out := ""
	for i, p := range t.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		for _, r := range p.Runs {
			out += r.Text
		}
	}
	return out
}

// SetText replaces the text body content with a single run.
func (t *TextBody) SetText(text string) {
	t.Paragraphs = []*TextParagraph{
		{Runs: []*TextRun{{Text: text}}},
	}
}

// Clone returns a deep copy that shares no nodes with the receiver.
func (t *TextBody) Clone() *TextBody {
	if t == nil {
		return nil
	}
	out := &TextBody{}
	for _, p := range t.Paragraphs {
		np := &TextParagraph{}
		for _, r := range p.Runs {
			np.Runs = append(np.Runs, &TextRun{Text: r.Text})
		}
		out.Paragraphs = append(out.Paragraphs, np)
	}
	return out
}

// MarshalXML writes the text body under the caller-supplied name (p:txBody).
func (t TextBody) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	bodyPr := xml.StartElement{Name: xml.Name{Local: "a:bodyPr"}}
	if err := e.EncodeToken(bodyPr); err != nil {
		return err
	}
	if err := e.EncodeToken(xml.EndElement{Name: bodyPr.Name}); err != nil {
		return err
	}
	for _, p := range t.Paragraphs {
		para := xml.StartElement{Name: xml.Name{Local: "a:p"}}
		if err := e.EncodeToken(para); err != nil {
			return err
		}
		for _, r := range p.Runs {
			run := xml.StartElement{Name: xml.Name{Local: "a:r"}}
			if err := e.EncodeToken(run); err != nil {
				return err
			}
			if err := e.EncodeElement(r.Text, xml.StartElement{Name: xml.Name{Local: "a:t"}}); err != nil {
				return err
			}
			if err := e.EncodeToken(xml.EndElement{Name: run.Name}); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(xml.EndElement{Name: para.Name}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ShapeDrawingProps holds the shape-specific non-visual flags (cNvSpPr).
type ShapeDrawingProps struct {
	TextBox bool `xml:"txBox,attr"`
}

// ShapeNonVisual is the non-visual block of a simple shape (nvSpPr).
type ShapeNonVisual struct {
	DrawingProps *NonVisualDrawingProps `xml:"cNvPr"`
	ShapeProps   *ShapeDrawingProps     `xml:"cNvSpPr"`
}

// Shape represents a plain shape node (sp): auto shape, freeform or text box,
// discriminated by its geometry and the txBox flag.
type Shape struct {
	NonVisual  *ShapeNonVisual  `xml:"nvSpPr"`
	Properties *ShapeProperties `xml:"spPr"`
	TextBody   *TextBody        `xml:"txBody"`
}

// IsTextBox reports whether the node carries the text box flag.
func (s *Shape) IsTextBox() bool {
	return s.NonVisual != nil && s.NonVisual.ShapeProps != nil && s.NonVisual.ShapeProps.TextBox
}

// IsFreeform reports whether the node uses custom geometry.
func (s *Shape) IsFreeform() bool {
	return s.Properties != nil && s.Properties.CustomGeometry != nil
}

// MarshalXML writes the shape node under the caller-supplied name (p:sp).
func (s Shape) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if s.NonVisual != nil {
		if err := marshalNonVisual(e, "p:nvSpPr", s.NonVisual.DrawingProps, func() error {
			cnv := xml.StartElement{Name: xml.Name{Local: "p:cNvSpPr"}}
			if s.NonVisual.ShapeProps != nil && s.NonVisual.ShapeProps.TextBox {
				cnv.Attr = []xml.Attr{{Name: xml.Name{Local: "txBox"}, Value: "1"}}
			}
			if err := e.EncodeToken(cnv); err != nil {
				return err
			}
			return e.EncodeToken(xml.EndElement{Name: cnv.Name})
		}); err != nil {
			return err
		}
	}
	if s.Properties != nil {
		if err := e.EncodeElement(s.Properties, xml.StartElement{Name: xml.Name{Local: "p:spPr"}}); err != nil {
			return err
		}
	}
	if s.TextBody != nil {
		if err := e.EncodeElement(s.TextBody, xml.StartElement{Name: xml.Name{Local: "p:txBody"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// ConnectorNonVisual is the non-visual block of a connector (nvCxnSpPr).
type ConnectorNonVisual struct {
	DrawingProps *NonVisualDrawingProps `xml:"cNvPr"`
}

// Connector represents a connector shape node (cxnSp).
type Connector struct {
	NonVisual  *ConnectorNonVisual `xml:"nvCxnSpPr"`
	Properties *ShapeProperties    `xml:"spPr"`
}

// MarshalXML writes the connector node under the caller-supplied name (p:cxnSp).
func (c Connector) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if c.NonVisual != nil {
		if err := marshalNonVisual(e, "p:nvCxnSpPr", c.NonVisual.DrawingProps, func() error {
			return marshalEmpty(e, "p:cNvCxnSpPr")
		}); err != nil {
			return err
		}
	}
	if c.Properties != nil {
		if err := e.EncodeElement(c.Properties, xml.StartElement{Name: xml.Name{Local: "p:spPr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Blip references a binary image part through a package relationship (a:blip).
type Blip struct {
	Embed string `xml:"embed,attr"`
}

// BlipFill is the image fill block of a picture (blipFill).
type BlipFill struct {
	Blip *Blip `xml:"blip"`
}

// PictureNonVisual is the non-visual block of a picture (nvPicPr).
type PictureNonVisual struct {
	DrawingProps *NonVisualDrawingProps `xml:"cNvPr"`
}

// Picture represents a picture shape node (pic).
type Picture struct {
	NonVisual  *PictureNonVisual `xml:"nvPicPr"`
	BlipFill   *BlipFill         `xml:"blipFill"`
	Properties *ShapeProperties  `xml:"spPr"`
}

// EmbedID returns the relationship ID of the embedded image, or "".
func (p *Picture) EmbedID() string {
	if p.BlipFill == nil || p.BlipFill.Blip == nil {
		return ""
	}
	return p.BlipFill.Blip.Embed
}

// MarshalXML writes the picture node under the caller-supplied name (p:pic).
func (p Picture) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.NonVisual != nil {
		if err := marshalNonVisual(e, "p:nvPicPr", p.NonVisual.DrawingProps, func() error {
			return marshalEmpty(e, "p:cNvPicPr")
		}); err != nil {
			return err
		}
	}
	if p.BlipFill != nil {
		fill := xml.StartElement{Name: xml.Name{Local: "p:blipFill"}}
		if err := e.EncodeToken(fill); err != nil {
			return err
		}
		if p.BlipFill.Blip != nil {
			blip := xml.StartElement{
				Name: xml.Name{Local: "a:blip"},
				Attr: []xml.Attr{{Name: xml.Name{Local: "r:embed"}, Value: p.BlipFill.Blip.Embed}},
			}
			if err := e.EncodeToken(blip); err != nil {
				return err
			}
			if err := e.EncodeToken(xml.EndElement{Name: blip.Name}); err != nil {
				return err
			}
		}
		if err := marshalEmpty(e, "a:stretch"); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: fill.Name}); err != nil {
			return err
		}
	}
	if p.Properties != nil {
		if err := e.EncodeElement(p.Properties, xml.StartElement{Name: xml.Name{Local: "p:spPr"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// FrameNonVisual is the non-visual block of a graphic frame (nvGraphicFramePr).
type FrameNonVisual struct {
	DrawingProps *NonVisualDrawingProps `xml:"cNvPr"`
}

// GraphicData identifies the payload kind of a graphic frame.
type GraphicData struct {
	URI string `xml:"uri,attr"`
}

// Graphic is the payload wrapper of a graphic frame (a:graphic).
type Graphic struct {
	Data *GraphicData `xml:"graphicData"`
}

// GraphicFrame represents a graphic frame node (graphicFrame), the container
// used for tables. Unlike the other shape kinds its transform sits directly
// on the frame rather than inside a property block.
type GraphicFrame struct {
	NonVisual *FrameNonVisual `xml:"nvGraphicFramePr"`
	Transform *Transform      `xml:"xfrm"`
	Graphic   *Graphic        `xml:"graphic"`
}

// EnsureTransform returns the frame transform, creating it if absent.
func (f *GraphicFrame) EnsureTransform() *Transform {
	if f.Transform == nil {
		f.Transform = &Transform{}
	}
	return f.Transform
}

// MarshalXML writes the frame under the caller-supplied name (p:graphicFrame).
func (f GraphicFrame) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if f.NonVisual != nil {
		if err := marshalNonVisual(e, "p:nvGraphicFramePr", f.NonVisual.DrawingProps, func() error {
			return marshalEmpty(e, "p:cNvGraphicFramePr")
		}); err != nil {
			return err
		}
	}
	if f.Transform != nil {
		if err := e.EncodeElement(f.Transform, xml.StartElement{Name: xml.Name{Local: "p:xfrm"}}); err != nil {
			return err
		}
	}
	if f.Graphic != nil {
		g := xml.StartElement{Name: xml.Name{Local: "a:graphic"}}
		if err := e.EncodeToken(g); err != nil {
			return err
		}
		if f.Graphic.Data != nil {
			gd := xml.StartElement{
				Name: xml.Name{Local: "a:graphicData"},
				Attr: []xml.Attr{{Name: xml.Name{Local: "uri"}, Value: f.Graphic.Data.URI}},
			}
			if err := e.EncodeToken(gd); err != nil {
				return err
			}
			if err := e.EncodeToken(xml.EndElement{Name: gd.Name}); err != nil {
				return err
			}
		}
		if err := e.EncodeToken(xml.EndElement{Name: g.Name}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GroupNonVisual is the non-visual block of a group shape (nvGrpSpPr).
type GroupNonVisual struct {
	DrawingProps *NonVisualDrawingProps `xml:"cNvPr"`
}

// GroupShape represents a group shape node (grpSp), and also the slide's
// shape tree root (spTree), which shares the same schema type. Elements
// preserves document order, which is the paint order.
type GroupShape struct {
	NonVisual  *GroupNonVisual
	Properties *GroupShapeProperties
	Elements   []GroupElement
}

// EnsureProperties returns the group property block, creating it if absent.
func (g *GroupShape) EnsureProperties() *GroupShapeProperties {
	if g.Properties == nil {
		g.Properties = &GroupShapeProperties{}
	}
	return g.Properties
}

// Append adds a shape node at the end of the tree (topmost in paint order).
func (g *GroupShape) Append(el GroupElement) {
	g.Elements = append(g.Elements, el)
}

// RemoveShapeNode detaches a plain shape node from the tree. Returns whether
// the node was present.
func (g *GroupShape) RemoveShapeNode(n *Shape) bool {
	return g.removeElement(func(el GroupElement) bool {
		sp, ok := el.(*Shape)
		return ok && sp == n
	})
}

// RemoveGroupNode detaches a nested group node from the tree.
func (g *GroupShape) RemoveGroupNode(n *GroupShape) bool {
	return g.removeElement(func(el GroupElement) bool {
		gr, ok := el.(*GroupShape)
		return ok && gr == n
	})
}

// RemoveConnectorNode detaches a connector node from the tree.
func (g *GroupShape) RemoveConnectorNode(n *Connector) bool {
	return g.removeElement(func(el GroupElement) bool {
		cx, ok := el.(*Connector)
		return ok && cx == n
	})
}

func (g *GroupShape) removeElement(match func(GroupElement) bool) bool {
	for i, el := range g.Elements {
		if match(el) {
			g.Elements = append(g.Elements[:i], g.Elements[i+1:]...)
			return true
		}
	}
	return false
}

// UnmarshalXML decodes a group shape node, preserving element order.
func (g *GroupShape) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "nvGrpSpPr":
				var nv GroupNonVisual
				if err := d.DecodeElement(&nv, &t); err != nil {
					return err
				}
				g.NonVisual = &nv
			case "grpSpPr":
				var props GroupShapeProperties
				if err := d.DecodeElement(&props, &t); err != nil {
					return err
				}
				g.Properties = &props
			case "sp":
				var sp Shape
				if err := d.DecodeElement(&sp, &t); err != nil {
					return err
				}
				g.Elements = append(g.Elements, &sp)
			case "grpSp":
				var grp GroupShape
				if err := d.DecodeElement(&grp, &t); err != nil {
					return err
				}
				g.Elements = append(g.Elements, &grp)
			case "cxnSp":
				var cxn Connector
				if err := d.DecodeElement(&cxn, &t); err != nil {
					return err
				}
				g.Elements = append(g.Elements, &cxn)
			case "pic":
				var pic Picture
				if err := d.DecodeElement(&pic, &t); err != nil {
					return err
				}
				g.Elements = append(g.Elements, &pic)
			case "graphicFrame":
				var frame GraphicFrame
				if err := d.DecodeElement(&frame, &t); err != nil {
					return err
				}
				g.Elements = append(g.Elements, &frame)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
	return nil
}

// MarshalXML encodes the group shape node under the caller-supplied name
// (p:spTree at the root, p:grpSp when nested), preserving element order.
func (g GroupShape) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if g.NonVisual != nil {
		if err := marshalNonVisual(e, "p:nvGrpSpPr", g.NonVisual.DrawingProps, func() error {
			return marshalEmpty(e, "p:cNvGrpSpPr")
		}); err != nil {
			return err
		}
	}
	if g.Properties != nil {
		if err := e.EncodeElement(g.Properties, xml.StartElement{Name: xml.Name{Local: "p:grpSpPr"}}); err != nil {
			return err
		}
	}
	for _, el := range g.Elements {
		var name string
		switch el.(type) {
		case *Shape:
			name = "p:sp"
		case *GroupShape:
			name = "p:grpSp"
		case *Connector:
			name = "p:cxnSp"
		case *Picture:
			name = "p:pic"
		case *GraphicFrame:
			name = "p:graphicFrame"
		default:
			continue
		}
		if err := e.EncodeElement(el, xml.StartElement{Name: xml.Name{Local: name}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// marshalNonVisual writes a non-visual property block: the wrapper element,
// the cNvPr id/name pair, one kind-specific element, and the nvPr terminator.
func marshalNonVisual(e *xml.Encoder, wrapper string, props *NonVisualDrawingProps, kindSpecific func() error) error {
	w := xml.StartElement{Name: xml.Name{Local: wrapper}}
	if err := e.EncodeToken(w); err != nil {
		return err
	}
	if props != nil {
		cnv := xml.StartElement{
			Name: xml.Name{Local: "p:cNvPr"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "id"}, Value: fmt.Sprintf("%d", props.ID)},
				{Name: xml.Name{Local: "name"}, Value: props.Name},
			},
		}
		if err := e.EncodeToken(cnv); err != nil {
			return err
		}
		if err := e.EncodeToken(xml.EndElement{Name: cnv.Name}); err != nil {
			return err
		}
	}
	if kindSpecific != nil {
		if err := kindSpecific(); err != nil {
			return err
		}
	}
	if err := marshalEmpty(e, "p:nvPr"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: w.Name})
}

func marshalEmpty(e *xml.Encoder, name string) error {
	el := xml.StartElement{Name: xml.Name{Local: name}}
	if err := e.EncodeToken(el); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: el.Name})
}
