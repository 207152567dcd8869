package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Namespace URIs used when writing slide parts.
const (
	NamespaceDrawing       = "http://schemas.openxmlformats.org/drawingml/2006/main"
	NamespacePresentation  = "http://schemas.openxmlformats.org/presentationml/2006/main"
	NamespaceRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// Slide represents one slide part (p:sld).
type Slide struct {
	CommonData *CommonSlideData `xml:"cSld"`
}

// CommonSlideData holds the slide's shape tree (cSld).
type CommonSlideData struct {
	ShapeTree *GroupShape `xml:"spTree"`
}

// Root returns the slide's shape tree, creating the minimal structure if the
// slide was built empty.
func (s *Slide) Root() *GroupShape {
	if s.CommonData == nil {
		s.CommonData = &CommonSlideData{}
	}
	if s.CommonData.ShapeTree == nil {
		s.CommonData.ShapeTree = newShapeTree()
	}
	return s.CommonData.ShapeTree
}

// NewSlide creates an empty slide with a bare shape tree.
func NewSlide() *Slide {
	return &Slide{
		CommonData: &CommonSlideData{ShapeTree: newShapeTree()},
	}
}

func newShapeTree() *GroupShape {
	return &GroupShape{
		NonVisual: &GroupNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: 1, Name: ""},
		},
		Properties: &GroupShapeProperties{},
	}
}

// ParseSlide parses a slide part.
func ParseSlide(r io.Reader) (*Slide, error) {
	decoder := xml.NewDecoder(r)

	var slide Slide
	if err := decoder.Decode(&slide); err != nil {
		return nil, fmt.Errorf("failed to parse slide: %w", err)
	}

	return &slide, nil
}

// WriteSlide serializes a slide part with its namespace declarations.
func WriteSlide(w io.Writer, s *Slide) error {
	var buf strings.Builder
	encoder := xml.NewEncoder(&buf)

	root := xml.StartElement{
		Name: xml.Name{Local: "p:sld"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns:a"}, Value: NamespaceDrawing},
			{Name: xml.Name{Local: "xmlns:p"}, Value: NamespacePresentation},
			{Name: xml.Name{Local: "xmlns:r"}, Value: NamespaceRelationships},
		},
	}
	if err := encoder.EncodeToken(root); err != nil {
		return err
	}

	cSld := xml.StartElement{Name: xml.Name{Local: "p:cSld"}}
	if err := encoder.EncodeToken(cSld); err != nil {
		return err
	}
	tree := s.Root()
	if err := encoder.EncodeElement(tree, xml.StartElement{Name: xml.Name{Local: "p:spTree"}}); err != nil {
		return err
	}
	if err := encoder.EncodeToken(xml.EndElement{Name: cSld.Name}); err != nil {
		return err
	}

	if err := encoder.EncodeToken(xml.EndElement{Name: root.Name}); err != nil {
		return err
	}
	if err := encoder.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

// SlideID is one entry of the presentation's slide list (p:sldId). The id
// attribute is the stable slide number; the r:id attribute names the
// relationship that resolves to the slide part.
type SlideID struct {
	ID    uint32
	RelID string
}

// UnmarshalXML separates the two id attributes by namespace: the plain id is
// unqualified, the relationship id lives in the relationships namespace.
func (s *SlideID) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch {
		case attr.Name.Local == "id" && attr.Name.Space == "":
			var id uint32
			if _, err := fmt.Sscanf(attr.Value, "%d", &id); err != nil {
				return fmt.Errorf("invalid slide id %q: %w", attr.Value, err)
			}
			s.ID = id
		case attr.Name.Local == "id":
			s.RelID = attr.Value
		}
	}
	return d.Skip()
}

// Presentation represents the core presentation part (p:presentation).
type Presentation struct {
	SlideIDs []SlideID `xml:"sldIdLst>sldId"`
}

// ParsePresentation parses the core presentation part.
func ParsePresentation(r io.Reader) (*Presentation, error) {
	decoder := xml.NewDecoder(r)

	var pres Presentation
	if err := decoder.Decode(&pres); err != nil {
		return nil, fmt.Errorf("failed to parse presentation: %w", err)
	}

	return &pres, nil
}
