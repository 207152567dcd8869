package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// Sheet is one slide part: the XML tree, the part's relationships, and the
// shape wrappers built over the tree.
type Sheet struct {
	pres        *Presentation
	partName    string
	slide       *oxml.Slide
	rels        *Relationships
	root        *GroupShape
	nextShapeID uint32
}

func newSheet(pres *Presentation, partName string, slide *oxml.Slide, rels *Relationships) (*Sheet, error) {
	sheet := &Sheet{
		pres:     pres,
		partName: partName,
		slide:    slide,
		rels:     rels,
	}
	sheet.nextShapeID = maxShapeID(slide.Root()) + 1

	root, err := newGroupShape(slide.Root(), sheet, nil, 0)
	if err != nil {
		return nil, err
	}
	sheet.root = root
	return sheet, nil
}

// PartName returns the slide's part name inside the package.
func (s *Sheet) PartName() string {
	return s.partName
}

// Presentation returns the owning document.
func (s *Sheet) Presentation() *Presentation {
	return s.pres
}

// RootGroup returns the slide's shape tree root. The root behaves like any
// other group shape except that it has no parent container.
func (s *Sheet) RootGroup() *GroupShape {
	return s.root
}

// Shapes returns the slide's top-level shapes.
func (s *Sheet) Shapes() []Shape {
	return s.root.Shapes()
}

// addRelationship registers a relationship from this slide part to the given
// package part and returns the new relationship ID.
func (s *Sheet) addRelationship(relType, targetPart string) string {
	target := relativeRelTarget(s.partName, targetPart)
	rel := s.rels.Add(relType, target)
	return rel.ID
}

// relationshipTargetPart resolves a relationship ID to a package part name.
func (s *Sheet) relationshipTargetPart(id string) (string, bool) {
	rel, ok := s.rels.ByID(id)
	if !ok {
		return "", false
	}
	return resolveRelTarget(s.partName, rel.Target), true
}

// allocateShapeID hands out drawing IDs, unique within the slide.
func (s *Sheet) allocateShapeID() uint32 {
	id := s.nextShapeID
	s.nextShapeID++
	return id
}

// maxShapeID walks the shape tree for the highest drawing ID in use.
func maxShapeID(node *oxml.GroupShape) uint32 {
	max := uint32(0)
	if node.NonVisual != nil && node.NonVisual.DrawingProps != nil {
		max = node.NonVisual.DrawingProps.ID
	}
	for _, el := range node.Elements {
		var id uint32
		switch n := el.(type) {
		case *oxml.Shape:
			if n.NonVisual != nil && n.NonVisual.DrawingProps != nil {
				id = n.NonVisual.DrawingProps.ID
			}
		case *oxml.GroupShape:
			id = maxShapeID(n)
		case *oxml.Connector:
			if n.NonVisual != nil && n.NonVisual.DrawingProps != nil {
				id = n.NonVisual.DrawingProps.ID
			}
		case *oxml.Picture:
			if n.NonVisual != nil && n.NonVisual.DrawingProps != nil {
				id = n.NonVisual.DrawingProps.ID
			}
		case *oxml.GraphicFrame:
			if n.NonVisual != nil && n.NonVisual.DrawingProps != nil {
				id = n.NonVisual.DrawingProps.ID
			}
		}
		if id > max {
			max = id
		}
	}
	return max
}
