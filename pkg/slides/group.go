package slides

import (
	"fmt"
	"regexp"

	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// GroupShape is a container of shapes grouped together. It owns the ordered
// child list, its own placement anchor, and the interior anchor that
// establishes the coordinate space children are expressed in. Children are
// created through the Create* factories and removed through RemoveShape;
// groups nest without bound.
type GroupShape struct {
	sheet   *Sheet
	parent  ShapeContainer
	node    *oxml.GroupShape
	shapes  []Shape
	drawing *Drawing
}

// newGroupShape wraps a structural group node and builds wrappers for the
// shapes already present in it.
func newGroupShape(node *oxml.GroupShape, sheet *Sheet, parent ShapeContainer, depth int) (*GroupShape, error) {
	if depth > GetGlobalConfig().MaxGroupDepth {
		return nil, NewDocumentError("build shapes", sheet.partName, fmt.Errorf("group nesting exceeds %d levels", GetGlobalConfig().MaxGroupDepth))
	}

	g := &GroupShape{
		sheet:  sheet,
		parent: parent,
		node:   node,
	}

	for _, el := range node.Elements {
		var sh Shape
		switch n := el.(type) {
		case *oxml.Shape:
			sh = wrapShapeNode(n, sheet)
		case *oxml.GroupShape:
			child, err := newGroupShape(n, sheet, g, depth+1)
			if err != nil {
				return nil, err
			}
			sh = child
		case *oxml.Connector:
			if n.Properties == nil {
				n.Properties = &oxml.ShapeProperties{}
			}
			sh = &ConnectorShape{
				baseShape: baseShape{sheet: sheet, nv: connectorNV(n), props: n.Properties},
				node:      n,
			}
		case *oxml.Picture:
			if n.Properties == nil {
				n.Properties = &oxml.ShapeProperties{}
			}
			sh = &PictureShape{
				baseShape: baseShape{sheet: sheet, nv: pictureNV(n), props: n.Properties},
				node:      n,
			}
		case *oxml.GraphicFrame:
			sh = &TableShape{sheet: sheet, frame: n}
		default:
			continue
		}
		sh.setParent(g)
		g.shapes = append(g.shapes, sh)
	}

	return g, nil
}

// wrapShapeNode discriminates a plain shape node into its concrete kind:
// txBox flag makes a text box, custom geometry a freeform, anything else an
// auto shape.
func wrapShapeNode(n *oxml.Shape, sheet *Sheet) Shape {
	if n.Properties == nil {
		n.Properties = &oxml.ShapeProperties{}
	}
	base := baseShape{sheet: sheet, nv: shapeNV(n), props: n.Properties}
	switch {
	case n.IsTextBox():
		return &TextBox{baseShape: base, node: n}
	case n.IsFreeform():
		return &Freeform{baseShape: base, node: n}
	default:
		return &AutoShape{baseShape: base, node: n}
	}
}

func shapeNV(n *oxml.Shape) *oxml.NonVisualDrawingProps {
	if n.NonVisual == nil {
		return nil
	}
	return n.NonVisual.DrawingProps
}

func connectorNV(n *oxml.Connector) *oxml.NonVisualDrawingProps {
	if n.NonVisual == nil {
		return nil
	}
	return n.NonVisual.DrawingProps
}

func pictureNV(n *oxml.Picture) *oxml.NonVisualDrawingProps {
	if n.NonVisual == nil {
		return nil
	}
	return n.NonVisual.DrawingProps
}

func (g *GroupShape) Sheet() *Sheet {
	return g.sheet
}

func (g *GroupShape) Parent() ShapeContainer {
	return g.parent
}

func (g *GroupShape) setParent(p ShapeContainer) {
	g.parent = p
}

func (g *GroupShape) Name() string {
	if g.node.NonVisual == nil || g.node.NonVisual.DrawingProps == nil {
		return ""
	}
	return g.node.NonVisual.DrawingProps.Name
}

// xfrm returns the group transform if present, nil otherwise.
func (g *GroupShape) xfrm() *oxml.GroupTransform {
	if g.node.Properties == nil {
		return nil
	}
	return g.node.Properties.Transform
}

// safeXfrm returns the group transform, creating it if absent.
func (g *GroupShape) safeXfrm() *oxml.GroupTransform {
	return g.node.EnsureProperties().EnsureTransform()
}

// Anchor reads the group's own placement rectangle in points. Reads never
// create the transform; a group that was never positioned fails with
// MissingTransformError.
func (g *GroupShape) Anchor() (Rect, error) {
	xfrm := g.xfrm()
	if xfrm == nil {
		return Rect{}, NewMissingTransformError("xfrm")
	}
	return readAnchor(xfrm.Off, xfrm.Ext, "off", "ext")
}

// SetAnchor writes the group's own placement rectangle, creating the
// transform and its offset/extent if absent.
func (g *GroupShape) SetAnchor(anchor Rect) {
	xfrm := g.safeXfrm()
	writeAnchor(xfrm.EnsureOff(), xfrm.EnsureExt(), anchor)
}

// InteriorAnchor reads the child extents rectangle: the coordinate space
// used for grouping, scaling and rotation of the shapes placed within the
// group. Storage is independent of the group's own anchor.
func (g *GroupShape) InteriorAnchor() (Rect, error) {
	xfrm := g.xfrm()
	if xfrm == nil {
		return Rect{}, NewMissingTransformError("xfrm")
	}
	return readAnchor(xfrm.ChOff, xfrm.ChExt, "chOff", "chExt")
}

// SetInteriorAnchor writes the child extents rectangle.
func (g *GroupShape) SetInteriorAnchor(anchor Rect) {
	xfrm := g.safeXfrm()
	writeAnchor(xfrm.EnsureChOff(), xfrm.EnsureChExt(), anchor)
}

// Shapes returns the live child list in paint order. Callers must not mutate
// the returned slice; all mutation goes through the container operations.
func (g *GroupShape) Shapes() []Shape {
	return g.shapes
}

func (g *GroupShape) getDrawing() *Drawing {
	if g.drawing == nil {
		g.drawing = newDrawing(g.sheet, g.node)
	}
	return g.drawing
}

func (g *GroupShape) adopt(sh Shape) {
	g.shapes = append(g.shapes, sh)
	sh.setParent(g)
}

// CreateAutoShape adds a new auto shape to this group.
func (g *GroupShape) CreateAutoShape() *AutoShape {
	sh := g.getDrawing().createAutoShape()
	g.adopt(sh)
	return sh
}

// CreateFreeform adds a new freeform shape to this group.
func (g *GroupShape) CreateFreeform() *Freeform {
	sh := g.getDrawing().createFreeform()
	g.adopt(sh)
	return sh
}

// CreateTextBox adds a new text box to this group.
func (g *GroupShape) CreateTextBox() *TextBox {
	sh := g.getDrawing().createTextBox()
	g.adopt(sh)
	return sh
}

// CreateConnector adds a new connector to this group.
func (g *GroupShape) CreateConnector() *ConnectorShape {
	sh := g.getDrawing().createConnector()
	g.adopt(sh)
	return sh
}

// CreateGroup adds a new empty nested group to this group.
func (g *GroupShape) CreateGroup() *GroupShape {
	sh := g.getDrawing().createGroup()
	g.adopt(sh)
	return sh
}

// CreateTable adds a new table frame to this group.
func (g *GroupShape) CreateTable() *TableShape {
	sh := g.getDrawing().createTable()
	g.adopt(sh)
	return sh
}

// CreatePicture adds a picture shape backed by an image part already present
// in the package's media store. The index is the 0-based positional picture
// index; it resolves to the 1-based media part name (index 0 is
// ppt/media/image1.*). The new picture's anchor is initialized to the
// image's natural size.
func (g *GroupShape) CreatePicture(pictureIndex int) (*PictureShape, error) {
	pattern := fmt.Sprintf(`^ppt/media/image%d\..*`, pictureIndex+1)
	parts := g.sheet.pres.pkg.FindPartsByName(regexp.MustCompile(pattern))
	if len(parts) == 0 {
		return nil, NewPartNotFoundError(pattern)
	}

	relID := g.sheet.addRelationship(imageRelType, parts[0])

	sh := g.getDrawing().createPicture(relID)
	sh.Resize()
	g.adopt(sh)
	return sh, nil
}

// RemoveShape removes the given shape from this group. It detaches the
// structural node from its kind-specific collection and the handle from the
// logical child list in one step. Plain shapes, nested groups and connectors
// are the supported structural categories; any other node kind fails with
// UnsupportedShapeError. The result reports whether the shape was actually a
// child of this group.
func (g *GroupShape) RemoveShape(sh Shape) (bool, error) {
	switch s := sh.(type) {
	case *AutoShape:
		g.node.RemoveShapeNode(s.node)
	case *Freeform:
		g.node.RemoveShapeNode(s.node)
	case *TextBox:
		g.node.RemoveShapeNode(s.node)
	case *GroupShape:
		g.node.RemoveGroupNode(s.node)
	case *ConnectorShape:
		g.node.RemoveConnectorNode(s.node)
	default:
		return false, NewUnsupportedShapeError(kindName(sh))
	}

	for i, child := range g.shapes {
		if child == sh {
			g.shapes = append(g.shapes[:i], g.shapes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Clear removes all children. The child list is snapshotted first so the
// removals do not disturb the iteration.
func (g *GroupShape) Clear() error {
	snapshot := make([]Shape, len(g.shapes))
	copy(snapshot, g.shapes)
	for _, sh := range snapshot {
		if _, err := g.RemoveShape(sh); err != nil {
			return err
		}
	}
	return nil
}

// AddShape always fails: shapes built by a different container cannot be
// inserted here, because node ownership and the parent linkage would no
// longer be consistent. Build shapes with this group's Create* methods.
func (g *GroupShape) AddShape(sh Shape) error {
	return NewUnsupportedOperationError("AddShape",
		"adding a shape from a different container is not supported - create it from scratch with the Create* methods")
}

// CopyFrom replaces this group's content with a deep structural copy of the
// source group. Pictures are re-imported through the destination document's
// media store, so source and destination may belong to different documents.
// Children of unsupported kinds are skipped with a warning unless strict
// mode is enabled; everything copied before a fatal error is kept.
func (g *GroupShape) CopyFrom(src *GroupShape) error {
	if err := g.Clear(); err != nil {
		return err
	}

	if anchor, err := src.Anchor(); err == nil {
		g.SetAnchor(anchor)
	}
	if interior, err := src.InteriorAnchor(); err == nil {
		g.SetInteriorAnchor(interior)
	}
	if src.FlipHorizontal() {
		g.SetFlipHorizontal(true)
	}
	if src.FlipVertical() {
		g.SetFlipVertical(true)
	}
	if rot := src.Rotation(); rot != 0 {
		g.SetRotation(rot)
	}

	for _, shape := range src.Shapes() {
		var newShape Shape
		switch s := shape.(type) {
		case *TextBox:
			newShape = g.CreateTextBox()
		case *AutoShape:
			newShape = g.CreateAutoShape()
		case *ConnectorShape:
			newShape = g.CreateConnector()
		case *Freeform:
			newShape = g.CreateFreeform()
		case *PictureShape:
			data, format, err := s.Data()
			if err != nil {
				if GetGlobalConfig().StrictMode {
					return err
				}
				GetLogger().Warn("skipping picture whose data could not be read: %v", err)
				continue
			}
			picIndex, err := g.sheet.pres.AddPicture(data, format)
			if err != nil {
				return err
			}
			pic, err := g.CreatePicture(picIndex)
			if err != nil {
				return err
			}
			newShape = pic
		case *GroupShape:
			newShape = g.CreateGroup()
		case *TableShape:
			newShape = g.CreateTable()
		default:
			if GetGlobalConfig().StrictMode {
				return NewUnsupportedShapeError(kindName(shape))
			}
			GetLogger().Warn("copying of %s shapes not supported, skipping", kindName(shape))
			continue
		}

		if err := newShape.copyFrom(shape); err != nil {
			return err
		}
	}

	return nil
}

func (g *GroupShape) copyFrom(src Shape) error {
	other, ok := src.(*GroupShape)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	return g.CopyFrom(other)
}

// Flip and rotation accessors mirror the simple-shape behavior on the group
// transform: unset reads as the default, sets create the transform.

func (g *GroupShape) FlipHorizontal() bool {
	xfrm := g.xfrm()
	return xfrm != nil && xfrm.FlipH != nil && *xfrm.FlipH
}

func (g *GroupShape) FlipVertical() bool {
	xfrm := g.xfrm()
	return xfrm != nil && xfrm.FlipV != nil && *xfrm.FlipV
}

func (g *GroupShape) SetFlipHorizontal(flip bool) {
	v := flip
	g.safeXfrm().FlipH = &v
}

func (g *GroupShape) SetFlipVertical(flip bool) {
	v := flip
	g.safeXfrm().FlipV = &v
}

func (g *GroupShape) Rotation() float64 {
	xfrm := g.xfrm()
	if xfrm == nil || xfrm.Rot == nil {
		return 0
	}
	return float64(*xfrm.Rot) / DegreeUnits
}

// SetRotation stores the angle truncated to 1/60000 degree units.
func (g *GroupShape) SetRotation(degrees float64) {
	rot := int32(degrees * DegreeUnits)
	g.safeXfrm().Rot = &rot
}
