package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// Drawing allocates new structural nodes inside one group node and wraps
// them in typed shape handles. Every node it creates gets a fresh drawing ID
// and is appended to the group's tree.
type Drawing struct {
	sheet *Sheet
	group *oxml.GroupShape
}

func newDrawing(sheet *Sheet, group *oxml.GroupShape) *Drawing {
	return &Drawing{sheet: sheet, group: group}
}

func (d *Drawing) createAutoShape() *AutoShape {
	node := oxml.NewShapeNode(d.sheet.allocateShapeID())
	d.group.Append(node)
	return &AutoShape{
		baseShape: baseShape{sheet: d.sheet, nv: node.NonVisual.DrawingProps, props: node.Properties},
		node:      node,
	}
}

func (d *Drawing) createFreeform() *Freeform {
	node := oxml.NewFreeformNode(d.sheet.allocateShapeID())
	d.group.Append(node)
	return &Freeform{
		baseShape: baseShape{sheet: d.sheet, nv: node.NonVisual.DrawingProps, props: node.Properties},
		node:      node,
	}
}

func (d *Drawing) createTextBox() *TextBox {
	node := oxml.NewTextBoxNode(d.sheet.allocateShapeID())
	d.group.Append(node)
	return &TextBox{
		baseShape: baseShape{sheet: d.sheet, nv: node.NonVisual.DrawingProps, props: node.Properties},
		node:      node,
	}
}

func (d *Drawing) createConnector() *ConnectorShape {
	node := oxml.NewConnectorNode(d.sheet.allocateShapeID())
	d.group.Append(node)
	return &ConnectorShape{
		baseShape: baseShape{sheet: d.sheet, nv: node.NonVisual.DrawingProps, props: node.Properties},
		node:      node,
	}
}

func (d *Drawing) createGroup() *GroupShape {
	// A new group starts empty, so there is no tree to build wrappers for.
	node := oxml.NewGroupNode(d.sheet.allocateShapeID())
	d.group.Append(node)
	return &GroupShape{sheet: d.sheet, node: node}
}

func (d *Drawing) createPicture(relID string) *PictureShape {
	node := oxml.NewPictureNode(d.sheet.allocateShapeID(), relID)
	d.group.Append(node)
	return &PictureShape{
		baseShape: baseShape{sheet: d.sheet, nv: node.NonVisual.DrawingProps, props: node.Properties},
		node:      node,
	}
}

func (d *Drawing) createTable() *TableShape {
	node := oxml.NewGraphicFrameNode(d.sheet.allocateShapeID())
	d.group.Append(node)
	return &TableShape{sheet: d.sheet, frame: node}
}
