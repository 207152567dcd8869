package xml

import "fmt"

// Prototype constructors for new structural nodes. Each builds the minimal
// valid node for its shape kind; callers supply the drawing ID, which must be
// unique within the slide.

// NewShapeNode creates a plain auto shape node with a rectangle preset.
func NewShapeNode(id uint32) *Shape {
	return &Shape{
		NonVisual: &ShapeNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("AutoShape %d", id)},
			ShapeProps:   &ShapeDrawingProps{},
		},
		Properties: &ShapeProperties{
			PresetGeometry: &PresetGeometry{Preset: "rect"},
		},
	}
}

// NewTextBoxNode creates a text box node: a plain shape with the txBox flag
// and an empty text body.
func NewTextBoxNode(id uint32) *Shape {
	return &Shape{
		NonVisual: &ShapeNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("TextBox %d", id)},
			ShapeProps:   &ShapeDrawingProps{TextBox: true},
		},
		Properties: &ShapeProperties{
			PresetGeometry: &PresetGeometry{Preset: "rect"},
		},
		TextBody: &TextBody{},
	}
}

// NewFreeformNode creates a freeform node: a plain shape with custom geometry.
func NewFreeformNode(id uint32) *Shape {
	return &Shape{
		NonVisual: &ShapeNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("Freeform %d", id)},
			ShapeProps:   &ShapeDrawingProps{},
		},
		Properties: &ShapeProperties{
			CustomGeometry: &CustomGeometry{},
		},
	}
}

// NewConnectorNode creates a connector node with a line preset.
func NewConnectorNode(id uint32) *Connector {
	return &Connector{
		NonVisual: &ConnectorNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("Connector %d", id)},
		},
		Properties: &ShapeProperties{
			PresetGeometry: &PresetGeometry{Preset: "line"},
		},
	}
}

// NewGroupNode creates an empty nested group node.
func NewGroupNode(id uint32) *GroupShape {
	return &GroupShape{
		NonVisual: &GroupNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("Group %d", id)},
		},
		Properties: &GroupShapeProperties{},
	}
}

// NewPictureNode creates a picture node whose blip fill references the image
// part through the given relationship ID.
func NewPictureNode(id uint32, relID string) *Picture {
	return &Picture{
		NonVisual: &PictureNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("Picture %d", id)},
		},
		BlipFill:   &BlipFill{Blip: &Blip{Embed: relID}},
		Properties: &ShapeProperties{},
	}
}

// TableGraphicURI identifies a table payload inside a graphic frame.
const TableGraphicURI = "http://schemas.openxmlformats.org/drawingml/2006/table"

// NewGraphicFrameNode creates a graphic frame node carrying a table payload.
func NewGraphicFrameNode(id uint32) *GraphicFrame {
	return &GraphicFrame{
		NonVisual: &FrameNonVisual{
			DrawingProps: &NonVisualDrawingProps{ID: id, Name: fmt.Sprintf("Table %d", id)},
		},
		Graphic: &Graphic{Data: &GraphicData{URI: TableGraphicURI}},
	}
}
