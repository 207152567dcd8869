package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// ConnectorShape is a line connecting two points or shapes.
type ConnectorShape struct {
	baseShape
	node *oxml.Connector
}

func (c *ConnectorShape) copyFrom(src Shape) error {
	other, ok := src.(*ConnectorShape)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	c.copyGeometryFrom(other)
	return nil
}
