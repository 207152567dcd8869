package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// AutoShape is a plain shape using one of the preset geometries.
type AutoShape struct {
	baseShape
	node *oxml.Shape
}

func (a *AutoShape) copyFrom(src Shape) error {
	other, ok := src.(*AutoShape)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	a.copyGeometryFrom(other)
	return nil
}
