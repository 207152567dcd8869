package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// Freeform is a plain shape with custom geometry.
type Freeform struct {
	baseShape
	node *oxml.Shape
}

func (f *Freeform) copyFrom(src Shape) error {
	other, ok := src.(*Freeform)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	f.copyGeometryFrom(other)
	return nil
}
