package slides

import (
	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

// TextBox is a plain shape flagged as a text container.
type TextBox struct {
	baseShape
	node *oxml.Shape
}

// Text returns the text box content as plain text.
func (t *TextBox) Text() string {
	if t.node.TextBody == nil {
		return ""
	}
	return t.node.TextBody.PlainText()
}

// SetText replaces the text box content.
func (t *TextBox) SetText(text string) {
	if t.node.TextBody == nil {
		t.node.TextBody = &oxml.TextBody{}
	}
	t.node.TextBody.SetText(text)
}

func (t *TextBox) copyFrom(src Shape) error {
	other, ok := src.(*TextBox)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	t.copyGeometryFrom(other)
	t.node.TextBody = other.node.TextBody.Clone()
	return nil
}
