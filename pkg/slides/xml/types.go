package xml

// GroupElement represents any shape node that can appear inside a group
// shape's tree (sp, grpSp, cxnSp, pic, graphicFrame).
type GroupElement interface {
	isGroupElement()
}

func (s *Shape) isGroupElement()        {}
func (g *GroupShape) isGroupElement()   {}
func (c *Connector) isGroupElement()    {}
func (p *Picture) isGroupElement()      {}
func (f *GraphicFrame) isGroupElement() {}

// NonVisualDrawingProps holds the id/name pair every shape carries (cNvPr).
type NonVisualDrawingProps struct {
	ID   uint32 `xml:"id,attr"`
	Name string `xml:"name,attr"`
}
