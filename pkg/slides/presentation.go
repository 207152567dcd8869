package slides

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strings"

	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"
)

const (
	contentTypesPartName = "[Content_Types].xml"
	presentationPartName = "ppt/presentation.xml"

	presentationContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	slideContentType        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	relsContentType         = "application/vnd.openxmlformats-package.relationships+xml"
)

var imagePartPattern = regexp.MustCompile(`^ppt/media/image[0-9]+\.`)

// contentTypes is the binding for [Content_Types].xml.
type contentTypes struct {
	XMLName   xml.Name           `xml:"Types"`
	Namespace string             `xml:"xmlns,attr"`
	Defaults  []contentTypeEntry `xml:"Default"`
	Overrides []contentTypePart  `xml:"Override"`
}

type contentTypeEntry struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type contentTypePart struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// Presentation is a PPTX document: the OPC package, its core presentation
// part, and the slides reachable from it. It also acts as the document-level
// media store that picture shapes import image data through.
type Presentation struct {
	pkg          *Package
	corePartName string
	doc          *oxml.Presentation
	sheets       []*Sheet
}

// Open reads a presentation from zip data.
func Open(r io.ReaderAt, size int64) (*Presentation, error) {
	pkg, err := OpenPackage(r, size)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// OpenFile reads a presentation from a file path.
func OpenFile(path string) (*Presentation, error) {
	pkg, err := OpenPackageFile(path)
	if err != nil {
		return nil, err
	}
	return fromPackage(pkg)
}

// OpenBytes reads a presentation from PPTX bytes.
func OpenBytes(data []byte) (*Presentation, error) {
	return Open(bytes.NewReader(data), int64(len(data)))
}

func fromPackage(pkg *Package) (*Presentation, error) {
	corePart, err := pkg.CorePartName()
	if err != nil {
		return nil, err
	}

	content, ok := pkg.Part(corePart)
	if !ok {
		return nil, NewDocumentError("open", corePart, fmt.Errorf("core part missing"))
	}

	doc, err := oxml.ParsePresentation(bytes.NewReader(content))
	if err != nil {
		return nil, NewDocumentError("parse", corePart, err)
	}

	p := &Presentation{
		pkg:          pkg,
		corePartName: corePart,
		doc:          doc,
	}

	coreRels, err := pkg.Relationships(corePart)
	if err != nil {
		return nil, NewDocumentError("parse", corePart, err)
	}

	for _, sldID := range doc.SlideIDs {
		rel, ok := coreRels.ByID(sldID.RelID)
		if !ok {
			return nil, NewDocumentError("open", corePart, fmt.Errorf("slide relationship %s not found", sldID.RelID))
		}
		partName := resolveRelTarget(corePart, rel.Target)

		slideContent, ok := pkg.Part(partName)
		if !ok {
			return nil, NewDocumentError("open", partName, fmt.Errorf("slide part missing"))
		}

		slide, err := oxml.ParseSlide(bytes.NewReader(slideContent))
		if err != nil {
			return nil, NewDocumentError("parse", partName, err)
		}

		slideRels, err := pkg.Relationships(partName)
		if err != nil {
			return nil, NewDocumentError("parse", partName, err)
		}

		sheet, err := newSheet(p, partName, slide, slideRels)
		if err != nil {
			return nil, err
		}
		p.sheets = append(p.sheets, sheet)
	}

	return p, nil
}

// New creates an empty presentation with no slides.
func New() *Presentation {
	pkg := NewPackage()

	ct := &contentTypes{
		Namespace: "http://schemas.openxmlformats.org/package/2006/content-types",
		Defaults: []contentTypeEntry{
			{Extension: "rels", ContentType: relsContentType},
			{Extension: "xml", ContentType: "application/xml"},
		},
		Overrides: []contentTypePart{
			{PartName: "/" + presentationPartName, ContentType: presentationContentType},
		},
	}
	p := &Presentation{
		pkg:          pkg,
		corePartName: presentationPartName,
		doc:          &oxml.Presentation{},
	}
	if err := p.writeContentTypes(ct); err != nil {
		// Marshaling a fixed struct cannot fail.
		panic(err)
	}

	rootRels := &Relationships{}
	rootRels.Add(coreDocumentRelType, "/"+presentationPartName)
	if err := pkg.SetRelationships("", rootRels); err != nil {
		panic(err)
	}

	pkg.SetPart(presentationPartName, []byte(xml.Header+`<p:presentation xmlns:p="`+oxml.NamespacePresentation+`" xmlns:r="`+oxml.NamespaceRelationships+`"><p:sldIdLst/></p:presentation>`))

	return p
}

// SlideCount returns the number of slides.
func (p *Presentation) SlideCount() int {
	return len(p.sheets)
}

// Slide returns the i-th slide (0-based).
func (p *Presentation) Slide(i int) (*Sheet, error) {
	if i < 0 || i >= len(p.sheets) {
		return nil, NewDocumentError("slide", fmt.Sprintf("index %d", i), fmt.Errorf("out of range, have %d slides", len(p.sheets)))
	}
	return p.sheets[i], nil
}

// Slides returns all slides in presentation order.
func (p *Presentation) Slides() []*Sheet {
	return p.sheets
}

// AddSlide appends a new empty slide and returns its sheet.
func (p *Presentation) AddSlide() (*Sheet, error) {
	num := len(p.sheets) + 1
	partName := fmt.Sprintf("ppt/slides/slide%d.xml", num)
	for p.pkg.HasPart(partName) {
		num++
		partName = fmt.Sprintf("ppt/slides/slide%d.xml", num)
	}

	slide := oxml.NewSlide()

	coreRels, err := p.pkg.Relationships(p.corePartName)
	if err != nil {
		return nil, NewDocumentError("parse", p.corePartName, err)
	}
	rel := coreRels.Add(slideRelType, relativeRelTarget(p.corePartName, partName))
	if err := p.pkg.SetRelationships(p.corePartName, coreRels); err != nil {
		return nil, err
	}

	maxID := uint32(255)
	for _, id := range p.doc.SlideIDs {
		if id.ID > maxID {
			maxID = id.ID
		}
	}
	p.doc.SlideIDs = append(p.doc.SlideIDs, oxml.SlideID{ID: maxID + 1, RelID: rel.ID})

	if err := p.addContentTypeOverride("/"+partName, slideContentType); err != nil {
		return nil, err
	}

	sheet, err := newSheet(p, partName, slide, &Relationships{})
	if err != nil {
		return nil, err
	}
	p.sheets = append(p.sheets, sheet)
	return sheet, nil
}

// AddPicture imports image data into the document's media store and returns
// the new picture's 0-based positional index, suitable for passing straight
// to GroupShape.CreatePicture. The part name carries the 1-based number:
// the first picture is ppt/media/image1.<ext>.
func (p *Presentation) AddPicture(data []byte, format PictureFormat) (int, error) {
	existing := len(p.pkg.FindPartsByName(imagePartPattern))
	index := existing

	partName := fmt.Sprintf("ppt/media/image%d%s", index+1, format.Extension())
	p.pkg.SetPart(partName, data)

	ext := strings.TrimPrefix(format.Extension(), ".")
	if err := p.addContentTypeDefault(ext, format.MIME()); err != nil {
		return 0, err
	}

	return index, nil
}

// Package exposes the underlying OPC package.
func (p *Presentation) Package() *Package {
	return p.pkg
}

// Save serializes all slides and relationships back into the package and
// writes it as a zip archive.
func (p *Presentation) Save(w io.Writer) error {
	for _, sheet := range p.sheets {
		var buf bytes.Buffer
		if err := oxml.WriteSlide(&buf, sheet.slide); err != nil {
			return NewDocumentError("save", sheet.partName, err)
		}
		p.pkg.SetPart(sheet.partName, buf.Bytes())

		if len(sheet.rels.Relationship) > 0 {
			if err := p.pkg.SetRelationships(sheet.partName, sheet.rels); err != nil {
				return NewDocumentError("save", sheet.partName, err)
			}
		}
	}

	if err := p.writePresentationPart(); err != nil {
		return err
	}

	return p.pkg.Save(w)
}

func (p *Presentation) writePresentationPart() error {
	var buf strings.Builder
	buf.WriteString(xml.Header)
	buf.WriteString(`<p:presentation xmlns:p="` + oxml.NamespacePresentation + `" xmlns:r="` + oxml.NamespaceRelationships + `">`)
	buf.WriteString(`<p:sldIdLst>`)
	for _, id := range p.doc.SlideIDs {
		buf.WriteString(fmt.Sprintf(`<p:sldId id="%d" r:id="%s"/>`, id.ID, id.RelID))
	}
	buf.WriteString(`</p:sldIdLst>`)
	buf.WriteString(`</p:presentation>`)
	p.pkg.SetPart(p.corePartName, []byte(buf.String()))
	return nil
}

func (p *Presentation) readContentTypes() (*contentTypes, error) {
	content, ok := p.pkg.Part(contentTypesPartName)
	if !ok {
		return &contentTypes{
			Namespace: "http://schemas.openxmlformats.org/package/2006/content-types",
		}, nil
	}
	var ct contentTypes
	if err := xml.Unmarshal(content, &ct); err != nil {
		return nil, NewDocumentError("parse", contentTypesPartName, err)
	}
	return &ct, nil
}

func (p *Presentation) writeContentTypes(ct *contentTypes) error {
	content, err := xml.Marshal(ct)
	if err != nil {
		return NewDocumentError("save", contentTypesPartName, err)
	}
	p.pkg.SetPart(contentTypesPartName, append([]byte(xml.Header), content...))
	return nil
}

func (p *Presentation) addContentTypeDefault(extension, contentType string) error {
	ct, err := p.readContentTypes()
	if err != nil {
		return err
	}
	for _, d := range ct.Defaults {
		if d.Extension == extension {
			return nil
		}
	}
	ct.Defaults = append(ct.Defaults, contentTypeEntry{Extension: extension, ContentType: contentType})
	return p.writeContentTypes(ct)
}

func (p *Presentation) addContentTypeOverride(partName, contentType string) error {
	ct, err := p.readContentTypes()
	if err != nil {
		return err
	}
	for _, o := range ct.Overrides {
		if o.PartName == partName {
			return nil
		}
	}
	ct.Overrides = append(ct.Overrides, contentTypePart{PartName: partName, ContentType: contentType})
	return p.writeContentTypes(ct)
}
