package slides

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	coreDocumentRelType = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	slideRelType        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	imageRelType        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
)

// Relationship represents a relationship in the OPC package
type Relationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

// Relationships represents the collection of relationships of one part
type Relationships struct {
	XMLName      xml.Name       `xml:"Relationships"`
	Namespace    string         `xml:"xmlns,attr"`
	Relationship []Relationship `xml:"Relationship"`
}

// ByID returns the relationship with the given ID, if present.
func (r *Relationships) ByID(id string) (Relationship, bool) {
	for _, rel := range r.Relationship {
		if rel.ID == id {
			return rel, true
		}
	}
	return Relationship{}, false
}

// Add appends a relationship with a freshly allocated rId and returns it.
func (r *Relationships) Add(relType, target string) Relationship {
	rel := Relationship{
		ID:     nextRelationshipID(r),
		Type:   relType,
		Target: target,
	}
	r.Relationship = append(r.Relationship, rel)
	return rel
}

// nextRelationshipID generates the next available relationship ID
func nextRelationshipID(rels *Relationships) string {
	maxID := 0

	for _, rel := range rels.Relationship {
		if strings.HasPrefix(rel.ID, "rId") {
			idStr := rel.ID[3:]
			if id, err := strconv.Atoi(idStr); err == nil && id > maxID {
				maxID = id
			}
		}
	}

	return fmt.Sprintf("rId%d", maxID+1)
}

// Package is a mutable in-memory OPC package: a flat store of named parts.
// Part names follow zip conventions (no leading slash).
type Package struct {
	parts map[string][]byte
	order []string
}

// NewPackage creates an empty package.
func NewPackage() *Package {
	return &Package{parts: make(map[string][]byte)}
}

// OpenPackage reads an OPC package from zip data.
func OpenPackage(r io.ReaderAt, size int64) (*Package, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	pkg := NewPackage()
	for _, file := range zipReader.File {
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open part %s: %w", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read part %s: %w", file.Name, err)
		}
		pkg.SetPart(file.Name, content)
	}

	return pkg, nil
}

// OpenPackageFile reads an OPC package from a file path.
func OpenPackageFile(filePath string) (*Package, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return OpenPackage(bytes.NewReader(content), int64(len(content)))
}

// SetPart stores a part, replacing any previous content under the same name.
func (p *Package) SetPart(name string, content []byte) {
	if _, ok := p.parts[name]; !ok {
		p.order = append(p.order, name)
	}
	p.parts[name] = content
}

// Part retrieves the content of a part.
func (p *Package) Part(name string) ([]byte, bool) {
	content, ok := p.parts[name]
	return content, ok
}

// HasPart reports whether a part exists.
func (p *Package) HasPart(name string) bool {
	_, ok := p.parts[name]
	return ok
}

// PartNames returns all part names in insertion order.
func (p *Package) PartNames() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

// FindPartsByName returns the names of all parts matching the pattern,
// sorted lexically.
func (p *Package) FindPartsByName(pattern *regexp.Regexp) []string {
	var names []string
	for name := range p.parts {
		if pattern.MatchString(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Relationships parses the relationships of the given part. A missing
// relationships part yields an empty collection, not an error.
func (p *Package) Relationships(partName string) (*Relationships, error) {
	relPath := relationshipsPartName(partName)

	content, ok := p.parts[relPath]
	if !ok {
		return &Relationships{}, nil
	}

	var rels Relationships
	if err := xml.Unmarshal(content, &rels); err != nil {
		return nil, fmt.Errorf("failed to parse relationships: %w", err)
	}

	return &rels, nil
}

// SetRelationships serializes the relationships of the given part back into
// the package.
func (p *Package) SetRelationships(partName string, rels *Relationships) error {
	if rels.Namespace == "" {
		rels.Namespace = "http://schemas.openxmlformats.org/package/2006/relationships"
	}
	content, err := xml.Marshal(rels)
	if err != nil {
		return fmt.Errorf("failed to serialize relationships: %w", err)
	}
	p.SetPart(relationshipsPartName(partName), append([]byte(xml.Header), content...))
	return nil
}

// CorePartName resolves the package's core document part through the
// package-level relationships (_rels/.rels).
func (p *Package) CorePartName() (string, error) {
	rels, err := p.Relationships("")
	if err != nil {
		return "", NewDocumentError("open", "_rels/.rels", err)
	}

	for _, rel := range rels.Relationship {
		if rel.Type == coreDocumentRelType {
			return strings.TrimPrefix(rel.Target, "/"), nil
		}
	}

	return "", NewDocumentError("open", "_rels/.rels", fmt.Errorf("no core document relationship"))
}

// Save writes the package as a zip archive.
func (p *Package) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, name := range p.order {
		fw, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to create zip entry %s: %w", name, err)
		}
		if _, err := fw.Write(p.parts[name]); err != nil {
			return fmt.Errorf("failed to write zip entry %s: %w", name, err)
		}
	}
	return zw.Close()
}

// relationshipsPartName maps a part name to its relationships part.
// e.g. "ppt/slides/slide1.xml" -> "ppt/slides/_rels/slide1.xml.rels",
// and "" (the package root) -> "_rels/.rels".
func relationshipsPartName(partName string) string {
	dir := ""
	base := partName
	if idx := strings.LastIndex(partName, "/"); idx != -1 {
		dir = partName[:idx]
		base = partName[idx+1:]
	}

	if dir == "" {
		return fmt.Sprintf("_rels/%s.rels", base)
	}
	return fmt.Sprintf("%s/_rels/%s.rels", dir, base)
}

// resolveRelTarget resolves a relationship target relative to the directory
// of the source part. Absolute targets are package-rooted.
func resolveRelTarget(sourcePart, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(path.Dir(sourcePart), target)
}

// relativeRelTarget expresses a package part name as a relationship target
// relative to the directory of the source part.
func relativeRelTarget(sourcePart, targetPart string) string {
	srcDir := path.Dir(sourcePart)
	if srcDir == "." {
		return targetPart
	}
	// Walk up from the source directory until the target is reachable.
	prefix := srcDir
	ups := ""
	for prefix != "." && !strings.HasPrefix(targetPart, prefix+"/") {
		prefix = path.Dir(prefix)
		ups += "../"
	}
	if prefix == "." {
		return ups + targetPart
	}
	return ups + strings.TrimPrefix(targetPart, prefix+"/")
}
