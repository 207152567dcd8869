package slides

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRelationshipsPartName(t *testing.T) {
	tests := []struct {
		name     string
		partName string
		want     string
	}{
		{"package root", "", "_rels/.rels"},
		{"top level part", "ppt/presentation.xml", "ppt/_rels/presentation.xml.rels"},
		{"nested part", "ppt/slides/slide1.xml", "ppt/slides/_rels/slide1.xml.rels"},
		{"bare name", "presentation.xml", "_rels/presentation.xml.rels"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relationshipsPartName(tt.partName); got != tt.want {
				t.Errorf("relationshipsPartName(%q) = %q, want %q", tt.partName, got, tt.want)
			}
		})
	}
}

func TestResolveRelTarget(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   string
	}{
		{"sibling", "ppt/presentation.xml", "slides/slide1.xml", "ppt/slides/slide1.xml"},
		{"up one level", "ppt/slides/slide1.xml", "../media/image1.png", "ppt/media/image1.png"},
		{"absolute", "ppt/slides/slide1.xml", "/ppt/media/image1.png", "ppt/media/image1.png"},
		{"same directory", "ppt/slides/slide1.xml", "slide2.xml", "ppt/slides/slide2.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveRelTarget(tt.source, tt.target); got != tt.want {
				t.Errorf("resolveRelTarget(%q, %q) = %q, want %q", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestRelativeRelTarget(t *testing.T) {
	tests := []struct {
		name   string
		source string
		target string
		want   string
	}{
		{"down into subdir", "ppt/presentation.xml", "ppt/slides/slide1.xml", "slides/slide1.xml"},
		{"up and over", "ppt/slides/slide1.xml", "ppt/media/image1.png", "../media/image1.png"},
		{"root source", "presentation.xml", "ppt/slides/slide1.xml", "ppt/slides/slide1.xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := relativeRelTarget(tt.source, tt.target); got != tt.want {
				t.Errorf("relativeRelTarget(%q, %q) = %q, want %q", tt.source, tt.target, got, tt.want)
			}
		})
	}
}

func TestRelativeThenResolveRoundTrip(t *testing.T) {
	pairs := []struct{ source, target string }{
		{"ppt/slides/slide1.xml", "ppt/media/image3.png"},
		{"ppt/presentation.xml", "ppt/slides/slide2.xml"},
		{"ppt/slides/slide1.xml", "ppt/slides/slide2.xml"},
	}
	for _, p := range pairs {
		rel := relativeRelTarget(p.source, p.target)
		if got := resolveRelTarget(p.source, rel); got != p.target {
			t.Errorf("resolve(relative(%q, %q)) = %q, want %q", p.source, p.target, got, p.target)
		}
	}
}

func TestNextRelationshipID(t *testing.T) {
	tests := []struct {
		name string
		rels *Relationships
		want string
	}{
		{"empty", &Relationships{}, "rId1"},
		{
			"sequential",
			&Relationships{Relationship: []Relationship{{ID: "rId1"}, {ID: "rId2"}}},
			"rId3",
		},
		{
			"gap",
			&Relationships{Relationship: []Relationship{{ID: "rId1"}, {ID: "rId7"}}},
			"rId8",
		},
		{
			"non numeric ignored",
			&Relationships{Relationship: []Relationship{{ID: "custom"}, {ID: "rId2"}}},
			"rId3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextRelationshipID(tt.rels); got != tt.want {
				t.Errorf("nextRelationshipID = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelationshipsByID(t *testing.T) {
	rels := &Relationships{Relationship: []Relationship{
		{ID: "rId1", Type: slideRelType, Target: "slides/slide1.xml"},
		{ID: "rId2", Type: imageRelType, Target: "../media/image1.png"},
	}}

	rel, ok := rels.ByID("rId2")
	if !ok {
		t.Fatal("ByID(rId2) not found")
	}
	if rel.Target != "../media/image1.png" {
		t.Errorf("target = %q, want %q", rel.Target, "../media/image1.png")
	}

	if _, ok := rels.ByID("rId99"); ok {
		t.Error("ByID(rId99) unexpectedly found")
	}
}

func TestFindPartsByName(t *testing.T) {
	pkg := NewPackage()
	pkg.SetPart("ppt/media/image2.png", []byte("b"))
	pkg.SetPart("ppt/media/image1.png", []byte("a"))
	pkg.SetPart("ppt/media/image10.jpg", []byte("c"))
	pkg.SetPart("ppt/slides/slide1.xml", []byte("x"))

	got := pkg.FindPartsByName(regexp.MustCompile(`^ppt/media/image[0-9]+\.`))
	want := []string{"ppt/media/image1.png", "ppt/media/image10.jpg", "ppt/media/image2.png"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindPartsByName mismatch (-want +got):\n%s", diff)
	}

	if got := pkg.FindPartsByName(regexp.MustCompile(`^ppt/media/image7\.`)); got != nil {
		t.Errorf("FindPartsByName with no match = %v, want nil", got)
	}
}

func TestPackageSaveRoundTrip(t *testing.T) {
	pkg := NewPackage()
	pkg.SetPart("ppt/presentation.xml", []byte("<presentation/>"))
	pkg.SetPart("ppt/media/image1.png", []byte{0x89, 0x50, 0x4e, 0x47})

	var buf bytes.Buffer
	if err := pkg.Save(&buf); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reopened, err := OpenPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("OpenPackage failed: %v", err)
	}

	for _, name := range pkg.PartNames() {
		wantContent, _ := pkg.Part(name)
		gotContent, ok := reopened.Part(name)
		if !ok {
			t.Errorf("part %s missing after round trip", name)
			continue
		}
		if !bytes.Equal(wantContent, gotContent) {
			t.Errorf("part %s content changed after round trip", name)
		}
	}
}

func TestCorePartName(t *testing.T) {
	pres, err := OpenBytes(createSimplePPTXBytes())
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	name, err := pres.Package().CorePartName()
	if err != nil {
		t.Fatalf("CorePartName failed: %v", err)
	}
	if name != "ppt/presentation.xml" {
		t.Errorf("core part = %q, want %q", name, "ppt/presentation.xml")
	}
}

func TestCorePartNameMissing(t *testing.T) {
	pkg := NewPackage()
	pkg.SetPart("ppt/presentation.xml", []byte("<presentation/>"))

	if _, err := pkg.CorePartName(); !IsDocumentError(err) {
		t.Errorf("CorePartName without root rels: got %v, want DocumentError", err)
	}
}

func TestSetRelationshipsRoundTrip(t *testing.T) {
	pkg := NewPackage()
	rels := &Relationships{}
	rels.Add(slideRelType, "slides/slide1.xml")
	rels.Add(imageRelType, "../media/image1.png")

	if err := pkg.SetRelationships("ppt/presentation.xml", rels); err != nil {
		t.Fatalf("SetRelationships failed: %v", err)
	}

	got, err := pkg.Relationships("ppt/presentation.xml")
	if err != nil {
		t.Fatalf("Relationships failed: %v", err)
	}
	if len(got.Relationship) != 2 {
		t.Fatalf("got %d relationships, want 2", len(got.Relationship))
	}
	rel, ok := got.ByID("rId2")
	if !ok || rel.Type != imageRelType {
		t.Errorf("rId2 = %+v, want image relationship", rel)
	}
}
