// test_helpers.go contains functions that build in-memory PPTX fixtures for
// testing purposes. These should not be used in production code.

package slides

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

const (
	testContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
  <Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
  <Override PartName="/ppt/slides/slide1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>
</Types>`

	testRootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
</Relationships>`

	testPresentation = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:sldIdLst>
    <p:sldId id="256" r:id="rId1"/>
  </p:sldIdLst>
</p:presentation>`

	testPresentationRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide1.xml"/>
</Relationships>`

	testEmptySlide = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <p:cSld>
    <p:spTree>
      <p:nvGrpSpPr>
        <p:cNvPr id="1" name=""/>
        <p:cNvGrpSpPr/>
        <p:nvPr/>
      </p:nvGrpSpPr>
      <p:grpSpPr/>
    </p:spTree>
  </p:cSld>
</p:sld>`
)

// createSimplePPTXBytes builds a minimal valid PPTX with one empty slide.
func createSimplePPTXBytes() []byte {
	return createPPTXBytes(nil, testEmptySlide)
}

// createPPTXBytes builds a PPTX with the given slide XML and extra parts.
func createPPTXBytes(extraParts map[string][]byte, slideXML string) []byte {
	parts := map[string][]byte{
		"[Content_Types].xml":             testBytes(testContentTypes),
		"_rels/.rels":                     testBytes(testRootRels),
		"ppt/presentation.xml":            testBytes(testPresentation),
		"ppt/_rels/presentation.xml.rels": testBytes(testPresentationRels),
		"ppt/slides/slide1.xml":           testBytes(slideXML),
	}
	for name, content := range extraParts {
		parts[name] = content
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		fw, err := zw.Create(name)
		if err != nil {
			panic(fmt.Sprintf("test fixture: %v", err))
		}
		if _, err := fw.Write(content); err != nil {
			panic(fmt.Sprintf("test fixture: %v", err))
		}
	}
	if err := zw.Close(); err != nil {
		panic(fmt.Sprintf("test fixture: %v", err))
	}
	return buf.Bytes()
}

func testBytes(s string) []byte {
	return []byte(s)
}

// createTestPNG encodes a solid PNG of the given pixel size.
func createTestPNG(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(fmt.Sprintf("test fixture: %v", err))
	}
	return buf.Bytes()
}
