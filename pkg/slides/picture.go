package slides

import (
	"bytes"
	"image"
	"path"
	"strings"

	oxml "github.com/benjaminschreck/go-slides/pkg/slides/xml"

	// Decoders for natural-size detection of embedded images.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// PictureFormat identifies the raster format of a media part.
type PictureFormat string

const (
	FormatPNG  PictureFormat = "png"
	FormatJPEG PictureFormat = "jpeg"
	FormatGIF  PictureFormat = "gif"
	FormatBMP  PictureFormat = "bmp"
	FormatTIFF PictureFormat = "tiff"
)

// Extension returns the file extension for the format, including the dot.
func (f PictureFormat) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatGIF:
		return ".gif"
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// MIME returns the content type for the format.
func (f PictureFormat) MIME() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatGIF:
		return "image/gif"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

// FormatFromExtension maps a file extension to a picture format.
func FormatFromExtension(ext string) (PictureFormat, bool) {
	switch strings.ToLower(ext) {
	case ".png":
		return FormatPNG, true
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".gif":
		return FormatGIF, true
	case ".bmp":
		return FormatBMP, true
	case ".tif", ".tiff":
		return FormatTIFF, true
	default:
		return "", false
	}
}

// Fallback anchor for pictures whose data cannot be decoded, in pixels.
const (
	defaultPictureWidthPx  = 200
	defaultPictureHeightPx = 200
)

// PictureShape is a shape backed by a binary image part, referenced through
// a relationship on the owning slide.
type PictureShape struct {
	baseShape
	node *oxml.Picture
}

// RelID returns the relationship ID linking this picture to its image part.
func (p *PictureShape) RelID() string {
	return p.node.EmbedID()
}

// Data returns the raw bytes and format of the backing image part.
func (p *PictureShape) Data() ([]byte, PictureFormat, error) {
	relID := p.RelID()
	partName, ok := p.sheet.relationshipTargetPart(relID)
	if !ok {
		return nil, "", NewDocumentError("read picture", relID, nil)
	}
	data, ok := p.sheet.pres.pkg.Part(partName)
	if !ok {
		return nil, "", NewPartNotFoundError(partName)
	}
	format, ok := FormatFromExtension(path.Ext(partName))
	if !ok {
		format = FormatPNG
	}
	return data, format, nil
}

// Resize sets the picture's anchor to the image's natural size at the top
// left corner. Undecodable image data falls back to a fixed size with a
// warning, so creation never fails on malformed media.
func (p *PictureShape) Resize() {
	widthPx, heightPx := defaultPictureWidthPx, defaultPictureHeightPx

	data, _, err := p.Data()
	if err == nil {
		if cfg, _, derr := image.DecodeConfig(bytes.NewReader(data)); derr == nil {
			widthPx, heightPx = cfg.Width, cfg.Height
		} else {
			GetLogger().WithField("relID", p.RelID()).Warn("could not decode image, using default size: %v", derr)
		}
	} else {
		GetLogger().WithField("relID", p.RelID()).Warn("could not read image part, using default size: %v", err)
	}

	// Pixels at 96 dpi to points.
	p.SetAnchor(Rect{
		X:      0,
		Y:      0,
		Width:  float64(widthPx) * 72 / 96,
		Height: float64(heightPx) * 72 / 96,
	})
}

func (p *PictureShape) copyFrom(src Shape) error {
	other, ok := src.(*PictureShape)
	if !ok {
		return NewUnsupportedShapeError(kindName(src))
	}
	p.copyGeometryFrom(other)
	return nil
}
