package slides

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPictureFormatExtension(t *testing.T) {
	tests := []struct {
		format PictureFormat
		want   string
	}{
		{FormatPNG, ".png"},
		{FormatJPEG, ".jpg"},
		{FormatGIF, ".gif"},
		{FormatBMP, ".bmp"},
		{FormatTIFF, ".tiff"},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("%s.Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormatFromExtension(t *testing.T) {
	tests := []struct {
		ext    string
		want   PictureFormat
		wantOK bool
	}{
		{".png", FormatPNG, true},
		{".PNG", FormatPNG, true},
		{".jpg", FormatJPEG, true},
		{".jpeg", FormatJPEG, true},
		{".gif", FormatGIF, true},
		{".bmp", FormatBMP, true},
		{".tif", FormatTIFF, true},
		{".tiff", FormatTIFF, true},
		{".svg", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := FormatFromExtension(tt.ext)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FormatFromExtension(%q) = (%v, %v), want (%v, %v)", tt.ext, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestPictureFormatMIME(t *testing.T) {
	tests := []struct {
		format PictureFormat
		want   string
	}{
		{FormatPNG, "image/png"},
		{FormatJPEG, "image/jpeg"},
		{FormatGIF, "image/gif"},
		{FormatBMP, "image/bmp"},
		{FormatTIFF, "image/tiff"},
	}

	for _, tt := range tests {
		if got := tt.format.MIME(); got != tt.want {
			t.Errorf("%s.MIME() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestResizeFallbackOnBadData(t *testing.T) {
	// A media part that claims to be a PNG but holds garbage. Resize must
	// still set an anchor rather than fail.
	sheet := newTestSheetWithImage(t, []byte("not an image"))
	group := sheet.RootGroup().CreateGroup()

	pic, err := group.CreatePicture(0)
	if err != nil {
		t.Fatalf("CreatePicture failed: %v", err)
	}

	anchor, err := pic.Anchor()
	if err != nil {
		t.Fatalf("picture has no anchor after fallback resize: %v", err)
	}
	want := Rect{
		Width:  defaultPictureWidthPx * 72.0 / 96,
		Height: defaultPictureHeightPx * 72.0 / 96,
	}
	if diff := cmp.Diff(want, anchor, anchorTolerance); diff != "" {
		t.Errorf("fallback anchor mismatch (-want +got):\n%s", diff)
	}
}
