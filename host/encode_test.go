package host

import (
	"bytes"
	"image"
	"testing"

	"github.com/voidshard/smoothgrad"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"out.png", "png", false},
		{"frames/0001.PNG", "png", false},
		{"out.jpg", "jpeg", false},
		{"out.jpeg", "jpeg", false},
		{"out.gif", "gif", false},
		{"out.bmp", "bmp", false},
		{"out.tif", "tiff", false},
		{"out.tiff", "tiff", false},
		{"out.webp", "", true},
		{"out", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 24, 16))
	m := smoothgrad.DefaultModel()
	if err := smoothgrad.Draw(src, m); err != nil {
		t.Fatal(err)
	}

	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			if err := Encode(buf, src, format); err != nil {
				t.Fatalf("Encode(%s) error: %v", format, err)
			}

			img, name, err := image.Decode(buf)
			if err != nil {
				t.Fatalf("could not decode %s output: %v", format, err)
			}
			if name != format {
				t.Errorf("decoded format = %q, want %q", name, format)
			}
			if img.Bounds() != src.Bounds() {
				t.Errorf("decoded bounds = %v, want %v", img.Bounds(), src.Bounds())
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, src, "webp"); err == nil {
		t.Error("Encode() accepted an unknown format")
	}
}
