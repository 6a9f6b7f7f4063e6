package render

import (
	"bytes"
	"testing"

	errs "github.com/matzehuels/adventofcode/pkg/errors"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
		code errs.Code
	}{
		{"yard.svg", FormatSVG, ""},
		{"out/Yard.PDF", FormatPDF, ""},
		{"yard.png", FormatPNG, ""},
		{"yard", "", errs.ErrCodeInvalidPath},
		{"yard.gif", "", errs.ErrCodeUnsupported},
	}

	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if tt.code != "" {
			if !errs.Is(err, tt.code) {
				t.Errorf("FormatFromPath(%q) error = %v, want %s", tt.path, err, tt.code)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}
}

func TestConvertSVGPassthrough(t *testing.T) {
	svg := []byte("<svg/>")
	got, err := Convert(svg, FormatSVG)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, svg) {
		t.Errorf("Convert(svg) = %q, want input unchanged", got)
	}
}

func TestConvertUnknown(t *testing.T) {
	if _, err := Convert(nil, "bmp"); !errs.Is(err, errs.ErrCodeUnsupported) {
		t.Errorf("Convert(bmp) error = %v, want UNSUPPORTED", err)
	}
}
