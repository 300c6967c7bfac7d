package render

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func colorsClose(c1, c2 gg.RGBA) bool {
	const eps = 0.005

	return math.Abs(c1.R-c2.R) < eps &&
		math.Abs(c1.G-c2.G) < eps &&
		math.Abs(c1.B-c2.B) < eps &&
		math.Abs(c1.A-c2.A) < eps
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  gg.RGBA
	}{
		{"black", "#000000", gg.RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"white", "#FFFFFF", gg.RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"lowercase", "#ff8000", gg.RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{"short form", "#F80", gg.RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{"with alpha", "#FF000080", gg.RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"no hash", "00FF00", gg.RGBA{R: 0, G: 1, B: 0, A: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tt.input, err)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexColorInvalid(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"#12345",
		"#GGGGGG",
		"not a color",
		"#FFFF",
	}

	for _, input := range inputs {
		if _, err := ParseHexColor(input); err == nil {
			t.Errorf("ParseHexColor(%q) succeeded, want error", input)
		}
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	inputs := []string{"#000000", "#FFFFFF", "#C24B99", "#12FA05", "#FF000080"}

	for _, input := range inputs {
		col, err := ParseHexColor(input)
		if err != nil {
			t.Fatalf("ParseHexColor(%q) returned error: %v", input, err)
		}

		if got := HexColor(col); got != input {
			t.Errorf("HexColor(ParseHexColor(%q)) = %q", input, got)
		}
	}
}

func TestPaintValidate(t *testing.T) {
	if err := SolidPaint("#123456").Validate(); err != nil {
		t.Errorf("valid solid paint rejected: %v", err)
	}

	if err := SolidPaint("nope").Validate(); err == nil {
		t.Error("invalid solid paint accepted")
	}

	if err := GradientPaint("#000000", "#FFFFFF", AxisVertical).Validate(); err != nil {
		t.Errorf("valid gradient paint rejected: %v", err)
	}

	// second stop only matters when the paint is a gradient
	p := SolidPaint("#000000")
	p.Color2 = "garbage"
	if err := p.Validate(); err != nil {
		t.Errorf("solid paint with unused second stop rejected: %v", err)
	}

	p.Gradient = true
	if err := p.Validate(); err == nil {
		t.Error("gradient paint with invalid second stop accepted")
	}
}

func TestPaintBrushGradientEndpoints(t *testing.T) {
	p := GradientPaint("#FF0000", "#0000FF", AxisHorizontal)

	brush, err := p.brush(0, 0, 100, 50)
	if err != nil {
		t.Fatal(err)
	}

	start := brush.ColorAt(0, 25)
	end := brush.ColorAt(100, 25)

	if !colorsClose(start, gg.RGBA{R: 1, A: 1}) {
		t.Errorf("gradient start = %+v, want red", start)
	}
	if !colorsClose(end, gg.RGBA{B: 1, A: 1}) {
		t.Errorf("gradient end = %+v, want blue", end)
	}
}
