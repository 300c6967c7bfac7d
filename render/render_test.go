package render

import (
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg/text"
)

// findTestFont walks the usual font directories for something the
// renderer can load. Tests that need a face skip when nothing is found.
func findTestFont(t *testing.T) text.Face {
	t.Helper()

	fontDirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
		"C:\\Windows\\Fonts",
	}

	var fontPath string

	for _, dir := range fontDirs {
		if fontPath != "" {
			break
		}

		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if fontPath != "" {
				return fs.SkipAll
			}

			ext := strings.ToLower(filepath.Ext(path))
			if ext == ".ttf" || ext == ".otf" {
				if _, err := text.NewFontSourceFromFile(path); err == nil {
					fontPath = path
					return fs.SkipAll
				}
			}
			return nil
		})
	}

	if fontPath == "" {
		t.Skip("no usable system font found")
	}

	source, err := text.NewFontSourceFromFile(fontPath)
	if err != nil {
		t.Fatalf("failed to load %s: %v", fontPath, err)
	}

	return source.Face(72)
}

func pixelAt(img image.Image, x, y int) (r, g, b, a uint32) {
	return img.At(x, y).RGBA()
}

func TestRenderDimensions(t *testing.T) {
	design := DefaultDesign()
	design.Text = ""
	design.Width = 321
	design.Height = 123

	img, err := Render(design, nil)
	if err != nil {
		t.Fatal(err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 321 || bounds.Dy() != 123 {
		t.Errorf("rendered size = %dx%d, want 321x123", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderSolidBackground(t *testing.T) {
	design := DefaultDesign()
	design.Text = ""
	design.BackgroundPaint = SolidPaint("#FF0000")

	img, err := Render(design, nil)
	if err != nil {
		t.Fatal(err)
	}

	r, g, b, a := pixelAt(img, 10, 10)
	if r < 0xF000 || g > 0x0FFF || b > 0x0FFF || a < 0xF000 {
		t.Errorf("background pixel = (%v %v %v %v), want opaque red", r, g, b, a)
	}
}

func TestRenderGradientBackground(t *testing.T) {
	design := DefaultDesign()
	design.Text = ""
	design.BackgroundPaint = GradientPaint("#000000", "#FFFFFF", AxisHorizontal)

	img, err := Render(design, nil)
	if err != nil {
		t.Fatal(err)
	}

	leftR, _, _, _ := pixelAt(img, 1, design.Height/2)
	midR, _, _, _ := pixelAt(img, design.Width/2, design.Height/2)
	rightR, _, _, _ := pixelAt(img, design.Width-2, design.Height/2)

	if leftR > 0x0FFF {
		t.Errorf("left edge = %v, want near black", leftR)
	}
	if midR < 0x6000 || midR > 0xA000 {
		t.Errorf("middle = %v, want mid gray", midR)
	}
	if rightR < 0xF000 {
		t.Errorf("right edge = %v, want near white", rightR)
	}
	if leftR >= rightR {
		t.Error("gradient does not increase left to right")
	}
}

func TestFillRectGradientVertical(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 100))

	paint := GradientPaint("#FF0000", "#0000FF", AxisVertical)

	if err := fillRect(dst, paint, dst.Bounds()); err != nil {
		t.Fatal(err)
	}

	topR, _, topB, topA := pixelAt(dst, 20, 0)
	botR, _, botB, botA := pixelAt(dst, 20, 99)

	if topA < 0xF000 || botA < 0xF000 {
		t.Fatalf("gradient fill left transparent pixels: alpha %v %v", topA, botA)
	}

	if topR < 0xF000 || topB > 0x0FFF {
		t.Errorf("top pixel = (%v _ %v), want red", topR, topB)
	}
	if botB < 0xF000 || botR > 0x0FFF {
		t.Errorf("bottom pixel = (%v _ %v), want blue", botR, botB)
	}
}

func TestPaintThroughMask(t *testing.T) {
	// white canvas, alpha mask covering only the middle strip
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	if err := fillRect(dst, SolidPaint("#FFFFFF"), dst.Bounds()); err != nil {
		t.Fatal(err)
	}

	mask := image.NewNRGBA(image.Rect(0, 0, 60, 60))
	for y := 20; y < 40; y++ {
		for x := 20; x < 40; x++ {
			mask.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}

	paint := GradientPaint("#FF0000", "#FF0000", AxisVertical)

	if err := paintThroughMask(dst, paint, mask, 20, 20, 20, 20); err != nil {
		t.Fatal(err)
	}

	// inside the mask the paint lands
	r, g, b, _ := pixelAt(dst, 30, 30)
	if r < 0xF000 || g > 0x0FFF || b > 0x0FFF {
		t.Errorf("masked pixel = (%v %v %v), want red", r, g, b)
	}

	// outside the mask the canvas is untouched
	r, g, b, _ = pixelAt(dst, 5, 5)
	if r < 0xF000 || g < 0xF000 || b < 0xF000 {
		t.Errorf("unmasked pixel = (%v %v %v), want white", r, g, b)
	}
}

func TestRenderNoFaceWithText(t *testing.T) {
	design := DefaultDesign()

	if _, err := Render(design, nil); err != ErrNoFont {
		t.Errorf("Render with text and nil face = %v, want ErrNoFont", err)
	}
}

func TestRenderInvalidDesign(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Design)
	}{
		{"canvas too small", func(d *Design) { d.Width = 10 }},
		{"canvas too big", func(d *Design) { d.Height = 100000 }},
		{"font too small", func(d *Design) { d.FontSize = 1 }},
		{"bad text color", func(d *Design) { d.TextPaint = SolidPaint("oops") }},
		{"bad bg color", func(d *Design) { d.BackgroundPaint = SolidPaint("#12") }},
		{"bad depth", func(d *Design) { d.Enable3D = true; d.Depth = 100 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			design := DefaultDesign()
			tt.mutate(&design)

			if _, err := Render(design, nil); err == nil {
				t.Error("invalid design rendered without error")
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	face := findTestFont(t)

	design := DefaultDesign()
	design.Width = 200
	design.Height = 200
	design.BackgroundPaint = SolidPaint("#FFFFFF")
	design.TextPaint = SolidPaint("#000000")

	img, err := Render(design, face)
	if err != nil {
		t.Fatal(err)
	}

	// some pixel near the center should be darkened by the glyph
	darkened := false
	for y := 60; y < 140 && !darkened; y++ {
		for x := 60; x < 140; x++ {
			r, g, b, _ := pixelAt(img, x, y)
			if r < 0x8000 && g < 0x8000 && b < 0x8000 {
				darkened = true
				break
			}
		}
	}

	if !darkened {
		t.Error("no dark pixels found where the glyph should be")
	}
}

func TestRenderGradientText(t *testing.T) {
	face := findTestFont(t)

	design := DefaultDesign()
	design.Width = 200
	design.Height = 200
	design.TextPaint = GradientPaint("#FF0000", "#0000FF", AxisVertical)

	img, err := Render(design, face)
	if err != nil {
		t.Fatal(err)
	}

	// every non-background pixel must come from the gradient,
	// so none of them should be grey or black
	sawText := false
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			r, g, b, _ := pixelAt(img, x, y)
			if r > 0xF000 && g > 0xF000 && b > 0xF000 {
				continue // background
			}
			sawText = true
			if r < 0x1000 && b < 0x1000 {
				t.Fatalf("pixel at (%d, %d) = (%v %v %v) is neither background nor gradient", x, y, r, g, b)
			}
		}
	}

	if !sawText {
		t.Error("gradient text produced no visible pixels")
	}
}

func TestRender3DEffect(t *testing.T) {
	face := findTestFont(t)

	flat := DefaultDesign()
	flat.Width = 200
	flat.Height = 200

	raised := flat
	raised.Enable3D = true
	raised.Depth = 8

	flatImg, err := Render(flat, face)
	if err != nil {
		t.Fatal(err)
	}

	raisedImg, err := Render(raised, face)
	if err != nil {
		t.Fatal(err)
	}

	count := func(img image.Image) int {
		n := 0
		for y := 0; y < 200; y++ {
			for x := 0; x < 200; x++ {
				r, g, b, _ := pixelAt(img, x, y)
				if r < 0xF000 || g < 0xF000 || b < 0xF000 {
					n++
				}
			}
		}
		return n
	}

	// the extrusion layers should cover strictly more pixels
	if count(raisedImg) <= count(flatImg) {
		t.Error("3D effect did not add any pixels")
	}
}

func TestWritePNG(t *testing.T) {
	design := DefaultDesign()
	design.Text = ""
	design.Width = 64
	design.Height = 64

	img, err := Render(design, nil)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "logo.png")

	if err := WritePNG(img, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("exported file is not a valid png: %v", err)
	}

	if decoded.Bounds().Dx() != 64 || decoded.Bounds().Dy() != 64 {
		t.Errorf("decoded size = %dx%d, want 64x64",
			decoded.Bounds().Dx(), decoded.Bounds().Dy())
	}
}
