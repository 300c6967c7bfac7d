package logo

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"logo-studio/render"
)

// Color keeps components in the 0 - 1 range. Conversions to raylib's
// 0 - 255 color happen at the draw call.
type Color struct {
	R, G, B, A float64
}

func Col(r, g, b, a float64) Color {
	return Color{r, g, b, a}
}

func Color255(r, g, b, a uint8) Color {
	return Color{
		float64(r) / 255.0,
		float64(g) / 255.0,
		float64(b) / 255.0,
		float64(a) / 255.0,
	}
}

func ToRlColor(c Color) color.RGBA {
	return color.RGBA{
		uint8(math.Round(c.R * 0xFF)),
		uint8(math.Round(c.G * 0xFF)),
		uint8(math.Round(c.B * 0xFF)),
		uint8(math.Round(c.A * 0xFF)),
	}
}

func (c Color) ToRlColor() color.RGBA {
	return ToRlColor(c)
}

func (c Color) FadeAlpha(fade float64) Color {
	c.A *= fade
	return c
}

func LerpRGBA(c1, c2 Color, t float64) Color {
	return Color{
		Lerp(c1.R, c2.R, t),
		Lerp(c1.G, c2.G, t),
		Lerp(c1.B, c2.B, t),
		Lerp(c1.A, c2.A, t),
	}
}

// ColorFromHex parses the same hex forms the render package accepts.
func ColorFromHex(hex string) (Color, error) {
	parsed, err := render.ParseHexColor(hex)
	if err != nil {
		return Color{}, err
	}

	return Color{parsed.R, parsed.G, parsed.B, parsed.A}, nil
}

func (c Color) Hex() string {
	return render.HexColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// ========================================
// hsv
// ========================================

// The picker edits colors in HSV. go-colorful does the actual math,
// alpha rides along separately since colorful has no notion of it.

func (c Color) ToHSV() (h, s, v float64) {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Hsv()
}

func FromHSV(h, s, v, a float64) Color {
	cf := colorful.Hsv(h, s, v)

	return Color{
		Clamp(cf.R, 0, 1),
		Clamp(cf.G, 0, 1),
		Clamp(cf.B, 0, 1),
		Clamp(a, 0, 1),
	}
}
