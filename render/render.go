// Package render maps a logo Design to pixels.
//
// Everything here is plain CPU rendering, so it stays testable without a
// window or a GPU. gg rasterizes the glyphs; fills and compositing go
// through image/draw since gg's software pipeline only fills solid
// colors. The UI owns font loading and hands the face in.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

var ErrNoFont = errors.New("no font face available")

// Render draws design onto a fresh canvas and returns the result.
// face may be nil only when the design has no text to draw.
func Render(design Design, face text.Face) (image.Image, error) {
	if err := design.Validate(); err != nil {
		return nil, err
	}

	out := image.NewRGBA(image.Rect(0, 0, design.Width, design.Height))

	if err := fillRect(out, design.BackgroundPaint, out.Bounds()); err != nil {
		return nil, err
	}

	if design.Text == "" {
		return out, nil
	}

	if face == nil {
		return nil, ErrNoFont
	}

	centerX := float64(design.Width) * 0.5
	centerY := float64(design.Height) * 0.5

	dc := gg.NewContext(design.Width, design.Height)
	dc.SetFont(face)

	textW, textH := dc.MeasureString(design.Text)

	if design.Enable3D {
		if err := drawDepthLayers(dc, design, centerX, centerY); err != nil {
			return nil, err
		}
	}

	if !design.TextPaint.Gradient {
		col, err := ParseHexColor(design.TextPaint.Color)
		if err != nil {
			return nil, err
		}

		dc.SetColor(col.Color())
		dc.DrawStringAnchored(design.Text, centerX, centerY, 0.5, 0.5)

		draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Over)

		return out, nil
	}

	// depth layers go under the gradient fill
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Over)

	// Gradient text. The glyphs are rendered once as an alpha mask and
	// the gradient is pushed through that mask pixel by pixel.
	maskCtx := gg.NewContext(design.Width, design.Height)
	maskCtx.SetFont(face)
	maskCtx.SetRGBA(1, 1, 1, 1)
	maskCtx.DrawStringAnchored(design.Text, centerX, centerY, 0.5, 0.5)

	// The gradient spans the text bounds, not the whole canvas, so both
	// stop colors stay visible regardless of canvas size.
	gradX := centerX - textW*0.5
	gradY := centerY - textH*0.5

	err := paintThroughMask(out, design.TextPaint, maskCtx.Image(), gradX, gradY, textW, textH)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// drawDepthLayers draws the fake 3D extrusion : depth copies of the text
// offset diagonally, darkest at the back.
func drawDepthLayers(dc *gg.Context, design Design, centerX, centerY float64) error {
	base, err := ParseHexColor(design.TextPaint.Color)
	if err != nil {
		return err
	}

	for i := design.Depth; i >= 1; i-- {
		factor := 0.7 - 0.5*float64(i)/float64(design.Depth)

		layer := gg.RGBA{
			R: base.R * factor,
			G: base.G * factor,
			B: base.B * factor,
			A: 1,
		}

		dc.SetColor(layer.Color())
		dc.DrawStringAnchored(design.Text, centerX+float64(i), centerY+float64(i), 0.5, 0.5)
	}

	return nil
}

// fillRect fills rect on dst with paint. Gradients are sampled from the
// gg brush one line at a time, the way the gradient brushes are meant to
// be read back when the fill pipeline can't consume them directly.
func fillRect(dst *image.RGBA, paint Paint, rect image.Rectangle) error {
	brush, err := paint.brush(
		float64(rect.Min.X), float64(rect.Min.Y),
		float64(rect.Dx()), float64(rect.Dy()))
	if err != nil {
		return err
	}

	if !paint.Gradient {
		uniform := image.NewUniform(toNRGBA(brush.ColorAt(0, 0)))
		draw.Draw(dst, rect, uniform, image.Point{}, draw.Src)
		return nil
	}

	if paint.Axis == AxisHorizontal {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			c := brush.ColorAt(float64(x)+0.5, float64(rect.Min.Y))
			column := image.Rect(x, rect.Min.Y, x+1, rect.Max.Y)
			draw.Draw(dst, column, image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
		}
	} else {
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			c := brush.ColorAt(float64(rect.Min.X), float64(y)+0.5)
			row := image.Rect(rect.Min.X, y, rect.Max.X, y+1)
			draw.Draw(dst, row, image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
		}
	}

	return nil
}

// paintThroughMask composites paint over dst wherever mask has coverage,
// scaled by the mask's alpha. The gradient runs across the (gx, gy, gw,
// gh) rect; samples outside it take the clamped stop colors, so glyph
// overhang past the measured bounds still gets painted.
func paintThroughMask(dst *image.RGBA, paint Paint, mask image.Image, gx, gy, gw, gh float64) error {
	brush, err := paint.brush(gx, gy, gw, gh)
	if err != nil {
		return err
	}

	bounds := mask.Bounds().Intersect(dst.Bounds())

	overlay := image.NewNRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			_, _, _, a := mask.At(x, y).RGBA()
			if a == 0 {
				continue
			}

			c := brush.ColorAt(float64(x)+0.5, float64(y)+0.5)

			overlay.SetNRGBA(x, y, color.NRGBA{
				R: to8(c.R),
				G: to8(c.G),
				B: to8(c.B),
				A: to8(c.A * float64(a) / 0xFFFF),
			})
		}
	}

	draw.Draw(dst, bounds, overlay, bounds.Min, draw.Over)

	return nil
}

func to8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

func toNRGBA(c gg.RGBA) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}
