package logo

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"logo-studio/render"
)

// Live preview of the session design. Rasterizes through the render
// package only when something changed, then keeps the result on the GPU
// as a texture.

type PreviewManager struct {
	Texture rl.Texture2D

	TextureW int
	TextureH int

	loaded bool
	dirty  bool

	// last render failure, shown in place of the image
	Err error
}

var ThePreviewManager PreviewManager

func InitPreview() {
	pm := &ThePreviewManager

	pm.dirty = true
}

// MarkPreviewDirty schedules a re-render on the next update.
func MarkPreviewDirty() {
	ThePreviewManager.dirty = true
}

// RenderSessionDesign rasterizes the current session design.
// This is also what export goes through, so what gets saved is exactly
// what the preview shows.
func RenderSessionDesign() (image.Image, error) {
	design := TheSession.Design

	face, err := TheFontCatalog.ResolveFace(design)
	if err != nil && design.Text != "" {
		return nil, err
	}

	return render.Render(design, face)
}

func UpdatePreview() {
	pm := &ThePreviewManager

	if !pm.dirty {
		return
	}
	pm.dirty = false

	img, err := RenderSessionDesign()
	if err != nil {
		pm.Err = err
		return
	}
	pm.Err = nil

	rlImg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rlImg)

	if pm.loaded {
		rl.UnloadTexture(pm.Texture)
	}

	pm.Texture = rl.LoadTextureFromImage(rlImg)
	pm.loaded = true

	bounds := img.Bounds()
	pm.TextureW = bounds.Dx()
	pm.TextureH = bounds.Dy()
}

func DrawPreview(bounds rl.Rectangle) {
	pm := &ThePreviewManager

	if pm.Err != nil {
		msg := "render failed : " + pm.Err.Error()

		fontSize := float32(24)

		textSize := MeasureUIText(msg, fontSize)
		if textSize.X > bounds.Width {
			fontSize *= bounds.Width / textSize.X
			textSize = MeasureUIText(msg, fontSize)
		}

		pos := rl.Vector2{
			X: bounds.X + (bounds.Width-textSize.X)*0.5,
			Y: bounds.Y + (bounds.Height-textSize.Y)*0.5,
		}

		DrawUIText(msg, pos, fontSize, Col(1, 0.4, 0.4, 1))
		return
	}

	if !pm.loaded {
		return
	}

	fitted := RectFitInto(RectWH(pm.TextureW, pm.TextureH), bounds)

	if TheOptions.Checkerboard {
		drawCheckerboard(fitted)
	}

	srcRect := RectWH(pm.Texture.Width, pm.Texture.Height)

	rl.DrawTexturePro(pm.Texture, srcRect, fitted, rl.Vector2{}, 0, rl.Color{R: 255, G: 255, B: 255, A: 255})

	rl.DrawRectangleLinesEx(fitted, 1, rl.Color{R: 90, G: 90, B: 100, A: 255})
}

func drawCheckerboard(rect rl.Rectangle) {
	const cell = 16

	light := rl.Color{R: 200, G: 200, B: 200, A: 255}
	dark := rl.Color{R: 150, G: 150, B: 150, A: 255}

	rl.BeginScissorMode(i32(rect.X), i32(rect.Y), i32(rect.Width), i32(rect.Height))

	for row := 0; f32(row)*cell < rect.Height; row++ {
		for col := 0; f32(col)*cell < rect.Width; col++ {
			color := light
			if (row+col)%2 == 1 {
				color = dark
			}

			rl.DrawRectangle(
				i32(rect.X)+i32(col*cell), i32(rect.Y)+i32(row*cell),
				cell, cell, color)
		}
	}

	rl.EndScissorMode()
}

func FreePreview() {
	pm := &ThePreviewManager

	if pm.loaded {
		rl.UnloadTexture(pm.Texture)
		pm.loaded = false
	}
}
