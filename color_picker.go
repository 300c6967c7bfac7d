package logo

import (
	"strings"
	"time"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Keyboard driven color picker. Up and down move between rows, left and
// right drag the slider on the current row. The hex row takes typed
// characters and applies the color as soon as it parses.

type ColorPickerCallback = func(color Color, isCanceled bool)

type colorPickerRow int

const (
	pickerRowHue colorPickerRow = iota
	pickerRowSat
	pickerRowVal
	pickerRowAlpha
	pickerRowHex
	pickerRowPreset
	pickerRowCount
)

var colorPickerPresets = []Color{
	Col(0, 0, 0, 1),
	Col(1, 1, 1, 1),
	Color255(230, 57, 70, 255),
	Color255(244, 162, 97, 255),
	Color255(233, 196, 106, 255),
	Color255(42, 157, 143, 255),
	Color255(69, 123, 157, 255),
	Color255(29, 53, 87, 255),
}

type ColorPickerManager struct {
	Showing bool

	Title string

	// working color as HSV plus alpha
	Hue float64
	Sat float64
	Val float64
	A   float64

	HexBuffer string

	SelectedRow    colorPickerRow
	SelectedPreset int

	Callback ColorPickerCallback

	PanelRect rl.Rectangle

	InputId InputGroupId
}

var TheColorPickerManager ColorPickerManager

func InitColorPicker() {
	cp := &TheColorPickerManager

	cp.InputId = NewInputGroupId()

	cp.PanelRect = rl.Rectangle{
		Width: 700, Height: 560,
		X: (SCREEN_WIDTH - 700) * 0.5,
		Y: (SCREEN_HEIGHT - 560) * 0.5,
	}
}

func ShowColorPicker(title string, initial Color, callback ColorPickerCallback) {
	cp := &TheColorPickerManager

	cp.Showing = true
	cp.Title = title
	cp.Callback = callback

	cp.Hue, cp.Sat, cp.Val = initial.ToHSV()
	cp.A = initial.A

	cp.HexBuffer = ""
	cp.SelectedRow = pickerRowHue
	cp.SelectedPreset = 0

	SoloInput(cp.InputId)
}

func IsColorPickerOpen() bool {
	return TheColorPickerManager.Showing
}

func (cp *ColorPickerManager) currentColor() Color {
	c := FromHSV(cp.Hue, cp.Sat, cp.Val, cp.A)
	return c
}

func (cp *ColorPickerManager) setColor(c Color) {
	cp.Hue, cp.Sat, cp.Val = c.ToHSV()
	cp.A = c.A
}

func (cp *ColorPickerManager) close(canceled bool) {
	cp.Showing = false

	if cp.Callback != nil {
		cp.Callback(cp.currentColor(), canceled)
		cp.Callback = nil
	}

	ClearSoloInput(cp.InputId)
}

func isHexRune(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F') ||
		r == '#'
}

func UpdateColorPicker() {
	cp := &TheColorPickerManager

	if !cp.Showing {
		return
	}

	const rowFirstRate = time.Millisecond * 200
	const rowRepeatRate = time.Millisecond * 110

	if HandleKeyRepeat(cp.InputId, rowFirstRate, rowRepeatRate, NavKeysUp...) {
		cp.SelectedRow -= 1
		if cp.SelectedRow < 0 {
			cp.SelectedRow = pickerRowCount - 1
		}
	}

	if HandleKeyRepeat(cp.InputId, rowFirstRate, rowRepeatRate, NavKeysDown...) {
		cp.SelectedRow += 1
		if cp.SelectedRow >= pickerRowCount {
			cp.SelectedRow = 0
		}
	}

	const slideFirstRate = time.Millisecond * 150
	const slideRepeatRate = time.Millisecond * 16

	goLeft := HandleKeyRepeat(cp.InputId, slideFirstRate, slideRepeatRate, NavKeysLeft...)
	goRight := HandleKeyRepeat(cp.InputId, slideFirstRate, slideRepeatRate, NavKeysRight...)

	adjust := func(v, step, vMin, vMax float64) float64 {
		if goLeft {
			v -= step
		}
		if goRight {
			v += step
		}
		return Clamp(v, vMin, vMax)
	}

	switch cp.SelectedRow {
	case pickerRowHue:
		cp.Hue = adjust(cp.Hue, 2, 0, 360)
	case pickerRowSat:
		cp.Sat = adjust(cp.Sat, 0.01, 0, 1)
	case pickerRowVal:
		cp.Val = adjust(cp.Val, 0.01, 0, 1)
	case pickerRowAlpha:
		cp.A = adjust(cp.A, 0.01, 0, 1)
	case pickerRowHex:
		for {
			r := NextTypedChar(cp.InputId)
			if r <= 0 {
				break
			}
			if !isHexRune(r) {
				continue
			}
			if utf8.RuneCountInString(cp.HexBuffer) >= 9 {
				continue
			}

			cp.HexBuffer += strings.ToLower(string(r))

			if c, err := ColorFromHex(cp.HexBuffer); err == nil {
				cp.setColor(c)
			}
		}

		const eraseFirstRate = time.Millisecond * 300
		const eraseRepeatRate = time.Millisecond * 60

		if HandleKeyRepeat(cp.InputId, eraseFirstRate, eraseRepeatRate, rl.KeyBackspace) {
			if len(cp.HexBuffer) > 0 {
				cp.HexBuffer = cp.HexBuffer[:len(cp.HexBuffer)-1]
			}
		}
	case pickerRowPreset:
		if goLeft {
			cp.SelectedPreset -= 1
		}
		if goRight {
			cp.SelectedPreset += 1
		}
		cp.SelectedPreset = Clamp(cp.SelectedPreset, 0, len(colorPickerPresets)-1)
	}

	if AreKeysPressed(cp.InputId, SelectKey) {
		if cp.SelectedRow == pickerRowPreset {
			cp.setColor(colorPickerPresets[cp.SelectedPreset])
		} else {
			cp.close(false)
		}
	} else if AreKeysPressed(cp.InputId, EscapeKey) {
		cp.close(true)
	}
}

func DrawColorPicker() {
	cp := &TheColorPickerManager

	if !cp.Showing {
		return
	}

	rl.DrawRectangle(0, 0, SCREEN_WIDTH, SCREEN_HEIGHT, rl.Color{R: 0, G: 0, B: 0, A: 100})

	rl.DrawRectangleRounded(cp.PanelRect, 0.05, 10, rl.Color{R: 35, G: 35, B: 40, A: 255})
	rl.DrawRectangleRoundedLines(cp.PanelRect, 0.05, 10, 3, rl.Color{R: 120, G: 120, B: 130, A: 255})

	const margin = 40
	const rowHeight = 46
	const rowGap = 16
	const labelFontSize = 28

	x := cp.PanelRect.X + margin
	y := cp.PanelRect.Y + 25
	innerWidth := cp.PanelRect.Width - margin*2

	DrawUIText(cp.Title, rl.Vector2{X: x, Y: y}, 34, Col(1, 1, 1, 1))
	y += 34 + 20

	// current color swatch next to the title row
	{
		swatch := rl.Rectangle{
			X: x, Y: y, Width: innerWidth, Height: 50,
		}
		rl.DrawRectangleRec(swatch, rl.Color{R: 120, G: 120, B: 120, A: 255})
		rl.DrawRectangleRec(swatch, cp.currentColor().ToRlColor())
		rl.DrawRectangleLinesEx(swatch, 2, rl.Color{R: 200, G: 200, B: 200, A: 255})

		y += 50 + rowGap
	}

	rowLabel := func(row colorPickerRow) Color {
		if row == cp.SelectedRow {
			return Col(1, 1, 1, 1)
		}
		return Col(0.6, 0.6, 0.6, 1)
	}

	drawSlider := func(row colorPickerRow, label string, t float64, display string) {
		DrawUIText(label, rl.Vector2{X: x, Y: y + 8}, labelFontSize, rowLabel(row))

		barX := x + 130
		barWidth := innerWidth - 130 - 110

		bar := rl.Rectangle{
			X: barX, Y: y + rowHeight*0.5 - 5,
			Width: barWidth, Height: 10,
		}

		rl.DrawRectangleRounded(bar, 1, 5, rl.Color{R: 70, G: 70, B: 80, A: 255})

		knobX := barX + f32(t)*barWidth

		knobCol := rl.Color{R: 160, G: 160, B: 170, A: 255}
		if row == cp.SelectedRow {
			knobCol = rl.Color{R: 255, G: 255, B: 255, A: 255}
		}

		rl.DrawCircle(i32(knobX), i32(y+rowHeight*0.5), 11, knobCol)

		DrawUIText(display,
			rl.Vector2{X: barX + barWidth + 25, Y: y + 8},
			labelFontSize, rowLabel(row))

		y += rowHeight + rowGap
	}

	drawSlider(pickerRowHue, "Hue", cp.Hue/360, TextFromFloat(cp.Hue, 0))
	drawSlider(pickerRowSat, "Sat", cp.Sat, TextFromFloat(cp.Sat*100, 0))
	drawSlider(pickerRowVal, "Val", cp.Val, TextFromFloat(cp.Val*100, 0))
	drawSlider(pickerRowAlpha, "Alpha", cp.A, TextFromFloat(cp.A*100, 0))

	// hex row
	{
		DrawUIText("Hex", rl.Vector2{X: x, Y: y + 8}, labelFontSize, rowLabel(pickerRowHex))

		toDraw := cp.HexBuffer
		if cp.SelectedRow == pickerRowHex {
			toDraw += "_"
		} else if toDraw == "" {
			toDraw = cp.currentColor().Hex()
		}

		DrawUIText(toDraw, rl.Vector2{X: x + 130, Y: y + 8}, labelFontSize, rowLabel(pickerRowHex))

		y += rowHeight + rowGap
	}

	// preset row
	{
		DrawUIText("Presets", rl.Vector2{X: x, Y: y + 8}, labelFontSize, rowLabel(pickerRowPreset))

		swatchX := x + 130

		for i, preset := range colorPickerPresets {
			rect := rl.Rectangle{
				X: swatchX, Y: y, Width: 42, Height: 42,
			}

			rl.DrawRectangleRec(rect, rl.Color{R: 120, G: 120, B: 120, A: 255})
			rl.DrawRectangleRec(rect, preset.ToRlColor())

			if cp.SelectedRow == pickerRowPreset && i == cp.SelectedPreset {
				rl.DrawRectangleLinesEx(rect, 3, rl.Color{R: 255, G: 255, B: 255, A: 255})
			} else {
				rl.DrawRectangleLinesEx(rect, 1, rl.Color{R: 80, G: 80, B: 90, A: 255})
			}

			swatchX += 42 + 12
		}

		y += rowHeight + rowGap
	}

	DrawUIText("enter : apply    escape : cancel",
		rl.Vector2{X: x, Y: RectEnd(cp.PanelRect).Y - 40},
		22, Col(0.55, 0.55, 0.55, 1))
}
