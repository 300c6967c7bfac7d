package logo

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type PopupDialogCallback = func(selected string, isCanceled bool)

type PopupDialog struct {
	Message string

	Options []string

	Callback PopupDialogCallback
}

type PopupDialogManager struct {
	PopupRect   rl.Rectangle
	TextBoxRect rl.Rectangle
	OptionsRect rl.Rectangle

	PopupDialogQueue []PopupDialog

	SelectedOption int

	InputId InputGroupId
}

var ThePopupDialogManager PopupDialogManager

func InitPopupDialog() {
	pdm := &ThePopupDialogManager

	pdm.InputId = NewInputGroupId()

	pdm.PopupRect = rl.Rectangle{
		Width: 870, Height: 540,
		X: 205, Y: 90,
	}

	const textBoxMarginTop = 60
	const textBoxMarginBottom = 150
	const textBoxMarginSide = 75

	pdm.TextBoxRect.Height = pdm.PopupRect.Height - (textBoxMarginTop + textBoxMarginBottom)
	pdm.TextBoxRect.Width = pdm.PopupRect.Width - textBoxMarginSide*2
	pdm.TextBoxRect.X = pdm.PopupRect.X + textBoxMarginSide
	pdm.TextBoxRect.Y = pdm.PopupRect.Y + textBoxMarginTop

	const optionsMarginTop = 20 // relative to text box
	const optionsMarginBottom = 20
	const optionsMarginSide = 75

	pdm.OptionsRect.X = pdm.PopupRect.X + optionsMarginSide
	pdm.OptionsRect.Y = pdm.TextBoxRect.Y + pdm.TextBoxRect.Height + optionsMarginTop
	pdm.OptionsRect.Width = pdm.PopupRect.Width - optionsMarginSide*2
	pdm.OptionsRect.Height = RectEnd(pdm.PopupRect).Y - pdm.OptionsRect.Y - optionsMarginBottom
}

func DisplayPopup(
	msg string,
	options []string,
	callback PopupDialogCallback,
) {
	pdm := &ThePopupDialogManager

	pdm.PopupDialogQueue = append(pdm.PopupDialogQueue, PopupDialog{
		Message:  msg,
		Options:  options,
		Callback: callback,
	})

	pdm.SelectedOption = 0

	SoloInput(pdm.InputId)
}

func IsPopupOpen() bool {
	return len(ThePopupDialogManager.PopupDialogQueue) > 0
}

func UpdatePopup() {
	pdm := &ThePopupDialogManager

	if len(pdm.PopupDialogQueue) <= 0 {
		return
	}

	current := pdm.PopupDialogQueue[0]

	afterResolve := func() {
		pdm.PopupDialogQueue = pdm.PopupDialogQueue[1:]
		pdm.SelectedOption = 0

		if len(pdm.PopupDialogQueue) <= 0 {
			ClearSoloInput(pdm.InputId)
		}
	}

	if len(current.Options) > 0 {
		if AreKeysPressed(pdm.InputId, NavKeysLeft...) {
			pdm.SelectedOption -= 1
		}

		if AreKeysPressed(pdm.InputId, NavKeysRight...) {
			pdm.SelectedOption += 1
		}

		pdm.SelectedOption = Clamp(pdm.SelectedOption, 0, len(current.Options)-1)

		if AreKeysPressed(pdm.InputId, SelectKey) {
			if current.Callback != nil {
				current.Callback(current.Options[pdm.SelectedOption], false)
			}

			afterResolve()
		} else if AreKeysPressed(pdm.InputId, EscapeKey) {
			if current.Callback != nil {
				current.Callback("", true)
			}

			afterResolve()
		}
	} else {
		if AreKeysPressed(pdm.InputId, SelectKey, EscapeKey) {
			if current.Callback != nil {
				current.Callback("", true)
			}

			afterResolve()
		}
	}
}

func DrawPopup() {
	pdm := &ThePopupDialogManager

	if len(pdm.PopupDialogQueue) <= 0 {
		return
	}

	rl.DrawRectangle(0, 0, SCREEN_WIDTH, SCREEN_HEIGHT, rl.Color{R: 0, G: 0, B: 0, A: 100})

	rl.DrawRectangleRounded(pdm.PopupRect, 0.06, 10, rl.Color{R: 240, G: 240, B: 240, A: 255})
	rl.DrawRectangleRoundedLines(pdm.PopupRect, 0.06, 10, 3, rl.Color{R: 80, G: 80, B: 80, A: 255})

	current := pdm.PopupDialogQueue[0]

	// draw current msg
	msgFontSize := float32(50)

	msgSize := MeasureUIText(current.Message, msgFontSize)

	overFlowX := msgSize.X > pdm.TextBoxRect.Width
	overFlowY := msgSize.Y > pdm.TextBoxRect.Height

	scale := float32(1.0)

	if overFlowX || overFlowY {
		if !overFlowX {
			scale = pdm.TextBoxRect.Height / msgSize.Y
		} else if !overFlowY {
			scale = pdm.TextBoxRect.Width / msgSize.X
		} else {
			scale = min(
				pdm.TextBoxRect.Height/msgSize.Y,
				pdm.TextBoxRect.Width/msgSize.X)
		}
	}

	msgFontSize *= scale
	msgSize.X *= scale
	msgSize.Y *= scale

	textPos := rl.Vector2{
		X: pdm.TextBoxRect.X + (pdm.TextBoxRect.Width-msgSize.X)*0.5,
		Y: pdm.TextBoxRect.Y + (pdm.TextBoxRect.Height-msgSize.Y)*0.5,
	}

	DrawUIText(current.Message, textPos, msgFontSize, Col(0, 0, 0, 1))

	// draw options
	if len(current.Options) > 0 {
		opMargin := float32(50)
		opFontSize := float32(60)

		opWidth := float32(0)

		for i, op := range current.Options {
			opWidth += MeasureUIText(op, opFontSize).X
			if i != len(current.Options)-1 {
				opWidth += opMargin
			}
		}

		if opWidth > pdm.OptionsRect.Width {
			opFontSize *= pdm.OptionsRect.Width / opWidth
			opMargin *= pdm.OptionsRect.Width / opWidth
		}

		offsetX := pdm.OptionsRect.X + (pdm.OptionsRect.Width-opWidth)*0.5
		offsetY := pdm.OptionsRect.Y + (pdm.OptionsRect.Height-opFontSize)*0.5

		for i, op := range current.Options {
			col := Color255(100, 100, 100, 255)
			if i == pdm.SelectedOption {
				col = Col(0, 0, 0, 1)
			}

			w := MeasureUIText(op, opFontSize).X

			DrawUIText(op, rl.Vector2{X: offsetX, Y: offsetY}, opFontSize, col)

			offsetX += w + opMargin
		}
	}
}
