package logo

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Alert struct {
	Message string
	Age     time.Duration
}

type AlertManager struct {
	Alerts        Queue[Alert]
	AlertLifetime time.Duration
}

var TheAlertManager AlertManager

func InitAlert() {
	am := &TheAlertManager

	am.AlertLifetime = time.Millisecond * 2500
}

func DisplayAlert(msg string) {
	am := &TheAlertManager

	am.Alerts.Enqueue(Alert{
		Message: msg,
	})
}

func UpdateAlert(deltaTime time.Duration) {
	am := &TheAlertManager

	if am.Alerts.IsEmpty() {
		return
	}

	// freeze alerts while a transition covers the screen
	if IsTransitionOn() {
		return
	}

	for i := range am.Alerts.Length() {
		alert := am.Alerts.At(i)
		alert.Age += deltaTime
		am.Alerts.Set(i, alert)
	}

	for !am.Alerts.IsEmpty() {
		first := am.Alerts.PeekFirst()

		if first.Age > am.AlertLifetime {
			am.Alerts.Dequeue()
		} else {
			break
		}
	}
}

func DrawAlert() {
	am := &TheAlertManager

	const fontSize = 30

	const vertMargin = 10
	const hozMargin = 20

	const msgInterval = 7

	const animDuration = 0.1

	offsetY := float32(10)

	for i := range am.Alerts.Length() {
		alert := am.Alerts.At(i)

		scale := float32(1.0)

		ageF32 := float32(alert.Age)
		lifeTimeF32 := float32(am.AlertLifetime)

		if ageF32 < lifeTimeF32*animDuration {
			t := ageF32 / (lifeTimeF32 * animDuration)
			scale = EaseIn(t)
		} else if ageF32 > lifeTimeF32*(1-animDuration) {
			t := (ageF32 - lifeTimeF32*(1-animDuration)) / (lifeTimeF32 * animDuration)
			scale = 1.0 - EaseOut(t)
		}

		fontSizeScaled := f32(fontSize) * scale

		vertMarginScaled := vertMargin * scale
		hozMarginScaled := hozMargin * scale

		textSize := MeasureUIText(alert.Message, fontSizeScaled)

		bgRect := rl.Rectangle{
			Width:  textSize.X + hozMarginScaled*2,
			Height: textSize.Y + vertMarginScaled*2,
		}

		bgRect.X = SCREEN_WIDTH*0.5 - bgRect.Width*0.5
		bgRect.Y = offsetY

		rl.DrawRectangleRounded(bgRect, 0.2, 10, rl.Color{R: 0, G: 0, B: 0, A: 200})

		textPos := rl.Vector2{X: bgRect.X + hozMarginScaled, Y: bgRect.Y + vertMarginScaled}

		DrawUIText(alert.Message, textPos, fontSizeScaled, Col(1, 1, 1, 1))

		offsetY += bgRect.Height + msgInterval
	}
}
