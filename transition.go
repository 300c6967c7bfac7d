package logo

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Screen transition fades to black, runs a callback while the screen
// is fully covered, then fades back in.

type TransitionManager struct {
	ShowingTransition bool

	FadingIn bool

	TransitionTimer    time.Duration
	TransitionDuration time.Duration

	TransitionCallback func()

	InputId InputGroupId
}

var TheTransitionManager TransitionManager

func InitTransition() {
	tm := &TheTransitionManager

	tm.InputId = NewInputGroupId()

	tm.TransitionDuration = time.Millisecond * 150
}

// ShowTransition starts the fade out. Callback runs once at the moment
// the screen is fully black.
func ShowTransition(callback func()) {
	tm := &TheTransitionManager

	tm.ShowingTransition = true
	tm.FadingIn = false
	tm.TransitionTimer = 0
	tm.TransitionCallback = callback

	// block everything else while the fade plays
	SoloInput(tm.InputId)
}

func IsTransitionOn() bool {
	return TheTransitionManager.ShowingTransition
}

func UpdateTransitionTexture(deltaTime time.Duration) {
	tm := &TheTransitionManager

	if !tm.ShowingTransition {
		return
	}

	tm.TransitionTimer += deltaTime

	if tm.TransitionTimer < tm.TransitionDuration {
		return
	}

	if !tm.FadingIn {
		if tm.TransitionCallback != nil {
			tm.TransitionCallback()
			tm.TransitionCallback = nil
		}

		tm.FadingIn = true
		tm.TransitionTimer = 0
	} else {
		tm.ShowingTransition = false
		tm.TransitionTimer = 0

		ClearSoloInput(tm.InputId)
	}
}

func DrawTransition() {
	tm := &TheTransitionManager

	if !tm.ShowingTransition {
		return
	}

	t := f32(tm.TransitionTimer) / f32(tm.TransitionDuration)
	t = Clamp(t, 0, 1)

	alpha := t
	if tm.FadingIn {
		alpha = 1 - t
	}

	rl.DrawRectangle(0, 0, SCREEN_WIDTH, SCREEN_HEIGHT,
		Col(0, 0, 0, float64(alpha)).ToRlColor())
}
