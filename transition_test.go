package logo

import (
	"testing"
	"time"
)

func TestTransitionCallbackAtCoveredMoment(t *testing.T) {
	InitTransition()

	callCount := 0
	coveredWhileOn := false

	ShowTransition(func() {
		callCount++
		coveredWhileOn = IsTransitionOn()
	})

	if !IsTransitionOn() {
		t.Fatal("transition not showing after ShowTransition")
	}

	step := TheTransitionManager.TransitionDuration / 3

	// fade out, callback must not fire before the screen is covered
	UpdateTransitionTexture(step)
	UpdateTransitionTexture(step)

	if callCount != 0 {
		t.Fatal("callback fired before the fade out finished")
	}

	// covered moment
	UpdateTransitionTexture(step + time.Millisecond)

	if callCount != 1 {
		t.Fatalf("callback fired %d times at the covered moment, want 1", callCount)
	}
	if !coveredWhileOn {
		t.Error("transition already off when the callback ran")
	}
	if !IsTransitionOn() {
		t.Error("transition ended before fading back in")
	}

	// fade in
	UpdateTransitionTexture(TheTransitionManager.TransitionDuration + time.Millisecond)

	if IsTransitionOn() {
		t.Error("transition still showing after the fade in finished")
	}
	if callCount != 1 {
		t.Errorf("callback fired %d times in total, want 1", callCount)
	}
}
