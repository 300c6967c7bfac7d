package logo

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestQueue(t *testing.T) {
	var q Queue[int]

	if !q.IsEmpty() {
		t.Errorf("new queue should be empty")
	}

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)

	if q.Length() != 3 {
		t.Errorf("expected length 3, got %d", q.Length())
	}

	if q.PeekFirst() != 1 {
		t.Errorf("expected first 1, got %d", q.PeekFirst())
	}

	q.Set(1, 20)
	if q.At(1) != 20 {
		t.Errorf("expected 20 at index 1, got %d", q.At(1))
	}

	if got := q.Dequeue(); got != 1 {
		t.Errorf("expected dequeue 1, got %d", got)
	}

	if q.Length() != 2 {
		t.Errorf("expected length 2, got %d", q.Length())
	}

	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("queue should be empty after clear")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("expected 5, got %d", got)
	}
	if got := Clamp(-5, 0, 10); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("expected 10, got %d", got)
	}
	if got := Clamp(0.5, 0.0, 0.25); got != 0.25 {
		t.Errorf("expected 0.25, got %f", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.0, 10.0, 0.5); got != 5.0 {
		t.Errorf("expected 5, got %f", got)
	}
	if got := Lerp(2.0, 2.0, 0.3); got != 2.0 {
		t.Errorf("expected 2, got %f", got)
	}
}

func TestRectUnion(t *testing.T) {
	r1 := rl.Rectangle{X: 0, Y: 0, Width: 10, Height: 10}
	r2 := rl.Rectangle{X: 5, Y: 5, Width: 10, Height: 10}

	union := RectUnion(r1, r2)

	want := rl.Rectangle{X: 0, Y: 0, Width: 15, Height: 15}

	if union != want {
		t.Errorf("expected %v, got %v", want, union)
	}
}

func TestRectFitInto(t *testing.T) {
	rect := RectWH(100, 50)
	bounds := rl.Rectangle{X: 0, Y: 0, Width: 200, Height: 200}

	fitted := RectFitInto(rect, bounds)

	want := rl.Rectangle{X: 0, Y: 50, Width: 200, Height: 100}

	if fitted != want {
		t.Errorf("expected %v, got %v", want, fitted)
	}

	// degenerate rect falls back to bounds
	if got := RectFitInto(RectWH(0, 0), bounds); got != bounds {
		t.Errorf("expected %v, got %v", bounds, got)
	}
}

func TestTextFromFloat(t *testing.T) {
	if got := TextFromFloat(3.14159, 2); got != "3.14" {
		t.Errorf("expected 3.14, got %s", got)
	}
	if got := TextFromFloat(72, 0); got != "72" {
		t.Errorf("expected 72, got %s", got)
	}
}
