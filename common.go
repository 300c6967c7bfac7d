package logo

import (
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/exp/constraints"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func BoolToInt(b bool) int {
	if b {
		return 1
	} else {
		return 0
	}
}

func Clamp[N constraints.Integer | constraints.Float](n, minN, maxN N) N {
	n = max(n, minN)
	n = min(n, maxN)

	return n
}

func Lerp[F constraints.Float](a, b, t F) F {
	return a + (b-a)*t
}

func f32[N constraints.Integer | constraints.Float](n N) float32 {
	return float32(n)
}

func i32[N constraints.Integer | constraints.Float](n N) int32 {
	return int32(n)
}

func ExecutablePath() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", err
	}

	evaled, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", err
	}

	return evaled, nil
}

// RelativePath resolves path against the executable's directory, not the
// working directory, so the app finds its files no matter where it's
// launched from.
func RelativePath(path string) (string, error) {
	exePath, err := ExecutablePath()
	if err != nil {
		return "", err
	}

	return filepath.Join(filepath.Dir(exePath), path), nil
}

type Queue[T any] struct {
	Data []T
}

func (q *Queue[T]) Length() int {
	return len(q.Data)
}

func (q *Queue[T]) IsEmpty() bool {
	return len(q.Data) <= 0
}

func (q *Queue[T]) Enqueue(item T) {
	q.Data = append(q.Data, item)
}

func (q *Queue[T]) Dequeue() T {
	item := q.Data[0]
	q.Data = q.Data[1:]
	return item
}

func (q *Queue[T]) At(index int) T {
	return q.Data[index]
}

func (q *Queue[T]) Set(index int, item T) {
	q.Data[index] = item
}

func (q *Queue[T]) PeekFirst() T {
	return q.Data[0]
}

func (q *Queue[T]) Clear() {
	q.Data = q.Data[:0]
}

func RectWH[N constraints.Integer | constraints.Float](width, height N) rl.Rectangle {
	return rl.Rectangle{
		Width: f32(width), Height: f32(height),
	}
}

func RectEnd(rect rl.Rectangle) rl.Vector2 {
	return rl.Vector2{
		X: rect.X + rect.Width,
		Y: rect.Y + rect.Height,
	}
}

func RectUnion(r1, r2 rl.Rectangle) rl.Rectangle {
	minX := min(r1.X, r2.X)
	minY := min(r1.Y, r2.Y)

	maxX := max(r1.X+r1.Width, r2.X+r2.Width)
	maxY := max(r1.Y+r1.Height, r2.Y+r2.Height)

	return rl.Rectangle{
		X: minX, Y: minY,
		Width: maxX - minX, Height: maxY - minY,
	}
}

// RectFitInto scales rect to fit inside bounds, keeping its aspect ratio
// and centering it.
func RectFitInto(rect, bounds rl.Rectangle) rl.Rectangle {
	if rect.Width <= 0 || rect.Height <= 0 {
		return bounds
	}

	scale := min(bounds.Width/rect.Width, bounds.Height/rect.Height)

	fitted := rl.Rectangle{
		Width:  rect.Width * scale,
		Height: rect.Height * scale,
	}

	fitted.X = bounds.X + (bounds.Width-fitted.Width)*0.5
	fitted.Y = bounds.Y + (bounds.Height-fitted.Height)*0.5

	return fitted
}

func TextFromFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func EaseIn[F constraints.Float](t F) F {
	return t * t
}

func EaseOut[F constraints.Float](t F) F {
	return 1 - (t-1)*(t-1)
}

// ========================================
// ui text
// ========================================

// All the ui text goes through raylib's built in font.
// The logo itself is rasterized by the render package with real fonts,
// so the widget chrome doesn't need to ship one.

func UIFont() rl.Font {
	return rl.GetFontDefault()
}

func uiTextSpacing(fontSize float32) float32 {
	// raylib's default font looks cramped without spacing
	return fontSize / 10
}

func MeasureUIText(text string, fontSize float32) rl.Vector2 {
	return rl.MeasureTextEx(UIFont(), text, fontSize, uiTextSpacing(fontSize))
}

func DrawUIText(text string, pos rl.Vector2, fontSize float32, col Color) {
	rl.DrawTextEx(UIFont(), text, pos, fontSize, uiTextSpacing(fontSize), ToRlColor(col))
}
