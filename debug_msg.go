package logo

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	printDebugMsg  bool
	debugMsgs      map[string]string
	debugMsgsOrder []string
)

func init() {
	debugMsgs = make(map[string]string)
}

func SetDrawDebugMsg(draw bool) {
	printDebugMsg = draw
}

func DrawDebugMsg() bool {
	return printDebugMsg
}

func DebugPrint(name string, msg string) {
	if _, ok := debugMsgs[name]; !ok {
		debugMsgsOrder = append(debugMsgsOrder, name)
	}

	debugMsgs[name] = msg
}

func DebugPrintf(name string, formatString string, values ...any) {
	DebugPrint(name, fmt.Sprintf(formatString, values...))
}

func ClearDebugMsgs() {
	clear(debugMsgs)
	debugMsgsOrder = debugMsgsOrder[:0]
}

func DrawDebugMsgs() {
	if !printDebugMsg {
		return
	}

	const fontSize = 20
	const interval = 3

	offsetY := float32(10)

	for _, name := range debugMsgsOrder {
		msg := debugMsgs[name]

		text := name + " : " + msg

		textSize := MeasureUIText(text, fontSize)

		rl.DrawRectangle(
			5, i32(offsetY)-2,
			i32(textSize.X)+10, i32(textSize.Y)+4,
			rl.Color{R: 0, G: 0, B: 0, A: 150})

		DrawUIText(text, rl.Vector2{X: 10, Y: offsetY}, fontSize, Col(1, 1, 1, 1))

		offsetY += textSize.Y + interval
	}
}
