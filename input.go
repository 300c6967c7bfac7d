package logo

import (
	"math"
	"sync"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Input groups let modal things (popups, the color picker) claim the
// keyboard : while a group is soloed every other group reads nothing.

type InputGroupId int64

var (
	inputGroupIdMax   InputGroupId
	inputGroupIdMutex sync.Mutex

	inputSoloGroup InputGroupId
)

func NewInputGroupId() InputGroupId {
	inputGroupIdMutex.Lock()
	defer inputGroupIdMutex.Unlock()

	inputGroupIdMax += 1

	return inputGroupIdMax
}

func SoloInput(id InputGroupId) {
	inputSoloGroup = id
}

// ClearSoloInput releases the solo, but only for the group that holds it.
func ClearSoloInput(id InputGroupId) {
	if inputSoloGroup == id {
		inputSoloGroup = 0
	}
}

func IsInputSoloed() bool {
	return inputSoloGroup != 0
}

func IsInputEnabled(id InputGroupId) bool {
	return inputSoloGroup == 0 || inputSoloGroup == id
}

func AreKeysPressed(id InputGroupId, keys ...int32) bool {
	if !IsInputEnabled(id) {
		return false
	}

	for _, key := range keys {
		if rl.IsKeyPressed(key) {
			return true
		}
	}

	return false
}

func AreKeysDown(id InputGroupId, keys ...int32) bool {
	if !IsInputEnabled(id) {
		return false
	}

	for _, key := range keys {
		if rl.IsKeyDown(key) {
			return true
		}
	}

	return false
}

func AreKeysReleased(id InputGroupId, keys ...int32) bool {
	if !IsInputEnabled(id) {
		return false
	}

	for _, key := range keys {
		if rl.IsKeyReleased(key) {
			return true
		}
	}

	return false
}

var keyRepeatMap = make(map[int32]time.Duration)

// HandleKeyRepeat reports a press once immediately, then again at
// repeatRate after holding for firstRate.
func HandleKeyRepeat(id InputGroupId, firstRate, repeatRate time.Duration, keys ...int32) bool {
	minKey := int32(math.MaxInt32)

	for _, key := range keys {
		minKey = min(key, minKey)
	}

	if !AreKeysDown(id, keys...) {
		keyRepeatMap[minKey] = 0
		return false
	}

	if AreKeysPressed(id, keys...) {
		keyRepeatMap[minKey] = GlobalTimerNow() + firstRate
		return true
	}

	at, ok := keyRepeatMap[minKey]

	if !ok {
		keyRepeatMap[minKey] = GlobalTimerNow() + firstRate
		return true
	}

	now := GlobalTimerNow()
	if now-at > repeatRate {
		keyRepeatMap[minKey] = now
		return true
	}

	return false
}

// NextTypedChar drains raylib's unicode input queue one rune at a time.
// Returns 0 when the queue is empty or the group can't read input.
func NextTypedChar(id InputGroupId) rune {
	if !IsInputEnabled(id) {
		return 0
	}

	return rl.GetCharPressed()
}

// ========================================
// key map
// ========================================

// Navigation sticks to the arrow keys so typing into text items never
// doubles as menu movement.
var (
	NavKeysUp    = []int32{rl.KeyUp}
	NavKeysDown  = []int32{rl.KeyDown}
	NavKeysLeft  = []int32{rl.KeyLeft}
	NavKeysRight = []int32{rl.KeyRight}
)

var (
	SelectKey int32 = rl.KeyEnter
	EscapeKey int32 = rl.KeyEscape
)

var (
	ToggleDebugMsgKey int32 = rl.KeyF1
	CaptureWindowKey  int32 = rl.KeyF12
)
