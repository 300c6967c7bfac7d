package logo

import (
	"fmt"
	"slices"
	"sync"
	"time"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var DrawMenuDebug bool = false

type MenuItemType int

const (
	MenuItemTrigger MenuItemType = iota
	MenuItemToggle
	MenuItemNumber
	MenuItemList
	MenuItemTextInput
	MenuItemColor
	MenuItemDeco
	MenuItemTypeSize
)

var MenuItemTypeStrs [MenuItemTypeSize]string

func init() {
	MenuItemTypeStrs[MenuItemTrigger] = "Trigger"
	MenuItemTypeStrs[MenuItemToggle] = "Toggle"
	MenuItemTypeStrs[MenuItemNumber] = "Number"
	MenuItemTypeStrs[MenuItemList] = "List"
	MenuItemTypeStrs[MenuItemTextInput] = "TextInput"
	MenuItemTypeStrs[MenuItemColor] = "Color"
	MenuItemTypeStrs[MenuItemDeco] = "Deco"
}

type MenuItemId int64

type MenuItem struct {
	Type MenuItemType

	SizeRegular  float32
	SizeSelected float32

	Color            Color
	FadeIfUnselected bool

	Id MenuItemId

	Name string

	Bvalue bool

	NValue float32

	NValueMin      float32
	NValueMax      float32
	NValueInterval float32

	NValueFmtString string

	ListSelected int
	List         []string

	// for MenuItemTextInput
	StrValue       string
	StrValueMaxLen int

	// for MenuItemColor
	CValue Color

	OnValueChange func(bValue bool, nValue float32, listSelection string)

	OnStrValueChange func(strValue string)

	// variables for animations
	NameClickTimer       time.Duration
	ValueClickTimer      time.Duration
	LeftArrowClickTimer  time.Duration
	RightArrowClickTimer time.Duration

	bound rl.Rectangle
}

var MenuItemMaxId MenuItemId
var MenuItemIdMutex sync.Mutex

const (
	MenuItemSizeRegularDefault  = 40
	MenuItemSizeSelectedDefault = 50
)

func NewMenuItem() *MenuItem {
	MenuItemIdMutex.Lock()
	defer MenuItemIdMutex.Unlock()

	item := new(MenuItem)

	MenuItemMaxId += 1

	item.Id = MenuItemMaxId

	item.SizeRegular = MenuItemSizeRegularDefault
	item.SizeSelected = MenuItemSizeSelectedDefault

	item.NameClickTimer = -Years150
	item.ValueClickTimer = -Years150
	item.LeftArrowClickTimer = -Years150
	item.RightArrowClickTimer = -Years150

	item.Color = Col(1, 1, 1, 1)

	item.FadeIfUnselected = true

	return item
}

// creates deco item with " " as it's name
// intended to be used as spacing between item groups
func NewDummyDecoMenuItem(size float32) *MenuItem {
	dummy := NewMenuItem()

	dummy.Type = MenuItemDeco

	dummy.Name = " "

	dummy.SizeRegular = size

	return dummy
}

func (mi *MenuItem) CanDecrement() bool {
	return mi.NValue-mi.NValueInterval >= mi.NValueMin-0.00001
}

func (mi *MenuItem) CanIncrement() bool {
	return mi.NValue+mi.NValueInterval <= mi.NValueMax+0.00001
}

type MenuDrawer struct {
	SelectedIndex int

	ListInterval float32

	// left edge of the menu column
	XOffset float32

	Yoffset float32

	ScrollAnimT float32

	InputId InputGroupId

	items []*MenuItem
}

func NewMenuDrawer() *MenuDrawer {
	md := new(MenuDrawer)

	md.ScrollAnimT = 1

	md.ListInterval = 14

	md.XOffset = 60

	md.InputId = NewInputGroupId()

	return md
}

func (md *MenuDrawer) IsInputEnabled() bool {
	return IsInputEnabled(md.InputId)
}

func (md *MenuDrawer) Update(deltaTime time.Duration) {
	if len(md.items) <= 0 {
		return
	}

	for index, item := range md.items {
		if item.Type == MenuItemTrigger {
			md.items[index].Bvalue = false
		}
	}

	prevSelected := md.SelectedIndex

	allDeco := true
	nonDecoCount := 0

	for _, item := range md.items {
		if item.Type != MenuItemDeco {
			nonDecoCount += 1
			allDeco = false
		}
	}

	scrollUntilNonDeco := func(forward bool) {
		for {
			if forward {
				md.SelectedIndex += 1
			} else {
				md.SelectedIndex -= 1
			}

			if md.SelectedIndex >= len(md.items) {
				md.SelectedIndex = 0
			} else if md.SelectedIndex < 0 {
				md.SelectedIndex = len(md.items) - 1
			}

			if md.items[md.SelectedIndex].Type != MenuItemDeco {
				break
			}
		}
	}

	if !allDeco {
		if md.items[md.SelectedIndex].Type == MenuItemDeco {
			scrollUntilNonDeco(true)
		}
	}

	tryingToMove := false
	tryingToMoveUp := false
	canNotMove := false

	if nonDecoCount <= 1 {
		canNotMove = true
	}

	// ==========================
	// handling input
	// ==========================
	{
		callItemCallaback := func(item *MenuItem) {
			listSelection := ""
			if 0 <= item.ListSelected && item.ListSelected < len(item.List) {
				listSelection = item.List[item.ListSelected]
			}
			if item.OnValueChange != nil {
				item.OnValueChange(item.Bvalue, item.NValue, listSelection)
			}
		}

		if AreKeysDown(md.InputId, NavKeysUp...) {
			tryingToMove = true
			tryingToMoveUp = true
		}

		if AreKeysDown(md.InputId, NavKeysDown...) {
			tryingToMove = true
			tryingToMoveUp = false
		}

		const scrollFirstRate = time.Millisecond * 200
		const scrollRepeatRate = time.Millisecond * 110

		if HandleKeyRepeat(md.InputId, scrollFirstRate, scrollRepeatRate, NavKeysUp...) {
			if !allDeco {
				scrollUntilNonDeco(false)
			}
		}

		if HandleKeyRepeat(md.InputId, scrollFirstRate, scrollRepeatRate, NavKeysDown...) {
			if !allDeco {
				scrollUntilNonDeco(true)
			}
		}

		selected := md.items[md.SelectedIndex]

		if AreKeysPressed(md.InputId, SelectKey) {
			switch selected.Type {
			case MenuItemTrigger, MenuItemColor:
				selected.Bvalue = true
				selected.NameClickTimer = GlobalTimerNow()
			case MenuItemToggle:
				selected.Bvalue = !selected.Bvalue
				selected.ValueClickTimer = GlobalTimerNow()
			}

			if selected.Type != MenuItemTextInput {
				callItemCallaback(selected)
			}
		}

		switch selected.Type {
		case MenuItemList, MenuItemNumber, MenuItemToggle:
			canGoLeft := true
			canGoRight := true

			if selected.Type == MenuItemNumber {
				canGoLeft = selected.CanDecrement()
				canGoRight = selected.CanIncrement()
			} else if selected.Type == MenuItemList {
				canGoLeft = len(selected.List) > 0
				canGoRight = len(selected.List) > 0
			}

			if AreKeysDown(md.InputId, NavKeysLeft...) && canGoLeft {
				selected.LeftArrowClickTimer = GlobalTimerNow()
			}

			if AreKeysDown(md.InputId, NavKeysRight...) && canGoRight {
				selected.RightArrowClickTimer = GlobalTimerNow()
			}

			goLeft := false
			goRight := false

			const firstRate = time.Millisecond * 200
			const repeateRate = time.Millisecond * 110

			goLeft = HandleKeyRepeat(md.InputId, firstRate, repeateRate, NavKeysLeft...) && canGoLeft
			goRight = HandleKeyRepeat(md.InputId, firstRate, repeateRate, NavKeysRight...) && canGoRight

			switch selected.Type {
			case MenuItemToggle:
				if goLeft || goRight {
					selected.Bvalue = !selected.Bvalue
					selected.ValueClickTimer = GlobalTimerNow()
					callItemCallaback(selected)
				}
			case MenuItemList:
				if len(selected.List) > 0 {
					listSelected := selected.ListSelected

					if goLeft && canGoLeft {
						listSelected -= 1
					} else if goRight && canGoRight {
						listSelected += 1
					}

					if listSelected >= len(selected.List) {
						listSelected = 0
					} else if listSelected < 0 {
						listSelected = len(selected.List) - 1
					}

					if selected.ListSelected != listSelected {
						selected.ListSelected = listSelected
						callItemCallaback(selected)
					}
				}
			case MenuItemNumber:
				if goLeft {
					selected.NValue -= selected.NValueInterval
					callItemCallaback(selected)
				} else if goRight {
					selected.NValue += selected.NValueInterval
					callItemCallaback(selected)
				}
			}
		case MenuItemTextInput:
			changed := false

			for {
				r := NextTypedChar(md.InputId)
				if r <= 0 {
					break
				}
				if r < 32 { // control characters
					continue
				}

				if selected.StrValueMaxLen > 0 &&
					utf8.RuneCountInString(selected.StrValue) >= selected.StrValueMaxLen {
					continue
				}

				selected.StrValue += string(r)
				changed = true
			}

			const eraseFirstRate = time.Millisecond * 300
			const eraseRepeatRate = time.Millisecond * 60

			if HandleKeyRepeat(md.InputId, eraseFirstRate, eraseRepeatRate, rl.KeyBackspace) {
				if len(selected.StrValue) > 0 {
					_, size := utf8.DecodeLastRuneInString(selected.StrValue)
					selected.StrValue = selected.StrValue[:len(selected.StrValue)-size]
					changed = true
				}
			}

			if changed {
				selected.ValueClickTimer = GlobalTimerNow()

				if selected.OnStrValueChange != nil {
					selected.OnStrValueChange(selected.StrValue)
				}
			}
		}
	}
	// ==========================
	// end of handling input
	// ==========================

	if md.SelectedIndex != prevSelected {
		md.ScrollAnimT = 0
	}

	blend := Clamp(float32(deltaTime.Seconds()*20), 0.00, 1.0)

	seletionY := float32(SCREEN_HEIGHT * 0.5)
	seletionY -= md.GetSelectedItem().SizeRegular * 0.5

	for index, item := range md.items {
		if index >= md.SelectedIndex {
			break
		}
		seletionY -= item.SizeRegular + md.ListInterval
	}

	if tryingToMove && canNotMove {
		push := (md.GetSelectedItem().SizeRegular*0.5 + md.ListInterval) * 0.8
		if tryingToMoveUp {
			seletionY += push
		} else {
			seletionY -= push
		}
	}

	md.Yoffset = Lerp(md.Yoffset, seletionY, blend)

	md.ScrollAnimT = Lerp(md.ScrollAnimT, 1.0, blend)
}

func (md *MenuDrawer) Draw() {
	if len(md.items) <= 0 {
		return
	}

	if DrawMenuDebug {
		rl.DrawLine(
			0, SCREEN_HEIGHT*0.5,
			SCREEN_WIDTH, SCREEN_HEIGHT*0.5,
			rl.Color{R: 255, G: 0, B: 0, A: 255})

		for _, item := range md.items {
			rl.DrawRectangleRec(item.bound, rl.Color{R: 255, G: 0, B: 0, A: 100})
		}
	}

	calcClick := func(timer time.Duration) float32 {
		clickT := float64(GlobalTimerNow()-timer) / float64(time.Millisecond*150)

		if clickT > 0 {
			if clickT > 1 {
				clickT = 1
			}
			tt := -clickT * (clickT - 1)
			return float32(1.0 - tt*0.4)
		} else {
			return 1
		}
	}

	calcArrowClick := func(timer time.Duration) float32 {
		clickT := float64(TimeSinceNow(timer)) / float64(time.Millisecond*70)
		clickT = Clamp(clickT, 0, 1)

		tt := clickT * clickT
		return float32(tt*0.1 + 0.9)
	}

	yOffset := md.Yoffset
	xOffset := md.XOffset

	xAdvance := xOffset
	yCenter := float32(0)

	itemBound := rl.Rectangle{}
	itemBoundSet := false

	updateItemBound := func(bound rl.Rectangle) {
		if !itemBoundSet {
			itemBound = bound
			itemBoundSet = true
		} else {
			itemBound = RectUnion(itemBound, bound)
		}
	}

	drawText := func(text string, fontSize, scale float32, col Color) float32 {
		textSize := MeasureUIText(text, fontSize)

		pos := rl.Vector2{
			X: xAdvance,
			Y: yCenter - textSize.Y*scale*0.5,
		}

		DrawUIText(text, pos, fontSize*scale, col)

		bound := rl.Rectangle{
			X: pos.X, Y: pos.Y,
			Width: textSize.X * scale, Height: textSize.Y * scale,
		}
		updateItemBound(bound)

		return textSize.X
	}

	drawTextCentered := func(text string, fontSize, scale, width float32, col Color) float32 {
		textSize := MeasureUIText(text, fontSize)

		pos := rl.Vector2{
			X: (width-textSize.X)*0.5 + xAdvance,
			Y: yCenter - textSize.Y*scale*0.5,
		}

		DrawUIText(text, pos, fontSize*scale, col)

		bound := rl.Rectangle{
			X: pos.X, Y: pos.Y,
			Width: textSize.X * scale, Height: textSize.Y * scale,
		}

		updateItemBound(bound)

		return width
	}

	drawArrow := func(drawLeft bool, height, scale float32, col Color) float32 {
		w := height * 0.5
		h := height * 0.7 * scale

		top := yCenter - h*0.5
		bottom := yCenter + h*0.5

		if drawLeft {
			rl.DrawTriangle(
				rl.Vector2{X: xAdvance + w, Y: top},
				rl.Vector2{X: xAdvance, Y: yCenter},
				rl.Vector2{X: xAdvance + w, Y: bottom},
				col.ToRlColor())
		} else {
			rl.DrawTriangle(
				rl.Vector2{X: xAdvance, Y: top},
				rl.Vector2{X: xAdvance, Y: bottom},
				rl.Vector2{X: xAdvance + w, Y: yCenter},
				col.ToRlColor())
		}

		updateItemBound(rl.Rectangle{
			X: xAdvance, Y: top, Width: w, Height: h,
		})

		return w
	}

	drawSwatch := func(height, scale float32, col Color) float32 {
		w := height * 1.6 * scale
		h := height * 0.8 * scale

		rect := rl.Rectangle{
			X: xAdvance, Y: yCenter - h*0.5,
			Width: w, Height: h,
		}

		// opaque color over a checker so translucent values read correctly
		rl.DrawRectangleRec(rect, rl.Color{R: 120, G: 120, B: 120, A: 255})
		rl.DrawRectangleRec(
			rl.Rectangle{X: rect.X, Y: rect.Y, Width: w * 0.5, Height: h * 0.5},
			rl.Color{R: 180, G: 180, B: 180, A: 255})
		rl.DrawRectangleRec(
			rl.Rectangle{X: rect.X + w*0.5, Y: rect.Y + h*0.5, Width: w * 0.5, Height: h * 0.5},
			rl.Color{R: 180, G: 180, B: 180, A: 255})

		rl.DrawRectangleRec(rect, col.ToRlColor())
		rl.DrawRectangleLinesEx(rect, 2, rl.Color{R: 255, G: 255, B: 255, A: 255})

		updateItemBound(rect)

		return w
	}

	fadeC := func(col Color, fade float64) Color {
		col.A *= fade
		return col
	}

	for index, item := range md.items {
		yCenter = yOffset + item.SizeRegular*0.5

		xAdvance = xOffset

		fade := float64(0.5)
		size := item.SizeRegular

		if index == md.SelectedIndex {
			fade = Lerp(0.5, 1.0, float64(md.ScrollAnimT))
			size = Lerp(item.SizeRegular, item.SizeSelected, md.ScrollAnimT)
			xAdvance += Lerp(0, 18, md.ScrollAnimT)
		}

		if !item.FadeIfUnselected {
			fade = 1.0
		}

		nameScale := calcClick(item.NameClickTimer)
		valueScale := calcClick(item.ValueClickTimer)
		leftArrowScale := calcArrowClick(item.LeftArrowClickTimer)
		rightArrowScale := calcArrowClick(item.RightArrowClickTimer)

		xAdvance += drawText(item.Name, size, nameScale, fadeC(item.Color, fade))
		xAdvance += 25

		switch item.Type {
		case MenuItemToggle, MenuItemList, MenuItemNumber:
			arrowFill := fadeC(item.Color, fade)

			xAdvance += drawArrow(true, size, leftArrowScale, arrowFill)

			xAdvance += 8 // <- 8 value 8 ->

			valueWidthMax := float32(0)

			switch item.Type {
			case MenuItemToggle:
				valueWidthMax = MeasureUIText("Yes", size).X
			case MenuItemList:
				for _, entry := range item.List {
					valueWidthMax = max(MeasureUIText(entry, size).X, valueWidthMax)
				}
			case MenuItemNumber:
				minText := fmt.Sprintf(item.NValueFmtString, item.NValueMin)
				maxText := fmt.Sprintf(item.NValueFmtString, item.NValueMax)
				valueWidthMax = max(MeasureUIText(minText, size).X, valueWidthMax)
				valueWidthMax = max(MeasureUIText(maxText, size).X, valueWidthMax)
			}

			switch item.Type {
			case MenuItemToggle:
				if item.Bvalue {
					drawTextCentered("Yes", size, valueScale, valueWidthMax, fadeC(item.Color, fade))
				} else {
					drawTextCentered("No", size, valueScale, valueWidthMax, fadeC(item.Color, fade))
				}
			case MenuItemList:
				if len(item.List) > 0 {
					drawTextCentered(item.List[item.ListSelected], size, valueScale, valueWidthMax, fadeC(item.Color, fade))
				}
			case MenuItemNumber:
				toDraw := fmt.Sprintf(item.NValueFmtString, item.NValue)
				drawTextCentered(toDraw, size, valueScale, valueWidthMax, fadeC(item.Color, fade))
			}

			xAdvance += valueWidthMax
			xAdvance += 8 // <- 8 value 8 ->

			drawArrow(false, size, rightArrowScale, arrowFill)
		case MenuItemTextInput:
			toDraw := item.StrValue

			if index == md.SelectedIndex {
				toDraw += "_"
			} else if toDraw == "" {
				toDraw = "..."
			}

			xAdvance += drawText(toDraw, size, valueScale, fadeC(item.Color, fade))
		case MenuItemColor:
			xAdvance += drawSwatch(size, valueScale, item.CValue)
		}

		yOffset += item.SizeRegular + md.ListInterval

		// update item's rendered rect
		item.bound = itemBound
		itemBoundSet = false
	}
}

func (md *MenuDrawer) GetSelectedItem() *MenuItem {
	if len(md.items) <= 0 {
		return nil
	}
	return md.items[md.SelectedIndex]
}

func (md *MenuDrawer) GetSelectedId() MenuItemId {
	if len(md.items) <= 0 {
		return 0
	}
	return md.items[md.SelectedIndex].Id
}

func (md *MenuDrawer) GetItemBound(id MenuItemId) (rl.Rectangle, bool) {
	item := md.GetItemById(id)

	if item != nil {
		return item.bound, true
	}

	return rl.Rectangle{}, false
}

func (md *MenuDrawer) GetItemById(id MenuItemId) *MenuItem {
	for _, item := range md.items {
		if item.Id == id {
			return item
		}
	}

	return nil
}

func (md *MenuDrawer) ItemIndex(id MenuItemId) int {
	for i, item := range md.items {
		if item.Id == id {
			return i
		}
	}

	return -1
}

func (md *MenuDrawer) AddItems(items ...*MenuItem) {
	md.items = append(md.items, items...)
}

func (md *MenuDrawer) DeleteItems(ids ...MenuItemId) {
	md.items = slices.DeleteFunc(md.items, func(item *MenuItem) bool {
		for _, id := range ids {
			if item.Id == id {
				return true
			}
		}
		return false
	})

	md.SelectedIndex = Clamp(md.SelectedIndex, 0, max(len(md.items)-1, 0))
}

func (md *MenuDrawer) InsertAt(at int, items ...*MenuItem) {
	at = Clamp(at, 0, len(md.items))

	var newItems []*MenuItem

	newItems = append(newItems, md.items[0:at]...)
	newItems = append(newItems, items...)
	newItems = append(newItems, md.items[at:]...)

	md.items = newItems
}

func (md *MenuDrawer) ResetAnimation() {
	md.ScrollAnimT = 1
}
