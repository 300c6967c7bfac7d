package logo

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type OptionsScreen struct {
	Menu *MenuDrawer

	fpsItemId      MenuItemId
	checkerItemId  MenuItemId
	autoSaveItemId MenuItemId

	InputId InputGroupId
}

func NewOptionsScreen() *OptionsScreen {
	op := new(OptionsScreen)

	op.InputId = NewInputGroupId()

	op.Menu = NewMenuDrawer()
	op.Menu.XOffset = 100

	optionsDeco := NewMenuItem()
	optionsDeco.Name = "Options"
	optionsDeco.Type = MenuItemDeco
	optionsDeco.Color = Color255(0xE3, 0x9C, 0x02, 0xFF)
	optionsDeco.FadeIfUnselected = false
	optionsDeco.SizeRegular = MenuItemSizeRegularDefault * 1.6
	optionsDeco.SizeSelected = MenuItemSizeSelectedDefault * 1.6
	op.Menu.AddItems(optionsDeco)

	backItem := NewMenuItem()
	backItem.Name = "Back To Editor"
	backItem.Type = MenuItemTrigger
	backItem.OnValueChange = func(_ bool, _ float32, _ string) {
		if err := SaveSession(); err != nil {
			ErrorLogger.Println(err)
			DisplayAlert("failed to save settings")
		}

		ShowTransition(func() {
			SetNextScreen(TheDesignerScreen)
		})
	}
	op.Menu.AddItems(backItem)

	fpsItem := NewMenuItem()
	fpsItem.Name = "Target FPS"
	fpsItem.Type = MenuItemNumber
	fpsItem.NValue = float32(TheOptions.TargetFPS)
	fpsItem.NValueMin = MinTargetFPS
	fpsItem.NValueMax = MaxTargetFPS
	fpsItem.NValueInterval = 10
	fpsItem.NValueFmtString = "%1.f"
	fpsItem.OnValueChange = func(_ bool, nValue float32, _ string) {
		TheOptions.TargetFPS = int32(nValue)
	}
	op.fpsItemId = fpsItem.Id
	op.Menu.AddItems(fpsItem)

	checkerItem := NewMenuItem()
	checkerItem.Name = "Checkerboard Backdrop"
	checkerItem.Type = MenuItemToggle
	checkerItem.Bvalue = TheOptions.Checkerboard
	checkerItem.OnValueChange = func(bValue bool, _ float32, _ string) {
		TheOptions.Checkerboard = bValue
	}
	op.checkerItemId = checkerItem.Id
	op.Menu.AddItems(checkerItem)

	autoSaveItem := NewMenuItem()
	autoSaveItem.Name = "Save Session On Exit"
	autoSaveItem.Type = MenuItemToggle
	autoSaveItem.Bvalue = TheOptions.AutoSaveSession
	autoSaveItem.OnValueChange = func(bValue bool, _ float32, _ string) {
		TheOptions.AutoSaveSession = bValue
	}
	op.autoSaveItemId = autoSaveItem.Id
	op.Menu.AddItems(autoSaveItem)

	return op
}

func (op *OptionsScreen) Update(deltaTime time.Duration) {
	op.Menu.Update(deltaTime)

	if AreKeysPressed(op.InputId, EscapeKey) {
		ShowTransition(func() {
			SetNextScreen(TheDesignerScreen)
		})
	}
}

func (op *OptionsScreen) Draw() {
	rl.ClearBackground(rl.Color{R: 24, G: 24, B: 28, A: 255})

	op.Menu.Draw()
}

func (op *OptionsScreen) BeforeScreenTransition() {
	op.Menu.ResetAnimation()

	if item := op.Menu.GetItemById(op.fpsItemId); item != nil {
		item.NValue = float32(TheOptions.TargetFPS)
	}

	if item := op.Menu.GetItemById(op.checkerItemId); item != nil {
		item.Bvalue = TheOptions.Checkerboard
	}

	if item := op.Menu.GetItemById(op.autoSaveItemId); item != nil {
		item.Bvalue = TheOptions.AutoSaveSession
	}
}

func (op *OptionsScreen) Free() {
}
