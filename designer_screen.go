package logo

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sqweek/dialog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"logo-studio/render"
)

// DesignerScreen is the main editor : menu column on the left, live
// preview on the right.

type DesignerScreen struct {
	Menu *MenuDrawer

	PreviewRect rl.Rectangle

	// ids of items that come and go with their toggles
	textGradientToggleId MenuItemId
	textColor2Id         MenuItemId

	bgGradientToggleId MenuItemId
	bgColor2Id         MenuItemId

	enable3DToggleId MenuItemId
	depthItemId      MenuItemId

	textItemId MenuItemId
	fontItemId MenuItemId
	sizeItemId MenuItemId

	textColorId MenuItemId
	bgColorId   MenuItemId

	widthItemId  MenuItemId
	heightItemId MenuItemId

	InputId InputGroupId
}

func NewDesignerScreen() *DesignerScreen {
	ds := new(DesignerScreen)

	ds.InputId = NewInputGroupId()

	ds.PreviewRect = rl.Rectangle{
		X: 580, Y: 40,
		Width: SCREEN_WIDTH - 580 - 40, Height: SCREEN_HEIGHT - 80,
	}

	ds.Menu = NewMenuDrawer()
	ds.Menu.XOffset = 60

	design := &TheSession.Design

	titleDeco := NewMenuItem()
	titleDeco.Name = "Logo Studio"
	titleDeco.Type = MenuItemDeco
	titleDeco.Color = Color255(0xE3, 0x9C, 0x02, 0xFF)
	titleDeco.FadeIfUnselected = false
	titleDeco.SizeRegular = MenuItemSizeRegularDefault * 1.6
	titleDeco.SizeSelected = MenuItemSizeSelectedDefault * 1.6
	ds.Menu.AddItems(titleDeco)

	textItem := NewMenuItem()
	textItem.Name = "Text"
	textItem.Type = MenuItemTextInput
	textItem.StrValue = design.Text
	textItem.StrValueMaxLen = 64
	textItem.OnStrValueChange = func(strValue string) {
		TheSession.Design.Text = strValue
		MarkPreviewDirty()
	}
	ds.textItemId = textItem.Id
	ds.Menu.AddItems(textItem)

	fontItem := NewMenuItem()
	fontItem.Name = "Font"
	fontItem.Type = MenuItemList
	fontItem.List = TheFontCatalog.Names()
	fontItem.ListSelected = fontListIndex(fontItem.List, design.FontName)
	fontItem.OnValueChange = func(_ bool, _ float32, listSelection string) {
		TheSession.Design.FontName = listSelection

		if path, ok := TheFontCatalog.PathByName(listSelection); ok {
			TheSession.Design.FontPath = path
		} else {
			TheSession.Design.FontPath = ""
		}

		MarkPreviewDirty()
	}
	ds.fontItemId = fontItem.Id
	ds.Menu.AddItems(fontItem)

	sizeItem := NewMenuItem()
	sizeItem.Name = "Size"
	sizeItem.Type = MenuItemNumber
	sizeItem.NValue = float32(design.FontSize)
	sizeItem.NValueMin = render.MinFontSize
	sizeItem.NValueMax = 200
	sizeItem.NValueInterval = 2
	sizeItem.NValueFmtString = "%1.f"
	sizeItem.OnValueChange = func(_ bool, nValue float32, _ string) {
		TheSession.Design.FontSize = float64(nValue)
		MarkPreviewDirty()
	}
	ds.sizeItemId = sizeItem.Id
	ds.Menu.AddItems(sizeItem)

	ds.Menu.AddItems(NewDummyDecoMenuItem(15))

	// ============================
	// text color
	// ============================

	textColorItem := NewMenuItem()
	textColorItem.Name = "Text Color"
	textColorItem.Type = MenuItemColor
	textColorItem.CValue = colorFromHexOrBlack(design.TextPaint.Color)
	textColorItem.OnValueChange = func(_ bool, _ float32, _ string) {
		ds.pickColor("Text Color", textColorItem, func(hex string) {
			TheSession.Design.TextPaint.Color = hex
		})
	}
	ds.textColorId = textColorItem.Id
	ds.Menu.AddItems(textColorItem)

	textGradientItem := NewMenuItem()
	textGradientItem.Name = "Text Gradient"
	textGradientItem.Type = MenuItemToggle
	textGradientItem.Bvalue = design.TextPaint.Gradient
	textGradientItem.OnValueChange = func(bValue bool, _ float32, _ string) {
		ds.setTextGradient(bValue)
	}
	ds.textGradientToggleId = textGradientItem.Id
	ds.Menu.AddItems(textGradientItem)

	// ============================
	// background color
	// ============================

	bgColorItem := NewMenuItem()
	bgColorItem.Name = "Background"
	bgColorItem.Type = MenuItemColor
	bgColorItem.CValue = colorFromHexOrBlack(design.BackgroundPaint.Color)
	bgColorItem.OnValueChange = func(_ bool, _ float32, _ string) {
		ds.pickColor("Background Color", bgColorItem, func(hex string) {
			TheSession.Design.BackgroundPaint.Color = hex
		})
	}
	ds.bgColorId = bgColorItem.Id
	ds.Menu.AddItems(bgColorItem)

	bgGradientItem := NewMenuItem()
	bgGradientItem.Name = "Bg Gradient"
	bgGradientItem.Type = MenuItemToggle
	bgGradientItem.Bvalue = design.BackgroundPaint.Gradient
	bgGradientItem.OnValueChange = func(bValue bool, _ float32, _ string) {
		ds.setBgGradient(bValue)
	}
	ds.bgGradientToggleId = bgGradientItem.Id
	ds.Menu.AddItems(bgGradientItem)

	// ============================
	// 3d effect
	// ============================

	enable3DItem := NewMenuItem()
	enable3DItem.Name = "3D Effect"
	enable3DItem.Type = MenuItemToggle
	enable3DItem.Bvalue = design.Enable3D
	enable3DItem.OnValueChange = func(bValue bool, _ float32, _ string) {
		ds.set3DEffect(bValue)
	}
	ds.enable3DToggleId = enable3DItem.Id
	ds.Menu.AddItems(enable3DItem)

	ds.Menu.AddItems(NewDummyDecoMenuItem(15))

	// ============================
	// canvas size
	// ============================

	widthItem := NewMenuItem()
	widthItem.Name = "Canvas W"
	widthItem.Type = MenuItemNumber
	widthItem.NValue = float32(design.Width)
	widthItem.NValueMin = render.MinCanvasSize
	widthItem.NValueMax = render.MaxCanvasSize
	widthItem.NValueInterval = 10
	widthItem.NValueFmtString = "%1.f"
	widthItem.OnValueChange = func(_ bool, nValue float32, _ string) {
		TheSession.Design.Width = int(nValue)
		MarkPreviewDirty()
	}
	ds.widthItemId = widthItem.Id
	ds.Menu.AddItems(widthItem)

	heightItem := NewMenuItem()
	heightItem.Name = "Canvas H"
	heightItem.Type = MenuItemNumber
	heightItem.NValue = float32(design.Height)
	heightItem.NValueMin = render.MinCanvasSize
	heightItem.NValueMax = render.MaxCanvasSize
	heightItem.NValueInterval = 10
	heightItem.NValueFmtString = "%1.f"
	heightItem.OnValueChange = func(_ bool, nValue float32, _ string) {
		TheSession.Design.Height = int(nValue)
		MarkPreviewDirty()
	}
	ds.heightItemId = heightItem.Id
	ds.Menu.AddItems(heightItem)

	ds.Menu.AddItems(NewDummyDecoMenuItem(15))

	// ============================
	// actions
	// ============================

	saveItem := NewMenuItem()
	saveItem.Name = "Save Logo"
	saveItem.Type = MenuItemTrigger
	saveItem.OnValueChange = func(_ bool, _ float32, _ string) {
		ds.saveLogo()
	}
	ds.Menu.AddItems(saveItem)

	resetItem := NewMenuItem()
	resetItem.Name = "Reset"
	resetItem.Type = MenuItemTrigger
	resetItem.OnValueChange = func(_ bool, _ float32, _ string) {
		DisplayPopup(
			"Reset the design to defaults?",
			[]string{"Yes", "No"},
			func(selected string, isCanceled bool) {
				if isCanceled || selected != "Yes" {
					return
				}

				TheSession.Design = render.DefaultDesign()
				ds.BeforeScreenTransition()
				MarkPreviewDirty()
			},
		)
	}
	ds.Menu.AddItems(resetItem)

	optionsItem := NewMenuItem()
	optionsItem.Name = "Options"
	optionsItem.Type = MenuItemTrigger
	optionsItem.OnValueChange = func(_ bool, _ float32, _ string) {
		ShowTransition(func() {
			SetNextScreen(TheOptionsScreen)
		})
	}
	ds.Menu.AddItems(optionsItem)

	// insert optional items the loaded session asks for
	if design.TextPaint.Gradient {
		ds.insertTextColor2()
	}
	if design.BackgroundPaint.Gradient {
		ds.insertBgColor2()
	}
	if design.Enable3D {
		ds.insertDepthItem()
	}

	return ds
}

func fontListIndex(names []string, fontName string) int {
	for i, name := range names {
		if name == fontName {
			return i
		}
	}
	return 0
}

func colorFromHexOrBlack(hex string) Color {
	c, err := ColorFromHex(hex)
	if err != nil {
		return Col(0, 0, 0, 1)
	}
	return c
}

// pickColor opens the picker seeded with the item's swatch and writes
// the result back through apply.
func (ds *DesignerScreen) pickColor(title string, item *MenuItem, apply func(hex string)) {
	ShowColorPicker(title, item.CValue, func(color Color, isCanceled bool) {
		if isCanceled {
			return
		}

		item.CValue = color
		apply(color.Hex())
		MarkPreviewDirty()
	})
}

func (ds *DesignerScreen) insertTextColor2() {
	if ds.textColor2Id != 0 {
		return
	}

	item := NewMenuItem()
	item.Name = "Text Color 2"
	item.Type = MenuItemColor
	item.CValue = colorFromHexOrBlack(TheSession.Design.TextPaint.Color2)
	item.OnValueChange = func(_ bool, _ float32, _ string) {
		ds.pickColor("Text Color 2", item, func(hex string) {
			TheSession.Design.TextPaint.Color2 = hex
		})
	}

	ds.textColor2Id = item.Id
	ds.Menu.InsertAt(ds.Menu.ItemIndex(ds.textGradientToggleId)+1, item)
}

func (ds *DesignerScreen) insertBgColor2() {
	if ds.bgColor2Id != 0 {
		return
	}

	item := NewMenuItem()
	item.Name = "Background 2"
	item.Type = MenuItemColor
	item.CValue = colorFromHexOrBlack(TheSession.Design.BackgroundPaint.Color2)
	item.OnValueChange = func(_ bool, _ float32, _ string) {
		ds.pickColor("Background Color 2", item, func(hex string) {
			TheSession.Design.BackgroundPaint.Color2 = hex
		})
	}

	ds.bgColor2Id = item.Id
	ds.Menu.InsertAt(ds.Menu.ItemIndex(ds.bgGradientToggleId)+1, item)
}

func (ds *DesignerScreen) insertDepthItem() {
	if ds.depthItemId != 0 {
		return
	}

	item := NewMenuItem()
	item.Name = "Depth"
	item.Type = MenuItemNumber
	item.NValue = float32(TheSession.Design.Depth)
	item.NValueMin = render.MinDepth
	item.NValueMax = render.MaxDepth
	item.NValueInterval = 1
	item.NValueFmtString = "%1.f"
	item.OnValueChange = func(_ bool, nValue float32, _ string) {
		TheSession.Design.Depth = int(nValue)
		MarkPreviewDirty()
	}

	ds.depthItemId = item.Id
	ds.Menu.InsertAt(ds.Menu.ItemIndex(ds.enable3DToggleId)+1, item)
}

func (ds *DesignerScreen) setTextGradient(on bool) {
	design := &TheSession.Design

	design.TextPaint.Gradient = on

	if on {
		if design.TextPaint.Color2 == "" {
			design.TextPaint.Color2 = design.TextPaint.Color
		}
		design.TextPaint.Axis = render.AxisVertical

		ds.insertTextColor2()
	} else if ds.textColor2Id != 0 {
		ds.Menu.DeleteItems(ds.textColor2Id)
		ds.textColor2Id = 0
	}

	MarkPreviewDirty()
}

func (ds *DesignerScreen) setBgGradient(on bool) {
	design := &TheSession.Design

	design.BackgroundPaint.Gradient = on

	if on {
		if design.BackgroundPaint.Color2 == "" {
			design.BackgroundPaint.Color2 = design.BackgroundPaint.Color
		}
		design.BackgroundPaint.Axis = render.AxisHorizontal

		ds.insertBgColor2()
	} else if ds.bgColor2Id != 0 {
		ds.Menu.DeleteItems(ds.bgColor2Id)
		ds.bgColor2Id = 0
	}

	MarkPreviewDirty()
}

func (ds *DesignerScreen) set3DEffect(on bool) {
	TheSession.Design.Enable3D = on

	if on {
		ds.insertDepthItem()
	} else if ds.depthItemId != 0 {
		ds.Menu.DeleteItems(ds.depthItemId)
		ds.depthItemId = 0
	}

	MarkPreviewDirty()
}

func (ds *DesignerScreen) saveLogo() {
	img, err := RenderSessionDesign()
	if err != nil {
		ErrorLogger.Printf("failed to render logo: %v", err)
		DisplayAlert("failed to render logo")
		return
	}

	path, err := dialog.File().
		Filter("PNG image", "png").
		Title("Save Logo").
		SetStartFile("logo.png").
		Save()

	if err != nil {
		if err != dialog.ErrCancelled {
			ErrorLogger.Printf("save dialog failed: %v", err)
			DisplayAlert("failed to open save dialog")
		}
		return
	}

	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		path += ".png"
	}

	if err := render.WritePNG(img, path); err != nil {
		ErrorLogger.Printf("failed to save logo: %v", err)
		DisplayAlert("failed to save logo")
		return
	}

	AppLogger.Printf("saved logo to %s", path)
	DisplayAlert(fmt.Sprintf("saved %s", filepath.Base(path)))

	// remember the design that produced the export
	if err := SaveSession(); err != nil {
		ErrorLogger.Printf("failed to save session: %v", err)
	}
}

func (ds *DesignerScreen) Update(deltaTime time.Duration) {
	ds.Menu.Update(deltaTime)

	if AreKeysPressed(ds.InputId, EscapeKey) {
		DisplayPopup(
			"Quit Logo Studio?",
			[]string{"Yes", "No"},
			func(selected string, isCanceled bool) {
				if !isCanceled && selected == "Yes" {
					RequestQuit()
				}
			},
		)
	}

	UpdatePreview()
}

func (ds *DesignerScreen) Draw() {
	rl.ClearBackground(rl.Color{R: 24, G: 24, B: 28, A: 255})

	// panel behind the preview
	rl.DrawRectangleRounded(ds.PreviewRect, 0.02, 10, rl.Color{R: 34, G: 34, B: 40, A: 255})

	inner := ds.PreviewRect
	inner.X += 15
	inner.Y += 15
	inner.Width -= 30
	inner.Height -= 30

	DrawPreview(inner)

	ds.Menu.Draw()

	sizeLabel := fmt.Sprintf("%d x %d",
		TheSession.Design.Width, TheSession.Design.Height)

	labelSize := MeasureUIText(sizeLabel, 20)

	DrawUIText(sizeLabel,
		rl.Vector2{
			X: ds.PreviewRect.X + ds.PreviewRect.Width - labelSize.X - 10,
			Y: ds.PreviewRect.Y + ds.PreviewRect.Height - labelSize.Y - 6,
		},
		20, Col(0.6, 0.6, 0.65, 1))
}

// BeforeScreenTransition pushes the session design back into the menu
// items, so edits made elsewhere (options, reset, load) show up.
func (ds *DesignerScreen) BeforeScreenTransition() {
	ds.Menu.ResetAnimation()

	design := &TheSession.Design

	if item := ds.Menu.GetItemById(ds.textItemId); item != nil {
		item.StrValue = design.Text
	}

	if item := ds.Menu.GetItemById(ds.fontItemId); item != nil {
		item.ListSelected = fontListIndex(item.List, design.FontName)
	}

	if item := ds.Menu.GetItemById(ds.sizeItemId); item != nil {
		item.NValue = float32(design.FontSize)
	}

	if item := ds.Menu.GetItemById(ds.textColorId); item != nil {
		item.CValue = colorFromHexOrBlack(design.TextPaint.Color)
	}

	if item := ds.Menu.GetItemById(ds.bgColorId); item != nil {
		item.CValue = colorFromHexOrBlack(design.BackgroundPaint.Color)
	}

	if item := ds.Menu.GetItemById(ds.widthItemId); item != nil {
		item.NValue = float32(design.Width)
	}

	if item := ds.Menu.GetItemById(ds.heightItemId); item != nil {
		item.NValue = float32(design.Height)
	}

	if item := ds.Menu.GetItemById(ds.textGradientToggleId); item != nil {
		item.Bvalue = design.TextPaint.Gradient
	}

	if item := ds.Menu.GetItemById(ds.bgGradientToggleId); item != nil {
		item.Bvalue = design.BackgroundPaint.Gradient
	}

	if item := ds.Menu.GetItemById(ds.enable3DToggleId); item != nil {
		item.Bvalue = design.Enable3D
	}

	// optional items
	if design.TextPaint.Gradient {
		ds.insertTextColor2()
	} else if ds.textColor2Id != 0 {
		ds.Menu.DeleteItems(ds.textColor2Id)
		ds.textColor2Id = 0
	}

	if design.BackgroundPaint.Gradient {
		ds.insertBgColor2()
	} else if ds.bgColor2Id != 0 {
		ds.Menu.DeleteItems(ds.bgColor2Id)
		ds.bgColor2Id = 0
	}

	if design.Enable3D {
		ds.insertDepthItem()
	} else if ds.depthItemId != 0 {
		ds.Menu.DeleteItems(ds.depthItemId)
		ds.depthItemId = 0
	}

	if item := ds.Menu.GetItemById(ds.textColor2Id); item != nil {
		item.CValue = colorFromHexOrBlack(design.TextPaint.Color2)
	}

	if item := ds.Menu.GetItemById(ds.bgColor2Id); item != nil {
		item.CValue = colorFromHexOrBlack(design.BackgroundPaint.Color2)
	}

	if item := ds.Menu.GetItemById(ds.depthItemId); item != nil {
		item.NValue = float32(design.Depth)
	}

	MarkPreviewDirty()
}

func (ds *DesignerScreen) Free() {
}
