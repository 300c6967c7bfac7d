package logo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Window capture dumps the composed render texture to a numbered png
// next to the executable. Unlike exporting, this grabs the whole UI,
// preview pane and menus included.

var theWindowCapture struct {
	InputId InputGroupId
}

func InitWindowCapture() {
	theWindowCapture.InputId = NewInputGroupId()
}

// nextCapturePath finds the first capture-NNN.png that does not exist
// in dir yet.
func nextCapturePath(dir string) (string, error) {
	for n := 0; n <= 999; n++ {
		path := filepath.Join(dir, fmt.Sprintf("capture-%03d.png", n))

		_, err := os.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
	}

	return "", fmt.Errorf("every capture slot in %s is taken", dir)
}

func captureWindow() {
	reportFailure := func(err error) {
		ErrorLogger.Printf("window capture failed: %v", err)
		DisplayAlert("window capture failed")
	}

	dir, err := RelativePath("./")
	if err != nil {
		reportFailure(err)
		return
	}

	path, err := nextCapturePath(dir)
	if err != nil {
		reportFailure(err)
		return
	}

	img := rl.LoadImageFromTexture(TheRenderTexture.Texture)
	if !rl.IsImageReady(img) {
		reportFailure(errors.New("could not read the render texture back"))
		return
	}
	defer rl.UnloadImage(img)

	// render textures are stored upside down
	rl.ImageFlipVertical(img)

	data := rl.ExportImageToMemory(*img, ".png")

	if err := os.WriteFile(path, data, 0664); err != nil {
		reportFailure(err)
		return
	}

	AppLogger.Printf("captured window to %s", path)
	DisplayAlert(fmt.Sprintf("captured window to %s", filepath.Base(path)))
}

func UpdateWindowCapture() {
	if AreKeysPressed(theWindowCapture.InputId, CaptureWindowKey) {
		captureWindow()
	}
}
